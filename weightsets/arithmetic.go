// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package weightsets

import (
	"github.com/pkg/errors"
)

// ZeroThreshold is the smallest magnitude a divisor weight can have in DivideScalarBy:
// weights closer to zero are replaced by ±ZeroThreshold (keeping their sign).
const ZeroThreshold = float32(0.01)

// AddScalar returns value + k.
func AddScalar(value *WeightSet, k float32) (*WeightSet, error) {
	if err := requirePresent("AddScalar", value); err != nil {
		return nil, err
	}
	return mapUnary(value, func(out, in []float32) {
		for ii, x := range in {
			out[ii] = x + k
		}
	}), nil
}

// Add returns a + b. Both must have the same size.
func Add(a, b *WeightSet) (*WeightSet, error) {
	if err := RequireSameSize("Add", a, b); err != nil {
		return nil, err
	}
	return mapBinary(a, b, func(out, a, b []float32) {
		for ii, x := range a {
			out[ii] = x + b[ii]
		}
	}), nil
}

// SubtractScalar returns value - k.
func SubtractScalar(value *WeightSet, k float32) (*WeightSet, error) {
	if err := requirePresent("SubtractScalar", value); err != nil {
		return nil, err
	}
	return mapUnary(value, func(out, in []float32) {
		for ii, x := range in {
			out[ii] = x - k
		}
	}), nil
}

// SubtractFromScalar returns k - value.
func SubtractFromScalar(k float32, value *WeightSet) (*WeightSet, error) {
	if err := requirePresent("SubtractFromScalar", value); err != nil {
		return nil, err
	}
	return mapUnary(value, func(out, in []float32) {
		for ii, x := range in {
			out[ii] = k - x
		}
	}), nil
}

// Subtract returns a - b. Both must have the same size.
func Subtract(a, b *WeightSet) (*WeightSet, error) {
	if err := RequireSameSize("Subtract", a, b); err != nil {
		return nil, err
	}
	return mapBinary(a, b, func(out, a, b []float32) {
		for ii, x := range a {
			out[ii] = x - b[ii]
		}
	}), nil
}

// MultiplyByScalar returns value * k.
func MultiplyByScalar(value *WeightSet, k float32) (*WeightSet, error) {
	if err := requirePresent("MultiplyByScalar", value); err != nil {
		return nil, err
	}
	return mapUnary(value, func(out, in []float32) {
		for ii, x := range in {
			out[ii] = x * k
		}
	}), nil
}

// Multiply returns a * b, elementwise. Both must have the same size.
func Multiply(a, b *WeightSet) (*WeightSet, error) {
	if err := RequireSameSize("Multiply", a, b); err != nil {
		return nil, err
	}
	return mapBinary(a, b, func(out, a, b []float32) {
		for ii, x := range a {
			out[ii] = x * b[ii]
		}
	}), nil
}

// DivideByScalar returns value / k. It fails with ErrDivideByZero if k is 0.
func DivideByScalar(value *WeightSet, k float32) (*WeightSet, error) {
	const op = "DivideByScalar"
	if err := requirePresent(op, value); err != nil {
		return nil, err
	}
	if k == 0 {
		return nil, fail(op, errors.WithStack(ErrDivideByZero))
	}
	return mapUnary(value, func(out, in []float32) {
		for ii, x := range in {
			out[ii] = x / k
		}
	}), nil
}

// DivideScalarBy returns k / value.
//
// Weights with magnitude smaller than ZeroThreshold are replaced by ±ZeroThreshold (preserving
// their sign, 0 is taken as positive) before dividing, so the result is always finite for a
// finite k.
func DivideScalarBy(k float32, value *WeightSet) (*WeightSet, error) {
	if err := requirePresent("DivideScalarBy", value); err != nil {
		return nil, err
	}
	return mapUnary(value, func(out, in []float32) {
		for ii, x := range in {
			if x < ZeroThreshold && x > -ZeroThreshold {
				if x < 0 {
					x = -ZeroThreshold
				} else {
					x = ZeroThreshold
				}
			}
			out[ii] = k / x
		}
	}), nil
}

// Divide returns a / b, elementwise. Both must have the same size.
//
// Unlike DivideScalarBy there is no guard for zero weights in b: they yield ±Inf (or NaN for 0/0).
func Divide(a, b *WeightSet) (*WeightSet, error) {
	if err := RequireSameSize("Divide", a, b); err != nil {
		return nil, err
	}
	return mapBinary(a, b, func(out, a, b []float32) {
		for ii, x := range a {
			out[ii] = x / b[ii]
		}
	}), nil
}

// MinScalar returns min(value, k) for every weight. It caps the weights at k.
func MinScalar(value *WeightSet, k float32) (*WeightSet, error) {
	if err := requirePresent("MinScalar", value); err != nil {
		return nil, err
	}
	return mapUnary(value, func(out, in []float32) {
		for ii, x := range in {
			out[ii] = min(x, k)
		}
	}), nil
}

// Min returns the elementwise minimum of a and b. Both must have the same size.
func Min(a, b *WeightSet) (*WeightSet, error) {
	if err := RequireSameSize("Min", a, b); err != nil {
		return nil, err
	}
	return mapBinary(a, b, func(out, a, b []float32) {
		for ii, x := range a {
			out[ii] = min(x, b[ii])
		}
	}), nil
}

// MaxScalar returns max(value, k) for every weight. It makes every weight at least k.
func MaxScalar(value *WeightSet, k float32) (*WeightSet, error) {
	if err := requirePresent("MaxScalar", value); err != nil {
		return nil, err
	}
	return mapUnary(value, func(out, in []float32) {
		for ii, x := range in {
			out[ii] = max(x, k)
		}
	}), nil
}

// Max returns the elementwise maximum of a and b. Both must have the same size.
func Max(a, b *WeightSet) (*WeightSet, error) {
	if err := RequireSameSize("Max", a, b); err != nil {
		return nil, err
	}
	return mapBinary(a, b, func(out, a, b []float32) {
		for ii, x := range a {
			out[ii] = max(x, b[ii])
		}
	}), nil
}

// OneMinus returns 1 - value. For weights normalized to [0, 1] it reverses them.
func OneMinus(value *WeightSet) (*WeightSet, error) {
	if err := requirePresent("OneMinus", value); err != nil {
		return nil, err
	}
	return mapUnary(value, func(out, in []float32) {
		for ii, x := range in {
			out[ii] = 1 - x
		}
	}), nil
}

// Clamp limits every weight to [lo, hi].
//
// lo <= hi is not checked: the result is min(max(x, lo), hi), so with lo > hi every weight becomes hi.
func Clamp(value *WeightSet, lo, hi float32) (*WeightSet, error) {
	if err := requirePresent("Clamp", value); err != nil {
		return nil, err
	}
	return mapUnary(value, func(out, in []float32) {
		for ii, x := range in {
			out[ii] = min(max(x, lo), hi)
		}
	}), nil
}

// Set returns a WeightSet with the size of value where every weight is k.
func Set(value *WeightSet, k float32) (*WeightSet, error) {
	if err := requirePresent("Set", value); err != nil {
		return nil, err
	}
	return mapUnary(value, func(out, _ []float32) {
		for ii := range out {
			out[ii] = k
		}
	}), nil
}
