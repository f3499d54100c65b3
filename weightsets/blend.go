// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package weightsets

import (
	"github.com/gomlx/selectionsets/weightsets/easing"
)

// lerp is the linear interpolation a + (b-a)*t.
func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Lerp blends a and b with a shared alpha: 0 returns a, 1 returns b. Both must have the same size.
func Lerp(a, b *WeightSet, alpha float32) (*WeightSet, error) {
	if err := RequireSameSize("Lerp", a, b); err != nil {
		return nil, err
	}
	return mapBinary(a, b, func(out, a, b []float32) {
		for ii, x := range a {
			out[ii] = lerp(x, b[ii], alpha)
		}
	}), nil
}

// LerpBySet blends a and b with a per-weight alpha. All three must have the same size.
func LerpBySet(a, b, alpha *WeightSet) (*WeightSet, error) {
	if err := RequireSameSize3("LerpBySet", a, b, alpha); err != nil {
		return nil, err
	}
	return mapTernary(a, b, alpha, func(out, a, b, alpha []float32) {
		for ii, x := range a {
			out[ii] = lerp(x, b[ii], alpha[ii])
		}
	}), nil
}

// LerpScalar blends value towards the constant k: alpha 0 returns value, 1 sets every weight to k.
func LerpScalar(value *WeightSet, k, alpha float32) (*WeightSet, error) {
	if err := requirePresent("LerpScalar", value); err != nil {
		return nil, err
	}
	return mapUnary(value, func(out, in []float32) {
		for ii, x := range in {
			out[ii] = lerp(x, k, alpha)
		}
	}), nil
}

// Ease applies the easing curve kind to every weight, taken as an interpolation parameter in [0, 1].
//
// steps is only used by easing.Step, exponent only by easing.EaseIn, EaseOut and EaseInOut.
// Unknown kinds are treated as easing.Linear.
func Ease(value *WeightSet, kind easing.Kind, steps int, exponent float32) (*WeightSet, error) {
	if err := requirePresent("Ease", value); err != nil {
		return nil, err
	}
	if kind == easing.Linear {
		return value.Clone(), nil
	}
	fn := easing.Func(kind, easing.Params{Steps: steps, Exponent: float64(exponent)})
	return mapUnary(value, pointwise(fn)), nil
}
