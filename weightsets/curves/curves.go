// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package curves implements weightsets.Curve, to be used with weightsets.RemapToCurve.
//
// There are three flavors:
//
//   - Func: adapts any Go function.
//   - Keyed: interpolates between key frames, linearly or with a smooth spline.
//   - BSpline: a B-spline defined by its control points over regularly spaced knots.
//
// Example: a curve that goes up and back down, used to remap weights:
//
//	curve := must.M1(curves.NewKeyed(curves.Monotone,
//		curves.Key{T: 0, Value: 0}, curves.Key{T: 0.5, Value: 1}, curves.Key{T: 1, Value: 0}))
//	remapped, err := weightsets.RemapToCurve(ws, curve)
package curves

import (
	"github.com/gomlx/selectionsets/weightsets"
	"github.com/pkg/errors"
)

// ErrInvalidCurve is returned when a curve is created with invalid parameters.
var ErrInvalidCurve = errors.New("invalid curve")

// Func adapts a function defined over [Start, End] to a weightsets.Curve.
type Func struct {
	Start, End float32
	Fn         func(x float32) float32
}

var _ weightsets.Curve = (*Func)(nil)

// NewFunc returns a Func curve with the given domain.
func NewFunc(start, end float32, fn func(x float32) float32) *Func {
	return &Func{Start: start, End: end, Fn: fn}
}

// Range implements weightsets.Curve.
func (f *Func) Range() (start, end float32) {
	return f.Start, f.End
}

// Evaluate implements weightsets.Curve.
func (f *Func) Evaluate(x float32) float32 {
	return f.Fn(x)
}
