// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package curves

import (
	"github.com/gomlx/bsplines"
	"github.com/gomlx/selectionsets/weightsets"
	"github.com/pkg/errors"
)

// BSpline is a curve defined by a B-spline with regularly spaced knots over [start, end].
// Outside its domain it holds the value at the nearest end.
type BSpline struct {
	start, end float32
	bspline    *bsplines.BSpline
}

var _ weightsets.ConcurrentCurve = (*BSpline)(nil)

// NewBSpline creates a B-spline curve of the given degree over [start, end].
//
// It requires at least degree+1 controlPoints, and start < end.
func NewBSpline(degree int, start, end float32, controlPoints []float64) (*BSpline, error) {
	if degree < 0 {
		return nil, errors.Wrapf(ErrInvalidCurve, "B-spline degree must be >= 0, got %d", degree)
	}
	if start >= end {
		return nil, errors.Wrapf(ErrInvalidCurve, "B-spline domain [%g, %g] is empty", start, end)
	}
	numControlPoints := len(controlPoints)
	if numControlPoints < degree+1 {
		return nil, errors.Wrapf(ErrInvalidCurve, "B-spline of degree %d requires at least %d control points, got %d",
			degree, degree+1, numControlPoints)
	}

	// Regular knots from start to end.
	numKnots := numControlPoints - degree + 1
	knots := make([]float64, numKnots)
	width := float64(end) - float64(start)
	for ii := range knots {
		knots[ii] = float64(start) + width*float64(ii)/float64(numKnots-1)
	}
	b := bsplines.New(degree, knots).
		WithControlPoints(append([]float64(nil), controlPoints...)).
		WithExtrapolation(bsplines.ExtrapolateConstant)
	return &BSpline{start: start, end: end, bspline: b}, nil
}

// Degree of the B-spline.
func (c *BSpline) Degree() int { return c.bspline.Degree() }

// NumControlPoints of the B-spline.
func (c *BSpline) NumControlPoints() int { return c.bspline.NumControlPoints() }

// Range implements weightsets.Curve.
func (c *BSpline) Range() (start, end float32) {
	return c.start, c.end
}

// IsConcurrent implements weightsets.ConcurrentCurve: evaluation doesn't change the curve.
func (c *BSpline) IsConcurrent() bool { return true }

// Evaluate implements weightsets.Curve.
func (c *BSpline) Evaluate(x float32) float32 {
	return float32(c.bspline.Evaluate(float64(x)))
}
