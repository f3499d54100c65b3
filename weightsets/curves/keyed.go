// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package curves

import (
	"github.com/gomlx/selectionsets/weightsets"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/interp"
)

// Mode is the interpolation used between the keys of a Keyed curve.
//
//go:generate go tool enumer -type=Mode -transform=snake -values -text -yaml -output=gen_mode_enumer.go keyed.go
type Mode int

const (
	// Linear interpolates linearly between consecutive keys.
	Linear Mode = iota

	// Monotone uses a piecewise cubic (Fritsch-Butland) that never overshoots: between two keys the curve
	// stays within their values.
	Monotone

	// Akima uses an Akima spline: smooth, with little overshoot near outliers.
	Akima
)

// Key is a key frame of a Keyed curve.
type Key struct {
	T, Value float32
}

// Keyed is a curve interpolated between its keys. Outside the range of the keys it holds the value of the
// first or the last key.
type Keyed struct {
	mode      Mode
	keys      []Key
	predictor interp.Predictor
}

var _ weightsets.ConcurrentCurve = (*Keyed)(nil)

// NewKeyed creates a curve passing through all keys. It requires at least 2 keys, sorted by strictly
// increasing T.
func NewKeyed(mode Mode, keys ...Key) (*Keyed, error) {
	if len(keys) < 2 {
		return nil, errors.Wrapf(ErrInvalidCurve, "keyed curve requires at least 2 keys, got %d", len(keys))
	}
	xs := make([]float64, len(keys))
	ys := make([]float64, len(keys))
	for ii, key := range keys {
		if ii > 0 && key.T <= keys[ii-1].T {
			return nil, errors.Wrapf(ErrInvalidCurve, "keys must have strictly increasing T, but key #%d has T=%g after T=%g",
				ii, key.T, keys[ii-1].T)
		}
		xs[ii], ys[ii] = float64(key.T), float64(key.Value)
	}

	var fitter interp.FittablePredictor
	switch mode {
	case Linear:
		fitter = &interp.PiecewiseLinear{}
	case Monotone:
		fitter = &interp.FritschButland{}
	case Akima:
		fitter = &interp.AkimaSpline{}
	default:
		return nil, errors.Wrapf(ErrInvalidCurve, "unknown interpolation mode %s", mode)
	}
	if err := fitter.Fit(xs, ys); err != nil {
		return nil, errors.Wrapf(err, "failed to fit %s curve to %d keys", mode, len(keys))
	}
	return &Keyed{
		mode:      mode,
		keys:      append([]Key(nil), keys...),
		predictor: fitter,
	}, nil
}

// Mode returns the interpolation mode of the curve.
func (k *Keyed) Mode() Mode { return k.mode }

// Keys returns a copy of the keys of the curve.
func (k *Keyed) Keys() []Key { return append([]Key(nil), k.keys...) }

// Range implements weightsets.Curve: it is the range of T of the keys.
func (k *Keyed) Range() (start, end float32) {
	return k.keys[0].T, k.keys[len(k.keys)-1].T
}

// IsConcurrent implements weightsets.ConcurrentCurve: evaluation doesn't change the curve.
func (k *Keyed) IsConcurrent() bool { return true }

// Evaluate implements weightsets.Curve.
func (k *Keyed) Evaluate(x float32) float32 {
	first, last := k.keys[0], k.keys[len(k.keys)-1]
	if x <= first.T {
		return first.Value
	} else if x >= last.T {
		return last.Value
	}
	return float32(k.predictor.Predict(float64(x)))
}
