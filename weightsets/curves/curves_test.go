// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package curves

import (
	"fmt"
	"testing"

	"github.com/gomlx/selectionsets/pkg/support/xslices"
	"github.com/gomlx/selectionsets/weightsets"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunc(t *testing.T) {
	square := NewFunc(0, 2, func(x float32) float32 { return x * x })
	start, end := square.Range()
	assert.Equal(t, float32(0), start)
	assert.Equal(t, float32(2), end)
	assert.Equal(t, float32(2.25), square.Evaluate(1.5))

	// Weight 1 reads the end of the domain.
	ws := weightsets.FromValues(0, 0.5, 1)
	got := must.M1(weightsets.RemapToCurve(ws, square))
	assert.Equal(t, []float32{0, 1, 4}, got.Values())
}

func TestKeyedLinear(t *testing.T) {
	curve := must.M1(NewKeyed(Linear, Key{0, 0}, Key{1, 2}, Key{2, 0}))
	assert.Equal(t, Linear, curve.Mode())
	start, end := curve.Range()
	assert.Equal(t, float32(0), start)
	assert.Equal(t, float32(2), end)

	testCases := []struct{ x, want float32 }{
		{-1, 0}, {0, 0}, {0.5, 1}, {1, 2}, {1.5, 1}, {2, 0}, {10, 0},
	}
	for _, tc := range testCases {
		assert.InDeltaf(t, tc.want, curve.Evaluate(tc.x), 1e-6, "Evaluate(%g)", tc.x)
	}
}

func TestKeyedSplines(t *testing.T) {
	keys := []Key{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 0.5}}
	for _, mode := range []Mode{Monotone, Akima} {
		t.Run(mode.String(), func(t *testing.T) {
			curve := must.M1(NewKeyed(mode, keys...))
			assert.Equal(t, keys, curve.Keys())
			for _, key := range keys {
				assert.InDeltaf(t, key.Value, curve.Evaluate(key.T), 1e-5, "Evaluate(%g)", key.T)
			}
			// Constant extrapolation.
			assert.Equal(t, float32(0), curve.Evaluate(-3))
			assert.Equal(t, float32(0.5), curve.Evaluate(7))
		})
	}

	// Monotone never overshoots the keys.
	curve := must.M1(NewKeyed(Monotone, keys...))
	for ii := range 101 {
		x := float32(ii) / 100
		y := curve.Evaluate(x)
		assert.GreaterOrEqual(t, y, float32(-1e-6))
		assert.LessOrEqual(t, y, float32(1+1e-6))
	}
	for _, x := range []float32{1.25, 1.5, 1.75} {
		assert.InDelta(t, 1, curve.Evaluate(x), 1e-6)
	}
}

func TestKeyedErrors(t *testing.T) {
	testCases := []struct {
		name string
		mode Mode
		keys []Key
	}{
		{"no keys", Linear, nil},
		{"one key", Akima, []Key{{0, 1}}},
		{"unsorted", Monotone, []Key{{0, 0}, {2, 1}, {1, 0}}},
		{"repeated T", Linear, []Key{{0, 0}, {0, 1}}},
		{"bad mode", Mode(17), []Key{{0, 0}, {1, 1}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			curve, err := NewKeyed(tc.mode, tc.keys...)
			assert.Nil(t, curve)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCurve))
		})
	}
}

func TestModeNames(t *testing.T) {
	for _, mode := range ModeValues() {
		assert.Equal(t, mode, must.M1(ModeString(mode.String())))
	}
	assert.Equal(t, []string{"linear", "monotone", "akima"}, ModeStrings())
	assert.Equal(t, Akima, must.M1(ModeString("AKIMA")))
	_, err := ModeString("cubic")
	assert.Error(t, err)
	assert.Equal(t, "Mode(9)", Mode(9).String())
}

func TestBSpline(t *testing.T) {
	for degree := range 4 {
		t.Run(fmt.Sprintf("degree=%d", degree), func(t *testing.T) {
			// Partition of unity: constant control points give a constant curve.
			controlPoints := make([]float64, degree+3)
			for ii := range controlPoints {
				controlPoints[ii] = 0.75
			}
			curve := must.M1(NewBSpline(degree, -1, 3, controlPoints))
			assert.Equal(t, degree, curve.Degree())
			assert.Equal(t, len(controlPoints), curve.NumControlPoints())
			start, end := curve.Range()
			assert.Equal(t, float32(-1), start)
			assert.Equal(t, float32(3), end)
			for ii := range 40 {
				x := -1 + float32(ii)/10
				assert.InDeltaf(t, 0.75, curve.Evaluate(x), 1e-5, "Evaluate(%g)", x)
			}
		})
	}

	// Increasing control points give an increasing curve, held constant outside the domain.
	curve := must.M1(NewBSpline(3, 0, 1, []float64{0, 0.1, 0.4, 0.5, 0.8, 1}))
	previous := curve.Evaluate(0)
	for ii := 1; ii < 100; ii++ {
		y := curve.Evaluate(float32(ii) / 100)
		assert.GreaterOrEqual(t, y, previous-1e-6)
		previous = y
	}
	assert.InDelta(t, curve.Evaluate(0), curve.Evaluate(-0.5), 1e-6)
	assert.InDelta(t, curve.Evaluate(0.9999), curve.Evaluate(1.5), 1e-2)

	for _, args := range []struct {
		degree        int
		start, end    float32
		controlPoints []float64
	}{
		{-1, 0, 1, []float64{0, 1}},
		{2, 1, 1, []float64{0, 1, 2}},
		{2, 0, 1, []float64{0, 1}},
	} {
		_, err := NewBSpline(args.degree, args.start, args.end, args.controlPoints)
		assert.True(t, errors.Is(err, ErrInvalidCurve))
	}
}

func TestConcurrentCurves(t *testing.T) {
	keyed := must.M1(NewKeyed(Linear, Key{T: 0, Value: 0}, Key{T: 1, Value: 2}))
	assert.True(t, keyed.IsConcurrent())
	assert.True(t, must.M1(NewBSpline(1, 0, 1, []float64{0, 1})).IsConcurrent())

	previous := weightsets.CurrentConfig()
	defer weightsets.SetConfig(previous)
	weightsets.SetConfig(weightsets.Config{MaxParallelism: 4, MinParallelSize: 100})
	const size = 1001
	ramp := weightsets.FromValues(xslices.Linspace[float32](0, 1, size)...)
	got := must.M1(weightsets.RemapToCurve(ramp, keyed))
	for ii := range size {
		require.InDeltaf(t, 2*ramp.At(ii), got.At(ii), 1e-5, "weight #%d", ii)
	}
}
