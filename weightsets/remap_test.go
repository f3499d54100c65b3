// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package weightsets

import (
	"math"
	"sync/atomic"
	"testing"

	"github.com/gomlx/selectionsets/weightsets/easing"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemapToRange(t *testing.T) {
	assertValues(t, []float32{0, 0.5, 1}, must.M1(RemapToRange(FromValues(0, 5, 10), 0, 1)))
	assertValues(t, []float32{-1, 1, 0}, must.M1(RemapToRange(FromValues(3, 7, 5), -1, 1)))

	// Inverted range.
	assertValues(t, []float32{1, 0}, must.M1(RemapToRange(FromValues(-2, 2), 1, 0)))

	// Flat input.
	assert.Equal(t, []float32{0, 0, 0}, must.M1(RemapToRange(FromValues(5, 5, 5), 0, 1)).Values())
	assert.Equal(t, []float32{0.25}, must.M1(RemapToRange(FromValues(3), 0.25, 1)).Values())

	// NaN weights are skipped when finding the range.
	nan := float32(math.NaN())
	for _, values := range [][]float32{{nan, 0, 10}, {0, nan, 10}, {0, 10, nan}} {
		lo, hi, err := Range(FromValues(values...))
		require.NoError(t, err)
		assert.Equal(t, float32(0), lo)
		assert.Equal(t, float32(10), hi)
		got := must.M1(RemapToRange(FromValues(values...), -1, 1))
		for ii, x := range values {
			if math.IsNaN(float64(x)) {
				assert.True(t, math.IsNaN(float64(got.At(ii))))
			} else {
				assert.InDelta(t, x/5-1, got.At(ii), 1e-6)
			}
		}
	}

	// Empty input has no range.
	got, err := RemapToRange(FromValues(), 0, 1)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, ErrEmptyInput))
}

// testCurve is y = 2x over [1, 4].
type testCurve struct{}

func (testCurve) Range() (start, end float32) { return 1, 4 }
func (testCurve) Evaluate(x float32) float32  { return 2 * x }

func TestRemapToCurve(t *testing.T) {
	// Scaled by the end of the domain only.
	got := must.M1(RemapToCurve(FromValues(0, 0.5, 1), testCurve{}))
	assertValues(t, []float32{0, 4, 8}, got)

	got, err := RemapToCurve(FromValues(0, 1), nil)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, ErrMissingOperand))

	got, err = RemapToCurve(nil, testCurve{})
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, ErrMissingOperand))
}

// squareCurve is y = x² over [0, 2]. It is safe for concurrent use.
type squareCurve struct {
	calls atomic.Int64
}

func (c *squareCurve) Range() (start, end float32) { return 0, 2 }
func (c *squareCurve) IsConcurrent() bool          { return true }
func (c *squareCurve) Evaluate(x float32) float32 {
	c.calls.Add(1)
	return x * x
}

// cachingCurve is y = x² over [0, 1], memoizing the last evaluation, so it is not safe for concurrent
// use. It records the largest number of simultaneous calls to Evaluate.
type cachingCurve struct {
	lastX, lastY      float32
	active, maxActive atomic.Int32
}

func (c *cachingCurve) Range() (start, end float32) { return 0, 1 }
func (c *cachingCurve) Evaluate(x float32) float32 {
	active := c.active.Add(1)
	defer c.active.Add(-1)
	for {
		current := c.maxActive.Load()
		if active <= current || c.maxActive.CompareAndSwap(current, active) {
			break
		}
	}
	if x != c.lastX {
		c.lastX, c.lastY = x, x*x
	}
	return c.lastY
}

func TestRemapToCurveConcurrency(t *testing.T) {
	const size = 1 << 16
	v := must.M1(Randomize(must.M1(New(size)), NewRandomStream(7), 0, 1))
	withConfig(t, Config{MaxParallelism: 8, MinParallelSize: 1024}, func() {
		// Curves that are not ConcurrentCurve are evaluated from a single goroutine.
		caching := &cachingCurve{}
		got := must.M1(RemapToCurve(v, caching))
		assert.Equal(t, int32(1), caching.maxActive.Load())
		for ii := range size {
			x := v.At(ii)
			require.Equalf(t, x*x, got.At(ii), "weight #%d", ii)
		}

		square := &squareCurve{}
		got = must.M1(RemapToCurve(v, square))
		assert.Equal(t, int64(size), square.calls.Load())
		for ii := range size {
			x := 2 * v.At(ii)
			require.Equalf(t, x*x, got.At(ii), "weight #%d", ii)
		}
	})
}

func TestRemapRipple(t *testing.T) {
	v := FromValues(0, 0.25, 0.5, 0.75)

	// A single ripple stays in band 0: identity.
	assertValues(t, []float32{0, 0.25, 0.5, 0.75}, must.M1(RemapRipple(v, 1, true)))

	// Two ripples: the second half is in band 1, folded when upAndDown.
	assertValues(t, []float32{0, 0.5, 1, 0.5}, must.M1(RemapRipple(v, 2, true)))
	assertValues(t, []float32{0, 0.5, 0, 0.5}, must.M1(RemapRipple(v, 2, false)))

	// Band 2 is even again.
	assertValues(t, []float32{0.5, 0.5}, must.M1(RemapRipple(FromValues(0.625, 0.375), 4, true)))

	// Negative values: fmod keeps the sign, negative bands are never odd.
	assertValues(t, []float32{-0.5, -0.5}, must.M1(RemapRipple(FromValues(-0.25, -0.75), 2, true)))

	assert.Equal(t, 0, must.M1(RemapRipple(FromValues(), 3, true)).Size())
}

func TestEase(t *testing.T) {
	v := FromValues(0, 0.25, 0.5, 0.75, 1)
	linear := must.M1(Ease(v, easing.Linear, 2, 2))
	assert.Equal(t, v.Values(), linear.Values())

	// Unknown kinds behave as Linear.
	assert.Equal(t, v.Values(), must.M1(Ease(v, easing.Kind(99), 2, 2)).Values())

	step := must.M1(Ease(v, easing.Step, 2, 2))
	assert.Equal(t, []float32{0, 0, 1, 1, 1}, step.Values())

	easeIn := must.M1(Ease(v, easing.EaseIn, 2, 3))
	assertValues(t, []float32{0, 0.015625, 0.125, 0.421875, 1}, easeIn)

	for _, kind := range easing.KindValues() {
		eased := must.M1(Ease(v, kind, 4, 2))
		require.Equal(t, v.Size(), eased.Size())
		assert.InDeltaf(t, 0, eased.At(0), 1e-3, "kind %s", kind)
		assert.InDeltaf(t, 1, eased.At(4), 1e-3, "kind %s", kind)
	}
}

func TestLerp(t *testing.T) {
	a := FromValues(0, 1, 2)
	b := FromValues(10, -1, 2)
	assertValues(t, []float32{0, 1, 2}, must.M1(Lerp(a, b, 0)))
	assertValues(t, []float32{10, -1, 2}, must.M1(Lerp(a, b, 1)))
	assertValues(t, []float32{5, 0, 2}, must.M1(Lerp(a, b, 0.5)))

	alpha := FromValues(0, 0.5, 1)
	assertValues(t, []float32{0, 0, 2}, must.M1(LerpBySet(a, b, alpha)))

	_, err := Lerp(a, FromValues(1), 0.5)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
	_, err = LerpBySet(a, b, FromValues(1, 2))
	assert.True(t, errors.Is(err, ErrShapeMismatch))
	_, err = LerpBySet(a, nil, alpha)
	assert.True(t, errors.Is(err, ErrMissingOperand))
}

func TestStatistics(t *testing.T) {
	v := FromValues(3, -1, 4, 1.5)
	lo, hi, err := Range(v)
	require.NoError(t, err)
	assert.Equal(t, float32(-1), lo)
	assert.Equal(t, float32(4), hi)

	sum := must.M1(Sum(v))
	assert.InDelta(t, 7.5, sum, 1e-9)
	mean := must.M1(Mean(v))
	assert.InDelta(t, 1.875, mean, 1e-9)

	_, _, err = Range(FromValues())
	assert.True(t, errors.Is(err, ErrEmptyInput))
	_, err = Mean(FromValues())
	assert.True(t, errors.Is(err, ErrEmptyInput))
	assert.Equal(t, 0.0, must.M1(Sum(FromValues())))
	_, err = Sum(nil)
	assert.True(t, errors.Is(err, ErrMissingOperand))
}
