// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package easing

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestKindNames(t *testing.T) {
	for _, kind := range KindValues() {
		parsed, err := KindString(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}
	assert.Equal(t, "sinusoidal_in_out", SinusoidalInOut.String())
	kind, err := KindString("EXPO_OUT")
	require.NoError(t, err)
	assert.Equal(t, ExpoOut, kind)
	assert.Len(t, KindStrings(), len(KindValues()))

	_, err = KindString("bounce")
	require.Error(t, err)
	assert.Equal(t, "Kind(100)", Kind(100).String())
	assert.False(t, Kind(100).IsAKind())

	var decoded Kind
	require.NoError(t, yaml.Unmarshal([]byte("circular_in"), &decoded))
	assert.Equal(t, CircularIn, decoded)
	encoded, err := yaml.Marshal(EaseInOut)
	require.NoError(t, err)
	assert.Equal(t, "ease_in_out\n", string(encoded))
	require.Error(t, yaml.Unmarshal([]byte("bounce"), &decoded))
}

func TestEndpoints(t *testing.T) {
	p := DefaultParams()
	for _, kind := range KindValues() {
		t.Run(kind.String(), func(t *testing.T) {
			kernel := Lookup(kind)
			assert.InDelta(t, 0.0, kernel(0, p), 1e-3)
			assert.InDelta(t, 1.0, kernel(1, p), 1e-3)
		})
	}
}

func TestMonotonic(t *testing.T) {
	p := Params{Steps: 4, Exponent: 3}
	for _, kind := range KindValues() {
		kernel := Lookup(kind)
		previous := kernel(0, p)
		for ii := 1; ii <= 100; ii++ {
			current := kernel(float64(ii)/100, p)
			require.GreaterOrEqualf(t, current, previous-1e-12, "%s is not monotonic at t=%g", kind, float64(ii)/100)
			previous = current
		}
	}
}

func TestStep(t *testing.T) {
	testCases := []struct {
		t     float64
		steps int
		want  float64
	}{
		{0, 2, 0},
		{0.25, 2, 0},
		{0.4999, 2, 0},
		{0.5, 2, 1},
		{0.75, 2, 1},
		{1, 2, 1},
		{0.2, 3, 0},
		{0.34, 3, 0.5},
		{0.7, 3, 1},
		{0.9, 1, 0},
		{-0.5, 4, 0},
		{1.5, 4, 1},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("t=%g,steps=%d", tc.t, tc.steps), func(t *testing.T) {
			assert.InDelta(t, tc.want, StepFn(tc.t, tc.steps), 1e-9)
		})
	}
}

func TestKnownValues(t *testing.T) {
	assert.InDelta(t, 1-math.Sqrt2/2, SinusoidalInFn(0.5), 1e-9)
	assert.InDelta(t, math.Sqrt2/2, SinusoidalOutFn(0.5), 1e-9)
	assert.InDelta(t, 0.5, SinusoidalInOutFn(0.5), 1e-9)
	assert.InDelta(t, 0.25, EaseInFn(0.5, 2), 1e-9)
	assert.InDelta(t, 0.75, EaseOutFn(0.5, 2), 1e-9)
	assert.InDelta(t, 0.125, EaseInOutFn(0.25, 2), 1e-9)
	assert.InDelta(t, math.Pow(2, -5), ExpoInFn(0.5), 1e-9)
	assert.InDelta(t, 1-math.Pow(2, -5), ExpoOutFn(0.5), 1e-9)
	assert.InDelta(t, 0.5, ExpoInOutFn(0.5), 1e-9)
	assert.InDelta(t, 1-math.Sqrt(0.75), CircularInFn(0.5), 1e-9)
	assert.InDelta(t, math.Sqrt(0.75), CircularOutFn(0.5), 1e-9)
	assert.InDelta(t, 0.5, CircularInOutFn(0.5), 1e-9)
	assert.True(t, math.IsNaN(CircularInFn(2.0)))

	// Works on float32 too.
	assert.InDelta(t, float32(0.25), EaseInFn(float32(0.5), 2), 1e-6)
}

func TestLookupFallback(t *testing.T) {
	kernel := Lookup(Kind(-3))
	assert.Equal(t, 0.3, kernel(0.3, DefaultParams()))

	fn := Func(EaseIn, Params{Exponent: 3})
	assert.InDelta(t, float32(0.125), fn(0.5), 1e-6)
}
