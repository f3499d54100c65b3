// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package weightsets

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

// approx compares float32 slices within a small tolerance.
var approx = cmpopts.EquateApprox(0, 1e-5)

// assertValues checks ws holds want, within a small tolerance.
func assertValues(t *testing.T, want []float32, ws *WeightSet) {
	t.Helper()
	require.NotNil(t, ws)
	if diff := cmp.Diff(want, ws.Values(), approx, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("unexpected weights (-want +got):\n%s", diff)
	}
}

func TestNew(t *testing.T) {
	ws := must.M1(New(3))
	assert.Equal(t, 3, ws.Size())
	assert.Equal(t, []float32{0, 0, 0}, ws.Values())

	empty := must.M1(New(0))
	assert.Equal(t, 0, empty.Size())

	_, err := New(-1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSize))
}

func TestAccessors(t *testing.T) {
	values := []float32{1, 2, 3}
	ws := FromValues(values...)
	values[0] = 100 // FromValues must have copied.
	assert.Equal(t, float32(1), ws.At(0))
	assert.Equal(t, float32(3), ws.At(2))

	err := exceptions.TryCatch[error](func() { ws.At(3) })
	require.Error(t, err)
	assert.Panics(t, func() { ws.At(-1) })

	got := ws.Values()
	got[1] = 100
	assert.Equal(t, float32(2), ws.At(1), "Values() must return a copy")

	clone := ws.Clone()
	assert.True(t, clone.Equal(ws))
	assert.NotSame(t, ws, clone)

	var nilSet *WeightSet
	assert.Equal(t, 0, nilSet.Size())
	assert.Nil(t, nilSet.Clone())
	assert.Equal(t, "WeightSet(nil)", nilSet.String())

	assert.Equal(t, uintptr(12), ws.Memory())
	assert.False(t, ws.Equal(FromValues(1, 2)))
	assert.False(t, ws.Equal(FromValues(1, 2, 4)))
}

func TestString(t *testing.T) {
	ws := FromValues(0, 0.5, 1)
	assert.Equal(t, "WeightSet(size=3, 12 B)[0, 0.5, 1]", ws.String())

	long := must.M1(New(20))
	assert.Contains(t, long.String(), ", ...]")
}

func TestRequireSameSize(t *testing.T) {
	a, b, c := FromValues(1, 2), FromValues(3, 4), FromValues(1, 2, 3)
	require.NoError(t, RequireSameSize("test", a, b))
	require.NoError(t, RequireSameSize3("test", a, b, b))

	err := RequireSameSize("test", a, c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
	assert.Equal(t, "test: sizes 2 and 3: selection sets are not the same size", err.Error())

	err = RequireSameSize("test", a, nil)
	assert.True(t, errors.Is(err, ErrMissingOperand))

	err = RequireSameSize3("test", a, b, c)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
	assert.Contains(t, err.Error(), "2, 2 and 3")

	err = RequireSameSize3("test", nil, b, c)
	assert.True(t, errors.Is(err, ErrMissingOperand))
}

func TestFloat16(t *testing.T) {
	ws := FromValues(0, 0.25, 0.333, 1, -2)
	halves := ws.Float16()
	require.Len(t, halves, 5)
	assert.Equal(t, float16.Fromfloat32(0.25), halves[1])

	back := FromFloat16(halves)
	if diff := cmp.Diff(ws.Values(), back.Values(), cmpopts.EquateApprox(1e-3, 0)); diff != "" {
		t.Errorf("float16 round trip (-want +got):\n%s", diff)
	}
	assert.Equal(t, float32(0.25), back.At(1))
	assert.Empty(t, must.M1(New(0)).Float16())
}
