// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package weightsets implements WeightSet, a dense fixed-size array of float32 weights (one per
// selection index, e.g.: per mesh vertex), and the library of elementwise operations used to
// combine, blend and remap them.
//
// All operations are pure: they never modify their inputs, they validate them, allocate a new
// WeightSet of the same size and return it. On invalid input they return a nil WeightSet and an
// error wrapping one of ErrMissingOperand, ErrShapeMismatch, ErrDivideByZero or ErrEmptyInput,
// and log a warning (klog) naming the operation.
//
// Example:
//
//	ramp := weightsets.FromValues(0, 0.25, 0.5, 0.75, 1)
//	eased, err := weightsets.Ease(ramp, easing.SinusoidalInOut, 2, 2)
//	if err != nil { ... }
//	ripples, err := weightsets.RemapRipple(eased, 4, true)
//
// Large sets are processed in parallel chunks, see Config.
package weightsets

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// WeightSet holds one weight per selection index. Its size is fixed at creation.
//
// The zero value is an empty WeightSet.
type WeightSet struct {
	weights []float32
}

// New returns a WeightSet with size weights, all set to 0.
// It returns an error (wrapping ErrInvalidSize) if size is negative. A size of 0 is valid.
func New(size int) (*WeightSet, error) {
	if size < 0 {
		return nil, fail("New", errors.Wrapf(ErrInvalidSize, "cannot create a WeightSet of size %d", size))
	}
	return newZeroed(size), nil
}

// newZeroed allocates a WeightSet, size is assumed to be valid.
func newZeroed(size int) *WeightSet {
	return &WeightSet{weights: make([]float32, size)}
}

// FromValues returns a new WeightSet holding a copy of values.
func FromValues(values ...float32) *WeightSet {
	ws := newZeroed(len(values))
	copy(ws.weights, values)
	return ws
}

// Size returns the number of weights. A nil WeightSet has size 0.
func (ws *WeightSet) Size() int {
	if ws == nil {
		return 0
	}
	return len(ws.weights)
}

// At returns the weight at index ii. It panics if ii is out of range.
func (ws *WeightSet) At(ii int) float32 {
	if ii < 0 || ii >= ws.Size() {
		exceptions.Panicf("WeightSet.At(%d) out of range for WeightSet of size %d", ii, ws.Size())
	}
	return ws.weights[ii]
}

// Values returns a copy of the weights.
func (ws *WeightSet) Values() []float32 {
	values := make([]float32, ws.Size())
	if ws != nil {
		copy(values, ws.weights)
	}
	return values
}

// Clone returns a copy of the WeightSet that shares no memory with it.
func (ws *WeightSet) Clone() *WeightSet {
	if ws == nil {
		return nil
	}
	return FromValues(ws.weights...)
}

// Memory returns the number of bytes used by the weights.
func (ws *WeightSet) Memory() uintptr {
	return uintptr(ws.Size()) * unsafe.Sizeof(float32(0))
}

// Equal returns whether both sets have the same size and exactly the same weights.
// NaN weights are never equal.
func (ws *WeightSet) Equal(other *WeightSet) bool {
	if ws.Size() != other.Size() {
		return false
	}
	for ii := range ws.Size() {
		if ws.weights[ii] != other.weights[ii] {
			return false
		}
	}
	return true
}

// maxPrintedWeights is the number of weights included by String.
const maxPrintedWeights = 8

// String implements fmt.Stringer. Only the first few weights are printed.
func (ws *WeightSet) String() string {
	if ws == nil {
		return "WeightSet(nil)"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "WeightSet(size=%d, %s)[", ws.Size(), humanize.Bytes(uint64(ws.Memory())))
	for ii, w := range ws.weights {
		if ii == maxPrintedWeights {
			sb.WriteString(", ...")
			break
		}
		if ii > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", w)
	}
	sb.WriteString("]")
	return sb.String()
}
