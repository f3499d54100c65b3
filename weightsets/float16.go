// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package weightsets

import (
	"github.com/x448/float16"
)

// Float16 returns the weights converted to half precision, e.g.: to be uploaded as a compact
// per-vertex attribute. Values out of the float16 range become ±Inf.
func (ws *WeightSet) Float16() []float16.Float16 {
	halves := make([]float16.Float16, ws.Size())
	for ii := range halves {
		halves[ii] = float16.Fromfloat32(ws.weights[ii])
	}
	return halves
}

// FromFloat16 returns a new WeightSet with the given half precision weights.
func FromFloat16(halves []float16.Float16) *WeightSet {
	ws := newZeroed(len(halves))
	for ii, h := range halves {
		ws.weights[ii] = h.Float32()
	}
	return ws
}
