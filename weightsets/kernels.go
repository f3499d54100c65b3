// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package weightsets

import "k8s.io/klog/v2"

// Slice kernels process contiguous chunks of weights: out, and every input, have the same length.
// They are written as plain loops over slices so the compiler can bounds-check-eliminate and
// the chunks can be distributed over goroutines.
type (
	unaryKernel   func(out, in []float32)
	binaryKernel  func(out, a, b []float32)
	ternaryKernel func(out, a, b, c []float32)
)

// parallelFor runs fn over [0, n), split in chunks according to the current Config.
func parallelFor(n int, fn func(start, end int)) {
	e := getEngine()
	if klog.V(2).Enabled() && e.pool.IsEnabled() && n > e.config.MinParallelSize {
		klog.Infof("weightsets: splitting %d weights in chunks of at least %d, parallelism=%d",
			n, e.config.MinParallelSize, e.pool.MaxParallelism())
	}
	e.pool.ParallelFor(n, e.config.MinParallelSize, fn)
}

// mapUnary allocates the result and fills it with kernel applied to in.
func mapUnary(in *WeightSet, kernel unaryKernel) *WeightSet {
	result := newZeroed(in.Size())
	parallelFor(in.Size(), func(start, end int) {
		kernel(result.weights[start:end], in.weights[start:end])
	})
	return result
}

// mapBinary allocates the result and fills it with kernel applied to a and b, which must have the same size.
func mapBinary(a, b *WeightSet, kernel binaryKernel) *WeightSet {
	result := newZeroed(a.Size())
	parallelFor(a.Size(), func(start, end int) {
		kernel(result.weights[start:end], a.weights[start:end], b.weights[start:end])
	})
	return result
}

// mapTernary allocates the result and fills it with kernel applied to a, b and c, which must have the same size.
func mapTernary(a, b, c *WeightSet, kernel ternaryKernel) *WeightSet {
	result := newZeroed(a.Size())
	parallelFor(a.Size(), func(start, end int) {
		kernel(result.weights[start:end], a.weights[start:end], b.weights[start:end], c.weights[start:end])
	})
	return result
}

// pointwise adapts a per-weight function to a unaryKernel.
func pointwise(fn func(x float32) float32) unaryKernel {
	return func(out, in []float32) {
		for ii, x := range in {
			out[ii] = fn(x)
		}
	}
}
