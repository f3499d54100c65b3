// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package xslices provide missing functionality to the slices package.
package xslices

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"
)

// SliceWithValue creates a slice of given size filled with given value.
func SliceWithValue[T any](size int, value T) []T {
	s := make([]T, size)
	for ii := range s {
		s[ii] = value
	}
	return s
}

// Keys returns the keys of a map in the form of a slice.
func Keys[K comparable, V any](m map[K]V) []K {
	s := make([]K, 0, len(m))
	for k := range m {
		s = append(s, k)
	}
	return s
}

// SortedKeys returns the sorted keys of a map in the form of a slice.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	s := Keys(m)
	slices.Sort(s)
	return s
}

// Linspace returns n values evenly spaced from start to end, both included.
// Eg: Linspace(0.0, 1.0, 5) -> []float64{0, 0.25, 0.5, 0.75, 1}
//
// If n == 1 it returns []T{start}.
func Linspace[T constraints.Float](start, end T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	slice := make([]T, n)
	if n == 1 {
		slice[0] = start
		return slice
	}
	step := (end - start) / T(n-1)
	for ii := range slice {
		slice[ii] = start + step*T(ii)
	}
	slice[n-1] = end
	return slice
}

// Map executes the given function sequentially for every element on in, and returns a mapped slice.
func Map[In, Out any](in []In, fn func(e In) Out) (out []Out) {
	out = make([]Out, len(in))
	for ii, e := range in {
		out[ii] = fn(e)
	}
	return
}
