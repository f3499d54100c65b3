// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package easing implements the standard family of easing curves, as pure functions mapping an
// interpolation parameter t (conceptually in [0, 1]) to a shaped value with the same endpoints.
//
// The kernels are registered in a table keyed by Kind, see Lookup and Func. Each kernel is also
// exported as a generic function, so it can be used directly on float32 or float64 values.
package easing

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Kind of easing curve. Kinds are named in snake_case, e.g.: "sinusoidal_in_out", see KindString and
// KindValues.
//
//go:generate go tool enumer -type=Kind -transform=snake -values -text -yaml -output=gen_kind_enumer.go easing.go
type Kind int

const (
	Linear Kind = iota
	Step
	SinusoidalIn
	SinusoidalOut
	SinusoidalInOut
	EaseIn
	EaseOut
	EaseInOut
	ExpoIn
	ExpoOut
	ExpoInOut
	CircularIn
	CircularOut
	CircularInOut
)

// Params configure the kernels that take extra parameters.
type Params struct {
	// Steps is the number of steps used by Step.
	Steps int

	// Exponent controls the EaseIn, EaseOut and EaseInOut curves.
	Exponent float64
}

// DefaultParams returns Steps=2 and Exponent=2.
func DefaultParams() Params {
	return Params{Steps: 2, Exponent: 2}
}

// Kernel maps the parameter t to its eased value.
type Kernel func(t float64, p Params) float64

var kernels = map[Kind]Kernel{
	Linear:          func(t float64, _ Params) float64 { return t },
	Step:            func(t float64, p Params) float64 { return StepFn(t, p.Steps) },
	SinusoidalIn:    func(t float64, _ Params) float64 { return SinusoidalInFn(t) },
	SinusoidalOut:   func(t float64, _ Params) float64 { return SinusoidalOutFn(t) },
	SinusoidalInOut: func(t float64, _ Params) float64 { return SinusoidalInOutFn(t) },
	EaseIn:          func(t float64, p Params) float64 { return EaseInFn(t, p.Exponent) },
	EaseOut:         func(t float64, p Params) float64 { return EaseOutFn(t, p.Exponent) },
	EaseInOut:       func(t float64, p Params) float64 { return EaseInOutFn(t, p.Exponent) },
	ExpoIn:          func(t float64, _ Params) float64 { return ExpoInFn(t) },
	ExpoOut:         func(t float64, _ Params) float64 { return ExpoOutFn(t) },
	ExpoInOut:       func(t float64, _ Params) float64 { return ExpoInOutFn(t) },
	CircularIn:      func(t float64, _ Params) float64 { return CircularInFn(t) },
	CircularOut:     func(t float64, _ Params) float64 { return CircularOutFn(t) },
	CircularInOut:   func(t float64, _ Params) float64 { return CircularInOutFn(t) },
}

// Lookup returns the kernel registered for kind. Unknown kinds fall back to Linear.
func Lookup(kind Kind) Kernel {
	if kernel, found := kernels[kind]; found {
		return kernel
	}
	return kernels[Linear]
}

// Func returns the kernel for kind with the parameters bound, working on float32 values.
func Func(kind Kind, p Params) func(t float32) float32 {
	kernel := Lookup(kind)
	return func(t float32) float32 {
		return float32(kernel(float64(t), p))
	}
}

// inOut builds an in-out curve from an "in" and an "out" curve, each covering half of the range.
func inOut[T constraints.Float](t T, in, out func(T) T) T {
	if t < 0.5 {
		return in(t*2) * 0.5
	}
	return out(t*2-1)*0.5 + 0.5
}

// StepFn quantizes t into steps equal buckets: values below 1/steps map to 0 and the last
// bucket maps to 1.
func StepFn[T constraints.Float](t T, steps int) T {
	if steps <= 1 || t <= 0 {
		return 0
	} else if t >= 1 {
		return 1
	}
	return T(math.Floor(float64(t)*float64(steps)) / float64(steps-1))
}

// SinusoidalInFn is 1-cos(t*π/2), starting flat.
func SinusoidalInFn[T constraints.Float](t T) T {
	return T(1 - math.Cos(float64(t)*math.Pi/2))
}

// SinusoidalOutFn is sin(t*π/2), ending flat.
func SinusoidalOutFn[T constraints.Float](t T) T {
	return T(math.Sin(float64(t) * math.Pi / 2))
}

// SinusoidalInOutFn uses SinusoidalInFn on the first half and SinusoidalOutFn on the second.
func SinusoidalInOutFn[T constraints.Float](t T) T {
	return inOut(t, SinusoidalInFn[T], SinusoidalOutFn[T])
}

// EaseInFn is the power curve t^exponent.
func EaseInFn[T constraints.Float](t T, exponent float64) T {
	return T(math.Pow(float64(t), exponent))
}

// EaseOutFn is the mirrored power curve 1-(1-t)^exponent.
func EaseOutFn[T constraints.Float](t T, exponent float64) T {
	return T(1 - math.Pow(1-float64(t), exponent))
}

// EaseInOutFn uses EaseInFn on the first half and EaseOutFn on the second.
func EaseInOutFn[T constraints.Float](t T, exponent float64) T {
	return inOut(t,
		func(x T) T { return EaseInFn(x, exponent) },
		func(x T) T { return EaseOutFn(x, exponent) })
}

// ExpoInFn is 2^(10(t-1)), with ExpoInFn(0) = 0.
func ExpoInFn[T constraints.Float](t T) T {
	if t == 0 {
		return 0
	}
	return T(math.Pow(2, 10*(float64(t)-1)))
}

// ExpoOutFn is 1-2^(-10t), with ExpoOutFn(1) = 1.
func ExpoOutFn[T constraints.Float](t T) T {
	if t == 1 {
		return 1
	}
	return T(1 - math.Pow(2, -10*float64(t)))
}

// ExpoInOutFn uses ExpoInFn on the first half and ExpoOutFn on the second.
func ExpoInOutFn[T constraints.Float](t T) T {
	return inOut(t, ExpoInFn[T], ExpoOutFn[T])
}

// CircularInFn is a quarter circle starting flat. It is NaN for t outside [-1, 1].
func CircularInFn[T constraints.Float](t T) T {
	x := float64(t)
	return T(1 - math.Sqrt(1-x*x))
}

// CircularOutFn is a quarter circle ending flat. It is NaN for t outside [0, 2].
func CircularOutFn[T constraints.Float](t T) T {
	x := float64(t) - 1
	return T(math.Sqrt(1 - x*x))
}

// CircularInOutFn uses CircularInFn on the first half and CircularOutFn on the second.
func CircularInOutFn[T constraints.Float](t T) T {
	return inOut(t, CircularInFn[T], CircularOutFn[T])
}
