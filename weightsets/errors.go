// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package weightsets

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Errors returned (wrapped) by the operations. Use errors.Is to test for them.
var (
	// ErrMissingOperand is returned when a required WeightSet (or Curve, or RandomStream) is nil.
	ErrMissingOperand = errors.New("missing operand")

	// ErrShapeMismatch is returned when WeightSets combined elementwise have different sizes.
	ErrShapeMismatch = errors.New("selection sets are not the same size")

	// ErrDivideByZero is returned when dividing by a scalar that is exactly zero.
	ErrDivideByZero = errors.New("cannot divide by zero")

	// ErrEmptyInput is returned by operations that need at least one weight.
	ErrEmptyInput = errors.New("selection set has no weights, need at least one")

	// ErrInvalidSize is returned when creating a WeightSet with a negative size.
	ErrInvalidSize = errors.New("invalid size")
)

// fail prefixes err with the name of the operation op, logs it and returns it.
// Every rejected call goes through here, so it is logged exactly once.
func fail(op string, err error) error {
	err = errors.WithMessage(err, op)
	klog.Warningf("%v", err)
	return err
}
