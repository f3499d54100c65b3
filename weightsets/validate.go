// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package weightsets

import (
	"github.com/pkg/errors"
)

// requirePresent checks that none of the sets is nil.
func requirePresent(op string, sets ...*WeightSet) error {
	for _, ws := range sets {
		if ws == nil {
			if len(sets) == 1 {
				return fail(op, errors.Wrap(ErrMissingOperand, "need a SelectionSet"))
			}
			return fail(op, errors.Wrapf(ErrMissingOperand, "need %d SelectionSets", len(sets)))
		}
	}
	return nil
}

// RequireSameSize checks that both a and b are given and have the same size.
//
// The returned error wraps ErrMissingOperand or ErrShapeMismatch, and names the operation op.
// A failure is also logged as a warning.
func RequireSameSize(op string, a, b *WeightSet) error {
	if err := requirePresent(op, a, b); err != nil {
		return err
	}
	if a.Size() != b.Size() {
		return fail(op, errors.Wrapf(ErrShapeMismatch, "sizes %d and %d", a.Size(), b.Size()))
	}
	return nil
}

// RequireSameSize3 checks that a, b and c are given and have the same size.
//
// See RequireSameSize.
func RequireSameSize3(op string, a, b, c *WeightSet) error {
	if err := requirePresent(op, a, b, c); err != nil {
		return err
	}
	if a.Size() != b.Size() || a.Size() != c.Size() {
		return fail(op, errors.Wrapf(ErrShapeMismatch, "sizes %d, %d and %d", a.Size(), b.Size(), c.Size()))
	}
	return nil
}
