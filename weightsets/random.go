// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package weightsets

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// RandomStream is a source of uniformly distributed random numbers.
//
// Randomize draws one number per weight, in index order, so a deterministic stream yields
// reproducible weights.
type RandomStream interface {
	// Uniform returns a random number in [lo, hi].
	Uniform(lo, hi float32) float32
}

// Stream is a seeded RandomStream: two streams created with the same seed produce the same
// sequence of numbers. It is not safe for concurrent use.
type Stream struct {
	seed uint64
	rng  *rand.Rand
}

// streamSalt is mixed into the seed to derive the second word of the PCG state.
const streamSalt = 0x9e3779b97f4a7c15

// NewRandomStream returns a Stream initialized with seed.
func NewRandomStream(seed uint64) *Stream {
	s := &Stream{seed: seed}
	s.Reset()
	return s
}

// Seed returns the seed used to create the stream.
func (s *Stream) Seed() uint64 {
	return s.seed
}

// Reset restarts the stream from its seed.
func (s *Stream) Reset() {
	s.rng = rand.New(rand.NewPCG(s.seed, s.seed^streamSalt))
}

// Uniform implements RandomStream.
func (s *Stream) Uniform(lo, hi float32) float32 {
	return lo + (hi-lo)*s.rng.Float32()
}

// Randomize returns a WeightSet with the size of value, with each weight drawn from stream in [lo, hi].
//
// The weights are drawn sequentially in index order, regardless of Config.
func Randomize(value *WeightSet, stream RandomStream, lo, hi float32) (*WeightSet, error) {
	const op = "Randomize"
	if err := requirePresent(op, value); err != nil {
		return nil, err
	}
	if stream == nil {
		return nil, fail(op, errors.Wrap(ErrMissingOperand, "no RandomStream provided"))
	}
	result := newZeroed(value.Size())
	for ii := range result.weights {
		result.weights[ii] = stream.Uniform(lo, hi)
	}
	return result, nil
}
