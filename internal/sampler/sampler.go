// Package sampler provides the bounded uniform sampling every problem
// generator draws from.
package sampler

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrEmptyCollection is returned by Choice when there is nothing to choose.
var ErrEmptyCollection = errors.New("choice from empty collection")

// RangeError reports inverted sampling bounds. Bounds are always chosen by
// generator code, so this indicates a generator bug rather than bad input.
type RangeError struct {
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range [%d, %d]: min > max", e.Min, e.Max)
}

// Source is the entropy a Sampler consumes. *rand.Rand satisfies it.
type Source interface {
	// IntN returns a uniform integer in [0, n). n is always > 0.
	IntN(n int) int
}

// globalSource draws from the auto-seeded math/rand/v2 top-level generator.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Sampler draws uniform integers and elements. It is not safe for
// concurrent use when backed by a seeded *rand.Rand; New() is.
type Sampler struct {
	src Source
}

// New returns a Sampler backed by the runtime-seeded global generator.
func New() *Sampler {
	return &Sampler{src: globalSource{}}
}

// NewSeeded returns a deterministic Sampler, for tests and reproducible
// worksheets.
func NewSeeded(seed uint64) *Sampler {
	return &Sampler{src: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewFromSource wraps an arbitrary Source.
func NewFromSource(src Source) *Sampler {
	return &Sampler{src: src}
}

// IntInRange returns a uniform integer in [min, max] inclusive.
func (s *Sampler) IntInRange(min, max int) (int, error) {
	if min > max {
		return 0, &RangeError{Min: min, Max: max}
	}
	return min + s.src.IntN(max-min+1), nil
}

// Choice returns a uniformly selected element of items.
func Choice[T any](s *Sampler, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyCollection
	}
	return items[s.src.IntN(len(items))], nil
}
