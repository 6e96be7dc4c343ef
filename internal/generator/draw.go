package generator

import (
	"github.com/abhisek/mathlab/internal/catalog"
	"github.com/abhisek/mathlab/internal/sampler"
)

// maxResample caps rejection sampling. After that many rejected draws a
// generator uses its fixed safe values.
const maxResample = 32

// Draw hands a generator its random values. The first sampler error is
// kept and later draws return their lower bound, so generator code can
// read straight through without checking errors on every call.
type Draw struct {
	s     *sampler.Sampler
	grade int
	err   error
}

// Int returns a uniform integer in [min, max].
func (d *Draw) Int(min, max int) int {
	if d.err != nil {
		return min
	}
	v, err := d.s.IntInRange(min, max)
	if err != nil {
		d.err = err
		return min
	}
	return v
}

// Bool is a fair coin.
func (d *Draw) Bool() bool {
	return d.Int(0, 1) == 1
}

// Sign returns -1 or 1.
func (d *Draw) Sign() int {
	if d.Bool() {
		return -1
	}
	return 1
}

// Grade is the catalog grade of the topic being generated.
func (d *Draw) Grade() int { return d.grade }

// Bound is the operand magnitude limit for the grade.
func (d *Draw) Bound() int { return catalog.MagnitudeBound(d.grade) }

// Err returns the first sampler error, if any.
func (d *Draw) Err() error { return d.err }

func pick[T any](d *Draw, items []T) T {
	if d.err != nil {
		var zero T
		if len(items) > 0 {
			return items[0]
		}
		return zero
	}
	v, err := sampler.Choice(d.s, items)
	if err != nil {
		d.err = err
	}
	return v
}

// until draws with gen until ok accepts a value. It returns fallback when
// maxResample draws are rejected or the draw has failed.
func until[T any](d *Draw, gen func() T, ok func(T) bool, fallback T) T {
	for range maxResample {
		v := gen()
		if d.err != nil {
			return fallback
		}
		if ok(v) {
			return v
		}
	}
	return fallback
}

// sample draws n integers from [min, max].
func sample(d *Draw, n, min, max int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = d.Int(min, max)
	}
	return out
}

// distinct draws n different integers from [min, max] excluding skip.
func distinct(d *Draw, n, min, max int, skip ...int) []int {
	pool := make([]int, 0, max-min+1)
	for v := min; v <= max; v++ {
		excluded := false
		for _, s := range skip {
			if v == s {
				excluded = true
				break
			}
		}
		if !excluded {
			pool = append(pool, v)
		}
	}
	shuffle(d, pool)
	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n]
}

// shuffle permutes xs in place (Fisher-Yates).
func shuffle[T any](d *Draw, xs []T) {
	for i := len(xs) - 1; i > 0; i-- {
		j := d.Int(0, i)
		xs[i], xs[j] = xs[j], xs[i]
	}
}
