package numtheory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/mathlab/internal/sampler"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{12, 18, 6},
		{18, 12, 6},
		{7, 0, 7},
		{0, 9, 9},
		{0, 0, 0},
		{-12, 18, 6},
		{12, -18, 6},
		{17, 5, 1},
		{100, 75, 25},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GCD(tt.a, tt.b), "GCD(%d, %d)", tt.a, tt.b)
	}
}

func TestLCM(t *testing.T) {
	assert.Equal(t, 12, LCM(4, 6))
	assert.Equal(t, 35, LCM(5, 7))
	assert.Equal(t, 0, LCM(0, 7))
	assert.Equal(t, 12, LCM(-4, 6))
}

func TestIsPrime(t *testing.T) {
	primes := []int{2, 3, 5, 7, 11, 13, 97, 7919}
	for _, p := range primes {
		assert.True(t, IsPrime(p), "%d should be prime", p)
	}
	notPrimes := []int{-7, 0, 1, 4, 9, 15, 91, 7917}
	for _, n := range notPrimes {
		assert.False(t, IsPrime(n), "%d should not be prime", n)
	}
}

func TestSimplify(t *testing.T) {
	n, d := Simplify(6, 8)
	assert.Equal(t, [2]int{3, 4}, [2]int{n, d})

	n, d = Simplify(3, -9)
	assert.Equal(t, [2]int{-1, 3}, [2]int{n, d})

	n, d = Simplify(0, 5)
	assert.Equal(t, [2]int{0, 1}, [2]int{n, d})
}

func TestSimplify_RoundTrip(t *testing.T) {
	s := sampler.NewSeeded(1)
	for range 1000 {
		num, _ := s.IntInRange(1, 500)
		den, _ := s.IntInRange(1, 500)
		n, d := Simplify(num, den)
		assert.Equal(t, 1, GCD(n, d), "%d/%d reduced to %d/%d", num, den, n, d)
	}
}

func TestFactors(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 6, 12}, Factors(12))
	assert.Equal(t, []int{1, 7}, Factors(7))
	assert.Equal(t, []int{1, 2, 4, 8, 16}, Factors(16))
	assert.Equal(t, []int{1}, Factors(1))
}
