// Package numtheory holds the small integer helpers shared by fraction,
// factor and prime generators.
package numtheory

// GCD returns the greatest common divisor of a and b. Negative inputs are
// treated as their absolute values; GCD(a, 0) = |a| and GCD(0, 0) = 0.
func GCD(a, b int) int {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b, or 0 if either is 0.
func LCM(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return abs(a) / GCD(a, b) * abs(b)
}

// IsPrime reports whether n is prime using trial division up to √n.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// Simplify reduces n/d to lowest terms with a positive denominator.
// d must be non-zero.
func Simplify(n, d int) (int, int) {
	if d < 0 {
		n, d = -n, -d
	}
	g := GCD(n, d)
	if g == 0 {
		return n, d
	}
	return n / g, d / g
}

// Factors returns the positive divisors of n in ascending order.
func Factors(n int) []int {
	n = abs(n)
	var small, large []int
	for i := 1; i*i <= n; i++ {
		if n%i != 0 {
			continue
		}
		small = append(small, i)
		if i != n/i {
			large = append(large, n/i)
		}
	}
	for i := len(large) - 1; i >= 0; i-- {
		small = append(small, large[i])
	}
	return small
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
