package generator

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/abhisek/mathlab/internal/numtheory"
	"github.com/abhisek/mathlab/internal/problem"
)

const (
	opAdd = "+"
	opSub = "-"
	opMul = "×"
	opDiv = "÷"
)

func num(v int) float64 { return float64(v) }

// signed wraps negative numbers in parentheses for display.
func signed(n int) string {
	if n < 0 {
		return "(" + strconv.Itoa(n) + ")"
	}
	return strconv.Itoa(n)
}

// decimal renders a float operand for display.
func decimal(v float64) string { return problem.FormatNumber(v) }

// --- arithmetic pair ---

// pairProblem builds "a op b = ?". For opDiv the caller guarantees b != 0
// and b divides a.
func pairProblem(op string, a, b int) problem.Problem {
	var v int
	var steps []string
	switch op {
	case opAdd:
		v = a + b
		steps = additionSteps(a, b)
	case opSub:
		v = a - b
		steps = subtractionSteps(a, b)
	case opMul:
		v = a * b
		steps = multiplicationSteps(a, b)
	case opDiv:
		v = a / b
		steps = divisionSteps(a, b)
	}
	return problem.Numeric(fmt.Sprintf("%s %s %s = ?", signed(a), op, signed(b)), num(v)).
		WithOperands(op, num(a), num(b)).
		WithSteps(steps...)
}

var placeNames = []string{"ones", "tens", "hundreds", "thousands", "ten thousands", "hundred thousands", "millions"}

func placeName(i int) string {
	if i < len(placeNames) {
		return placeNames[i]
	}
	return fmt.Sprintf("10^%d place", i)
}

func additionSteps(a, b int) []string {
	if a < 0 || b < 0 {
		return signedSteps(opAdd, a, b, a+b)
	}
	if a < 10 && b < 10 {
		return []string{
			fmt.Sprintf("Start at %d and count up %d.", a, b),
			fmt.Sprintf("%d + %d = %d", a, b, a+b),
		}
	}
	var steps []string
	x, y, carry := a, b, 0
	for i := 0; x > 0 || y > 0; i++ {
		dx, dy := x%10, y%10
		s := dx + dy + carry
		line := fmt.Sprintf("Add the %s: %d + %d", placeName(i), dx, dy)
		if carry > 0 {
			line += fmt.Sprintf(" + %d carried", carry)
		}
		line += fmt.Sprintf(" = %d", s)
		carry = s / 10
		if carry > 0 && (x >= 10 || y >= 10) {
			line += fmt.Sprintf(". Write %d, carry %d.", s%10, carry)
		} else {
			line += "."
		}
		steps = append(steps, line)
		x, y = x/10, y/10
	}
	return append(steps, fmt.Sprintf("%d + %d = %d", a, b, a+b))
}

func subtractionSteps(a, b int) []string {
	if a < 0 || b < 0 || b > a {
		return signedSteps(opSub, a, b, a-b)
	}
	if a <= 20 && b < 10 {
		return []string{
			fmt.Sprintf("Start at %d and count back %d.", a, b),
			fmt.Sprintf("%d - %d = %d", a, b, a-b),
		}
	}
	ones := b % 10
	rest := b - ones
	var steps []string
	if rest > 0 && ones > 0 {
		steps = append(steps,
			fmt.Sprintf("Break %d into %d and %d.", b, rest, ones),
			fmt.Sprintf("%d - %d = %d", a, rest, a-rest),
			fmt.Sprintf("%d - %d = %d", a-rest, ones, a-b),
		)
	} else {
		steps = append(steps, fmt.Sprintf("%d - %d = %d", a, b, a-b))
	}
	return append(steps, fmt.Sprintf("Check: %d + %d = %d", a-b, b, a))
}

func multiplicationSteps(a, b int) []string {
	if a < 0 || b < 0 {
		return signedSteps(opMul, a, b, a*b)
	}
	if a <= 12 && b <= 12 {
		return []string{
			fmt.Sprintf("Think of %d groups of %d.", a, b),
			fmt.Sprintf("%d × %d = %d", a, b, a*b),
		}
	}
	big, small := a, b
	if small > big {
		big, small = small, big
	}
	var parts []int
	for place := 1; big/place > 0; place *= 10 {
		if digit := (big / place) % 10; digit > 0 {
			parts = append(parts, digit*place)
		}
	}
	slices.Reverse(parts)
	steps := []string{fmt.Sprintf("Split %d by place value: %s.", big, joinInts(parts, " + "))}
	products := make([]int, len(parts))
	for i, p := range parts {
		products[i] = p * small
		steps = append(steps, fmt.Sprintf("%d × %d = %d", p, small, products[i]))
	}
	if len(products) > 1 {
		steps = append(steps, fmt.Sprintf("Add the partial products: %s = %d", joinInts(products, " + "), a*b))
	}
	return steps
}

func divisionSteps(a, b int) []string {
	if a < 0 || b < 0 {
		return signedSteps(opDiv, a, b, a/b)
	}
	return []string{
		fmt.Sprintf("Ask: how many groups of %d make %d?", b, a),
		fmt.Sprintf("%d × %d = %d, so %d ÷ %d = %d.", a/b, b, a, a, b, a/b),
	}
}

func signedSteps(op string, a, b, v int) []string {
	var rule string
	switch op {
	case opAdd:
		if (a < 0) == (b < 0) {
			rule = "The signs match, so add the sizes and keep the sign."
		} else {
			rule = "The signs differ, so subtract the smaller size from the larger and keep the sign of the larger."
		}
	case opSub:
		rule = fmt.Sprintf("Subtracting %s is the same as adding %s.", signed(b), signed(-b))
	default:
		if (a < 0) == (b < 0) {
			rule = "The signs match, so the result is positive."
		} else {
			rule = "The signs differ, so the result is negative."
		}
	}
	return []string{rule, fmt.Sprintf("%s %s %s = %d", signed(a), op, signed(b), v)}
}

func joinInts(xs []int, sep string) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, sep)
}

// --- conversion ---

type unit struct{ one, many, abbr string }

func (u unit) count(n int) string {
	if n == 1 {
		return "1 " + u.one
	}
	return fmt.Sprintf("%d %s", n, u.many)
}

type unitPair struct {
	from, to unit
	factor   int
}

var (
	feet        = unit{"foot", "feet", "ft"}
	inches      = unit{"inch", "inches", "in"}
	yards       = unit{"yard", "yards", "yd"}
	kilograms   = unit{"kilogram", "kilograms", "kg"}
	grams       = unit{"gram", "grams", "g"}
	liters      = unit{"liter", "liters", "l"}
	milliliters = unit{"milliliter", "milliliters", "ml"}
	hours       = unit{"hour", "hours", "h"}
	minutes     = unit{"minute", "minutes", "min"}
	meters      = unit{"meter", "meters", "m"}
	centimeters = unit{"centimeter", "centimeters", "cm"}
	kilometers  = unit{"kilometer", "kilometers", "km"}
	millimeters = unit{"millimeter", "millimeters", "mm"}
)

// convert asks for n from-units expressed in to-units.
func convert(u unitPair, n int) problem.Problem {
	v := n * u.factor
	return problem.Numeric(
		fmt.Sprintf("How many %s are in %s?", u.to.many, u.from.count(n)),
		num(v),
		fmt.Sprintf("%d %s", v, u.to.many),
		fmt.Sprintf("%d %s", v, u.to.abbr),
	).WithOperands(opMul, num(n), num(u.factor)).WithSteps(
		fmt.Sprintf("1 %s = %d %s.", u.from.one, u.factor, u.to.many),
		fmt.Sprintf("%d × %d = %d %s", n, u.factor, v, u.to.many),
	)
}

func conversion(u unitPair, min, max int) Func {
	return func(d *Draw) problem.Problem { return convert(u, d.Int(min, max)) }
}

// --- property lookup ---

type fact struct {
	question string
	answer   int
	why      string
}

func lookup(facts ...fact) Func {
	return func(d *Draw) problem.Problem {
		f := pick(d, facts)
		return problem.Numeric(f.question, num(f.answer)).WithSteps(f.why, fmt.Sprintf("The answer is %d.", f.answer))
	}
}

// --- geometry formula ---

type rounding int

const (
	wholeNumber rounding = iota
	nearestTenth
	nearestHundredth
)

func (r rounding) apply(v float64) float64 {
	p := math.Pow(10, float64(r))
	return math.Round(v*p) / p
}

func (r rounding) instruction() string {
	switch r {
	case nearestTenth:
		return "Round to the nearest tenth."
	case nearestHundredth:
		return "Round to the nearest hundredth."
	default:
		return ""
	}
}

// piApprox is the value of π learners are told to use.
const piApprox = 3.14

// geometry builds a formula problem. The answer is v rounded by r.
func geometry(display, formula string, v float64, r rounding, steps ...string) problem.Problem {
	if ins := r.instruction(); ins != "" {
		display += " " + ins
	}
	ans := r.apply(v)
	p := problem.Numeric(display, ans)
	p.Metadata.Formula = formula
	steps = append([]string{"Use " + formula + "."}, steps...)
	if ans != v {
		steps = append(steps, fmt.Sprintf("%s rounds to %s.", decimal(v), decimal(ans)))
	}
	return p.WithSteps(steps...)
}

// --- statistics ---

func listInts(xs []int) string { return joinInts(xs, ", ") }

func sum(xs []int) int {
	s := 0
	for _, x := range xs {
		s += x
	}
	return s
}

func sortedCopy(xs []int) []int {
	out := slices.Clone(xs)
	slices.Sort(out)
	return out
}

// medianOf returns the middle of a sorted slice, averaging the two middle
// values for even length. xs must be non-empty.
func medianOf(sorted []int) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return num(sorted[n/2])
	}
	return num(sorted[n/2-1]+sorted[n/2]) / 2
}

// quartiles uses the median of each half, leaving out the overall median
// when the count is odd. xs must have at least four values.
func quartiles(sorted []int) (q1, q3 float64) {
	n := len(sorted)
	lower := sorted[:n/2]
	upper := sorted[(n+1)/2:]
	return medianOf(lower), medianOf(upper)
}

// uniqueMode returns the value that occurs most often when exactly one
// value does.
func uniqueMode(xs []int) (int, bool) {
	counts := make(map[int]int)
	for _, x := range xs {
		counts[x]++
	}
	best, bestCount, tie := 0, 0, false
	for v, c := range counts {
		switch {
		case c > bestCount:
			best, bestCount, tie = v, c, false
		case c == bestCount:
			tie = true
		}
	}
	return best, bestCount > 1 && !tie
}

func statsProblem(display string, data []int, v float64, steps ...string) problem.Problem {
	p := problem.Numeric(display, v)
	p.Metadata.Data = make([]float64, len(data))
	for i, x := range data {
		p.Metadata.Data[i] = num(x)
	}
	return p.WithSteps(steps...)
}

func meanProblem(data []int) problem.Problem {
	s := sum(data)
	return statsProblem(
		fmt.Sprintf("Find the mean of: %s", listInts(data)), data, num(s)/num(len(data)),
		fmt.Sprintf("Add the values: %d.", s),
		fmt.Sprintf("Divide by the count: %d ÷ %d = %s.", s, len(data), decimal(num(s)/num(len(data)))),
	)
}

func medianProblem(data []int) problem.Problem {
	sorted := sortedCopy(data)
	m := medianOf(sorted)
	why := "Take the middle value."
	if len(sorted)%2 == 0 {
		why = "Average the two middle values."
	}
	return statsProblem(
		fmt.Sprintf("Find the median of: %s", listInts(data)), data, m,
		fmt.Sprintf("Order the values: %s.", listInts(sorted)),
		why,
		fmt.Sprintf("The median is %s.", decimal(m)),
	)
}

func modeProblem(data []int) problem.Problem {
	m, _ := uniqueMode(data)
	return statsProblem(
		fmt.Sprintf("Find the mode of: %s", listInts(data)), data, num(m),
		fmt.Sprintf("Order the values: %s.", listInts(sortedCopy(data))),
		fmt.Sprintf("%d appears most often.", m),
	)
}

func rangeProblem(data []int) problem.Problem {
	sorted := sortedCopy(data)
	lo, hi := sorted[0], sorted[len(sorted)-1]
	return statsProblem(
		fmt.Sprintf("Find the range of: %s", listInts(data)), data, num(hi-lo),
		fmt.Sprintf("The largest value is %d and the smallest is %d.", hi, lo),
		fmt.Sprintf("%d - %d = %d", hi, lo, hi-lo),
	)
}

func iqrProblem(data []int) problem.Problem {
	sorted := sortedCopy(data)
	q1, q3 := quartiles(sorted)
	return statsProblem(
		fmt.Sprintf("Find the interquartile range of: %s", listInts(sorted)), data, q3-q1,
		fmt.Sprintf("Q1 is the median of the lower half: %s.", decimal(q1)),
		fmt.Sprintf("Q3 is the median of the upper half: %s.", decimal(q3)),
		fmt.Sprintf("IQR = %s - %s = %s", decimal(q3), decimal(q1), decimal(q3-q1)),
	)
}

// --- fractions ---

type frac struct{ n, d int }

func (f frac) simplify() frac {
	n, d := numtheory.Simplify(f.n, f.d)
	return frac{n, d}
}

func (f frac) String() string {
	if f.d == 1 {
		return strconv.Itoa(f.n)
	}
	return fmt.Sprintf("%d/%d", f.n, f.d)
}

// mixed renders a positive improper fraction as "w n/d".
func (f frac) mixed() string {
	w, r := f.n/f.d, f.n%f.d
	if r == 0 {
		return strconv.Itoa(w)
	}
	if w == 0 {
		return f.String()
	}
	return fmt.Sprintf("%d %d/%d", w, r, f.d)
}

func (f frac) value() float64 { return num(f.n) / num(f.d) }

// terminates reports whether f has a finite decimal expansion.
func (f frac) terminates() bool {
	d := f.simplify().d
	for d%2 == 0 {
		d /= 2
	}
	for d%5 == 0 {
		d /= 5
	}
	return d == 1
}

// fracAnswer builds a problem whose answer is f in simplest form. Mixed
// and terminating decimal forms are accepted too. A whole-number result is
// numeric so "72.0" matches "72".
func fracAnswer(display string, f frac) problem.Problem {
	s := f.simplify()
	if s.d == 1 {
		return problem.Numeric(display, num(s.n))
	}
	var accepted []string
	if s.n > s.d {
		accepted = append(accepted, s.mixed())
	}
	if s.terminates() {
		accepted = append(accepted, decimal(s.value()))
	}
	return problem.Categorical(display, s.String(), accepted...)
}

// fractionOp builds "a op b = ?" on fractions. Subtraction callers keep
// a > b; division callers keep b non-zero.
func fractionOp(op string, a, b frac) problem.Problem {
	var r frac
	var steps []string
	switch op {
	case opAdd, opSub:
		sign := 1
		verb := "Add"
		if op == opSub {
			sign, verb = -1, "Subtract"
		}
		if a.d == b.d {
			r = frac{a.n + sign*b.n, a.d}
			steps = append(steps, fmt.Sprintf("The denominators match, so %s the numerators: %d %s %d = %d.", strings.ToLower(verb), a.n, op, b.n, r.n))
		} else {
			l := numtheory.LCM(a.d, b.d)
			an, bn := a.n*(l/a.d), b.n*(l/b.d)
			r = frac{an + sign*bn, l}
			steps = append(steps,
				fmt.Sprintf("Find a common denominator: LCM(%d, %d) = %d.", a.d, b.d, l),
				fmt.Sprintf("Rewrite: %s = %d/%d and %s = %d/%d.", a, an, l, b, bn, l),
				fmt.Sprintf("%s the numerators: %d %s %d = %d.", verb, an, op, bn, r.n),
			)
		}
	case opMul:
		r = frac{a.n * b.n, a.d * b.d}
		steps = append(steps, fmt.Sprintf("Multiply the numerators and the denominators: (%d × %d)/(%d × %d) = %d/%d.", a.n, b.n, a.d, b.d, r.n, r.d))
	case opDiv:
		recip := frac{b.d, b.n}
		r = frac{a.n * recip.n, a.d * recip.d}
		steps = append(steps,
			fmt.Sprintf("Dividing by %s is the same as multiplying by %s.", b, recip),
			fmt.Sprintf("%s × %s = %d/%d", a, recip, r.n, r.d),
		)
	}
	if s := r.simplify(); s != r {
		steps = append(steps, fmt.Sprintf("Simplify %d/%d to %s.", r.n, r.d, s))
	}
	return fracAnswer(fmt.Sprintf("%s %s %s = ?", a, op, b), r).
		WithOperands(op, a.value(), b.value()).
		WithSteps(steps...)
}

// --- comparison ---

func compareSymbol(a, b float64) string {
	switch {
	case a < b:
		return "<"
	case a > b:
		return ">"
	default:
		return "="
	}
}

var symbolWords = map[string][]string{
	"<": {"less than", "less"},
	">": {"greater than", "greater"},
	"=": {"equal", "equals", "equal to"},
}

// comparison asks which of <, > or = goes between left and right.
func comparison(left, right string, a, b float64) problem.Problem {
	sym := compareSymbol(a, b)
	return problem.Categorical(
		fmt.Sprintf("Which symbol makes this true: %s ___ %s? (<, >, or =)", left, right),
		sym, symbolWords[sym]...,
	).WithOperands("compare", a, b).WithSteps(
		fmt.Sprintf("Compare %s and %s.", left, right),
		fmt.Sprintf("%s %s %s", left, sym, right),
	)
}

// --- percents ---

// percentOf asks for pct% of n.
func percentOf(pct, n int) problem.Problem {
	v := num(pct*n) / 100
	return problem.Numeric(fmt.Sprintf("What is %d%% of %d?", pct, n), v).
		WithOperands(opMul, num(pct), num(n)).
		WithSteps(
			fmt.Sprintf("%d%% = %d/100.", pct, pct),
			fmt.Sprintf("%d × %d ÷ 100 = %s", pct, n, decimal(v)),
		)
}

// --- equations ---

// linearEquation solves a·x + b = c for x.
func linearEquation(a, b, x int) problem.Problem {
	c := a*x + b
	lhs := affine(a, b)
	var steps []string
	switch {
	case b > 0:
		steps = append(steps, fmt.Sprintf("Subtract %d from both sides: %d - %d = %d.", b, c, b, c-b))
	case b < 0:
		steps = append(steps, fmt.Sprintf("Add %d to both sides: %d + %d = %d.", -b, c, -b, c-b))
	}
	if a != 1 {
		steps = append(steps, fmt.Sprintf("Divide both sides by %d: %d ÷ %d = %d.", a, c-b, a, x))
	}
	steps = append(steps, fmt.Sprintf("x = %d", x))
	return problem.Numeric(fmt.Sprintf("Solve for x: %s = %d", lhs, c), num(x), fmt.Sprintf("x = %d", x)).
		WithOperands("=", num(a), num(b), num(c)).
		WithSteps(steps...)
}

// --- rounding ---

// roundTo rounds n to the nearest multiple of unit, halves up.
func roundTo(n, unit int) int {
	return (n + unit/2) / unit * unit
}

func roundingProblem(n, unit int, place string) problem.Problem {
	r := roundTo(n, unit)
	digit := (n % unit) / (unit / 10)
	why := fmt.Sprintf("%d is less than 5, so round down.", digit)
	if digit >= 5 {
		why = fmt.Sprintf("%d is 5 or more, so round up.", digit)
	}
	return problem.Numeric(fmt.Sprintf("Round %d to the nearest %s.", n, place), num(r)).
		WithOperands("round", num(n)).
		WithSteps(
			fmt.Sprintf("Look at the digit to the right of the %s place: %d.", place, digit),
			why,
			fmt.Sprintf("%d rounds to %d.", n, r),
		)
}
