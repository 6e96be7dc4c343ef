package generator

import (
	"fmt"

	"github.com/abhisek/mathlab/internal/numtheory"
	"github.com/abhisek/mathlab/internal/problem"
)

// Grades 6 through 8.
var middleTopics = map[string]Func{
	// Grade 6
	"Greatest Common Factor": func(d *Draw) problem.Problem {
		a, b := distinctPair(d, 6, 60, [2]int{12, 18})
		return gcfProblem(a, b)
	},
	"Least Common Multiple": func(d *Draw) problem.Problem {
		a, b := distinctPair(d, 2, 15, [2]int{4, 6})
		return lcmProblem(a, b)
	},
	"Ratios": func(d *Draw) problem.Problem {
		return ratioProblem(d.Int(2, 12), d.Int(2, 12), pick(d, [][2]string{
			{"cats", "dogs"}, {"red marbles", "blue marbles"}, {"boys", "girls"}, {"apples", "oranges"},
		}))
	},
	"Unit Rates": func(d *Draw) problem.Problem {
		n, u := d.Int(2, 10), d.Int(2, 12)
		item := pick(d, storyItems)
		return problem.Numeric(
			fmt.Sprintf("%d %s cost $%d. How much does one cost in dollars?", n, item, n*u),
			num(u), fmt.Sprintf("$%d", u),
		).WithOperands(opDiv, num(n*u), num(n)).WithSteps(
			"A unit rate is the amount for one.",
			fmt.Sprintf("%d ÷ %d = %d", n*u, n, u),
		)
	},
	"Percentages": func(d *Draw) problem.Problem {
		return percentOf(pick(d, []int{5, 10, 15, 20, 25, 30, 40, 50, 60, 75}), d.Int(1, 20)*20)
	},
	"Percent to Decimal": func(d *Draw) problem.Problem {
		p := d.Int(1, 99)
		return problem.Numeric(fmt.Sprintf("Write %d%% as a decimal.", p), num(p)/100).
			WithOperands("convert", num(p)).
			WithSteps("Percent means per hundred.", fmt.Sprintf("%d ÷ 100 = %s", p, decimal(num(p)/100)))
	},
	"Decimal to Percent": func(d *Draw) problem.Problem {
		h := d.Int(1, 99)
		x := num(h) / 100
		return problem.Numeric(fmt.Sprintf("Write %s as a percent.", decimal(x)), num(h), fmt.Sprintf("%d%%", h)).
			WithOperands("convert", x).
			WithSteps("Multiply by 100 to get a percent.", fmt.Sprintf("%s × 100 = %d%%", decimal(x), h))
	},
	"Fraction to Percent": func(d *Draw) problem.Problem {
		den := pick(d, []int{2, 4, 5, 10, 20, 25})
		n := d.Int(1, den-1)
		pct := n * 100 / den
		return problem.Numeric(fmt.Sprintf("Write %d/%d as a percent.", n, den), num(pct), fmt.Sprintf("%d%%", pct)).
			WithOperands("convert", num(n), num(den)).
			WithSteps(
				fmt.Sprintf("Scale the denominator to 100: %d × %d = 100.", den, 100/den),
				fmt.Sprintf("%d × %d = %d, so %d/%d = %d/100 = %d%%.", n, 100/den, pct, n, den, pct, pct),
			)
	},
	"Absolute Value": func(d *Draw) problem.Problem {
		n := d.Int(-50, 50)
		v := max(n, -n)
		return problem.Numeric(fmt.Sprintf("|%d| = ?", n), num(v)).
			WithOperands("abs", num(n)).
			WithSteps("Absolute value is the distance from zero.", fmt.Sprintf("%d is %d units from zero.", n, v))
	},
	"Adding Integers": func(d *Draw) problem.Problem {
		return pairProblem(opAdd, d.Int(-20, 20), d.Int(-20, 20))
	},
	"Subtracting Integers": func(d *Draw) problem.Problem {
		return pairProblem(opSub, d.Int(-20, 20), d.Int(-20, 20))
	},
	"Exponents": func(d *Draw) problem.Problem {
		b, e := d.Int(2, 9), d.Int(2, 4)
		v := pow(b, e)
		return problem.Numeric(fmt.Sprintf("%d^%d = ?", b, e), num(v)).
			WithOperands("^", num(b), num(e)).
			WithSteps(fmt.Sprintf("Multiply %d by itself %d times.", b, e), fmt.Sprintf("%d^%d = %d", b, e, v))
	},
	"Evaluating Expressions": func(d *Draw) problem.Problem {
		a, b, x := d.Int(2, 9), d.Int(1, 20), d.Int(1, 10)
		v := a*x + b
		return problem.Numeric(fmt.Sprintf("Evaluate %dx + %d when x = %d.", a, b, x), num(v)).
			WithOperands("evaluate", num(a), num(b), num(x)).
			WithSteps(
				fmt.Sprintf("Replace x with %d: %d × %d + %d.", x, a, x, b),
				fmt.Sprintf("%d + %d = %d", a*x, b, v),
			)
	},
	"One-Step Equations": oneStepEquation,
	"Area of Triangles": func(d *Draw) problem.Problem {
		b, h := d.Int(2, 20), d.Int(2, 20)
		v := num(b*h) / 2
		return geometry(
			fmt.Sprintf("A triangle has a base of %d cm and a height of %d cm. What is its area in square centimeters?", b, h),
			"A = ½ × b × h", v, nearestTenth,
			fmt.Sprintf("½ × %d × %d = %s", b, h, decimal(v)),
		).WithOperands(opMul, num(b), num(h))
	},
	"Area of Parallelograms": func(d *Draw) problem.Problem {
		b, h := d.Int(2, 20), d.Int(2, 20)
		return geometry(
			fmt.Sprintf("A parallelogram has a base of %d m and a height of %d m. What is its area in square meters?", b, h),
			"A = b × h", num(b*h), wholeNumber,
			fmt.Sprintf("%d × %d = %d", b, h, b*h),
		).WithOperands(opMul, num(b), num(h))
	},
	"Area of Trapezoids": func(d *Draw) problem.Problem {
		a, b, h := d.Int(2, 15), d.Int(2, 15), d.Int(2, 12)
		v := num((a+b)*h) / 2
		return geometry(
			fmt.Sprintf("A trapezoid has parallel sides of %d cm and %d cm and a height of %d cm. What is its area in square centimeters?", a, b, h),
			"A = ½ × (a + b) × h", v, nearestTenth,
			fmt.Sprintf("%d + %d = %d", a, b, a+b),
			fmt.Sprintf("½ × %d × %d = %s", a+b, h, decimal(v)),
		).WithOperands(opAdd, num(a), num(b), num(h))
	},
	"Surface Area of Rectangular Prisms": func(d *Draw) problem.Problem {
		l, w, h := d.Int(2, 12), d.Int(2, 12), d.Int(2, 12)
		v := 2 * (l*w + l*h + w*h)
		return geometry(
			fmt.Sprintf("A box is %d cm long, %d cm wide and %d cm tall. What is its surface area in square centimeters?", l, w, h),
			"SA = 2(lw + lh + wh)", num(v), wholeNumber,
			fmt.Sprintf("lw = %d, lh = %d, wh = %d", l*w, l*h, w*h),
			fmt.Sprintf("2 × (%d + %d + %d) = %d", l*w, l*h, w*h, v),
		).WithOperands(opMul, num(l), num(w), num(h))
	},
	"Mean": func(d *Draw) problem.Problem {
		return meanProblem(meanSample(d))
	},
	"Median": func(d *Draw) problem.Problem {
		return medianProblem(sample(d, d.Int(5, 8), 1, 30))
	},
	"Mode": func(d *Draw) problem.Problem {
		return modeProblem(modeSample(d))
	},
	"Range": func(d *Draw) problem.Problem {
		return rangeProblem(sample(d, d.Int(5, 8), 1, 50))
	},
	"Dividing Fractions": func(d *Draw) problem.Problem {
		return fractionOp(opDiv, properFrac(d, 2, 9), properFrac(d, 2, 9))
	},

	// Grade 7
	"Multiplying Integers": func(d *Draw) problem.Problem {
		return pairProblem(opMul, d.Sign()*d.Int(1, 12), d.Sign()*d.Int(1, 12))
	},
	"Dividing Integers": func(d *Draw) problem.Problem {
		b := d.Sign() * d.Int(1, 12)
		return pairProblem(opDiv, d.Sign()*d.Int(1, 12)*b, b)
	},
	"Two-Step Equations": func(d *Draw) problem.Problem {
		b := until(d, func() int { return d.Int(-20, 20) }, func(b int) bool { return b != 0 }, 5)
		return linearEquation(d.Int(2, 9), b, d.Int(-10, 10))
	},
	"Proportions": func(d *Draw) problem.Problem {
		base := properFrac(d, 2, 9)
		k := d.Int(2, 6)
		c := base.n * k
		x := base.d * k
		return problem.Numeric(fmt.Sprintf("Solve for x: %s = %d/x", base, c), num(x), fmt.Sprintf("x = %d", x)).
			WithOperands("=", num(base.n), num(base.d), num(c)).
			WithSteps(
				fmt.Sprintf("Cross multiply: %d × x = %d × %d = %d.", base.n, base.d, c, base.d*c),
				fmt.Sprintf("x = %d ÷ %d = %d", base.d*c, base.n, x),
			)
	},
	"Percent Increase": func(d *Draw) problem.Problem {
		base, pct := percentPair(d)
		return percentChange(base, base*(100+pct)/100)
	},
	"Percent Decrease": func(d *Draw) problem.Problem {
		base, pct := percentPair(d)
		return percentChange(base, base*(100-pct)/100)
	},
	"Discounts": func(d *Draw) problem.Problem {
		price, pct := d.Int(2, 20)*10, pick(d, []int{10, 20, 25, 50})
		off := num(price*pct) / 100
		v := num(price) - off
		return problem.Numeric(
			fmt.Sprintf("A jacket costs $%d and is %d%% off. What is the sale price in dollars?", price, pct),
			v, "$"+decimal(v),
		).WithOperands(opMul, num(price), num(pct)).WithSteps(
			fmt.Sprintf("Discount: %d%% of $%d = $%s.", pct, price, decimal(off)),
			fmt.Sprintf("$%d - $%s = $%s", price, decimal(off), decimal(v)),
		)
	},
	"Sales Tax": func(d *Draw) problem.Problem {
		price, rate := d.Int(2, 20)*10, pick(d, []int{5, 6, 8, 10})
		tax := num(price*rate) / 100
		v := num(price) + tax
		return problem.Numeric(
			fmt.Sprintf("A game costs $%d and the sales tax is %d%%. What is the total cost in dollars?", price, rate),
			v, "$"+decimal(v),
		).WithOperands(opMul, num(price), num(rate)).WithSteps(
			fmt.Sprintf("Tax: %d%% of $%d = $%s.", rate, price, decimal(tax)),
			fmt.Sprintf("$%d + $%s = $%s", price, decimal(tax), decimal(v)),
		)
	},
	"Simple Interest": func(d *Draw) problem.Problem {
		p, r, t := d.Int(1, 10)*100, d.Int(1, 10), d.Int(1, 5)
		i := p * r * t / 100
		return problem.Numeric(
			fmt.Sprintf("You deposit $%d at %d%% simple interest per year. How much interest do you earn in %d year(s)?", p, r, t),
			num(i), fmt.Sprintf("$%d", i),
		).WithOperands(opMul, num(p), num(r), num(t)).WithSteps(
			"Use I = P × r × t.",
			fmt.Sprintf("%d × %d/100 × %d = %d", p, r, t, i),
		)
	},
	"Circumference": func(d *Draw) problem.Problem {
		r := d.Int(1, 20)
		return geometry(
			fmt.Sprintf("A circle has a radius of %d cm. What is its circumference in centimeters? Use 3.14 for π.", r),
			"C = 2 × π × r", 2*piApprox*num(r), nearestHundredth,
			fmt.Sprintf("2 × 3.14 × %d", r),
		).WithOperands(opMul, num(r))
	},
	"Area of Circles": func(d *Draw) problem.Problem {
		r := d.Int(1, 20)
		return geometry(
			fmt.Sprintf("A circle has a radius of %d cm. What is its area in square centimeters? Use 3.14 for π.", r),
			"A = π × r²", piApprox*num(r*r), nearestHundredth,
			fmt.Sprintf("%d² = %d", r, r*r),
			fmt.Sprintf("3.14 × %d", r*r),
		).WithOperands(opMul, num(r))
	},
	"Complementary Angles": func(d *Draw) problem.Problem {
		return missingAngle(d.Int(1, 89), 90, "complementary")
	},
	"Supplementary Angles": func(d *Draw) problem.Problem {
		return missingAngle(d.Int(1, 179), 180, "supplementary")
	},
	"Probability": func(d *Draw) problem.Problem {
		red, blue := d.Int(1, 9), d.Int(1, 9)
		total := red + blue
		return fracAnswer(
			fmt.Sprintf("A bag has %d red and %d blue marbles. You pick one without looking. What is the probability it is red? (fraction)", red, blue),
			frac{red, total},
		).WithOperands("probability", num(red), num(total)).WithSteps(
			fmt.Sprintf("There are %d + %d = %d marbles.", red, blue, total),
			fmt.Sprintf("%d of them are red, so P(red) = %d/%d.", red, red, total),
		)
	},
	"Scale Drawings": func(d *Draw) problem.Problem {
		scale, cm := pick(d, []int{2, 5, 10, 20, 50}), d.Int(2, 15)
		v := scale * cm
		return problem.Numeric(
			fmt.Sprintf("On a map, 1 cm stands for %d km. Two towns are %d cm apart on the map. How many kilometers apart are they?", scale, cm),
			num(v), fmt.Sprintf("%d km", v),
		).WithOperands(opMul, num(scale), num(cm)).WithSteps(
			fmt.Sprintf("Each centimeter is %d km.", scale),
			fmt.Sprintf("%d × %d = %d km", cm, scale, v),
		)
	},
	"Interquartile Range": func(d *Draw) problem.Problem {
		return iqrProblem(sample(d, pick(d, []int{7, 8, 9, 11}), 1, 50))
	},
	"Combining Like Terms": func(d *Draw) problem.Problem {
		return likeTerms(d.Int(2, 9), d.Int(1, 9), d.Int(0, 20), d.Bool())
	},

	// Grade 8
	"Pythagorean Theorem": func(d *Draw) problem.Problem {
		t := scaledTriple(d)
		return geometry(
			fmt.Sprintf("A right triangle has legs of %d and %d. How long is the hypotenuse?", t[0], t[1]),
			"a² + b² = c²", num(t[2]), wholeNumber,
			fmt.Sprintf("%d² + %d² = %d + %d = %d", t[0], t[1], t[0]*t[0], t[1]*t[1], t[2]*t[2]),
			fmt.Sprintf("√%d = %d", t[2]*t[2], t[2]),
		).WithOperands("pythagorean", num(t[0]), num(t[1]))
	},
	"Missing Leg": func(d *Draw) problem.Problem {
		t := scaledTriple(d)
		return geometry(
			fmt.Sprintf("A right triangle has a hypotenuse of %d and one leg of %d. How long is the other leg?", t[2], t[0]),
			"a² + b² = c²", num(t[1]), wholeNumber,
			fmt.Sprintf("%d² - %d² = %d - %d = %d", t[2], t[0], t[2]*t[2], t[0]*t[0], t[1]*t[1]),
			fmt.Sprintf("√%d = %d", t[1]*t[1], t[1]),
		).WithOperands("pythagorean", num(t[2]), num(t[0]))
	},
	"Slope": func(d *Draw) problem.Problem {
		m := until(d, func() int { return d.Int(-5, 5) }, func(m int) bool { return m != 0 }, 2)
		return slopeProblem(d.Int(-5, 5), d.Int(-5, 5), d.Int(1, 5), m)
	},
	"Distance Formula": func(d *Draw) problem.Problem {
		t := scaledTriple(d)
		x1, y1 := d.Int(-5, 5), d.Int(-5, 5)
		dx, dy := d.Sign()*t[0], d.Sign()*t[1]
		x2, y2 := x1+dx, y1+dy
		return geometry(
			fmt.Sprintf("What is the distance between (%d, %d) and (%d, %d)?", x1, y1, x2, y2),
			"d = √((x2 - x1)² + (y2 - y1)²)", num(t[2]), wholeNumber,
			fmt.Sprintf("Δx = %d and Δy = %d", dx, dy),
			fmt.Sprintf("√(%d + %d) = √%d = %d", dx*dx, dy*dy, t[2]*t[2], t[2]),
		).WithOperands("distance", num(x1), num(y1), num(x2), num(y2))
	},
	"Square Roots": func(d *Draw) problem.Problem {
		n := d.Int(1, 20)
		return problem.Numeric(fmt.Sprintf("√%d = ?", n*n), num(n)).
			WithOperands("root", num(n*n)).
			WithSteps(fmt.Sprintf("Which number times itself is %d?", n*n), fmt.Sprintf("%d × %d = %d", n, n, n*n))
	},
	"Cube Roots": func(d *Draw) problem.Problem {
		n := d.Int(1, 10)
		c := n * n * n
		return problem.Numeric(fmt.Sprintf("∛%d = ?", c), num(n)).
			WithOperands("root", num(c)).
			WithSteps(fmt.Sprintf("Which number used three times as a factor makes %d?", c), fmt.Sprintf("%d × %d × %d = %d", n, n, n, c))
	},
	"Scientific Notation": func(d *Draw) problem.Problem {
		m, k := d.Int(11, 99), d.Int(2, 5)
		v := m * pow(10, k-1)
		return problem.Numeric(fmt.Sprintf("Write %s × 10^%d in standard form.", decimal(num(m)/10), k), num(v)).
			WithOperands("scientific", num(m)/10, num(k)).
			WithSteps(
				fmt.Sprintf("Move the decimal point %d places to the right.", k),
				fmt.Sprintf("%s × 10^%d = %d", decimal(num(m)/10), k, v),
			)
	},
	"Exponent Rules": exponentRule,
	"Volume of Cylinders": func(d *Draw) problem.Problem {
		r, h := d.Int(1, 10), d.Int(1, 20)
		return geometry(
			fmt.Sprintf("A cylinder has a radius of %d cm and a height of %d cm. What is its volume in cubic centimeters? Use 3.14 for π.", r, h),
			"V = π × r² × h", piApprox*num(r*r*h), nearestHundredth,
			fmt.Sprintf("3.14 × %d² × %d", r, h),
		).WithOperands(opMul, num(r), num(h))
	},
	"Volume of Cones": func(d *Draw) problem.Problem {
		r, h := d.Int(1, 10), d.Int(1, 20)
		return geometry(
			fmt.Sprintf("A cone has a radius of %d cm and a height of %d cm. What is its volume in cubic centimeters? Use 3.14 for π.", r, h),
			"V = ⅓ × π × r² × h", piApprox*num(r*r*h)/3, nearestTenth,
			fmt.Sprintf("⅓ × 3.14 × %d² × %d", r, h),
		).WithOperands(opMul, num(r), num(h))
	},
	"Volume of Spheres": func(d *Draw) problem.Problem {
		r := d.Int(1, 10)
		return geometry(
			fmt.Sprintf("A sphere has a radius of %d cm. What is its volume in cubic centimeters? Use 3.14 for π.", r),
			"V = 4/3 × π × r³", 4*piApprox*num(r*r*r)/3, nearestTenth,
			fmt.Sprintf("%d³ = %d", r, r*r*r),
			fmt.Sprintf("4/3 × 3.14 × %d", r*r*r),
		).WithOperands(opMul, num(r))
	},
	"Surface Area of Cylinders": func(d *Draw) problem.Problem {
		r, h := d.Int(1, 10), d.Int(1, 20)
		return geometry(
			fmt.Sprintf("A cylinder has a radius of %d cm and a height of %d cm. What is its surface area in square centimeters? Use 3.14 for π.", r, h),
			"SA = 2πr² + 2πrh", 2*piApprox*num(r*r)+2*piApprox*num(r*h), nearestHundredth,
			fmt.Sprintf("Two circles: 2 × 3.14 × %d² = %s", r, decimal(2*piApprox*num(r*r))),
			fmt.Sprintf("The side: 2 × 3.14 × %d × %d = %s", r, h, decimal(2*piApprox*num(r*h))),
		).WithOperands(opMul, num(r), num(h))
	},
	"Linear Functions": func(d *Draw) problem.Problem {
		m := until(d, func() int { return d.Int(-5, 5) }, func(m int) bool { return m != 0 }, 3)
		b, x := d.Int(-10, 10), d.Int(-5, 5)
		y := m*x + b
		return problem.Numeric(fmt.Sprintf("For y = %s, what is y when x = %d?", affine(m, b), x), num(y)).
			WithOperands("evaluate", num(m), num(b), num(x)).
			WithSteps(
				fmt.Sprintf("Substitute x = %d: y = %d × %s + %d.", x, m, signed(x), b),
				fmt.Sprintf("y = %d + %d = %d", m*x, b, y),
			)
	},
	"Equations with Variables on Both Sides": func(d *Draw) problem.Problem {
		a := d.Int(3, 9)
		return bothSides(a, d.Int(1, a-1), d.Int(-20, 20), d.Int(-10, 10))
	},
	"Systems of Equations": func(d *Draw) problem.Problem {
		return systemProblem(d.Int(1, 10), d.Int(1, 10), d.Bool())
	},
	"Triangle Angle Sum": func(d *Draw) problem.Problem {
		a := d.Int(20, 100)
		b := d.Int(20, 160-a)
		c := 180 - a - b
		return problem.Numeric(fmt.Sprintf("Two angles of a triangle measure %d° and %d°. What is the third angle?", a, b), num(c), fmt.Sprintf("%d°", c)).
			WithOperands(opSub, num(a), num(b)).
			WithSteps("The angles of a triangle add up to 180°.", fmt.Sprintf("180 - %d - %d = %d", a, b, c))
	},
	"Rational or Irrational": rationalOrIrrational,
}

// distinctPair draws a, b in [lo, hi] that differ and where neither
// divides the other.
func distinctPair(d *Draw, lo, hi int, fallback [2]int) (int, int) {
	p := until(d, func() [2]int { return [2]int{d.Int(lo, hi), d.Int(lo, hi)} },
		func(p [2]int) bool { return p[0] != p[1] && p[0]%p[1] != 0 && p[1]%p[0] != 0 }, fallback)
	return p[0], p[1]
}

func gcfProblem(a, b int) problem.Problem {
	g := numtheory.GCD(a, b)
	return problem.Numeric(fmt.Sprintf("What is the greatest common factor of %d and %d?", a, b), num(g)).
		WithOperands("gcf", num(a), num(b)).
		WithSteps(
			fmt.Sprintf("Factors of %d: %s.", a, listInts(numtheory.Factors(a))),
			fmt.Sprintf("Factors of %d: %s.", b, listInts(numtheory.Factors(b))),
			fmt.Sprintf("The largest factor they share is %d.", g),
		)
}

func lcmProblem(a, b int) problem.Problem {
	l := numtheory.LCM(a, b)
	return problem.Numeric(fmt.Sprintf("What is the least common multiple of %d and %d?", a, b), num(l)).
		WithOperands("lcm", num(a), num(b)).
		WithSteps(
			fmt.Sprintf("GCF(%d, %d) = %d.", a, b, numtheory.GCD(a, b)),
			fmt.Sprintf("LCM = %d × %d ÷ %d = %d.", a, b, numtheory.GCD(a, b), l),
		)
}

func ratioProblem(a, b int, names [2]string) problem.Problem {
	x, y := numtheory.Simplify(a, b)
	ans := fmt.Sprintf("%d:%d", x, y)
	return problem.Categorical(
		fmt.Sprintf("There are %d %s and %d %s. What is the ratio of %s to %s in simplest form? (a:b)", a, names[0], b, names[1], names[0], names[1]),
		ans, fmt.Sprintf("%d to %d", x, y),
	).WithOperands("ratio", num(a), num(b)).WithSteps(
		fmt.Sprintf("Write the ratio: %d:%d.", a, b),
		fmt.Sprintf("Divide both by their GCF %d: %s.", numtheory.GCD(a, b), ans),
	)
}

func oneStepEquation(d *Draw) problem.Problem {
	a, x := d.Int(2, 12), d.Int(1, 20)
	var display string
	var steps []string
	switch d.Int(0, 3) {
	case 0:
		display = fmt.Sprintf("x + %d = %d", a, x+a)
		steps = []string{fmt.Sprintf("Subtract %d from both sides.", a), fmt.Sprintf("x = %d - %d = %d", x+a, a, x)}
	case 1:
		display = fmt.Sprintf("x - %d = %d", a, x-a)
		steps = []string{fmt.Sprintf("Add %d to both sides.", a), fmt.Sprintf("x = %d + %d = %d", x-a, a, x)}
	case 2:
		display = fmt.Sprintf("%dx = %d", a, a*x)
		steps = []string{fmt.Sprintf("Divide both sides by %d.", a), fmt.Sprintf("x = %d ÷ %d = %d", a*x, a, x)}
	default:
		display = fmt.Sprintf("x ÷ %d = %d", a, x)
		steps = []string{fmt.Sprintf("Multiply both sides by %d.", a), fmt.Sprintf("x = %d × %d = %d", x, a, a*x)}
		x *= a
	}
	return problem.Numeric("Solve for x: "+display, num(x), fmt.Sprintf("x = %d", x)).
		WithOperands("=", num(a)).
		WithSteps(steps...)
}

// meanSample draws 5 to 7 values whose sum divides evenly by the count.
func meanSample(d *Draw) []int {
	n := d.Int(5, 7)
	data := sample(d, n, 1, 20)
	last := &data[n-1]
	*last -= sum(data) % n
	if *last < 1 {
		*last += n
	}
	return data
}

// modeSample builds data with exactly one most frequent value.
func modeSample(d *Draw) []int {
	mode := d.Int(1, 20)
	others := distinct(d, d.Int(3, 5), 1, 20, mode)
	data := append([]int{mode, mode, mode}, others...)
	if d.Bool() && len(others) > 0 {
		data = append(data, others[0])
	}
	shuffle(d, data)
	return data
}

func percentPair(d *Draw) (base, pct int) {
	p := until(d, func() [2]int {
		return [2]int{pick(d, []int{20, 40, 50, 60, 80, 100, 120, 200, 250}), pick(d, []int{10, 20, 25, 50})}
	}, func(p [2]int) bool { return p[0]*p[1]%100 == 0 }, [2]int{40, 25})
	return p[0], p[1]
}

func percentChange(from, to int) problem.Problem {
	change := to - from
	word := "increase"
	if change < 0 {
		word, change = "decrease", -change
	}
	pct := change * 100 / from
	return problem.Numeric(
		fmt.Sprintf("A price changes from $%d to $%d. What is the percent %s?", from, to, word),
		num(pct), fmt.Sprintf("%d%%", pct),
	).WithOperands("percent", num(from), num(to)).WithSteps(
		fmt.Sprintf("The change is $%d.", change),
		fmt.Sprintf("%d ÷ %d = %s", change, from, decimal(num(change)/num(from))),
		fmt.Sprintf("That is a %d%% %s.", pct, word),
	)
}

func missingAngle(a, total int, kind string) problem.Problem {
	v := total - a
	return problem.Numeric(
		fmt.Sprintf("Two angles are %s. One measures %d°. What does the other measure?", kind, a),
		num(v), fmt.Sprintf("%d°", v),
	).WithOperands(opSub, num(total), num(a)).WithSteps(
		fmt.Sprintf("%s angles add up to %d°.", capitalize(kind), total),
		fmt.Sprintf("%d - %d = %d", total, a, v),
	)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

func likeTerms(a, b, c int, subtract bool) problem.Problem {
	op, coef := "+", a+b
	if subtract {
		if b >= a {
			b = a - 1
		}
		op, coef = "-", a-b
	}
	term := fmt.Sprintf("%dx", coef)
	if coef == 1 {
		term = "x"
	}
	display := fmt.Sprintf("Simplify: %dx %s %dx", a, op, b)
	ans := term
	if c > 0 {
		display += fmt.Sprintf(" + %d", c)
		ans += fmt.Sprintf(" + %d", c)
	}
	var accepted []string
	if coef == 1 {
		accepted = append(accepted, "1"+ans)
	}
	return problem.Categorical(display, ans, accepted...).
		WithOperands("combine", num(a), num(b), num(c)).
		WithSteps(
			"Like terms have the same variable part.",
			fmt.Sprintf("%d %s %d = %d, so the x terms make %s.", a, op, b, coef, term),
			ans,
		)
}

var pythagoreanTriples = [][3]int{{3, 4, 5}, {5, 12, 13}, {8, 15, 17}, {7, 24, 25}, {20, 21, 29}}

func scaledTriple(d *Draw) [3]int {
	t := pick(d, pythagoreanTriples)
	k := d.Int(1, 3)
	t = [3]int{t[0] * k, t[1] * k, t[2] * k}
	if d.Bool() {
		t[0], t[1] = t[1], t[0]
	}
	return t
}

func slopeProblem(x1, y1, dx, m int) problem.Problem {
	x2, y2 := x1+dx, y1+m*dx
	return problem.Numeric(
		fmt.Sprintf("What is the slope of the line through (%d, %d) and (%d, %d)?", x1, y1, x2, y2), num(m),
	).WithOperands("slope", num(x1), num(y1), num(x2), num(y2)).WithSteps(
		"Slope is rise over run: (y2 - y1) ÷ (x2 - x1).",
		fmt.Sprintf("(%d - %s) ÷ (%d - %s) = %d ÷ %d = %d", y2, signed(y1), x2, signed(x1), m*dx, dx, m),
	)
}

func exponentRule(d *Draw) problem.Problem {
	b, m, n := d.Int(2, 9), d.Int(2, 9), d.Int(2, 9)
	switch d.Int(0, 2) {
	case 0:
		return problem.Numeric(fmt.Sprintf("%d^%d × %d^%d = %d^?", b, m, b, n, b), num(m+n)).
			WithOperands("^", num(b), num(m), num(n)).
			WithSteps("Same base, multiplying: add the exponents.", fmt.Sprintf("%d + %d = %d", m, n, m+n))
	case 1:
		if m <= n {
			m, n = n+1, m
		}
		return problem.Numeric(fmt.Sprintf("%d^%d ÷ %d^%d = %d^?", b, m, b, n, b), num(m-n)).
			WithOperands("^", num(b), num(m), num(n)).
			WithSteps("Same base, dividing: subtract the exponents.", fmt.Sprintf("%d - %d = %d", m, n, m-n))
	default:
		return problem.Numeric(fmt.Sprintf("(%d^%d)^%d = %d^?", b, m, n, b), num(m*n)).
			WithOperands("^", num(b), num(m), num(n)).
			WithSteps("A power of a power: multiply the exponents.", fmt.Sprintf("%d × %d = %d", m, n, m*n))
	}
}

// bothSides solves a·x + b = c·x + e for x, with a > c.
func bothSides(a, c, b, x int) problem.Problem {
	e := a*x + b - c*x
	return problem.Numeric(
		fmt.Sprintf("Solve for x: %dx + %s = %dx + %s", a, signed(b), c, signed(e)), num(x), fmt.Sprintf("x = %d", x),
	).WithOperands("=", num(a), num(b), num(c), num(e)).WithSteps(
		fmt.Sprintf("Subtract %dx from both sides: %dx + %s = %d.", c, a-c, signed(b), e),
		fmt.Sprintf("Subtract %s from both sides: %dx = %d.", signed(b), a-c, e-b),
		fmt.Sprintf("Divide by %d: x = %d.", a-c, x),
	)
}

func systemProblem(x, y int, askY bool) problem.Problem {
	s, diff := x+y, x-y
	question, v := "x", x
	if askY {
		question, v = "y", y
	}
	return problem.Numeric(
		fmt.Sprintf("x + y = %d and x - y = %d. What is %s?", s, diff, question), num(v), fmt.Sprintf("%s = %d", question, v),
	).WithOperands("system", num(s), num(diff)).WithSteps(
		fmt.Sprintf("Add the equations: 2x = %d + %s = %d, so x = %d.", s, signed(diff), 2*x, x),
		fmt.Sprintf("Substitute: %d + y = %d, so y = %d.", x, s, y),
	)
}

func rationalOrIrrational(d *Draw) problem.Problem {
	var display, ans, why string
	switch d.Int(0, 4) {
	case 0:
		n := d.Int(2, 12)
		display, ans, why = fmt.Sprintf("√%d", n*n), "rational", fmt.Sprintf("√%d = %d, a whole number.", n*n, n)
	case 1:
		n := until(d, func() int { return d.Int(2, 99) }, func(n int) bool { return !isSquare(n) }, 2)
		display, ans, why = fmt.Sprintf("√%d", n), "irrational", fmt.Sprintf("%d is not a perfect square, so its root never ends or repeats.", n)
	case 2:
		display, ans, why = "π", "irrational", "π never ends or repeats."
	case 3:
		f := properFrac(d, 2, 9)
		display, ans, why = f.String(), "rational", "Any fraction of integers is rational."
	default:
		x := num(d.Int(1, 999)) / 100
		display, ans, why = decimal(x), "rational", "A decimal that ends can be written as a fraction."
	}
	return problem.Categorical(fmt.Sprintf("Is %s rational or irrational?", display), ans).WithSteps(why, "So it is "+ans+".")
}

// affine renders m·x + b without "+ -" or "1x".
func affine(m, b int) string {
	var out string
	switch m {
	case 1:
		out = "x"
	case -1:
		out = "-x"
	default:
		out = fmt.Sprintf("%dx", m)
	}
	switch {
	case b > 0:
		out += fmt.Sprintf(" + %d", b)
	case b < 0:
		out += fmt.Sprintf(" - %d", -b)
	}
	return out
}

func isSquare(n int) bool {
	for r := 0; r*r <= n; r++ {
		if r*r == n {
			return true
		}
	}
	return false
}
