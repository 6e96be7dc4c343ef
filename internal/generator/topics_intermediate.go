package generator

import (
	"fmt"

	"github.com/abhisek/mathlab/internal/numtheory"
	"github.com/abhisek/mathlab/internal/problem"
)

// Grades 3 through 5.
var intermediateTopics = map[string]Func{
	// Grade 3
	"Multiplication": func(d *Draw) problem.Problem {
		return pairProblem(opMul, d.Int(1, 10), d.Int(1, 10))
	},
	"Division": func(d *Draw) problem.Problem {
		b := d.Int(2, 10)
		return pairProblem(opDiv, d.Int(1, 10)*b, b)
	},
	"Division with Remainders": func(d *Draw) problem.Problem {
		b := d.Int(2, 9)
		return remainderProblem(d.Int(1, 9)*b+d.Int(1, b-1), b)
	},
	"Missing Factor": func(d *Draw) problem.Problem {
		return missingFactor(d.Int(2, 10), d.Int(2, 10))
	},
	"Multiplying by Multiples of 10": func(d *Draw) problem.Problem {
		return pairProblem(opMul, d.Int(2, 9), d.Int(2, 9)*10)
	},
	"Rounding to Nearest Hundred": func(d *Draw) problem.Problem {
		return roundingProblem(d.Int(101, 9999), 100, "hundred")
	},
	"Three-Digit Addition": func(d *Draw) problem.Problem {
		return pairProblem(opAdd, d.Int(100, 999), d.Int(100, 999))
	},
	"Three-Digit Subtraction": func(d *Draw) problem.Problem {
		a := d.Int(200, 999)
		return pairProblem(opSub, a, d.Int(100, a))
	},
	"Area of Rectangles": func(d *Draw) problem.Problem {
		return rectangleArea(d.Int(2, 12), d.Int(2, 12))
	},
	"Perimeter of Rectangles": func(d *Draw) problem.Problem {
		l, w := d.Int(2, 15), d.Int(2, 15)
		return geometry(
			fmt.Sprintf("A rectangle is %d cm long and %d cm wide. What is its perimeter in centimeters?", l, w),
			"P = 2 × (l + w)", num(2*(l+w)), wholeNumber,
			fmt.Sprintf("2 × (%d + %d) = 2 × %d = %d", l, w, l+w, 2*(l+w)),
		).WithOperands(opAdd, num(l), num(w))
	},
	"Perimeter of Triangles": func(d *Draw) problem.Problem {
		a, b := d.Int(3, 15), d.Int(3, 15)
		c := d.Int(max(a, b)-min(a, b)+1, a+b-1)
		return geometry(
			fmt.Sprintf("A triangle has sides of %d m, %d m and %d m. What is its perimeter in meters?", a, b, c),
			"P = a + b + c", num(a+b+c), wholeNumber,
			fmt.Sprintf("%d + %d + %d = %d", a, b, c, a+b+c),
		).WithOperands(opAdd, num(a), num(b), num(c))
	},
	"Comparing Fractions": func(d *Draw) problem.Problem {
		a, b := properFrac(d, 2, 8), properFrac(d, 2, 8)
		return comparison(a.String(), b.String(), a.value(), b.value())
	},
	"Equivalent Fractions": equivalentFractions,
	"Telling Time to the Minute": func(d *Draw) problem.Problem {
		h, m := d.Int(1, 12), d.Int(1, 59)
		ans := fmt.Sprintf("%d:%02d", h, m)
		return problem.Categorical(fmt.Sprintf("What time is %d minutes after %d o'clock? (h:mm)", m, h), ans).
			WithSteps(fmt.Sprintf("The hour stays %d.", h), fmt.Sprintf("Write the minutes with two digits: %02d.", m), ans)
	},
	"Elapsed Time": func(d *Draw) problem.Problem {
		return elapsedTime(d.Int(1, 9), d.Int(0, 11)*5, d.Int(2, 24)*5)
	},
	"Multiplication Word Problems": func(d *Draw) problem.Problem {
		n, k := d.Int(2, 9), d.Int(2, 9)
		name, item := pick(d, storyNames), pick(d, storyItems)
		return problem.Numeric(
			fmt.Sprintf("%s has %d bags with %d %s in each bag. How many %s are there in all?", name, n, k, item, item),
			num(n*k), fmt.Sprintf("%d %s", n*k, item),
		).WithOperands(opMul, num(n), num(k)).WithSteps(
			"Equal groups means multiply.",
			fmt.Sprintf("%d × %d = %d", n, k, n*k),
		)
	},
	"Division Word Problems": func(d *Draw) problem.Problem {
		b, q := d.Int(2, 9), d.Int(2, 9)
		item := pick(d, storyItems)
		return problem.Numeric(
			fmt.Sprintf("%d %s are shared equally among %d friends. How many %s does each friend get?", q*b, item, b, item),
			num(q), fmt.Sprintf("%d %s", q, item),
		).WithOperands(opDiv, num(q*b), num(b)).WithSteps(
			"Sharing equally means divide.",
			fmt.Sprintf("%d ÷ %d = %d", q*b, b, q),
		)
	},
	"Kilograms and Grams":    conversion(unitPair{kilograms, grams, 1000}, 1, 9),
	"Liters and Milliliters": conversion(unitPair{liters, milliliters, 1000}, 1, 9),

	// Grade 4
	"Multi-Digit Multiplication": func(d *Draw) problem.Problem {
		if d.Bool() {
			return pairProblem(opMul, d.Int(11, 99), d.Int(11, 99))
		}
		return pairProblem(opMul, d.Int(100, 999), d.Int(2, 9))
	},
	"Long Division": func(d *Draw) problem.Problem {
		b := d.Int(2, 9)
		return pairProblem(opDiv, d.Int(12, 999)*b, b)
	},
	"Long Division with Remainders": func(d *Draw) problem.Problem {
		b := d.Int(2, 9)
		return remainderProblem(d.Int(12, 999)*b+d.Int(1, b-1), b)
	},
	"Factors": func(d *Draw) problem.Problem {
		n := until(d, func() int { return d.Int(6, 60) },
			func(n int) bool { return !numtheory.IsPrime(n) }, 24)
		return factorCount(n)
	},
	"Prime or Composite": func(d *Draw) problem.Problem {
		return primeOrComposite(d.Int(2, 100))
	},
	"Multiples": func(d *Draw) problem.Problem {
		k, m := d.Int(2, 12), d.Int(2, 12)
		return problem.Numeric(fmt.Sprintf("What is the %s multiple of %d?", ordinal(m), k), num(k*m)).
			WithOperands(opMul, num(k), num(m)).
			WithSteps(fmt.Sprintf("The multiples of %d go %d, %d, %d, ...", k, k, 2*k, 3*k), fmt.Sprintf("The %s one is %d × %d = %d.", ordinal(m), m, k, k*m))
	},
	"Rounding to Nearest Thousand": func(d *Draw) problem.Problem {
		return roundingProblem(d.Int(1001, 99999), 1000, "thousand")
	},
	"Digit Value": digitValue,
	"Adding Fractions with Like Denominators": func(d *Draw) problem.Problem {
		den := d.Int(3, 12)
		return fractionOp(opAdd, frac{d.Int(1, den-1), den}, frac{d.Int(1, den-1), den})
	},
	"Subtracting Fractions with Like Denominators": func(d *Draw) problem.Problem {
		den := d.Int(3, 12)
		a := d.Int(2, den-1)
		return fractionOp(opSub, frac{a, den}, frac{d.Int(1, a-1), den})
	},
	"Mixed Numbers to Improper Fractions": func(d *Draw) problem.Problem {
		return mixedToImproper(d.Int(1, 5), coprimeFrac(d, 2, 9))
	},
	"Improper Fractions to Mixed Numbers": func(d *Draw) problem.Problem {
		return improperToMixed(d.Int(1, 5), coprimeFrac(d, 2, 9))
	},
	"Decimal Fractions": func(d *Draw) problem.Problem {
		if d.Bool() {
			return decimalFraction(frac{d.Int(1, 9), 10})
		}
		return decimalFraction(frac{d.Int(1, 99), 100})
	},
	"Comparing Decimals": func(d *Draw) problem.Problem {
		a := num(d.Int(1, 9)) / 10
		b := num(d.Int(1, 99)) / 100
		if d.Bool() {
			a, b = b, a
		}
		return comparison(decimal(a), decimal(b), a, b)
	},
	"Types of Angles": func(d *Draw) problem.Problem {
		switch d.Int(0, 3) {
		case 0:
			return angleType(d.Int(1, 89))
		case 1:
			return angleType(90)
		case 2:
			return angleType(d.Int(91, 179))
		default:
			return angleType(180)
		}
	},
	"Angle Measures": lookup(
		fact{"How many degrees are in a right angle?", 90, "A right angle is a square corner: 90°."},
		fact{"How many degrees are in a straight angle?", 180, "A straight angle is a straight line: 180°."},
		fact{"How many degrees are in a full turn?", 360, "A full turn is 360°."},
		fact{"How many degrees are in a quarter turn?", 90, "A quarter of 360° is 90°."},
		fact{"How many degrees are in a half turn?", 180, "Half of 360° is 180°."},
	),
	"Missing Side Length": func(d *Draw) problem.Problem {
		l := d.Int(3, 20)
		w := d.Int(2, l)
		p := 2 * (l + w)
		return problem.Numeric(
			fmt.Sprintf("A rectangle has a perimeter of %d cm and a length of %d cm. What is its width in centimeters?", p, l),
			num(w),
		).WithOperands(opSub, num(p), num(l)).WithSteps(
			fmt.Sprintf("Half the perimeter is one length plus one width: %d ÷ 2 = %d.", p, p/2),
			fmt.Sprintf("%d - %d = %d", p/2, l, w),
		)
	},
	"Multiplying Fractions by Whole Numbers": func(d *Draw) problem.Problem {
		return fractionOp(opMul, frac{d.Int(2, 9), 1}, properFrac(d, 2, 10))
	},
	"Yards and Feet":         conversion(unitPair{yards, feet, 3}, 1, 12),
	"Hours and Minutes":      conversion(unitPair{hours, minutes, 60}, 1, 12),
	"Meters and Centimeters": conversion(unitPair{meters, centimeters, 100}, 1, 20),
	"Lines of Symmetry": lookup(
		fact{"How many lines of symmetry does a square have?", 4, "Fold a square across both diagonals and both middles: 4 lines."},
		fact{"How many lines of symmetry does a rectangle (not a square) have?", 2, "Only the two middle folds match up."},
		fact{"How many lines of symmetry does an equilateral triangle have?", 3, "Each line runs from a corner to the middle of the opposite side."},
		fact{"How many lines of symmetry does a regular hexagon have?", 6, "A regular shape has as many lines of symmetry as sides."},
		fact{"How many lines of symmetry does the letter A have?", 1, "Only the vertical fold down the middle matches."},
	),

	// Grade 5
	"Decimal Addition": func(d *Draw) problem.Problem {
		return decimalPair(opAdd, d.Int(100, 9999), d.Int(10, 999))
	},
	"Decimal Subtraction": func(d *Draw) problem.Problem {
		a := d.Int(200, 9999)
		return decimalPair(opSub, a, d.Int(10, a-1))
	},
	"Multiplying Decimals": func(d *Draw) problem.Problem {
		return decimalPair(opMul, d.Int(11, 99), d.Int(2, 9))
	},
	"Dividing Decimals": func(d *Draw) problem.Problem {
		div := d.Int(2, 25)
		return decimalPair(opDiv, d.Int(2, 12)*div, div)
	},
	"Adding Fractions with Unlike Denominators": func(d *Draw) problem.Problem {
		dens := distinct(d, 2, 2, 10)
		return fractionOp(opAdd, frac{d.Int(1, dens[0]-1), dens[0]}, frac{d.Int(1, dens[1]-1), dens[1]})
	},
	"Subtracting Fractions with Unlike Denominators": func(d *Draw) problem.Problem {
		pair := until(d, func() [2]frac {
			dens := distinct(d, 2, 2, 10)
			return [2]frac{{d.Int(1, dens[0]-1), dens[0]}, {d.Int(1, dens[1]-1), dens[1]}}
		}, func(p [2]frac) bool { return p[0].value() > p[1].value() }, [2]frac{{3, 4}, {1, 3}})
		return fractionOp(opSub, pair[0], pair[1])
	},
	"Multiplying Fractions": func(d *Draw) problem.Problem {
		return fractionOp(opMul, properFrac(d, 2, 9), properFrac(d, 2, 9))
	},
	"Dividing Unit Fractions": func(d *Draw) problem.Problem {
		unitFrac := frac{1, d.Int(2, 9)}
		whole := frac{d.Int(2, 9), 1}
		if d.Bool() {
			return fractionOp(opDiv, unitFrac, whole)
		}
		return fractionOp(opDiv, whole, unitFrac)
	},
	"Simplifying Fractions": func(d *Draw) problem.Problem {
		return simplifyFraction(coprimeFrac(d, 2, 12), d.Int(2, 6))
	},
	"Order of Operations": orderOfOperations,
	"Powers of Ten": func(d *Draw) problem.Problem {
		k := d.Int(1, 6)
		v := pow(10, k)
		return problem.Numeric(fmt.Sprintf("10^%d = ?", k), num(v)).
			WithOperands("^", 10, num(k)).
			WithSteps(fmt.Sprintf("10^%d means %d tens multiplied together.", k, k), fmt.Sprintf("Write a 1 followed by %d zeros: %d.", k, v))
	},
	"Multiplying by Powers of 10": func(d *Draw) problem.Problem {
		hundredths := d.Int(101, 9999)
		k := d.Int(1, 3)
		return decimalShift(hundredths, k)
	},
	"Volume of Rectangular Prisms": func(d *Draw) problem.Problem {
		l, w, h := d.Int(2, 12), d.Int(2, 12), d.Int(2, 12)
		return geometry(
			fmt.Sprintf("A box is %d cm long, %d cm wide and %d cm tall. What is its volume in cubic centimeters?", l, w, h),
			"V = l × w × h", num(l*w*h), wholeNumber,
			fmt.Sprintf("%d × %d × %d = %d", l, w, h, l*w*h),
		).WithOperands(opMul, num(l), num(w), num(h))
	},
	"Rounding Decimals": func(d *Draw) problem.Problem {
		return roundDecimal(d.Int(1001, 99999), rounding(d.Int(1, 2)))
	},
	"Converting Metric Units": func(d *Draw) problem.Problem {
		u := pick(d, []unitPair{
			{kilometers, meters, 1000},
			{meters, centimeters, 100},
			{centimeters, millimeters, 10},
			{kilograms, grams, 1000},
			{liters, milliliters, 1000},
		})
		return convert(u, d.Int(1, 50))
	},
	"Coordinate Plane": coordinateDistance,
	"Multi-Digit Division": func(d *Draw) problem.Problem {
		b := d.Int(11, 99)
		return pairProblem(opDiv, d.Int(10, 999)*b, b)
	},
}

// remainderProblem divides a by b, where b does not divide a.
func remainderProblem(a, b int) problem.Problem {
	q, r := a/b, a%b
	ans := fmt.Sprintf("%d R%d", q, r)
	p := problem.Categorical(
		fmt.Sprintf("%d ÷ %d = ? (write the remainder as R, like 5 R2)", a, b),
		ans,
		fmt.Sprintf("%d r %d", q, r),
		fmt.Sprintf("%d remainder %d", q, r),
	).WithOperands(opDiv, num(a), num(b)).WithSteps(
		fmt.Sprintf("Find the largest multiple of %d that fits in %d: %d × %d = %d.", b, a, q, b, q*b),
		fmt.Sprintf("What is left over: %d - %d = %d.", a, q*b, r),
		fmt.Sprintf("%d ÷ %d = %s", a, b, ans),
	)
	p.Metadata.Remainder = r
	return p
}

func missingFactor(a, b int) problem.Problem {
	return problem.Numeric(fmt.Sprintf("%d × ? = %d", a, a*b), num(b)).
		WithOperands(opMul, num(a), num(a*b)).
		WithSteps(
			fmt.Sprintf("Think of the division fact: %d ÷ %d.", a*b, a),
			fmt.Sprintf("%d × %d = %d, so the missing factor is %d.", a, b, a*b, b),
		)
}

func rectangleArea(l, w int) problem.Problem {
	return geometry(
		fmt.Sprintf("A rectangle is %d cm long and %d cm wide. What is its area in square centimeters?", l, w),
		"A = l × w", num(l*w), wholeNumber,
		fmt.Sprintf("%d × %d = %d", l, w, l*w),
	).WithOperands(opMul, num(l), num(w))
}

// properFrac draws n/d with d in [minDen, maxDen] and 0 < n < d.
func properFrac(d *Draw, minDen, maxDen int) frac {
	den := d.Int(minDen, maxDen)
	return frac{d.Int(1, den-1), den}
}

// coprimeFrac draws a proper fraction already in simplest form.
func coprimeFrac(d *Draw, minDen, maxDen int) frac {
	return until(d, func() frac { return properFrac(d, minDen, maxDen) },
		func(f frac) bool { return numtheory.GCD(f.n, f.d) == 1 }, frac{1, 2})
}

func equivalentFractions(d *Draw) problem.Problem {
	base := properFrac(d, 2, 6)
	k := d.Int(2, 5)
	return problem.Numeric(fmt.Sprintf("%s = ?/%d", base, base.d*k), num(base.n*k)).
		WithOperands("=", base.value()).
		WithSteps(
			fmt.Sprintf("The denominator was multiplied by %d: %d × %d = %d.", k, base.d, k, base.d*k),
			fmt.Sprintf("Multiply the numerator by the same number: %d × %d = %d.", base.n, k, base.n*k),
		)
}

func elapsedTime(h, m, minutes int) problem.Problem {
	end := h*60 + m + minutes
	start := fmt.Sprintf("%d:%02d", h, m)
	stop := fmt.Sprintf("%d:%02d", end/60, end%60)
	return problem.Numeric(
		fmt.Sprintf("A movie starts at %s and ends at %s. How many minutes long is it?", start, stop),
		num(minutes), fmt.Sprintf("%d minutes", minutes),
	).WithOperands(opSub, num(end), num(h*60+m)).WithSteps(
		fmt.Sprintf("Count from %s to %s.", start, stop),
		fmt.Sprintf("That is %d hour(s) and %d minutes, or %d minutes.", minutes/60, minutes%60, minutes),
	)
}

func factorCount(n int) problem.Problem {
	fs := numtheory.Factors(n)
	return problem.Numeric(fmt.Sprintf("How many factors does %d have?", n), num(len(fs))).
		WithOperands("factors", num(n)).
		WithSteps(
			fmt.Sprintf("List the factor pairs of %d.", n),
			fmt.Sprintf("The factors are %s.", listInts(fs)),
			fmt.Sprintf("That is %d factors.", len(fs)),
		)
}

func primeOrComposite(n int) problem.Problem {
	if numtheory.IsPrime(n) {
		return problem.Categorical(fmt.Sprintf("Is %d prime or composite?", n), "prime").
			WithOperands("factors", num(n)).
			WithSteps(fmt.Sprintf("The only factors of %d are 1 and %d.", n, n), "So it is prime.")
	}
	fs := numtheory.Factors(n)
	return problem.Categorical(fmt.Sprintf("Is %d prime or composite?", n), "composite").
		WithOperands("factors", num(n)).
		WithSteps(fmt.Sprintf("%d has factors %s.", n, listInts(fs)), "It has more than two factors, so it is composite.")
}

func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

func pow(base, exp int) int {
	v := 1
	for range exp {
		v *= base
	}
	return v
}

func digitValue(d *Draw) problem.Problem {
	n := d.Int(10000, 99999)
	place := until(d, func() int { return d.Int(0, 4) },
		func(p int) bool { return n/pow(10, p)%10 != 0 }, 4)
	digit := n / pow(10, place) % 10
	v := digit * pow(10, place)
	return problem.Numeric(fmt.Sprintf("What is the value of the %s digit in %d?", placeName(place), n), num(v)).
		WithOperands("place", num(n)).
		WithSteps(
			fmt.Sprintf("The %s digit is %d.", placeName(place), digit),
			fmt.Sprintf("%d × %d = %d", digit, pow(10, place), v),
		)
}

func mixedToImproper(w int, f frac) problem.Problem {
	n := w*f.d + f.n
	return problem.Categorical(
		fmt.Sprintf("Write %d %s as an improper fraction.", w, f), fmt.Sprintf("%d/%d", n, f.d),
	).WithOperands("convert", num(w), f.value()).WithSteps(
		fmt.Sprintf("Multiply the whole number by the denominator: %d × %d = %d.", w, f.d, w*f.d),
		fmt.Sprintf("Add the numerator: %d + %d = %d.", w*f.d, f.n, n),
		fmt.Sprintf("Keep the denominator: %d/%d.", n, f.d),
	)
}

func improperToMixed(w int, f frac) problem.Problem {
	n := w*f.d + f.n
	ans := fmt.Sprintf("%d %s", w, f)
	return problem.Categorical(
		fmt.Sprintf("Write %d/%d as a mixed number.", n, f.d), ans,
	).WithOperands("convert", num(n), num(f.d)).WithSteps(
		fmt.Sprintf("Divide: %d ÷ %d = %d with %d left over.", n, f.d, w, f.n),
		fmt.Sprintf("The whole number is %d and the leftover makes %s.", w, f),
		ans,
	)
}

func decimalFraction(f frac) problem.Problem {
	v := f.value()
	return problem.Numeric(fmt.Sprintf("Write %s as a decimal.", f), v).
		WithOperands("convert", num(f.n), num(f.d)).
		WithSteps(
			fmt.Sprintf("%s means %d %s.", f, f.n, map[int]string{10: "tenths", 100: "hundredths"}[f.d]),
			fmt.Sprintf("%s = %s", f, decimal(v)),
		)
}

func angleType(deg int) problem.Problem {
	var ans, why string
	switch {
	case deg < 90:
		ans, why = "acute", "less than 90°"
	case deg == 90:
		ans, why = "right", "exactly 90°"
	case deg < 180:
		ans, why = "obtuse", "between 90° and 180°"
	default:
		ans, why = "straight", "exactly 180°"
	}
	return problem.Categorical(
		fmt.Sprintf("An angle measures %d°. Is it acute, right, obtuse, or straight?", deg),
		ans, ans+" angle",
	).WithOperands("angle", num(deg)).WithSteps(fmt.Sprintf("%d° is %s, so the angle is %s.", deg, why, ans))
}

// decimalPair works on hundredths for + and -, tenths × tenths for ×, and
// tenths ÷ tenths for ÷, so answers carry no float noise.
func decimalPair(op string, a, b int) problem.Problem {
	var x, y, v float64
	var steps []string
	switch op {
	case opAdd:
		x, y = num(a)/100, num(b)/100
		v = num(a+b) / 100
		steps = []string{"Line up the decimal points.", fmt.Sprintf("%d + %d hundredths = %d hundredths.", a, b, a+b)}
	case opSub:
		x, y = num(a)/100, num(b)/100
		v = num(a-b) / 100
		steps = []string{"Line up the decimal points.", fmt.Sprintf("%d - %d hundredths = %d hundredths.", a, b, a-b)}
	case opMul:
		x, y = num(a)/10, num(b)/10
		v = num(a*b) / 100
		steps = []string{
			fmt.Sprintf("Multiply as whole numbers: %d × %d = %d.", a, b, a*b),
			"There are two decimal places in the factors, so move the point two places left.",
		}
	case opDiv:
		x, y = num(a)/10, num(b)/10
		v = num(a / b)
		steps = []string{
			fmt.Sprintf("Multiply both numbers by 10: %d ÷ %d.", a, b),
			fmt.Sprintf("%d ÷ %d = %d", a, b, a/b),
		}
	}
	steps = append(steps, fmt.Sprintf("%s %s %s = %s", decimal(x), op, decimal(y), decimal(v)))
	return problem.Numeric(fmt.Sprintf("%s %s %s = ?", decimal(x), op, decimal(y)), v).
		WithOperands(op, x, y).
		WithSteps(steps...)
}

func simplifyFraction(base frac, k int) problem.Problem {
	f := frac{base.n * k, base.d * k}
	g := numtheory.GCD(f.n, f.d)
	return problem.Categorical(fmt.Sprintf("Simplify %s.", f), base.String()).
		WithOperands("simplify", num(f.n), num(f.d)).
		WithSteps(
			fmt.Sprintf("The greatest common factor of %d and %d is %d.", f.n, f.d, g),
			fmt.Sprintf("%d ÷ %d = %d and %d ÷ %d = %d.", f.n, g, base.n, f.d, g, base.d),
			base.String(),
		)
}

func orderOfOperations(d *Draw) problem.Problem {
	a, b, c := d.Int(2, 12), d.Int(2, 12), d.Int(2, 12)
	switch d.Int(0, 3) {
	case 0:
		v := a + b*c
		return problem.Numeric(fmt.Sprintf("%d + %d × %d = ?", a, b, c), num(v)).
			WithOperands("order", num(a), num(b), num(c)).
			WithSteps(fmt.Sprintf("Multiply first: %d × %d = %d.", b, c, b*c), fmt.Sprintf("Then add: %d + %d = %d.", a, b*c, v))
	case 1:
		v := (a + b) * c
		return problem.Numeric(fmt.Sprintf("(%d + %d) × %d = ?", a, b, c), num(v)).
			WithOperands("order", num(a), num(b), num(c)).
			WithSteps(fmt.Sprintf("Parentheses first: %d + %d = %d.", a, b, a+b), fmt.Sprintf("Then multiply: %d × %d = %d.", a+b, c, v))
	case 2:
		c = min(c, a*b)
		v := a*b - c
		return problem.Numeric(fmt.Sprintf("%d × %d - %d = ?", a, b, c), num(v)).
			WithOperands("order", num(a), num(b), num(c)).
			WithSteps(fmt.Sprintf("Multiply first: %d × %d = %d.", a, b, a*b), fmt.Sprintf("Then subtract: %d - %d = %d.", a*b, c, v))
	default:
		bc := b * c
		v := a + b
		return problem.Numeric(fmt.Sprintf("%d + %d ÷ %d = ?", a, bc, c), num(v)).
			WithOperands("order", num(a), num(bc), num(c)).
			WithSteps(fmt.Sprintf("Divide first: %d ÷ %d = %d.", bc, c, b), fmt.Sprintf("Then add: %d + %d = %d.", a, b, v))
	}
}

// decimalShift multiplies hundredths/100 by 10^k.
func decimalShift(hundredths, k int) problem.Problem {
	x := num(hundredths) / 100
	p := pow(10, k)
	v := num(hundredths*p) / 100
	return problem.Numeric(fmt.Sprintf("%s × %d = ?", decimal(x), p), v).
		WithOperands(opMul, x, num(p)).
		WithSteps(
			fmt.Sprintf("%d has %d zero(s), so move the decimal point %d place(s) right.", p, k, k),
			fmt.Sprintf("%s × %d = %s", decimal(x), p, decimal(v)),
		)
}

// roundDecimal rounds thousandths/1000 to the given place using integer
// arithmetic.
func roundDecimal(thousandths int, r rounding) problem.Problem {
	x := num(thousandths) / 1000
	unit, place := 100, "tenth"
	if r == nearestHundredth {
		unit, place = 10, "hundredth"
	}
	v := num(roundTo(thousandths, unit)) / 1000
	return problem.Numeric(fmt.Sprintf("Round %s to the nearest %s.", decimal(x), place), v).
		WithOperands("round", x).
		WithSteps(
			fmt.Sprintf("Look at the digit after the %s place.", place),
			"Round up if it is 5 or more, otherwise round down.",
			fmt.Sprintf("%s rounds to %s.", decimal(x), decimal(v)),
		)
}

func coordinateDistance(d *Draw) problem.Problem {
	fixed := d.Int(0, 10)
	ends := distinct(d, 2, 0, 10)
	a, b := ends[0], ends[1]
	dist := max(a, b) - min(a, b)
	var display string
	if d.Bool() {
		display = fmt.Sprintf("Point A is at (%d, %d) and point B is at (%d, %d). How many units apart are they?", fixed, a, fixed, b)
	} else {
		display = fmt.Sprintf("Point A is at (%d, %d) and point B is at (%d, %d). How many units apart are they?", a, fixed, b, fixed)
	}
	return problem.Numeric(display, num(dist)).
		WithOperands(opSub, num(a), num(b)).
		WithSteps(
			"One coordinate is the same, so the points are on a straight grid line.",
			fmt.Sprintf("Subtract the other coordinates: %d - %d = %d.", max(a, b), min(a, b), dist),
		)
}
