package generator

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathlab/internal/problem"
)

var storyNames = []string{"Maya", "Leo", "Ava", "Sam", "Noah", "Zoe", "Eli", "Priya", "Omar", "Lena"}

var storyItems = []string{"apples", "stickers", "marbles", "books", "shells", "pencils", "cookies", "toy cars"}

// Kindergarten through grade 2.
var primaryTopics = map[string]Func{
	// Kindergarten
	"Counting":          counting,
	"Number Before":     numberBefore,
	"Number After":      numberAfter,
	"Comparing Numbers": comparingNumbers,
	"More or Less":      moreOrLess,
	"Addition Within 10": func(d *Draw) problem.Problem {
		a := d.Int(0, 10)
		return pairProblem(opAdd, a, d.Int(0, 10-a))
	},
	"Subtraction Within 10": func(d *Draw) problem.Problem {
		a := d.Int(0, 10)
		return pairProblem(opSub, a, d.Int(0, a))
	},
	"Ten Frames": tenFrames,
	"Shape Sides": lookup(
		fact{"How many sides does a triangle have?", 3, "A triangle has 3 straight sides."},
		fact{"How many sides does a square have?", 4, "A square has 4 equal sides."},
		fact{"How many sides does a rectangle have?", 4, "A rectangle has 4 sides."},
		fact{"How many sides does a circle have?", 0, "A circle is curved all the way around, so it has no straight sides."},
		fact{"How many sides does a hexagon have?", 6, "A hexagon has 6 sides."},
	),
	"Story Problems to 10": func(d *Draw) problem.Problem {
		a := d.Int(1, 5)
		return additionStory(d, a, d.Int(1, 10-a))
	},

	// Grade 1
	"Addition Within 20": func(d *Draw) problem.Problem {
		a := d.Int(0, 20)
		return pairProblem(opAdd, a, d.Int(0, 20-a))
	},
	"Subtraction Within 20": func(d *Draw) problem.Problem {
		a := d.Int(0, 20)
		return pairProblem(opSub, a, d.Int(0, a))
	},
	"Doubles": func(d *Draw) problem.Problem {
		n := d.Int(1, 10)
		return pairProblem(opAdd, n, n)
	},
	"Making Ten": func(d *Draw) problem.Problem {
		return missingAddend(d.Int(1, 9), 10)
	},
	"Missing Addend": func(d *Draw) problem.Problem {
		total := d.Int(5, 20)
		return missingAddend(d.Int(0, total), total)
	},
	"Three Addends": threeAddends,
	"Skip Counting by 2s": skipCounting(2, 6),
	"Skip Counting by 5s": skipCounting(5, 15),
	"Skip Counting by 10s": skipCounting(10, 6),
	"Tens and Ones": tensAndOnes,
	"Even or Odd": func(d *Draw) problem.Problem {
		return evenOrOdd(d.Int(0, 20))
	},
	"Comparison Symbols": func(d *Draw) problem.Problem {
		a, b := d.Int(0, 20), d.Int(0, 20)
		return comparison(fmt.Sprint(a), fmt.Sprint(b), num(a), num(b))
	},
	"Fact Families": func(d *Draw) problem.Problem {
		a, b := d.Int(1, 9), d.Int(1, 9)
		return factFamily(a, b)
	},
	"Telling Time to the Hour": func(d *Draw) problem.Problem {
		return timeToHour(d.Int(1, 12))
	},
	"Coin Values": lookup(
		fact{"How many cents is a penny worth?", 1, "A penny is worth 1 cent."},
		fact{"How many cents is a nickel worth?", 5, "A nickel is worth 5 cents."},
		fact{"How many cents is a dime worth?", 10, "A dime is worth 10 cents."},
		fact{"How many cents is a quarter worth?", 25, "A quarter is worth 25 cents."},
	),
	"Addition Word Problems": func(d *Draw) problem.Problem {
		return additionStory(d, d.Int(2, 10), d.Int(2, 10))
	},
	"Subtraction Word Problems": func(d *Draw) problem.Problem {
		a := d.Int(5, 20)
		return subtractionStory(d, a, d.Int(1, a-1))
	},

	// Grade 2
	"Addition": func(d *Draw) problem.Problem {
		return pairProblem(opAdd, d.Int(10, 99), d.Int(10, 99))
	},
	"Subtraction": func(d *Draw) problem.Problem {
		a := d.Int(20, 99)
		return pairProblem(opSub, a, d.Int(10, a))
	},
	"Addition with Regrouping": func(d *Draw) problem.Problem {
		oa := d.Int(1, 9)
		ob := d.Int(10-oa, 9)
		return pairProblem(opAdd, d.Int(1, 9)*10+oa, d.Int(1, 9)*10+ob)
	},
	"Subtraction with Regrouping": func(d *Draw) problem.Problem {
		oa := d.Int(0, 8)
		ob := d.Int(oa+1, 9)
		ta := d.Int(2, 9)
		tb := d.Int(1, ta-1)
		return pairProblem(opSub, ta*10+oa, tb*10+ob)
	},
	"Repeated Addition": repeatedAddition,
	"Arrays": func(d *Draw) problem.Problem {
		return arrayCount(d.Int(2, 6), d.Int(2, 6))
	},
	"Skip Counting by 100s": skipCounting(100, 6),
	"Expanded Form":         expandedForm,
	"Place Value to Hundreds": placeValue,
	"Ten More Ten Less":       tenMoreTenLess,
	"Rounding to Nearest Ten": func(d *Draw) problem.Problem {
		return roundingProblem(d.Int(11, 999), 10, "ten")
	},
	"Comparing Three-Digit Numbers": func(d *Draw) problem.Problem {
		a := d.Int(100, 999)
		b := a
		if d.Int(1, 4) > 1 {
			b = d.Int(100, 999)
		}
		return comparison(fmt.Sprint(a), fmt.Sprint(b), num(a), num(b))
	},
	"Counting Money": countingMoney,
	"Telling Time to Five Minutes": func(d *Draw) problem.Problem {
		return timeToFive(d.Int(1, 12), d.Int(1, 11))
	},
	"Feet and Inches": conversion(unitPair{feet, inches, 12}, 1, 8),
	"Polygon Sides": lookup(
		fact{"How many sides does a quadrilateral have?", 4, "Quad means four."},
		fact{"How many sides does a pentagon have?", 5, "Penta means five."},
		fact{"How many sides does a hexagon have?", 6, "Hexa means six."},
		fact{"How many sides does an octagon have?", 8, "Octa means eight, like an octopus's arms."},
		fact{"How many angles does a triangle have?", 3, "Tri means three: three sides and three angles."},
	),
	"Equal Parts": lookup(
		fact{"A pizza is cut into halves. How many equal parts are there?", 2, "Halves means 2 equal parts."},
		fact{"A pizza is cut into thirds. How many equal parts are there?", 3, "Thirds means 3 equal parts."},
		fact{"A pizza is cut into fourths. How many equal parts are there?", 4, "Fourths (quarters) means 4 equal parts."},
	),
	"Two-Step Word Problems": twoStepStory,
}

func counting(d *Draw) problem.Problem {
	n := d.Int(1, 10)
	return problem.Numeric("Count the stars: "+strings.Repeat("★", n), num(n)).
		WithOperands("count", num(n)).
		WithSteps("Point to each star as you count it.", fmt.Sprintf("The last number you say is %d.", n))
}

func numberBefore(d *Draw) problem.Problem {
	n := d.Int(1, 10)
	return problem.Numeric(fmt.Sprintf("What number comes just before %d?", n), num(n-1)).
		WithOperands(opSub, num(n), 1).
		WithSteps(fmt.Sprintf("Count back one from %d.", n), fmt.Sprintf("%d comes just before %d.", n-1, n))
}

func numberAfter(d *Draw) problem.Problem {
	n := d.Int(0, 9)
	return problem.Numeric(fmt.Sprintf("What number comes just after %d?", n), num(n+1)).
		WithOperands(opAdd, num(n), 1).
		WithSteps(fmt.Sprintf("Count on one from %d.", n), fmt.Sprintf("%d comes just after %d.", n+1, n))
}

func comparingNumbers(d *Draw) problem.Problem {
	vals := distinct(d, 2, 0, 10)
	a, b := vals[0], vals[1]
	return problem.Numeric(fmt.Sprintf("Which number is greater: %d or %d?", a, b), num(max(a, b))).
		WithOperands("compare", num(a), num(b)).
		WithSteps("The greater number comes later when you count.", fmt.Sprintf("%d is greater.", max(a, b)))
}

func moreOrLess(d *Draw) problem.Problem {
	n := d.Int(1, 9)
	if d.Bool() {
		return problem.Numeric(fmt.Sprintf("What is 1 more than %d?", n), num(n+1)).
			WithOperands(opAdd, num(n), 1).
			WithSteps("1 more means count on one.", fmt.Sprintf("%d + 1 = %d", n, n+1))
	}
	return problem.Numeric(fmt.Sprintf("What is 1 less than %d?", n), num(n-1)).
		WithOperands(opSub, num(n), 1).
		WithSteps("1 less means count back one.", fmt.Sprintf("%d - 1 = %d", n, n-1))
}

func tenFrames(d *Draw) problem.Problem {
	n := d.Int(1, 9)
	cells := strings.Repeat("●", n) + strings.Repeat("○", 10-n)
	frame := string([]rune(cells)[:5]) + "\n" + string([]rune(cells)[5:])
	return problem.Numeric(fmt.Sprintf("This ten frame has %d dots.\n%s\nHow many more dots fill the frame?", n, frame), num(10-n)).
		WithOperands(opSub, 10, num(n)).
		WithSteps("A full ten frame holds 10 dots.", fmt.Sprintf("Count the empty spaces: 10 - %d = %d.", n, 10-n))
}

func additionStory(d *Draw, a, b int) problem.Problem {
	name, item := pick(d, storyNames), pick(d, storyItems)
	return problem.Numeric(
		fmt.Sprintf("%s has %d %s. %s gets %d more. How many %s does %s have now?", name, a, item, name, b, item, name),
		num(a+b), fmt.Sprintf("%d %s", a+b, item),
	).WithOperands(opAdd, num(a), num(b)).WithSteps(
		"Getting more means add.",
		fmt.Sprintf("%d + %d = %d", a, b, a+b),
	)
}

func subtractionStory(d *Draw, a, b int) problem.Problem {
	name, item := pick(d, storyNames), pick(d, storyItems)
	return problem.Numeric(
		fmt.Sprintf("%s has %d %s and gives away %d. How many %s are left?", name, a, item, b, item),
		num(a-b), fmt.Sprintf("%d %s", a-b, item),
	).WithOperands(opSub, num(a), num(b)).WithSteps(
		"Giving away means subtract.",
		fmt.Sprintf("%d - %d = %d", a, b, a-b),
	)
}

func twoStepStory(d *Draw) problem.Problem {
	name, item := pick(d, storyNames), pick(d, storyItems)
	a, b := d.Int(10, 50), d.Int(5, 30)
	c := d.Int(1, a+b-1)
	v := a + b - c
	return problem.Numeric(
		fmt.Sprintf("%s had %d %s, got %d more, then gave %d to a friend. How many %s does %s have now?", name, a, item, b, c, item, name),
		num(v), fmt.Sprintf("%d %s", v, item),
	).WithOperands(opAdd, num(a), num(b), num(c)).WithSteps(
		fmt.Sprintf("First add what %s got: %d + %d = %d.", name, a, b, a+b),
		fmt.Sprintf("Then subtract what was given away: %d - %d = %d.", a+b, c, v),
	)
}

// missingAddend asks "a + ? = total".
func missingAddend(a, total int) problem.Problem {
	return problem.Numeric(fmt.Sprintf("%d + ? = %d", a, total), num(total-a)).
		WithOperands(opAdd, num(a), num(total)).
		WithSteps(
			fmt.Sprintf("Count up from %d to %d.", a, total),
			fmt.Sprintf("%d - %d = %d", total, a, total-a),
		)
}

func threeAddends(d *Draw) problem.Problem {
	a, b, c := d.Int(1, 6), d.Int(1, 6), d.Int(1, 6)
	return problem.Numeric(fmt.Sprintf("%d + %d + %d = ?", a, b, c), num(a+b+c)).
		WithOperands(opAdd, num(a), num(b), num(c)).
		WithSteps(
			fmt.Sprintf("Add the first two: %d + %d = %d.", a, b, a+b),
			fmt.Sprintf("Then add the third: %d + %d = %d.", a+b, c, a+b+c),
		)
}

// skipCounting shows four terms of a count by step and asks for the next.
func skipCounting(step, maxStart int) Func {
	return func(d *Draw) problem.Problem {
		start := d.Int(0, maxStart) * step
		terms := make([]int, 4)
		for i := range terms {
			terms[i] = start + i*step
		}
		next := start + 4*step
		return problem.Numeric(fmt.Sprintf("What comes next? %s, ___", joinInts(terms, ", ")), num(next)).
			WithOperands(opAdd, num(terms[0]), num(terms[3]), num(next)).
			WithSteps(
				fmt.Sprintf("Each number is %d more than the one before.", step),
				fmt.Sprintf("%d + %d = %d", terms[3], step, next),
			)
	}
}

func tensAndOnes(d *Draw) problem.Problem {
	n := d.Int(10, 20)
	tens, ones := n/10, n%10
	if d.Bool() {
		return problem.Numeric(fmt.Sprintf("What number is %d ten and %d ones?", tens, ones), num(n)).
			WithOperands(opAdd, num(tens*10), num(ones)).
			WithSteps(fmt.Sprintf("%d ten is %d.", tens, tens*10), fmt.Sprintf("%d + %d = %d", tens*10, ones, n))
	}
	return problem.Numeric(fmt.Sprintf("How many ones are in the number %d?", n), num(ones)).
		WithOperands("place", num(n)).
		WithSteps(fmt.Sprintf("%d is %d ten and %d ones.", n, tens, ones), fmt.Sprintf("The ones digit is %d.", ones))
}

func evenOrOdd(n int) problem.Problem {
	ans, why := "even", "it ends in 0, 2, 4, 6 or 8"
	if n%2 == 1 {
		ans, why = "odd", "it ends in 1, 3, 5, 7 or 9"
	}
	return problem.Categorical(fmt.Sprintf("Is %d even or odd?", n), ans).
		WithOperands("parity", num(n)).
		WithSteps(fmt.Sprintf("%d is %s because %s.", n, ans, why))
}

func factFamily(a, b int) problem.Problem {
	s := a + b
	return problem.Numeric(fmt.Sprintf("%d + %d = %d, so %d - %d = ?", a, b, s, s, b), num(a)).
		WithOperands(opSub, num(s), num(b)).
		WithSteps(
			"Addition and subtraction facts with the same three numbers belong to one family.",
			fmt.Sprintf("%d - %d = %d", s, b, a),
		)
}

func timeToHour(h int) problem.Problem {
	ans := fmt.Sprintf("%d o'clock", h)
	return problem.Categorical(
		fmt.Sprintf("The short hand points to %d and the long hand points to 12. What time is it?", h),
		ans, fmt.Sprintf("%d:00", h), fmt.Sprint(h),
	).WithSteps(
		"The long hand on 12 means o'clock.",
		fmt.Sprintf("The short hand shows the hour: %s.", ans),
	)
}

func timeToFive(h, k int) problem.Problem {
	m := k * 5
	ans := fmt.Sprintf("%d:%02d", h, m)
	return problem.Categorical(
		fmt.Sprintf("The hour hand is just past %d and the minute hand points to %d. What time is it? (h:mm)", h, k),
		ans,
	).WithSteps(
		fmt.Sprintf("The hour is %d.", h),
		fmt.Sprintf("Count by 5s to the minute hand: %d × 5 = %d minutes.", k, m),
		fmt.Sprintf("The time is %s.", ans),
	)
}

func repeatedAddition(d *Draw) problem.Problem {
	n, k := d.Int(2, 5), d.Int(2, 10)
	terms := make([]int, n)
	for i := range terms {
		terms[i] = k
	}
	return problem.Numeric(joinInts(terms, " + ")+" = ?", num(n*k)).
		WithOperands(opMul, num(n), num(k)).
		WithSteps(
			fmt.Sprintf("There are %d groups of %d.", n, k),
			fmt.Sprintf("%d × %d = %d", n, k, n*k),
		)
}

func arrayCount(rows, cols int) problem.Problem {
	grid := make([]string, rows)
	for i := range grid {
		grid[i] = strings.Repeat("● ", cols)
	}
	return problem.Numeric(
		fmt.Sprintf("An array has %d rows with %d dots in each row.\n%s\nHow many dots are there?", rows, cols, strings.Join(grid, "\n")),
		num(rows*cols),
	).WithOperands(opMul, num(rows), num(cols)).WithSteps(
		fmt.Sprintf("Add %d, %d times, or multiply.", cols, rows),
		fmt.Sprintf("%d × %d = %d", rows, cols, rows*cols),
	)
}

func expandedForm(d *Draw) problem.Problem {
	n := d.Int(100, 999)
	h, t, o := n/100*100, n/10%10*10, n%10
	return problem.Numeric(fmt.Sprintf("%d + %d + %d = ?", h, t, o), num(n)).
		WithOperands(opAdd, num(h), num(t), num(o)).
		WithSteps(
			fmt.Sprintf("%d hundreds, %d tens and %d ones.", h/100, t/10, o),
			fmt.Sprintf("Write the digits in order: %d.", n),
		)
}

func placeValue(d *Draw) problem.Problem {
	n := d.Int(100, 999)
	place := d.Int(0, 2)
	digit := n
	for range place {
		digit /= 10
	}
	digit %= 10
	return problem.Numeric(fmt.Sprintf("What digit is in the %s place of %d?", placeName(place), n), num(digit)).
		WithOperands("place", num(n)).
		WithSteps(
			fmt.Sprintf("%d has %d hundreds, %d tens and %d ones.", n, n/100, n/10%10, n%10),
			fmt.Sprintf("The %s digit is %d.", placeName(place), digit),
		)
}

func tenMoreTenLess(d *Draw) problem.Problem {
	n := d.Int(100, 899)
	place := d.Int(1, 2)
	delta := 10
	if place == 2 {
		delta = 100
	}
	if d.Bool() {
		return problem.Numeric(fmt.Sprintf("What is %d more than %d?", delta, n), num(n+delta)).
			WithOperands(opAdd, num(n), num(delta)).
			WithSteps(fmt.Sprintf("Add 1 to the %s digit.", placeName(place)), fmt.Sprintf("%d + %d = %d", n, delta, n+delta))
	}
	return problem.Numeric(fmt.Sprintf("What is %d less than %d?", delta, n), num(n-delta)).
		WithOperands(opSub, num(n), num(delta)).
		WithSteps(fmt.Sprintf("Take 1 from the %s digit.", placeName(place)), fmt.Sprintf("%d - %d = %d", n, delta, n-delta))
}

type coin struct {
	name  string
	cents int
}

var coins = []coin{{"quarter", 25}, {"dime", 10}, {"nickel", 5}, {"penny", 1}}

func countingMoney(d *Draw) problem.Problem {
	counts := []int{d.Int(0, 3), d.Int(0, 4), d.Int(0, 3), d.Int(0, 4)}
	if sum(counts) == 0 {
		counts[3] = 1
	}
	return coinTotal(counts)
}

// coinTotal counts quarters, dimes, nickels and pennies in that order.
func coinTotal(counts []int) problem.Problem {
	var parts, steps []string
	total := 0
	for i, c := range coins {
		if counts[i] == 0 {
			continue
		}
		name := c.name + "s"
		if c.name == "penny" {
			name = "pennies"
		}
		if counts[i] == 1 {
			name = c.name
		}
		parts = append(parts, fmt.Sprintf("%d %s", counts[i], name))
		steps = append(steps, fmt.Sprintf("%d × %d¢ = %d¢", counts[i], c.cents, counts[i]*c.cents))
		total += counts[i] * c.cents
	}
	list := parts[0]
	if len(parts) > 1 {
		list = strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
	}
	steps = append(steps, fmt.Sprintf("Add them up: %d¢.", total))
	return problem.Numeric(
		fmt.Sprintf("You have %s. How many cents do you have?", list),
		num(total), fmt.Sprintf("%d cents", total), fmt.Sprintf("%d¢", total),
	).WithSteps(steps...)
}
