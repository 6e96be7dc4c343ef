// Package answer decides whether a learner's input matches a problem's
// answer.
package answer

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/abhisek/mathlab/internal/problem"
)

// InvalidProblemError reports a problem whose answer cannot be checked.
// Callers should regenerate the problem.
type InvalidProblemError struct {
	Topic string
	Kind  problem.Kind
}

func (e *InvalidProblemError) Error() string {
	return fmt.Sprintf("problem for %q has an unusable %s answer", e.Topic, e.Kind)
}

// Checker compares input against problems. The zero value is not usable;
// build one with New.
type Checker struct {
	cfg Config
}

// New returns a Checker using cfg.
func New(cfg Config) *Checker {
	return &Checker{cfg: cfg}
}

// Default returns a Checker with DefaultConfig.
func Default() *Checker {
	return New(DefaultConfig())
}

// Config returns the tolerances in use.
func (c *Checker) Config() Config { return c.cfg }

// IsCorrect reports whether input answers p. The checks run in order:
// empty input is wrong, then accepted answers are matched as text, then
// numeric answers are compared with tolerance, and categorical answers
// as whitespace-collapsed text.
func (c *Checker) IsCorrect(p problem.Problem, input string) (bool, error) {
	if !p.Answer.Valid() {
		return false, &InvalidProblemError{Topic: p.Topic, Kind: p.Answer.Kind}
	}

	in := problem.Normalize(input)
	if in == "" {
		return false, nil
	}

	if len(p.AcceptedAnswers) > 0 {
		compact := problem.Compact(in)
		for _, a := range p.AcceptedAnswers {
			if in == problem.Normalize(a) || compact == problem.Compact(a) {
				return true, nil
			}
		}
	}

	switch p.Answer.Kind {
	case problem.KindNumeric:
		v, ok := ParseNumber(in)
		if !ok {
			v, ok = parseWithUnit(in, p)
		}
		if !ok {
			return false, nil
		}
		return c.withinTolerance(v, p.Answer.Number), nil
	default:
		return in == problem.Normalize(p.Answer.Text) ||
			problem.Compact(in) == problem.Compact(p.Answer.Text), nil
	}
}

func (c *Checker) withinTolerance(got, want float64) bool {
	diff := math.Abs(got - want)
	if math.Abs(want) < c.cfg.SmallValueThreshold {
		return diff <= c.cfg.AbsTolerance+1e-12
	}
	return diff <= math.Abs(want)*c.cfg.RelTolerance+1e-12
}

var (
	thousandsRe = regexp.MustCompile(`^-?\d{1,3}(,\d{3})+(\.\d+)?$`)
	fractionRe  = regexp.MustCompile(`^(-?\d+)\s*/\s*(\d+)$`)
	mixedRe     = regexp.MustCompile(`^(-?\d+)\s+(\d+)\s*/\s*(\d+)$`)
)

// ParseNumber reads integers, decimals, thousands separators, fractions
// ("3/4") and mixed numbers ("1 1/2"). A leading "$" and a trailing "%"
// are ignored.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	if s == "" {
		return 0, false
	}

	if v, ok := parsePlain(s); ok {
		return v, true
	}
	if m := mixedRe.FindStringSubmatch(s); m != nil {
		w, _ := strconv.Atoi(m[1])
		n, _ := strconv.Atoi(m[2])
		d, _ := strconv.Atoi(m[3])
		if d == 0 {
			return 0, false
		}
		f := float64(n) / float64(d)
		if strings.HasPrefix(m[1], "-") {
			return float64(w) - f, true
		}
		return float64(w) + f, true
	}
	if m := fractionRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		d, _ := strconv.Atoi(m[2])
		if d == 0 {
			return 0, false
		}
		return float64(n) / float64(d), true
	}
	return 0, false
}

var unitWords = map[string]bool{
	"in": true, "inch": true, "inches": true, "ft": true, "foot": true, "feet": true,
	"yd": true, "yard": true, "yards": true, "mi": true, "mile": true, "miles": true,
	"mm": true, "cm": true, "m": true, "km": true, "meter": true, "meters": true,
	"centimeter": true, "centimeters": true, "kilometer": true, "kilometers": true,
	"g": true, "gram": true, "grams": true, "kg": true, "kilogram": true, "kilograms": true,
	"oz": true, "ounce": true, "ounces": true, "lb": true, "lbs": true, "pound": true, "pounds": true,
	"ml": true, "l": true, "liter": true, "liters": true, "milliliter": true, "milliliters": true,
	"cup": true, "cups": true, "pint": true, "pints": true, "quart": true, "quarts": true,
	"gallon": true, "gallons": true, "cent": true, "cents": true, "dollar": true, "dollars": true,
	"second": true, "seconds": true, "minute": true, "minutes": true, "hour": true, "hours": true,
	"day": true, "days": true, "week": true, "weeks": true, "degree": true, "degrees": true,
	"unit": true, "units": true,
}

// parseWithUnit reads "36 inches" or "16 apples". The trailing word must be
// a measurement unit or a word the problem itself uses.
func parseWithUnit(in string, p problem.Problem) (float64, bool) {
	fields := strings.Fields(in)
	if len(fields) != 2 || strings.ContainsAny(fields[1], "0123456789") {
		return 0, false
	}
	word := fields[1]
	if !unitWords[word] && !problemUses(p, word) {
		return 0, false
	}
	return ParseNumber(fields[0])
}

func problemUses(p problem.Problem, word string) bool {
	texts := append([]string{p.Display}, p.AcceptedAnswers...)
	for _, t := range texts {
		for _, w := range strings.FieldsFunc(strings.ToLower(t), func(r rune) bool {
			return !unicode.IsLetter(r)
		}) {
			if w == word {
				return true
			}
		}
	}
	return false
}

func parsePlain(s string) (float64, bool) {
	if thousandsRe.MatchString(s) {
		s = strings.ReplaceAll(s, ",", "")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
