// Package problem defines the Problem produced by every generator and
// consumed by the answer checker and the UI.
package problem

import (
	"math"
	"strconv"
	"strings"
)

// Kind tags how an answer is compared.
type Kind int

const (
	KindUnset       Kind = iota
	KindNumeric          // compared with numeric tolerance
	KindCategorical      // compared as normalized text
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindCategorical:
		return "categorical"
	default:
		return "unset"
	}
}

// Answer is the canonical correct answer. Exactly one of Number or Text is
// meaningful, selected by Kind.
type Answer struct {
	Kind   Kind
	Number float64
	Text   string
}

// Valid reports whether the answer can be checked against.
func (a Answer) Valid() bool {
	switch a.Kind {
	case KindNumeric:
		return !math.IsNaN(a.Number) && !math.IsInf(a.Number, 0)
	case KindCategorical:
		return strings.TrimSpace(a.Text) != ""
	default:
		return false
	}
}

// String renders the answer the way it would be shown to a learner.
func (a Answer) String() string {
	if a.Kind == KindNumeric {
		return FormatNumber(a.Number)
	}
	return a.Text
}

// Metadata keeps intermediate values for walkthroughs. The answer checker
// never reads it.
type Metadata struct {
	Operands  []float64 `json:"operands,omitempty"`
	Operator  string    `json:"operator,omitempty"`
	Remainder int       `json:"remainder,omitempty"`
	Formula   string    `json:"formula,omitempty"`
	Data      []float64 `json:"data,omitempty"`
	Steps     []string  `json:"steps,omitempty"`
}

// Problem is one generated practice question.
type Problem struct {
	// ID is a KSUID assigned by the registry.
	ID string

	// Topic is the catalog topic the problem was generated for.
	Topic string

	// Grade is the catalog grade of Topic (0 = kindergarten).
	Grade int

	// Display is the prompt shown as-is by the renderer.
	Display string

	// Answer is the canonical correct answer.
	Answer Answer

	// AcceptedAnswers lists literal alternatives that are also correct.
	// When non-empty it always starts with the normalized canonical answer.
	AcceptedAnswers []string

	Metadata Metadata

	// Fallback is set when the requested topic had no generator and the
	// default generator produced this problem instead.
	Fallback bool
}

// Numeric builds a problem with a numeric answer.
func Numeric(display string, v float64, accepted ...string) Problem {
	p := Problem{
		Display: display,
		Answer:  Answer{Kind: KindNumeric, Number: v},
	}
	p.AcceptedAnswers = withCanonical(FormatNumber(v), accepted)
	return p
}

// Categorical builds a problem with a text answer.
func Categorical(display, answer string, accepted ...string) Problem {
	p := Problem{
		Display: display,
		Answer:  Answer{Kind: KindCategorical, Text: answer},
	}
	p.AcceptedAnswers = withCanonical(answer, accepted)
	return p
}

// WithSteps returns p with the walkthrough steps set.
func (p Problem) WithSteps(steps ...string) Problem {
	p.Metadata.Steps = steps
	return p
}

// WithOperands returns p with the operands and operator recorded.
func (p Problem) WithOperands(op string, operands ...float64) Problem {
	p.Metadata.Operator = op
	p.Metadata.Operands = operands
	return p
}

// withCanonical returns accepted with the normalized canonical answer
// first and duplicates removed. An empty accepted list stays empty.
func withCanonical(canonical string, accepted []string) []string {
	if len(accepted) == 0 {
		return nil
	}
	out := []string{Normalize(canonical)}
	seen := map[string]bool{out[0]: true}
	for _, a := range accepted {
		n := Normalize(a)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// Normalize trims, lowercases and collapses runs of whitespace to a single
// space.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Compact lowercases and removes all whitespace.
func Compact(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "")
}

// FormatNumber renders v without float noise or trailing zeros.
func FormatNumber(v float64) string {
	r := math.Round(v*1e6) / 1e6
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
