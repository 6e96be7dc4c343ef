package problem

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswer_Valid(t *testing.T) {
	tests := []struct {
		name string
		a    Answer
		want bool
	}{
		{"numeric", Answer{Kind: KindNumeric, Number: 3}, true},
		{"zero", Answer{Kind: KindNumeric}, true},
		{"nan", Answer{Kind: KindNumeric, Number: math.NaN()}, false},
		{"inf", Answer{Kind: KindNumeric, Number: math.Inf(1)}, false},
		{"text", Answer{Kind: KindCategorical, Text: "odd"}, true},
		{"blank text", Answer{Kind: KindCategorical, Text: "  "}, false},
		{"unset", Answer{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Valid())
		})
	}
}

func TestCategorical_AcceptedIncludesCanonical(t *testing.T) {
	p := Categorical("What time is it?", "7 o'clock", "7:00", "7  O'Clock")
	assert.Equal(t, []string{"7 o'clock", "7:00"}, p.AcceptedAnswers)
}

func TestNumeric_AcceptedIncludesCanonical(t *testing.T) {
	p := Numeric("Convert 3 feet to inches.", 36, "36 inches", "36 in")
	assert.Equal(t, []string{"36", "36 inches", "36 in"}, p.AcceptedAnswers)
	assert.Equal(t, KindNumeric, p.Answer.Kind)
}

func TestNoAccepted_StaysEmpty(t *testing.T) {
	p := Numeric("2 + 2 = ?", 4)
	assert.Empty(t, p.AcceptedAnswers)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "5 r3", Normalize("  5   R3 "))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, "5r3", Compact(" 5 R 3"))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "85", FormatNumber(85))
	assert.Equal(t, "0.3", FormatNumber(0.1+0.2))
	assert.Equal(t, "12.57", FormatNumber(12.57))
	assert.Equal(t, "0", FormatNumber(math.Copysign(0, -1)))
	assert.Equal(t, "-4", FormatNumber(-4))
}

func TestWithHelpers(t *testing.T) {
	p := Numeric("47 + 38 = ?", 85).
		WithOperands("+", 47, 38).
		WithSteps("Add the ones.", "Add the tens.")
	assert.Equal(t, "+", p.Metadata.Operator)
	assert.Equal(t, []float64{47, 38}, p.Metadata.Operands)
	assert.Len(t, p.Metadata.Steps, 2)
}
