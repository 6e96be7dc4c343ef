package answer

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathlab/internal/catalog"
	"github.com/abhisek/mathlab/internal/generator"
	"github.com/abhisek/mathlab/internal/problem"
	"github.com/abhisek/mathlab/internal/sampler"
)

func TestIsCorrect_Numeric(t *testing.T) {
	c := Default()

	tests := []struct {
		name     string
		expected float64
		input    string
		want     bool
	}{
		{"exact", 85, "85", true},
		{"within relative tolerance", 85, "85.05", true},
		{"outside relative tolerance", 85, "85.2", false},
		{"off by one", 85, "84", false},
		{"small within absolute", 0.05, "0.055", true},
		{"small outside absolute", 0.05, "0.07", false},
		{"trailing zero", 16, "16.0", true},
		{"padded", 16, "  16 ", true},
		{"thousands separator", 12500, "12,500", true},
		{"fraction input", 0.75, "3/4", true},
		{"mixed number input", 1.5, "1 1/2", true},
		{"negative", -4, "-4", true},
		{"dollar sign", 42, "$42", true},
		{"percent sign", 25, "25%", true},
		{"unit word", 36, "36 inches", true},
		{"not a number", 7, "seven", false},
		{"zero denominator", 1, "1/0", false},
		{"bad separators", 1234, "1,23,4", false},
		{"large relative", 1_000_000, "1000900", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := c.IsCorrect(problem.Numeric("?", tt.expected), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestIsCorrect_AcceptedAnswers(t *testing.T) {
	c := Default()
	p := problem.Categorical("What time is it?", "7 o'clock", "7:00", "7 o'clock")

	for _, in := range []string{"7:00", "7 O'CLOCK", "  7   o'clock ", "7o'clock", "7 : 00"} {
		ok, err := c.IsCorrect(p, in)
		require.NoError(t, err)
		assert.True(t, ok, in)
	}

	ok, err := c.IsCorrect(p, "seven")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsCorrect_NumericFallsThroughAcceptedList(t *testing.T) {
	c := Default()
	p := problem.Numeric("How many inches are in 3 feet?", 36, "36 inches", "36 in")

	for _, in := range []string{"36", "36 INCHES", "36in", "36.0"} {
		ok, err := c.IsCorrect(p, in)
		require.NoError(t, err)
		assert.True(t, ok, in)
	}
	ok, _ := c.IsCorrect(p, "35 inches")
	assert.False(t, ok)
}

func TestIsCorrect_TrailingWordMustBelongToProblem(t *testing.T) {
	c := Default()
	p := problem.Numeric("Maya has 9 apples. Maya gets 7 more. How many apples does Maya have now?", 16)

	for _, in := range []string{"16", "16 apples", "16 Apples"} {
		ok, err := c.IsCorrect(p, in)
		require.NoError(t, err)
		assert.True(t, ok, in)
	}
	for _, in := range []string{"16 elephants", "16 potato", "16 x"} {
		ok, err := c.IsCorrect(p, in)
		require.NoError(t, err)
		assert.False(t, ok, in)
	}

	ok, _ := c.IsCorrect(problem.Numeric("How long is the rope?", 12), "12 feet")
	assert.True(t, ok)
}

// Fraction topics whose result is a whole number take decimal input too.
func TestIsCorrect_WholeFractionResultsAcceptDecimals(t *testing.T) {
	reg, err := generator.New(catalog.Default())
	require.NoError(t, err)
	c := Default()
	s := sampler.NewSeeded(23)

	topics := []string{
		"Adding Fractions with Like Denominators",
		"Adding Fractions with Unlike Denominators",
		"Multiplying Fractions",
		"Multiplying Fractions by Whole Numbers",
		"Dividing Unit Fractions",
		"Dividing Fractions",
	}
	seen := 0
	for _, topic := range topics {
		if !reg.Has(topic) {
			continue
		}
		for i := 0; i < 300; i++ {
			p, err := reg.GenerateWith(s, topic)
			require.NoError(t, err)

			v, ok := ParseNumber(p.Answer.String())
			if !ok || v != math.Trunc(v) {
				continue
			}
			seen++
			assert.Equal(t, problem.KindNumeric, p.Answer.Kind, "%s: %q", topic, p.Display)
			in := strconv.FormatFloat(v, 'f', 1, 64)
			ok, err = c.IsCorrect(p, in)
			require.NoError(t, err)
			assert.True(t, ok, "%s: %q rejects %q", topic, p.Display, in)
		}
	}
	assert.NotZero(t, seen)
}

func TestIsCorrect_Categorical(t *testing.T) {
	c := Default()
	p := problem.Categorical("Is 7 prime or composite?", "prime")

	ok, err := c.IsCorrect(p, " Prime ")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.IsCorrect(p, "composite")
	require.NoError(t, err)
	assert.False(t, ok)

	p = problem.Categorical("Simplify", "7x + 2")
	ok, _ = c.IsCorrect(p, "7x+2")
	assert.True(t, ok)
}

func TestIsCorrect_EmptyInput(t *testing.T) {
	c := Default()
	for _, in := range []string{"", "   ", "\t\n"} {
		ok, err := c.IsCorrect(problem.Numeric("1 + 1 = ?", 2), in)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestIsCorrect_InvalidProblem(t *testing.T) {
	c := Default()
	bad := []problem.Problem{
		{Topic: "Addition"},
		{Topic: "Addition", Answer: problem.Answer{Kind: problem.KindNumeric, Number: math.NaN()}},
		{Topic: "Ratios", Answer: problem.Answer{Kind: problem.KindCategorical}},
	}
	for _, p := range bad {
		_, err := c.IsCorrect(p, "1")
		var invalid *InvalidProblemError
		assert.True(t, errors.As(err, &invalid))
	}
}

func TestIsCorrect_CustomTolerance(t *testing.T) {
	c := New(Config{AbsTolerance: 0.5, RelTolerance: 0.01, SmallValueThreshold: 1})

	ok, _ := c.IsCorrect(problem.Numeric("?", 0.5), "0.9")
	assert.True(t, ok)

	ok, _ = c.IsCorrect(problem.Numeric("?", 100), "100.9")
	assert.True(t, ok)

	ok, _ = c.IsCorrect(problem.Numeric("?", 100), "101.5")
	assert.False(t, ok)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("MATHLAB_ABS_TOLERANCE", "0.02")
	t.Setenv("MATHLAB_REL_TOLERANCE", "bogus")
	t.Setenv("MATHLAB_SMALL_VALUE", "-1")

	cfg := ConfigFromEnv()
	assert.Equal(t, 0.02, cfg.AbsTolerance)
	assert.Equal(t, DefaultConfig().RelTolerance, cfg.RelTolerance)
	assert.Equal(t, DefaultConfig().SmallValueThreshold, cfg.SmallValueThreshold)
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"42", 42, true},
		{"-3.5", -3.5, true},
		{"1,000,000", 1_000_000, true},
		{"7/8", 0.875, true},
		{"-1 1/2", -1.5, true},
		{"2 3/4", 2.75, true},
		{"$12.50", 12.5, true},
		{"inf", 0, false},
		{"", 0, false},
		{"4 R3", 0, false},
		{"36 inches", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseNumber(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if tt.ok {
			assert.InDelta(t, tt.want, got, 1e-9, tt.in)
		}
	}
}

// Every generated problem must accept its own canonical answer.
func TestIsCorrect_GeneratedProblemsAcceptCanonicalAnswer(t *testing.T) {
	reg, err := generator.New(catalog.Default())
	require.NoError(t, err)
	c := Default()
	s := sampler.NewSeeded(11)

	for _, topic := range reg.Topics() {
		for i := 0; i < 50; i++ {
			p, err := reg.GenerateWith(s, topic)
			require.NoError(t, err)

			ok, err := c.IsCorrect(p, p.Answer.String())
			require.NoError(t, err)
			require.True(t, ok, "%s: %q rejects %q", topic, p.Display, p.Answer.String())

			for _, a := range p.AcceptedAnswers {
				ok, _ := c.IsCorrect(p, a)
				require.True(t, ok, "%s: accepted %q rejected", topic, a)
			}
		}
	}
}

func TestEndToEnd_Addition(t *testing.T) {
	c := Default()
	p := problem.Numeric("47 + 38 = ?", 85)

	ok, err := c.IsCorrect(p, "85")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.IsCorrect(p, "84")
	require.NoError(t, err)
	assert.False(t, ok)
}
