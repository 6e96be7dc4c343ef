package explain

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathlab/internal/llm"
	"github.com/abhisek/mathlab/internal/problem"
)

func additionProblem() problem.Problem {
	p := problem.Numeric("47 + 38 = ?", 85).
		WithSteps("Add the ones: 7 + 8 = 15, write 5 carry 1", "Add the tens: 4 + 3 + 1 = 8")
	p.Topic = "Addition"
	return p
}

func TestWalkthrough(t *testing.T) {
	e := Walkthrough(additionProblem())
	assert.Equal(t, SourceSteps, e.Source)
	assert.Equal(t, []string{
		"Add the ones: 7 + 8 = 15, write 5 carry 1",
		"Add the tens: 4 + 3 + 1 = 8",
		"Answer: 85",
	}, e.Steps)
}

func TestWalkthrough_NoSteps(t *testing.T) {
	e := Walkthrough(problem.Categorical("Is 7 even or odd?", "odd"))
	assert.Equal(t, []string{"Answer: odd"}, e.Steps)
}

func TestTutor_UsesProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"steps":["Start with 47.","Add 38 by adding 40 then taking away 2."," "],"tip":"Round to friendly numbers! "}`),
	})
	tutor := NewTutor(mock, nil)

	e := tutor.Explain(context.Background(), additionProblem(), "Grade 2")
	assert.Equal(t, SourceTutor, e.Source)
	assert.Equal(t, []string{"Start with 47.", "Add 38 by adding 40 then taking away 2.", "Answer: 85"}, e.Steps)
	assert.Equal(t, "Round to friendly numbers!", e.Tip)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "walkthrough", calls[0].Schema.Name)
	assert.Contains(t, calls[0].Messages[0].Content, "Problem: 47 + 38 = ?")
	assert.Contains(t, calls[0].Messages[0].Content, "Correct answer: 85")
	assert.Contains(t, calls[0].Messages[0].Content, "Grade: Grade 2")
}

func TestTutor_FallsBack(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"provider error", llm.MockResponse{Err: &llm.UnavailableError{}}},
		{"schema mismatch", llm.MockResponse{Content: json.RawMessage(`{"tip":"hi"}`)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tutor := NewTutor(llm.NewMockProvider(tt.resp), nil)
			e := tutor.Explain(context.Background(), additionProblem(), "Grade 2")
			assert.Equal(t, Walkthrough(additionProblem()), e)
		})
	}
}

func TestTutor_NilProvider(t *testing.T) {
	var nilTutor *Tutor
	assert.Equal(t, SourceSteps, nilTutor.Explain(context.Background(), additionProblem(), "Grade 2").Source)
	assert.Equal(t, SourceSteps, NewTutor(nil, nil).Explain(context.Background(), additionProblem(), "Grade 2").Source)
}
