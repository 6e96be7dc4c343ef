// Package explain turns a problem into a worked example.
package explain

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/abhisek/mathlab/internal/llm"
	"github.com/abhisek/mathlab/internal/logger"
	"github.com/abhisek/mathlab/internal/problem"
)

// Source says where an Explanation came from.
type Source string

const (
	SourceSteps Source = "steps"
	SourceTutor Source = "tutor"
)

// Explanation is a walkthrough ending in the answer line.
type Explanation struct {
	Steps  []string `json:"steps"`
	Tip    string   `json:"tip,omitempty"`
	Source Source   `json:"source"`
}

// Walkthrough is the deterministic explanation: the generator's recorded
// steps followed by the answer.
func Walkthrough(p problem.Problem) Explanation {
	steps := make([]string, 0, len(p.Metadata.Steps)+1)
	steps = append(steps, p.Metadata.Steps...)
	steps = append(steps, answerLine(p))
	return Explanation{Steps: steps, Source: SourceSteps}
}

func answerLine(p problem.Problem) string {
	return "Answer: " + p.Answer.String()
}

const tutorSystem = `You are a patient math tutor for children. Explain how to solve the
problem in short numbered steps a child in the given grade can follow. Never
change the answer you are given. Finish with one encouraging tip.`

var walkthroughSchema = &llm.Schema{
	Name:        "walkthrough",
	Description: "A kid-friendly step-by-step solution",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"steps": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 1,
				"maxItems": 8,
			},
			"tip": map[string]any{"type": "string"},
		},
		"required":             []any{"steps", "tip"},
		"additionalProperties": false,
	},
}

// Tutor asks a language model for friendlier walkthroughs and falls back
// to Walkthrough whenever the model is unavailable.
type Tutor struct {
	provider  llm.Provider
	log       *logger.Logger
	maxTokens int
}

// NewTutor returns a Tutor. A nil provider always falls back.
func NewTutor(p llm.Provider, log *logger.Logger) *Tutor {
	if log == nil {
		log = logger.Nop()
	}
	return &Tutor{provider: p, log: log, maxTokens: 600}
}

// Explain never fails: provider errors produce the deterministic walkthrough.
func (t *Tutor) Explain(ctx context.Context, p problem.Problem, gradeName string) Explanation {
	fallback := Walkthrough(p)
	if t == nil || t.provider == nil {
		return fallback
	}

	req := llm.UserPrompt(tutorSystem, prompt(p, gradeName), walkthroughSchema, t.maxTokens)
	resp, err := t.provider.Generate(llm.WithPurpose(ctx, "explain"), req)
	if err != nil {
		t.log.Warn("tutor unavailable, using recorded steps", "topic", p.Topic, "error", err)
		return fallback
	}

	doc := gjson.ParseBytes(resp.Content)
	var steps []string
	for _, s := range doc.Get("steps").Array() {
		if text := strings.TrimSpace(s.String()); text != "" {
			steps = append(steps, text)
		}
	}
	if len(steps) == 0 {
		return fallback
	}
	// The recorded answer is authoritative.
	steps = append(steps, answerLine(p))

	return Explanation{
		Steps:  steps,
		Tip:    strings.TrimSpace(doc.Get("tip").String()),
		Source: SourceTutor,
	}
}

func prompt(p problem.Problem, gradeName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Grade: %s\nTopic: %s\nProblem: %s\nCorrect answer: %s\n",
		gradeName, p.Topic, p.Display, p.Answer.String())
	if len(p.Metadata.Steps) > 0 {
		b.WriteString("Worked steps:\n")
		for i, s := range p.Metadata.Steps {
			fmt.Fprintf(&b, "%d. %s\n", i+1, s)
		}
	}
	return b.String()
}
