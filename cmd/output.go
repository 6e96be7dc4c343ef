package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/itchyny/json2yaml"
	"github.com/tidwall/sjson"

	"github.com/abhisek/mathlab/internal/problem"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// problemDoc is the machine-readable form of a generated problem.
type problemDoc struct {
	ID       string   `json:"id"`
	Topic    string   `json:"topic"`
	Grade    int      `json:"grade"`
	Display  string   `json:"display"`
	Kind     string   `json:"kind"`
	Answer   string   `json:"answer,omitempty"`
	Accepted []string `json:"accepted,omitempty"`
	Steps    []string `json:"steps,omitempty"`
	Fallback bool     `json:"fallback,omitempty"`
}

func newProblemDoc(p problem.Problem, showAnswers bool) problemDoc {
	doc := problemDoc{
		ID:       p.ID,
		Topic:    p.Topic,
		Grade:    p.Grade,
		Display:  p.Display,
		Kind:     p.Answer.Kind.String(),
		Fallback: p.Fallback,
	}
	if showAnswers {
		doc.Answer = p.Answer.String()
		doc.Accepted = p.AcceptedAnswers
		doc.Steps = p.Metadata.Steps
	}
	return doc
}

// batchMeta is stamped into JSON and YAML output.
type batchMeta struct {
	Seed        uint64
	Seeded      bool
	GeneratedAt time.Time
}

// writeProblems renders problems in the requested format.
func writeProblems(w io.Writer, format string, problems []problem.Problem, showAnswers bool, meta batchMeta) error {
	switch format {
	case formatText:
		writeProblemsText(w, problems, showAnswers)
		return nil
	case formatJSON, formatYAML:
		data, err := problemsJSON(problems, showAnswers, meta)
		if err != nil {
			return err
		}
		if format == formatJSON {
			var buf bytes.Buffer
			if err := json.Indent(&buf, data, "", "  "); err != nil {
				return err
			}
			buf.WriteByte('\n')
			_, err = buf.WriteTo(w)
			return err
		}
		return json2yaml.Convert(w, bytes.NewReader(data))
	default:
		return fmt.Errorf("unknown format %q: use text, json or yaml", format)
	}
}

func problemsJSON(problems []problem.Problem, showAnswers bool, meta batchMeta) ([]byte, error) {
	docs := make([]problemDoc, 0, len(problems))
	for _, p := range problems {
		docs = append(docs, newProblemDoc(p, showAnswers))
	}
	data, err := json.Marshal(map[string]any{"problems": docs})
	if err != nil {
		return nil, fmt.Errorf("marshal problems: %w", err)
	}

	data, err = sjson.SetBytes(data, "meta.generated_at", meta.GeneratedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	data, err = sjson.SetBytes(data, "meta.count", len(problems))
	if err != nil {
		return nil, err
	}
	if meta.Seeded {
		data, err = sjson.SetBytes(data, "meta.seed", meta.Seed)
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}

func writeProblemsText(w io.Writer, problems []problem.Problem, showAnswers bool) {
	label := color.New(color.FgHiCyan, color.Bold)
	dim := color.New(color.FgWhite)
	ans := color.New(color.FgGreen)

	for i, p := range problems {
		if i > 0 {
			fmt.Fprintln(w)
		}
		label.Fprintf(w, "%d. ", i+1)
		fmt.Fprintln(w, p.Display)
		if !showAnswers {
			continue
		}
		ans.Fprintf(w, "   answer: %s\n", p.Answer.String())
		for _, step := range p.Metadata.Steps {
			dim.Fprintf(w, "   - %s\n", step)
		}
	}
}
