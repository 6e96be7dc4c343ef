package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// AnswerInput is a focused single-line input for free-form answers such
// as "85", "3/4", "4 R3" or "odd".
type AnswerInput struct {
	model textinput.Model
}

// NewAnswerInput returns a focused input.
func NewAnswerInput(placeholder string, width int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 32
	ti.SetWidth(width)
	ti.Focus()
	return AnswerInput{model: ti}
}

// Focus returns the cursor blink command.
func (a *AnswerInput) Focus() tea.Cmd {
	return a.model.Focus()
}

func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	var cmd tea.Cmd
	a.model, cmd = a.model.Update(msg)
	return a, cmd
}

func (a AnswerInput) View() string {
	return a.model.View()
}

// Value returns the typed text.
func (a AnswerInput) Value() string {
	return a.model.Value()
}

// Clear empties the input.
func (a *AnswerInput) Clear() {
	a.model.Reset()
}
