package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathlab/internal/ui/layout"
)

// Screen is one page of the terminal UI.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area, excluding header and footer.
	View(width, height int) string

	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is implemented by screens that are reading text. While
// capturing, the app does not treat esc or q as navigation.
type InputCapturer interface {
	CapturingInput() bool
}
