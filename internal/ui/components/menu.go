package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathlab/internal/ui/theme"
)

// MenuItem is one selectable row.
type MenuItem struct {
	Label  string
	Detail string
	Action func() tea.Cmd
}

// Menu is a vertical list with a cursor. Long lists scroll to keep the
// cursor visible.
type Menu struct {
	Items    []MenuItem
	Selected int
	offset   int
}

// NewMenu returns a menu with the first item selected.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update moves the cursor and runs the selected action on enter.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.Selected = (m.Selected - 1 + len(m.Items)) % len(m.Items)
	case "down", "j":
		m.Selected = (m.Selected + 1) % len(m.Items)
	case "home", "g":
		m.Selected = 0
	case "end", "G":
		m.Selected = len(m.Items) - 1
	case "enter":
		if action := m.Items[m.Selected].Action; action != nil {
			return m, action()
		}
	}
	return m, nil
}

// View renders at most height rows.
func (m *Menu) View(height int) string {
	if height <= 0 || height > len(m.Items) {
		height = len(m.Items)
	}
	if m.Selected < m.offset {
		m.offset = m.Selected
	}
	if m.Selected >= m.offset+height {
		m.offset = m.Selected - height + 1
	}

	var b strings.Builder
	for i := m.offset; i < m.offset+height && i < len(m.Items); i++ {
		item := m.Items[i]
		line := "    " + item.Label
		style := theme.Unselected
		if i == m.Selected {
			line = "  ▸ " + item.Label
			style = theme.Selected
		}
		b.WriteString(style.Render(line))
		if item.Detail != "" {
			b.WriteString("  " + theme.Subtitle.Render(item.Detail))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
