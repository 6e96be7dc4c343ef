// Package home holds the grade and topic pickers.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathlab/internal/catalog"
	"github.com/abhisek/mathlab/internal/explain"
	"github.com/abhisek/mathlab/internal/router"
	"github.com/abhisek/mathlab/internal/screen"
	"github.com/abhisek/mathlab/internal/screens/practice"
	"github.com/abhisek/mathlab/internal/session"
	"github.com/abhisek/mathlab/internal/ui/components"
	"github.com/abhisek/mathlab/internal/ui/layout"
	"github.com/abhisek/mathlab/internal/ui/theme"
)

// HomeScreen lists the grades. It is the bottom of the screen stack.
type HomeScreen struct {
	sess  *session.Session
	cat   *catalog.Catalog
	tutor *explain.Tutor
	menu  components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New builds the grade menu. A session that already has a topic gets a
// "Continue" entry on top.
func New(sess *session.Session, cat *catalog.Catalog, tutor *explain.Tutor) *HomeScreen {
	h := &HomeScreen{sess: sess, cat: cat, tutor: tutor}

	var items []components.MenuItem
	if sess.Topic != "" {
		items = append(items, components.MenuItem{
			Label:  "Continue: " + sess.Topic,
			Detail: cat.GradeName(sess.Grade),
			Action: func() tea.Cmd {
				return router.Push(practice.New(sess, tutor, cat.GradeName(sess.Grade)))
			},
		})
	}
	for _, g := range cat.Grades() {
		items = append(items, components.MenuItem{
			Label:  cat.GradeName(g),
			Detail: fmt.Sprintf("%d topics", len(cat.ListTopics(g))),
			Action: func() tea.Cmd {
				return router.Push(NewTopics(sess, cat, tutor, g))
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Quit",
		Action: func() tea.Cmd { return tea.Quit },
	})

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	st := h.sess.Stats
	summary := theme.Card.Render(strings.Join([]string{
		theme.Body.Render(fmt.Sprintf("Score %d   Streak %d   Answered %d",
			st.Score, st.Streak, st.TotalAttempts)),
		components.ProgressBar{Label: "Accuracy", Percent: st.Accuracy(), Width: 48}.View(),
	}, "\n"))

	top := theme.Title.Render("Pick a grade") + "\n" + theme.Subtitle.Render("Practice problems from kindergarten through grade 8")
	menuHeight := max(height-lipgloss.Height(top)-lipgloss.Height(summary)-4, 3)

	body := lipgloss.JoinVertical(lipgloss.Left, top, "", h.menu.View(menuHeight), summary)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "q", Description: "Quit"},
	}
}
