package home

import (
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

// TopicsScreen lists one grade's topics. Choosing a topic points the
// shared session at it and opens practice.
type TopicsScreen struct {
	grade int
	name  string
	menu  components.Menu
}

var _ screen.Screen = (*TopicsScreen)(nil)

func NewTopics(sess *session.Session, cat *catalog.Catalog, tutor *explain.Tutor, grade int) *TopicsScreen {
	name := cat.GradeName(grade)
	topics := cat.ListTopics(grade)

	items := make([]components.MenuItem, 0, len(topics))
	for _, topic := range topics {
		items = append(items, components.MenuItem{
			Label: topic,
			Action: func() tea.Cmd {
				sess.SetTopic(grade, topic)
				return router.Push(practice.New(sess, tutor, name))
			},
		})
	}
	return &TopicsScreen{grade: grade, name: name, menu: components.NewMenu(items)}
}

func (t *TopicsScreen) Init() tea.Cmd {
	return nil
}

func (t *TopicsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	t.menu, cmd = t.menu.Update(msg)
	return t, cmd
}

func (t *TopicsScreen) View(width, height int) string {
	top := theme.Title.Render(t.name) + "\n" + theme.Subtitle.Render("Choose a topic to practice")
	body := lipgloss.JoinVertical(lipgloss.Left, top, "", t.menu.View(height-lipgloss.Height(top)-2))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, body)
}

func (t *TopicsScreen) Title() string {
	return t.name
}

func (t *TopicsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Practice"},
		{Key: "Esc", Description: "Back"},
	}
}
