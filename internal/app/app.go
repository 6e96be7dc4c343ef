// Package app wires the terminal UI around one practice session.
package app

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathlab/internal/explain"
	"github.com/abhisek/mathlab/internal/generator"
	"github.com/abhisek/mathlab/internal/logger"
	"github.com/abhisek/mathlab/internal/router"
	"github.com/abhisek/mathlab/internal/screen"
	"github.com/abhisek/mathlab/internal/screens/home"
	"github.com/abhisek/mathlab/internal/screens/practice"
	"github.com/abhisek/mathlab/internal/session"
	"github.com/abhisek/mathlab/internal/store"
	"github.com/abhisek/mathlab/internal/ui/layout"
)

// Options configures Run. Registry is required; Store may be nil for a
// throwaway session.
type Options struct {
	Registry *generator.Registry
	Store    *store.Store
	Tutor    *explain.Tutor
	Logger   *logger.Logger

	// Topic, when set, opens practice directly.
	Grade int
	Topic string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	sess   *session.Session
	width  int
	height int
}

func newAppModel(ctx context.Context, opts Options) (AppModel, error) {
	sessOpts := session.Options{
		Registry: opts.Registry,
		Logger:   opts.Logger,
	}
	if opts.Store != nil {
		st, err := opts.Store.LoadStats(ctx)
		if err != nil {
			return AppModel{}, err
		}
		sessOpts.Stats = st
		sessOpts.Recorder = opts.Store
	}

	sess := session.New(opts.Grade, opts.Topic, sessOpts)
	cat := opts.Registry.Catalog()
	r := router.New(home.New(sess, cat, opts.Tutor))
	if opts.Topic != "" {
		r.Push(practice.New(sess, opts.Tutor, cat.GradeName(opts.Grade)))
	}
	return AppModel{router: r, sess: sess}, nil
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.capturing() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "esc":
				if m.router.Depth() > 1 {
					return m, router.Pop()
				}
				return m, nil
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) capturing() bool {
	c, ok := m.router.Active().(screen.InputCapturer)
	return ok && c.CapturingInput()
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	header := layout.RenderHeader(active.Title(), m.sess.Stats.Score, m.sess.Stats.Streak, m.width)

	hints := []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	}
	footer := layout.RenderFooter(hints, m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the terminal UI and blocks until the user quits.
func Run(ctx context.Context, opts Options) error {
	model, err := newAppModel(ctx, opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
	return err
}
