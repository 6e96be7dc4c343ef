package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/mathlab/internal/screen"
)

type stubScreen struct {
	title   string
	initRan bool
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPush(t *testing.T) {
	r := New(&stubScreen{title: "first"})
	second := &stubScreen{title: "second"}
	r.Push(second)

	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "second", r.Active().Title())
	assert.True(t, second.initRan)
}

func TestPop(t *testing.T) {
	r := New(&stubScreen{title: "first"})
	r.Push(&stubScreen{title: "second"})
	r.Pop()

	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "first", r.Active().Title())
}

func TestPopKeepsBottomScreen(t *testing.T) {
	r := New(&stubScreen{title: "first"})
	r.Pop()

	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "first", r.View(80, 24))
}

func TestReplace(t *testing.T) {
	r := New(&stubScreen{title: "first"})
	r.Push(&stubScreen{title: "second"})

	third := &stubScreen{title: "third"}
	r.Update(ReplaceScreenMsg{Screen: third})

	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "third", r.Active().Title())
	assert.True(t, third.initRan)
}

func TestNavigationCommands(t *testing.T) {
	r := New(&stubScreen{title: "first"})
	second := &stubScreen{title: "second"}

	r.Update(Push(second)())
	assert.Equal(t, "second", r.Active().Title())

	r.Update(Pop()())
	assert.Equal(t, "first", r.Active().Title())
}

func TestUpdateForwardsToActive(t *testing.T) {
	first := &stubScreen{title: "first"}
	r := New(first)
	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})

	assert.Equal(t, 1, first.updates)
}
