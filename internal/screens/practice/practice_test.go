package practice

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathlab/internal/catalog"
	"github.com/abhisek/mathlab/internal/explain"
	"github.com/abhisek/mathlab/internal/generator"
	"github.com/abhisek/mathlab/internal/llm"
	"github.com/abhisek/mathlab/internal/router"
	"github.com/abhisek/mathlab/internal/sampler"
	"github.com/abhisek/mathlab/internal/session"
	"github.com/abhisek/mathlab/internal/stats"
	"github.com/abhisek/mathlab/internal/store"
)

type memRecorder struct {
	saved    []stats.State
	attempts []store.Attempt
}

func (m *memRecorder) SaveStats(_ context.Context, st stats.State) error {
	m.saved = append(m.saved, st)
	return nil
}

func (m *memRecorder) AppendAttempt(_ context.Context, a store.Attempt) error {
	m.attempts = append(m.attempts, a)
	return nil
}

func newScreen(t *testing.T, tutor *explain.Tutor) (*PracticeScreen, *session.Session, *memRecorder) {
	t.Helper()
	reg, err := generator.New(catalog.Default())
	require.NoError(t, err)

	rec := &memRecorder{}
	sess := session.New(2, "Addition", session.Options{
		Registry: reg,
		Recorder: rec,
		Sampler:  sampler.NewSeeded(7),
	})
	s := New(sess, tutor, "Grade 2")
	s.Init()
	require.NotNil(t, sess.Current)
	return s, sess, rec
}

func press(s *PracticeScreen, key string) tea.Cmd {
	var msg tea.KeyPressMsg
	switch key {
	case "enter":
		msg = tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		msg = tea.KeyPressMsg{Code: tea.KeyEscape}
	case "ctrl+r":
		msg = tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}
	default:
		r := []rune(key)[0]
		msg = tea.KeyPressMsg{Code: r, Text: key}
	}
	_, cmd := s.Update(msg)
	return cmd
}

func answer(s *PracticeScreen, text string) {
	s.Update(tea.PasteMsg{Content: text})
	press(s, "enter")
}

func TestInitShowsProblem(t *testing.T) {
	s, sess, _ := newScreen(t, nil)

	assert.Equal(t, phaseAnswering, s.phase)
	assert.Equal(t, sess.Current.ID, s.current.ID)
	assert.Contains(t, s.View(100, 30), "Addition")
}

func TestCorrectAnswer(t *testing.T) {
	s, sess, rec := newScreen(t, nil)
	answer(s, sess.Current.Answer.String())

	assert.Equal(t, phaseFeedback, s.phase)
	require.NotNil(t, s.verdict)
	assert.Equal(t, session.Correct, s.verdict.Outcome)
	assert.Equal(t, stats.PointsPerCorrect, sess.Stats.Score)
	assert.Equal(t, 1, sess.Stats.Streak)
	assert.Len(t, rec.attempts, 1)
	assert.Contains(t, s.View(100, 30), "Correct!")

	first := s.current.ID
	press(s, "enter")
	assert.Equal(t, phaseAnswering, s.phase)
	assert.NotEqual(t, first, s.current.ID)
}

func TestIncorrectAnswerShowsWalkthrough(t *testing.T) {
	s, sess, _ := newScreen(t, nil)
	answer(s, "-99999")

	assert.Equal(t, session.Incorrect, s.verdict.Outcome)
	assert.Equal(t, 0, sess.Stats.Streak)
	assert.Equal(t, 1, sess.Stats.TotalAttempts)
	require.NotNil(t, s.explanation)
	assert.Equal(t, explain.SourceSteps, s.explanation.Source)
	assert.Contains(t, s.View(100, 40), "Not quite")
}

func TestEmptyAnswerHasNoPenalty(t *testing.T) {
	s, sess, rec := newScreen(t, nil)
	press(s, "enter")

	assert.Equal(t, phaseAnswering, s.phase)
	assert.Equal(t, stats.State{}, sess.Stats)
	assert.Empty(t, rec.attempts)
	assert.Equal(t, "Type an answer first.", s.notice)
}

func TestResetNeedsConfirmation(t *testing.T) {
	s, sess, _ := newScreen(t, nil)
	answer(s, sess.Current.Answer.String())
	require.Equal(t, stats.PointsPerCorrect, sess.Stats.Score)

	press(s, "ctrl+r")
	assert.Equal(t, phaseConfirmReset, s.phase)
	press(s, "n")
	assert.Equal(t, phaseFeedback, s.phase)
	assert.Equal(t, stats.PointsPerCorrect, sess.Stats.Score)

	press(s, "ctrl+r")
	press(s, "y")
	assert.Equal(t, phaseFeedback, s.phase)
	assert.Equal(t, stats.State{}, sess.Stats)
}

func TestTypingDoesNotTriggerShortcuts(t *testing.T) {
	s, _, _ := newScreen(t, nil)
	press(s, "t")
	press(s, "n")

	assert.Equal(t, phaseAnswering, s.phase)
	assert.Equal(t, "tn", s.input.Value())
}

func TestEscPops(t *testing.T) {
	s, _, _ := newScreen(t, nil)
	cmd := press(s, "esc")
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopScreenMsg{}, cmd())
}

func TestTutorExplanation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: []byte(`{"steps":["Line up the digits.","Add the ones."],"tip":"Count on from the bigger number."}`),
	})
	s, sess, _ := newScreen(t, explain.NewTutor(mock, nil))
	answer(s, sess.Current.Answer.String())

	cmd := press(s, "t")
	require.NotNil(t, cmd)
	assert.True(t, s.explaining)
	assert.Nil(t, press(s, "t"))

	s.Update(cmd())
	assert.False(t, s.explaining)
	require.NotNil(t, s.explanation)
	assert.Equal(t, explain.SourceTutor, s.explanation.Source)
	assert.Equal(t, "Count on from the bigger number.", s.explanation.Tip)
	assert.Len(t, mock.Calls(), 1)
}

func TestStaleExplanationIgnored(t *testing.T) {
	s, sess, _ := newScreen(t, nil)
	answer(s, sess.Current.Answer.String())

	s.Update(explainedMsg{problemID: "other", exp: explain.Explanation{Tip: "x"}})
	assert.Nil(t, s.explanation)
}
