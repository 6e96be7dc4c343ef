// Package practice is the answer loop for one topic.
package practice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathlab/internal/explain"
	"github.com/abhisek/mathlab/internal/problem"
	"github.com/abhisek/mathlab/internal/router"
	"github.com/abhisek/mathlab/internal/screen"
	"github.com/abhisek/mathlab/internal/session"
	"github.com/abhisek/mathlab/internal/stats"
	"github.com/abhisek/mathlab/internal/ui/components"
	"github.com/abhisek/mathlab/internal/ui/layout"
	"github.com/abhisek/mathlab/internal/ui/theme"
)

type phase int

const (
	phaseAnswering phase = iota
	phaseFeedback
	phaseConfirmReset
	phaseFailed
)

// explainedMsg carries a tutor explanation for the problem with ID.
type explainedMsg struct {
	problemID string
	exp       explain.Explanation
}

// PracticeScreen shows one problem at a time from the session topic.
type PracticeScreen struct {
	sess      *session.Session
	tutor     *explain.Tutor
	gradeName string

	phase  phase
	resume phase
	input  components.AnswerInput

	current problem.Problem
	verdict *session.Verdict
	notice  string
	err     error

	explanation *explain.Explanation
	explaining  bool
}

var (
	_ screen.Screen        = (*PracticeScreen)(nil)
	_ screen.InputCapturer = (*PracticeScreen)(nil)
)

// New returns a practice screen over sess. tutor may be nil, in which
// case only the recorded walkthrough is available.
func New(sess *session.Session, tutor *explain.Tutor, gradeName string) *PracticeScreen {
	return &PracticeScreen{
		sess:      sess,
		tutor:     tutor,
		gradeName: gradeName,
		input:     components.NewAnswerInput("your answer", 24),
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	s.next()
	return s.input.Focus()
}

// next loads a fresh problem, keeping an unanswered one when present.
func (s *PracticeScreen) next() {
	s.verdict = nil
	s.explanation = nil
	s.explaining = false
	s.notice = ""
	s.input.Clear()

	if s.sess.Current != nil {
		s.current = *s.sess.Current
		s.phase = phaseAnswering
		return
	}
	p, err := s.sess.Next(context.Background())
	if err != nil {
		s.err = err
		s.phase = phaseFailed
		return
	}
	s.err = nil
	s.current = p
	s.phase = phaseAnswering
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case explainedMsg:
		if msg.problemID == s.current.ID {
			s.explanation = &msg.exp
			s.explaining = false
		}
		return s, nil
	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseAnswering {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.phase == phaseConfirmReset {
		switch key {
		case "y", "Y":
			if err := s.sess.Reset(context.Background(), true); err != nil {
				s.notice = err.Error()
			} else {
				s.notice = "Stats reset."
			}
			s.phase = s.resume
		case "n", "N", "esc":
			s.phase = s.resume
		}
		return s, nil
	}

	switch key {
	case "esc":
		return s, router.Pop()
	case "ctrl+r":
		s.resume = s.phase
		s.phase = phaseConfirmReset
		return s, nil
	}

	switch s.phase {
	case phaseAnswering:
		if key == "enter" {
			return s, s.submit()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case phaseFeedback:
		switch key {
		case "enter", "n":
			s.next()
			return s, nil
		case "t":
			return s, s.askTutor()
		}

	case phaseFailed:
		if key == "enter" {
			s.next()
		}
	}
	return s, nil
}

func (s *PracticeScreen) submit() tea.Cmd {
	v, err := s.sess.Submit(context.Background(), s.input.Value())
	switch {
	case errors.Is(err, session.ErrNoProblem):
		s.next()
		return nil
	case err != nil:
		s.err = err
		s.phase = phaseFailed
		return nil
	}

	switch v.Outcome {
	case session.Empty:
		s.notice = "Type an answer first."
	case session.Regenerated:
		s.notice = "That problem could not be checked, so here is a new one."
		s.current = v.Problem
		s.input.Clear()
	default:
		s.notice = ""
		s.verdict = &v
		s.phase = phaseFeedback
		if v.Outcome == session.Incorrect {
			exp := explain.Walkthrough(v.Problem)
			s.explanation = &exp
		}
	}
	return nil
}

func (s *PracticeScreen) askTutor() tea.Cmd {
	if s.tutor == nil || s.explaining || s.verdict == nil {
		return nil
	}
	if s.explanation != nil && s.explanation.Source == explain.SourceTutor {
		return nil
	}
	s.explaining = true
	p, tutor, grade := s.current, s.tutor, s.gradeName
	return func() tea.Msg {
		return explainedMsg{problemID: p.ID, exp: tutor.Explain(context.Background(), p, grade)}
	}
}

func (s *PracticeScreen) View(width, height int) string {
	var sections []string
	sections = append(sections, theme.Subtitle.Render(s.gradeName+" · "+s.sess.Topic))

	if s.phase == phaseFailed {
		sections = append(sections,
			theme.Incorrect.Render("Could not make a problem"),
			theme.Body.Render(fmt.Sprint(s.err)),
			theme.Hint.Render("Press Enter to try again"))
		return place(width, height, sections)
	}

	sections = append(sections, theme.Problem.Width(min(width-4, 72)).Render(s.current.Display))

	switch s.phase {
	case phaseAnswering:
		sections = append(sections, s.input.View())
	case phaseFeedback:
		sections = append(sections, s.feedbackView())
	case phaseConfirmReset:
		sections = append(sections, theme.Warning.Render("Reset score, streak and accuracy? (y/n)"))
	}

	if s.notice != "" {
		sections = append(sections, theme.Hint.Render(s.notice))
	}
	sections = append(sections, s.statsLine())
	return place(width, height, sections)
}

func (s *PracticeScreen) feedbackView() string {
	v := s.verdict
	var b strings.Builder
	if v.Outcome == session.Correct {
		b.WriteString(theme.Correct.Render("Correct! +" + fmt.Sprint(stats.PointsPerCorrect)))
		if v.Milestone {
			b.WriteString("\n" + theme.Warning.Render(fmt.Sprintf("%d in a row!", v.Stats.Streak)))
		}
	} else {
		b.WriteString(theme.Incorrect.Render("Not quite. The answer is " + v.Expected))
	}

	switch {
	case s.explaining:
		b.WriteString("\n\n" + theme.Hint.Render("Asking the tutor..."))
	case s.explanation != nil:
		b.WriteString("\n")
		for i, step := range s.explanation.Steps {
			b.WriteString(fmt.Sprintf("\n%d. %s", i+1, theme.Body.Render(step)))
		}
		if s.explanation.Tip != "" {
			b.WriteString("\n\n" + theme.Hint.Render("Tip: "+s.explanation.Tip))
		}
	}
	return b.String()
}

func (s *PracticeScreen) statsLine() string {
	st := s.sess.Stats
	line := fmt.Sprintf("Score %d · Streak %d · Accuracy %.0f%%", st.Score, st.Streak, st.Accuracy()*100)
	if st.Streak > 0 {
		line += fmt.Sprintf(" · next goal %d", stats.NextStreakMilestone(st.Streak))
	}
	return theme.Subtitle.Render(line)
}

func place(width, height int, sections []string) string {
	body := lipgloss.JoinVertical(lipgloss.Left, strings.Join(sections, "\n\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *PracticeScreen) Title() string {
	return s.sess.Topic
}

// CapturingInput is always true: letters are answers, not shortcuts.
func (s *PracticeScreen) CapturingInput() bool {
	return true
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseFeedback:
		hints := []layout.KeyHint{{Key: "Enter", Description: "Next"}}
		if s.tutor != nil {
			hints = append(hints, layout.KeyHint{Key: "t", Description: "Ask tutor"})
		}
		return append(hints,
			layout.KeyHint{Key: "Ctrl+R", Description: "Reset"},
			layout.KeyHint{Key: "Esc", Description: "Topics"})
	case phaseConfirmReset:
		return []layout.KeyHint{{Key: "y", Description: "Reset"}, {Key: "n", Description: "Cancel"}}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Ctrl+R", Description: "Reset"},
			{Key: "Esc", Description: "Topics"},
		}
	}
}
