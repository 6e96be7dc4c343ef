// Package session carries one learner's practice context: the chosen
// grade and topic, the current problem and the running stats.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/mathlab/internal/answer"
	"github.com/abhisek/mathlab/internal/generator"
	"github.com/abhisek/mathlab/internal/logger"
	"github.com/abhisek/mathlab/internal/problem"
	"github.com/abhisek/mathlab/internal/sampler"
	"github.com/abhisek/mathlab/internal/stats"
	"github.com/abhisek/mathlab/internal/store"
)

var (
	// ErrNoProblem is returned by Submit before the first Next.
	ErrNoProblem = errors.New("no current problem")

	// ErrProblemOpen is returned when an explanation is asked for before
	// the current problem is answered.
	ErrProblemOpen = errors.New("answer the current problem first")

	// ErrResetNotConfirmed is returned by Reset without confirmation.
	ErrResetNotConfirmed = errors.New("reset requires confirmation")
)

// Recorder persists stats and attempt history. *store.Store implements it.
type Recorder interface {
	SaveStats(ctx context.Context, st stats.State) error
	AppendAttempt(ctx context.Context, a store.Attempt) error
}

// Outcome classifies a submission.
type Outcome int

const (
	Correct Outcome = iota
	Incorrect
	// Empty input leaves stats untouched.
	Empty
	// Regenerated means the problem could not be checked and was replaced.
	Regenerated
)

func (o Outcome) String() string {
	switch o {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	case Empty:
		return "empty"
	case Regenerated:
		return "regenerated"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Verdict is the result of Submit.
type Verdict struct {
	Outcome  Outcome
	Problem  problem.Problem
	Expected string
	Stats    stats.State
	// Milestone is set when a correct answer lands the streak on a milestone.
	Milestone bool
}

// Options wires a Session's collaborators. Registry is required.
type Options struct {
	Registry *generator.Registry
	Checker  *answer.Checker
	Recorder Recorder
	Logger   *logger.Logger
	// Sampler, when set, makes generation reproducible.
	Sampler *sampler.Sampler
	// Stats seeds the running counters, usually from the store.
	Stats stats.State
}

// Session is not safe for concurrent use; callers serialize access.
type Session struct {
	ID      string
	Grade   int
	Topic   string
	Stats   stats.State
	Current *problem.Problem
	Last    *Verdict

	reg     *generator.Registry
	checker *answer.Checker
	rec     Recorder
	log     *logger.Logger
	sampler *sampler.Sampler
}

// New starts a session practicing topic.
func New(grade int, topic string, opts Options) *Session {
	s := &Session{
		ID:      uuid.NewString(),
		Grade:   grade,
		Topic:   topic,
		Stats:   opts.Stats.Clamp(),
		reg:     opts.Registry,
		checker: opts.Checker,
		rec:     opts.Recorder,
		log:     opts.Logger,
		sampler: opts.Sampler,
	}
	if s.checker == nil {
		s.checker = answer.Default()
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	s.log = s.log.With("session", s.ID)
	return s
}

// SetTopic switches topic and drops the current problem.
func (s *Session) SetTopic(grade int, topic string) {
	s.Grade = grade
	s.Topic = topic
	s.Current = nil
	s.Last = nil
}

// Next generates a problem for the session topic and makes it current.
// A failed generation is retried once.
func (s *Session) Next(ctx context.Context) (problem.Problem, error) {
	if err := ctx.Err(); err != nil {
		return problem.Problem{}, err
	}

	p, err := s.generate()
	var genErr *generator.GenerationError
	if errors.As(err, &genErr) {
		s.log.Warn("generation failed, retrying", "topic", s.Topic, "error", err)
		p, err = s.generate()
	}
	if err != nil {
		return problem.Problem{}, fmt.Errorf("generate %q: %w", s.Topic, err)
	}

	s.Current = &p
	return p, nil
}

func (s *Session) generate() (problem.Problem, error) {
	if s.sampler != nil {
		return s.reg.GenerateWith(s.sampler, s.Topic)
	}
	return s.reg.Generate(s.Topic)
}

// Submit grades input against the current problem. Graded answers update
// the stats, persist them and clear the current problem. Empty input is
// reported without penalty. An uncheckable problem is replaced and
// reported as Regenerated.
func (s *Session) Submit(ctx context.Context, input string) (Verdict, error) {
	if s.Current == nil {
		return Verdict{}, ErrNoProblem
	}
	p := *s.Current

	if problem.Normalize(input) == "" {
		return Verdict{Outcome: Empty, Problem: p, Stats: s.Stats}, nil
	}

	correct, err := s.checker.IsCorrect(p, input)
	var invalid *answer.InvalidProblemError
	if errors.As(err, &invalid) {
		s.log.Warn("uncheckable problem, regenerating", "topic", p.Topic, "kind", invalid.Kind.String())
		next, err := s.Next(ctx)
		if err != nil {
			return Verdict{}, err
		}
		return Verdict{Outcome: Regenerated, Problem: next, Stats: s.Stats}, nil
	}
	if err != nil {
		return Verdict{}, err
	}

	s.Stats = s.Stats.RecordAttempt(correct)
	v := Verdict{
		Outcome:   Incorrect,
		Problem:   p,
		Expected:  p.Answer.String(),
		Stats:     s.Stats,
		Milestone: correct && stats.IsMilestone(s.Stats.Streak),
	}
	if correct {
		v.Outcome = Correct
	}
	s.Current = nil
	s.Last = &v

	s.log.Debug("answer graded", "topic", p.Topic, "correct", correct, "streak", s.Stats.Streak)
	s.record(ctx, store.Attempt{
		SessionID: s.ID,
		Topic:     p.Topic,
		Grade:     p.Grade,
		ProblemID: p.ID,
		Display:   p.Display,
		Expected:  v.Expected,
		Input:     input,
		Correct:   correct,
	})
	return v, nil
}

// Reset zeroes the stats. It is the only path that lowers them and
// requires explicit confirmation.
func (s *Session) Reset(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrResetNotConfirmed
	}
	s.Stats = s.Stats.Reset()
	s.Last = nil
	if s.rec != nil {
		if err := s.rec.SaveStats(ctx, s.Stats); err != nil {
			s.log.Error("persist reset failed", "error", err)
		}
	}
	s.log.Info("stats reset")
	return nil
}

// record persists after a graded answer. Storage failures are logged;
// practice continues on in-memory stats.
func (s *Session) record(ctx context.Context, a store.Attempt) {
	if s.rec == nil {
		return
	}
	if err := s.rec.SaveStats(ctx, s.Stats); err != nil {
		s.log.Error("persist stats failed", "error", err)
	}
	if err := s.rec.AppendAttempt(ctx, a); err != nil {
		s.log.Error("persist attempt failed", "error", err)
	}
}
