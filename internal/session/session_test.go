package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathlab/internal/catalog"
	"github.com/abhisek/mathlab/internal/generator"
	"github.com/abhisek/mathlab/internal/problem"
	"github.com/abhisek/mathlab/internal/sampler"
	"github.com/abhisek/mathlab/internal/stats"
	"github.com/abhisek/mathlab/internal/store"
)

type fakeRecorder struct {
	saved    []stats.State
	attempts []store.Attempt
	err      error
}

func (f *fakeRecorder) SaveStats(_ context.Context, st stats.State) error {
	f.saved = append(f.saved, st)
	return f.err
}

func (f *fakeRecorder) AppendAttempt(_ context.Context, a store.Attempt) error {
	f.attempts = append(f.attempts, a)
	return f.err
}

func newTestSession(t *testing.T, topic string, rec Recorder) *Session {
	t.Helper()
	reg, err := generator.New(catalog.Default())
	require.NoError(t, err)
	return New(1, topic, Options{
		Registry: reg,
		Recorder: rec,
		Sampler:  sampler.NewSeeded(42),
	})
}

func TestNext(t *testing.T) {
	s := newTestSession(t, "Addition", nil)
	assert.NotEmpty(t, s.ID)

	p, err := s.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Addition", p.Topic)
	require.NotNil(t, s.Current)
	assert.Equal(t, p.ID, s.Current.ID)
}

func TestNext_UnknownTopicFallsBack(t *testing.T) {
	s := newTestSession(t, "Underwater Basket Weaving", nil)
	p, err := s.Next(context.Background())
	require.NoError(t, err)
	assert.True(t, p.Fallback)
	assert.Equal(t, generator.DefaultFallbackTopic, p.Topic)
}

func TestNext_CanceledContext(t *testing.T) {
	s := newTestSession(t, "Addition", nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, s.Current)
}

func TestSubmit_NoProblem(t *testing.T) {
	s := newTestSession(t, "Addition", nil)
	_, err := s.Submit(context.Background(), "5")
	assert.ErrorIs(t, err, ErrNoProblem)
}

func TestSubmit_Correct(t *testing.T) {
	rec := &fakeRecorder{}
	s := newTestSession(t, "Addition", rec)
	ctx := context.Background()

	p, err := s.Next(ctx)
	require.NoError(t, err)

	v, err := s.Submit(ctx, p.Answer.String())
	require.NoError(t, err)
	assert.Equal(t, Correct, v.Outcome)
	assert.Equal(t, stats.State{Streak: 1, Score: 10, TotalAttempts: 1, CorrectAnswers: 1}, v.Stats)
	assert.Equal(t, v.Stats, s.Stats)
	assert.Nil(t, s.Current)
	require.NotNil(t, s.Last)
	assert.Equal(t, Correct, s.Last.Outcome)

	require.Len(t, rec.saved, 1)
	assert.Equal(t, v.Stats, rec.saved[0])
	require.Len(t, rec.attempts, 1)
	assert.Equal(t, s.ID, rec.attempts[0].SessionID)
	assert.Equal(t, p.ID, rec.attempts[0].ProblemID)
	assert.True(t, rec.attempts[0].Correct)
}

func TestSubmit_Incorrect(t *testing.T) {
	rec := &fakeRecorder{}
	s := newTestSession(t, "Addition", rec)
	ctx := context.Background()

	p, err := s.Next(ctx)
	require.NoError(t, err)

	v, err := s.Submit(ctx, "banana")
	require.NoError(t, err)
	assert.Equal(t, Incorrect, v.Outcome)
	assert.Equal(t, p.Answer.String(), v.Expected)
	assert.Equal(t, stats.State{TotalAttempts: 1}, v.Stats)
	require.Len(t, rec.attempts, 1)
	assert.False(t, rec.attempts[0].Correct)
	assert.Equal(t, "banana", rec.attempts[0].Input)
}

func TestSubmit_EmptyIsNotPenalized(t *testing.T) {
	rec := &fakeRecorder{}
	s := newTestSession(t, "Addition", rec)
	ctx := context.Background()

	p, err := s.Next(ctx)
	require.NoError(t, err)

	v, err := s.Submit(ctx, "   ")
	require.NoError(t, err)
	assert.Equal(t, Empty, v.Outcome)
	assert.Equal(t, stats.State{}, s.Stats)
	assert.Empty(t, rec.saved)
	assert.Empty(t, rec.attempts)
	require.NotNil(t, s.Current)
	assert.Equal(t, p.ID, s.Current.ID)
}

func TestSubmit_InvalidProblemRegenerates(t *testing.T) {
	rec := &fakeRecorder{}
	s := newTestSession(t, "Addition", rec)
	s.Current = &problem.Problem{Topic: "Addition", Display: "broken"}

	v, err := s.Submit(context.Background(), "5")
	require.NoError(t, err)
	assert.Equal(t, Regenerated, v.Outcome)
	assert.True(t, v.Problem.Answer.Valid())
	require.NotNil(t, s.Current)
	assert.Equal(t, v.Problem.ID, s.Current.ID)
	assert.Equal(t, stats.State{}, s.Stats)
	assert.Empty(t, rec.attempts)
}

func TestSubmit_StoreFailureKeepsPracticing(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	s := newTestSession(t, "Addition", rec)
	ctx := context.Background()

	p, err := s.Next(ctx)
	require.NoError(t, err)
	v, err := s.Submit(ctx, p.Answer.String())
	require.NoError(t, err)
	assert.Equal(t, Correct, v.Outcome)
	assert.Equal(t, 1, s.Stats.CorrectAnswers)
}

func TestSubmit_Milestone(t *testing.T) {
	s := newTestSession(t, "Subtraction", nil)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		p, err := s.Next(ctx)
		require.NoError(t, err)
		v, err := s.Submit(ctx, p.Answer.String())
		require.NoError(t, err)
		assert.Equal(t, i == 5, v.Milestone, "answer %d", i)
	}
	assert.Equal(t, 5, s.Stats.Streak)
	assert.Equal(t, 50, s.Stats.Score)
}

func TestReset(t *testing.T) {
	rec := &fakeRecorder{}
	s := newTestSession(t, "Addition", rec)
	s.Stats = stats.State{Streak: 5, Score: 50, TotalAttempts: 10, CorrectAnswers: 8}
	ctx := context.Background()

	assert.ErrorIs(t, s.Reset(ctx, false), ErrResetNotConfirmed)
	assert.Equal(t, 50, s.Stats.Score)
	assert.Empty(t, rec.saved)

	require.NoError(t, s.Reset(ctx, true))
	assert.Equal(t, stats.State{}, s.Stats)
	require.Len(t, rec.saved, 1)
	assert.Equal(t, stats.State{}, rec.saved[0])
}

func TestNew_ClampsInitialStats(t *testing.T) {
	reg, err := generator.New(catalog.Default())
	require.NoError(t, err)
	s := New(3, "Multiplication", Options{
		Registry: reg,
		Stats:    stats.State{Streak: 7, Score: -4, TotalAttempts: 3, CorrectAnswers: 5},
	})
	assert.Equal(t, stats.State{Streak: 3, Score: 0, TotalAttempts: 3, CorrectAnswers: 3}, s.Stats)
}

func TestSetTopic(t *testing.T) {
	s := newTestSession(t, "Addition", nil)
	_, err := s.Next(context.Background())
	require.NoError(t, err)

	s.SetTopic(5, "Volume of Rectangular Prisms")
	assert.Nil(t, s.Current)
	assert.Equal(t, 5, s.Grade)

	p, err := s.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Volume of Rectangular Prisms", p.Topic)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "correct", Correct.String())
	assert.Equal(t, "regenerated", Regenerated.String())
	assert.Equal(t, "outcome(9)", Outcome(9).String())
}
