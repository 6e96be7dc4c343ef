package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathlab/internal/stats"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		require.NoError(t, db.QueryRow("PRAGMA "+tt.pragma).Scan(&got), tt.pragma)
		assert.Equal(t, tt.want, got, tt.pragma)
	}
}

func TestLoadStatsEmpty(t *testing.T) {
	s := openTestStore(t)
	st, err := s.LoadStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stats.State{}, st)
}

func TestSaveAndLoadStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	want := stats.State{Streak: 2, Score: 30, TotalAttempts: 4, CorrectAnswers: 3}
	require.NoError(t, s.SaveStats(ctx, want))

	got, err := s.LoadStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Second save overwrites the single row.
	want.TotalAttempts = 5
	require.NoError(t, s.SaveStats(ctx, want))
	got, err = s.LoadStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, got.TotalAttempts)

	var rows int
	require.NoError(t, s.DB().QueryRow("SELECT COUNT(*) FROM stats").Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestLoadStatsDamagedRow(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.DB().Exec(`INSERT INTO stats (id, data, updated_at) VALUES (1, '{"streak":-3,"score":"lots"', '')`)
	require.NoError(t, err)

	got, err := s.LoadStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, stats.State{}, got)

	_, err = s.DB().Exec(`UPDATE stats SET data = '{"streak":9,"score":40,"totalAttempts":2,"correctAnswers":5}' WHERE id = 1`)
	require.NoError(t, err)
	got, err = s.LoadStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, stats.State{Streak: 2, Score: 40, TotalAttempts: 2, CorrectAnswers: 2}, got)
}

func TestResetStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveStats(ctx, stats.State{Streak: 5, Score: 50, TotalAttempts: 10, CorrectAnswers: 8}))
	require.NoError(t, s.AppendAttempt(ctx, Attempt{SessionID: "s", Topic: "Addition", Correct: true}))
	require.NoError(t, s.ResetStats(ctx))

	got, err := s.LoadStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, stats.State{}, got)

	history, err := s.RecentAttempts(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestAttempts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	inputs := []Attempt{
		{SessionID: "a", Topic: "Addition", Grade: 1, ProblemID: "p1", Display: "2 + 3 = ?", Expected: "5", Input: "5", Correct: true},
		{SessionID: "a", Topic: "Addition", Grade: 1, ProblemID: "p2", Display: "4 + 4 = ?", Expected: "8", Input: "9"},
		{SessionID: "a", Topic: "Fractions", Grade: 4, ProblemID: "p3", Display: "1/2 + 1/4 = ?", Expected: "3/4", Input: "3/4", Correct: true},
	}
	for _, a := range inputs {
		require.NoError(t, s.AppendAttempt(ctx, a))
	}

	recent, err := s.RecentAttempts(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "p3", recent[0].ProblemID)
	assert.Equal(t, "p2", recent[1].ProblemID)
	assert.False(t, recent[1].Correct)
	assert.Equal(t, "9", recent[1].Input)
	assert.False(t, recent[0].CreatedAt.IsZero())

	acc, err := s.TopicAccuracy(ctx)
	require.NoError(t, err)
	assert.Equal(t, []TopicStat{
		{Topic: "Addition", Attempts: 2, Correct: 1},
		{Topic: "Fractions", Attempts: 1, Correct: 1},
	}, acc)
	assert.InDelta(t, 0.5, acc[0].Accuracy(), 1e-9)
	assert.Zero(t, TopicStat{}.Accuracy())
}

func TestLLMRequests(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "m", Purpose: "explain",
		InputTokens: 10, OutputTokens: 20, LatencyMs: 5, Success: true,
	}))
	require.NoError(t, s.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "m", Purpose: "explain",
		InputTokens: 3, ErrorMessage: "boom",
	}))

	u, err := s.LLMUsage(ctx)
	require.NoError(t, err)
	assert.Equal(t, LLMUsage{Requests: 2, Failures: 1, InputTokens: 13, OutputTokens: 20}, u)
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("MATHLAB_DB", filepath.Join(dir, "custom", "x.db"))
	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "custom", "x.db"), p)
	assert.DirExists(t, filepath.Join(dir, "custom"))

	t.Setenv("MATHLAB_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "mathlab", "mathlab.db"), p)
}
