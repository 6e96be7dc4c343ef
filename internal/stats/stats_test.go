package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAttempt(t *testing.T) {
	s := State{}.RecordAttempt(true).RecordAttempt(true)
	assert.Equal(t, State{Streak: 2, Score: 20, TotalAttempts: 2, CorrectAnswers: 2}, s)

	s = s.RecordAttempt(false)
	assert.Equal(t, State{Streak: 0, Score: 20, TotalAttempts: 3, CorrectAnswers: 2}, s)
}

func TestRecordAttempt_Monotonic(t *testing.T) {
	s := State{}
	pattern := []bool{true, false, true, true, false, false, true, true, true, false}
	for i := 0; i < 100; i++ {
		prev := s
		s = s.RecordAttempt(pattern[i%len(pattern)])

		assert.Equal(t, prev.TotalAttempts+1, s.TotalAttempts)
		assert.GreaterOrEqual(t, s.CorrectAnswers, prev.CorrectAnswers)
		assert.GreaterOrEqual(t, s.Score, prev.Score)
		assert.LessOrEqual(t, s.CorrectAnswers, s.TotalAttempts)
		assert.LessOrEqual(t, s.Streak, s.CorrectAnswers)
	}
}

func TestRecordAttempt_IncorrectKeepsCorrectCount(t *testing.T) {
	s := State{Streak: 3, Score: 40, TotalAttempts: 6, CorrectAnswers: 4}
	got := s.RecordAttempt(false)
	assert.Equal(t, 7, got.TotalAttempts)
	assert.Equal(t, 4, got.CorrectAnswers)
	assert.Equal(t, 0, got.Streak)
	assert.Equal(t, 40, got.Score)
}

func TestReset(t *testing.T) {
	s := State{Streak: 5, Score: 50, TotalAttempts: 10, CorrectAnswers: 8}
	assert.Equal(t, State{}, s.Reset())
}

func TestAccuracy(t *testing.T) {
	assert.Zero(t, State{}.Accuracy())
	assert.InDelta(t, 0.8, State{TotalAttempts: 10, CorrectAnswers: 8}.Accuracy(), 1e-9)
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name string
		in   State
		want State
	}{
		{"negatives", State{Streak: -1, Score: -5, TotalAttempts: -2, CorrectAnswers: -3}, State{}},
		{"correct above total", State{TotalAttempts: 3, CorrectAnswers: 9, Streak: 2}, State{TotalAttempts: 3, CorrectAnswers: 3, Streak: 2}},
		{"streak above correct", State{TotalAttempts: 5, CorrectAnswers: 2, Streak: 4}, State{TotalAttempts: 5, CorrectAnswers: 2, Streak: 2}},
		{"valid", State{Streak: 1, Score: 30, TotalAttempts: 4, CorrectAnswers: 3}, State{Streak: 1, Score: 30, TotalAttempts: 4, CorrectAnswers: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Clamp())
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		data string
		want State
	}{
		{"full", `{"streak":2,"score":50,"totalAttempts":7,"correctAnswers":5}`, State{2, 50, 7, 5}},
		{"missing fields", `{"score":30}`, State{Score: 30}},
		{"extra fields", `{"score":10,"theme":"dark","totalAttempts":1,"correctAnswers":1,"streak":1}`, State{1, 10, 1, 1}},
		{"wrong types", `{"score":"lots","totalAttempts":true}`, State{}},
		{"corrupt", `{"score":`, State{}},
		{"empty", ``, State{}},
		{"negative", `{"score":-20,"totalAttempts":4,"correctAnswers":6}`, State{TotalAttempts: 4, CorrectAnswers: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode([]byte(tt.data)))
		})
	}
}

func TestEncode_FieldNames(t *testing.T) {
	b, err := State{Streak: 1, Score: 10, TotalAttempts: 2, CorrectAnswers: 1}.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"streak":1,"score":10,"totalAttempts":2,"correctAnswers":1}`, string(b))
}

func TestNextStreakMilestone(t *testing.T) {
	tests := []struct{ current, want int }{
		{0, 5}, {4, 5}, {5, 10}, {9, 10}, {10, 15}, {15, 20}, {19, 20}, {20, 25}, {24, 25}, {25, 30},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NextStreakMilestone(tt.current), "current=%d", tt.current)
	}
}

func TestIsMilestone(t *testing.T) {
	assert.False(t, IsMilestone(0))
	assert.False(t, IsMilestone(4))
	assert.True(t, IsMilestone(5))
	assert.True(t, IsMilestone(20))
}
