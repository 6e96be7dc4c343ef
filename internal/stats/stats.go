// Package stats holds the learner's streak and score counters and the pure
// rules that update them.
package stats

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// PointsPerCorrect is added to Score for every correct answer.
const PointsPerCorrect = 10

// State is the persisted practice record. Streak and CorrectAnswers never
// exceed TotalAttempts, and no field is negative.
type State struct {
	Streak         int `json:"streak"`
	Score          int `json:"score"`
	TotalAttempts  int `json:"totalAttempts"`
	CorrectAnswers int `json:"correctAnswers"`
}

// RecordAttempt returns the state after one graded answer. Score never
// decreases here.
func (s State) RecordAttempt(correct bool) State {
	s.TotalAttempts++
	if correct {
		s.CorrectAnswers++
		s.Streak++
		s.Score += PointsPerCorrect
	} else {
		s.Streak = 0
	}
	return s
}

// Reset returns the zero state.
func (State) Reset() State {
	return State{}
}

// Accuracy is CorrectAnswers / TotalAttempts, or 0 before any attempt.
func (s State) Accuracy() float64 {
	if s.TotalAttempts == 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.TotalAttempts)
}

// Clamp repairs a state loaded from untrusted storage.
func (s State) Clamp() State {
	s.Streak = max(s.Streak, 0)
	s.Score = max(s.Score, 0)
	s.TotalAttempts = max(s.TotalAttempts, 0)
	s.CorrectAnswers = min(max(s.CorrectAnswers, 0), s.TotalAttempts)
	s.Streak = min(s.Streak, s.CorrectAnswers)
	return s
}

// Decode reads a stored state. Missing, extra or corrupt fields read as
// zero, and the result is clamped.
func Decode(data []byte) State {
	if !gjson.ValidBytes(data) {
		return State{}
	}
	doc := gjson.ParseBytes(data)
	return State{
		Streak:         intField(doc, "streak"),
		Score:          intField(doc, "score"),
		TotalAttempts:  intField(doc, "totalAttempts"),
		CorrectAnswers: intField(doc, "correctAnswers"),
	}.Clamp()
}

func intField(doc gjson.Result, path string) int {
	r := doc.Get(path)
	if r.Type != gjson.Number {
		return 0
	}
	return int(r.Int())
}

// Encode serializes exactly the four counters.
func (s State) Encode() ([]byte, error) {
	return json.Marshal(s)
}

// NextStreakMilestone returns the next streak milestone above current:
// 5, 10, 15, 20, then every 5.
func NextStreakMilestone(current int) int {
	for _, m := range []int{5, 10, 15, 20} {
		if m > current {
			return m
		}
	}
	return ((current / 5) + 1) * 5
}

// IsMilestone reports whether streak just reached a milestone.
func IsMilestone(streak int) bool {
	return streak > 0 && streak%5 == 0
}
