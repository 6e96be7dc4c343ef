package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// Attempt is one submitted answer.
type Attempt struct {
	ID        int64
	SessionID string
	Topic     string
	Grade     int
	ProblemID string
	Display   string
	Expected  string
	Input     string
	Correct   bool
	CreatedAt time.Time
}

// TopicStat aggregates attempts for one topic.
type TopicStat struct {
	Topic    string
	Attempts int
	Correct  int
}

// Accuracy returns the correct fraction in [0, 1].
func (t TopicStat) Accuracy() float64 {
	if t.Attempts == 0 {
		return 0
	}
	return float64(t.Correct) / float64(t.Attempts)
}

var attemptColumns = []string{
	"id", "session_id", "topic", "grade", "problem_id",
	"display", "expected", "input", "correct", "created_at",
}

// AppendAttempt records a submitted answer.
func (s *Store) AppendAttempt(ctx context.Context, a Attempt) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	insert := builder().Insert("attempts").
		Columns(attemptColumns[1:]...).
		Values(a.SessionID, a.Topic, a.Grade, a.ProblemID,
			a.Display, a.Expected, a.Input, boolInt(a.Correct), timestamp(a.CreatedAt))
	if err := s.exec(ctx, insert); err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

// RecentAttempts returns up to limit attempts, newest first.
// A limit of zero returns the full history.
func (s *Store) RecentAttempts(ctx context.Context, limit int) ([]Attempt, error) {
	sel := builder().Select(attemptColumns...).
		From(entsql.Table("attempts")).
		OrderBy(entsql.Desc("id"))
	if limit > 0 {
		sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var (
			a       Attempt
			correct int
			created string
		)
		if err := rows.Scan(&a.ID, &a.SessionID, &a.Topic, &a.Grade, &a.ProblemID,
			&a.Display, &a.Expected, &a.Input, &correct, &created); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.Correct = correct != 0
		a.CreatedAt = parseTimestamp(created)
		out = append(out, a)
	}
	return out, rows.Err()
}

// TopicAccuracy aggregates the attempt history per topic, ordered by topic.
func (s *Store) TopicAccuracy(ctx context.Context) ([]TopicStat, error) {
	query, args := builder().Select(
		"topic",
		entsql.As(entsql.Count("*"), "attempts"),
		entsql.As(entsql.Sum("correct"), "correct"),
	).
		From(entsql.Table("attempts")).
		GroupBy("topic").
		OrderBy("topic").
		Query()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query topic accuracy: %w", err)
	}
	defer rows.Close()

	var out []TopicStat
	for rows.Next() {
		var t TopicStat
		if err := rows.Scan(&t.Topic, &t.Attempts, &t.Correct); err != nil {
			return nil, fmt.Errorf("scan topic accuracy: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
