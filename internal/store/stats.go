package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/mathlab/internal/stats"
)

const statsRowID = 1

// LoadStats returns the persisted learner stats. A missing row yields the
// zero state; a damaged row is decoded tolerantly and clamped.
func (s *Store) LoadStats(ctx context.Context) (stats.State, error) {
	query, args := builder().Select("data").
		From(entsql.Table("stats")).
		Where(entsql.EQ("id", statsRowID)).
		Query()

	var data string
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return stats.State{}, nil
	}
	if err != nil {
		return stats.State{}, fmt.Errorf("load stats: %w", err)
	}
	return stats.Decode([]byte(data)), nil
}

// SaveStats replaces the persisted learner stats.
func (s *Store) SaveStats(ctx context.Context, st stats.State) error {
	data, err := st.Clamp().Encode()
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}

	insert := builder().Insert("stats").
		Columns("id", "data", "updated_at").
		Values(statsRowID, string(data), timestamp(time.Now())).
		OnConflict(entsql.ConflictColumns("id"), entsql.ResolveWithNewValues())
	if err := s.exec(ctx, insert); err != nil {
		return fmt.Errorf("save stats: %w", err)
	}
	return nil
}

// ResetStats zeroes the persisted learner stats. Attempt history is kept.
func (s *Store) ResetStats(ctx context.Context) error {
	return s.SaveStats(ctx, stats.State{})
}
