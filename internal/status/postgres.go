package status

import (
	"context"
	"database/sql"
	"fmt"

	"docstyle/internal/model"
)

// PostgresStore journals events into the pipeline_events table.
// The schema is created by the migration package.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

var _ Store = (*PostgresStore)(nil)

func (s *PostgresStore) Append(ctx context.Context, ev model.StageEvent) error {
	const q = `
		INSERT INTO pipeline_events (document_id, stage, message, created_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := s.db.ExecContext(ctx, q, ev.DocumentID, string(ev.Stage), ev.Message, ev.At); err != nil {
		return fmt.Errorf("insert pipeline event: %w", err)
	}
	return nil
}

func (s *PostgresStore) History(ctx context.Context, documentID string) ([]model.StageEvent, error) {
	const q = `
		SELECT document_id, stage, message, created_at
		FROM pipeline_events
		WHERE document_id = $1
		ORDER BY id ASC
	`
	rows, err := s.db.QueryContext(ctx, q, documentID)
	if err != nil {
		return nil, fmt.Errorf("query pipeline events: %w", err)
	}
	defer rows.Close()

	var out []model.StageEvent
	for rows.Next() {
		var (
			ev    model.StageEvent
			stage string
		)
		if err := rows.Scan(&ev.DocumentID, &stage, &ev.Message, &ev.At); err != nil {
			return nil, err
		}
		ev.Stage = model.Stage(stage)
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}
