// Package migration creates the pipeline status journal schema.
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_pipeline_events",
		SQL: `CREATE TABLE IF NOT EXISTS pipeline_events (
  id          BIGSERIAL   PRIMARY KEY,
  document_id TEXT        NOT NULL,
  stage       TEXT        NOT NULL CHECK (stage IN ('uploaded', 'analyzing', 'designing', 'formatting', 'complete', 'failed')),
  message     TEXT        NOT NULL,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_pipeline_events_document_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_pipeline_events_document_id ON pipeline_events (document_id, id);`,
	},
	{
		Name: "create_index_pipeline_events_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_pipeline_events_created_at ON pipeline_events (created_at);`,
	},
}

// EnsureMigrated creates the pipeline_events table and its indexes unless the
// table already exists.
func EnsureMigrated(ctx context.Context, db *sql.DB, logger *slog.Logger, dbHost string) error {
	start := time.Now()
	logger = logger.With(slog.String("component", "database"), slog.String("db_host", dbHost))

	logger.InfoContext(ctx, "db_migration_check", slog.String("status", "starting"))

	var exists bool
	err := db.QueryRowContext(ctx, "SELECT to_regclass('public.pipeline_events') IS NOT NULL").Scan(&exists)
	if err != nil {
		logger.ErrorContext(ctx, "db_migration_failed",
			slog.String("status", "error"),
			slog.String("error_message", fmt.Sprintf("failed to check sentinel table: %v", err)),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logger.InfoContext(ctx, "db_migration_skip",
			slog.String("status", "success"),
			slog.String("detail", "schema already exists, skipping migration"),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	logger.InfoContext(ctx, "db_migration_start", slog.String("status", "in_progress"))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			logger.ErrorContext(ctx, "db_migration_failed",
				slog.String("status", "error"),
				slog.String("migration_step", step.Name),
				slog.String("error_message", err.Error()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
				slog.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logger.InfoContext(ctx, "db_migration_step",
			slog.String("status", "success"),
			slog.String("migration_step", step.Name),
			slog.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	logger.InfoContext(ctx, "db_migration_success",
		slog.String("status", "success"),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return nil
}
