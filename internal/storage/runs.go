package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"econmap/internal/domain"
)

// RunStore persists the pipeline run history.
type RunStore struct {
	db *DB
}

// NewRunStore creates a new RunStore.
func NewRunStore(db *DB) *RunStore {
	return &RunStore{db: db}
}

// ── Run Logs ───────────────────────────────────────────────

// CreateRunLog stores l. An empty ID gets a fresh UUID.
func (s *RunStore) CreateRunLog(ctx context.Context, l *domain.RunLog) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	_, err := s.db.conn.ExecContext(ctx,
		`INSERT INTO pipeline_runs (id, started_at, finished_at, status, rows_written, countries, unresolved, error, trigger_source)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.StartedAt.UTC(), l.FinishedAt.UTC(), l.Status, l.Rows, l.Countries, l.Unresolved, l.Error, l.Trigger,
	)
	if err != nil {
		return fmt.Errorf("insert run log: %w", err)
	}
	return nil
}

// ListRunLogs returns the most recent runs first.
func (s *RunStore) ListRunLogs(ctx context.Context, limit int) ([]domain.RunLog, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.conn.QueryContext(ctx,
		`SELECT id, started_at, finished_at, status, rows_written, countries, unresolved, error, trigger_source
		 FROM pipeline_runs ORDER BY started_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list run logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.RunLog
	for rows.Next() {
		var l domain.RunLog
		if err := rows.Scan(&l.ID, &l.StartedAt, &l.FinishedAt, &l.Status, &l.Rows, &l.Countries, &l.Unresolved, &l.Error, &l.Trigger); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
