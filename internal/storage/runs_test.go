package storage_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"econmap/internal/domain"
	"econmap/internal/storage"
)

func openStore(t *testing.T) (*storage.DB, *storage.RunStore) {
	t.Helper()
	db, err := storage.New(filepath.Join(t.TempDir(), "state", "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, storage.NewRunStore(db)
}

func TestRunStore_CreateAndList(t *testing.T) {
	ctx := context.Background()
	_, store := openStore(t)

	base := time.Date(2024, 3, 1, 6, 0, 0, 0, time.UTC)
	older := &domain.RunLog{
		ID:         "run-1",
		StartedAt:  base,
		FinishedAt: base.Add(2 * time.Second),
		Status:     domain.RunStatusCompleted,
		Rows:       4200,
		Countries:  180,
		Unresolved: 3,
		Trigger:    "manual",
	}
	newer := &domain.RunLog{
		StartedAt:  base.Add(time.Hour),
		FinishedAt: base.Add(time.Hour + time.Second),
		Status:     domain.RunStatusFailed,
		Error:      "load gdp: open file: no such file",
		Trigger:    "schedule",
	}
	require.NoError(t, store.CreateRunLog(ctx, older))
	require.NoError(t, store.CreateRunLog(ctx, newer))
	assert.NotEmpty(t, newer.ID)

	logs, err := store.ListRunLogs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	assert.Equal(t, newer.ID, logs[0].ID)
	assert.Equal(t, domain.RunStatusFailed, logs[0].Status)
	assert.Equal(t, "schedule", logs[0].Trigger)

	assert.Equal(t, "run-1", logs[1].ID)
	assert.Equal(t, 4200, logs[1].Rows)
	assert.Equal(t, 180, logs[1].Countries)
	assert.True(t, logs[1].StartedAt.Equal(base))
	assert.Equal(t, 2*time.Second, logs[1].Duration())
}

func TestRunStore_ListLimit(t *testing.T) {
	ctx := context.Background()
	_, store := openStore(t)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		start := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, store.CreateRunLog(ctx, &domain.RunLog{
			StartedAt:  start,
			FinishedAt: start,
			Status:     domain.RunStatusCompleted,
		}))
	}

	logs, err := store.ListRunLogs(ctx, 2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.True(t, logs[0].StartedAt.After(logs[1].StartedAt))
}

func TestNew_ReopenKeepsHistory(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "runs.db")

	db, err := storage.New(path)
	require.NoError(t, err)
	now := time.Now().UTC()
	require.NoError(t, storage.NewRunStore(db).CreateRunLog(ctx, &domain.RunLog{
		StartedAt: now, FinishedAt: now, Status: domain.RunStatusCompleted,
	}))
	require.NoError(t, db.Close())

	db, err = storage.New(path)
	require.NoError(t, err)
	defer db.Close()
	assert.Equal(t, path, db.Path())

	logs, err := storage.NewRunStore(db).ListRunLogs(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}
