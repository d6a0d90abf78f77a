//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/packlane/box-picker/internal/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	require.NoError(t, db.SetLogsTTL(ctx, 30))
	repo := NewLogsRepository(db)

	seeded := []*LogEntryDocument{
		{Level: "info", Message: "Packed 3 items into 1 box", RequestID: "req-pack-a", Method: "POST", Path: "/api/pack", StatusCode: 200, Duration: 12, IP: "127.0.0.1", UserAgent: "warehouse-cli/2.1", ActionType: "pack"},
		{Level: "warn", Message: "item does not fit", RequestID: "req-pack-b", Method: "POST", Path: "/api/pack", StatusCode: 422, ActionType: "pack"},
		{Level: "error", Message: "catalog lookup failed", RequestID: "req-boxes-a", Method: "GET", Path: "/api/boxes", StatusCode: 500},
	}
	require.NoError(t, repo.CreateMany(ctx, seeded))

	t.Run("create assigns missing identity", func(t *testing.T) {
		entry := &LogEntryDocument{Level: "info", Message: "catalog replaced", RequestID: "req-update-a"}

		require.NoError(t, repo.Create(ctx, entry))
		assert.False(t, entry.ID.IsZero())
		assert.False(t, entry.Timestamp.IsZero())
	})

	t.Run("create many stamps every entry", func(t *testing.T) {
		batch := []*LogEntryDocument{
			{Level: "info", Message: "bulk a"},
			{Level: "info", Message: "bulk b"},
		}
		require.NoError(t, repo.CreateMany(ctx, batch))
		for _, e := range batch {
			assert.False(t, e.ID.IsZero())
		}
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.CreateMany(ctx, nil))
	})

	t.Run("query by request ID returns the full document", func(t *testing.T) {
		entries, err := repo.Query(ctx, LogQueryOptions{RequestID: "req-pack-a"})
		require.NoError(t, err)
		require.Len(t, entries, 1)

		got := entries[0]
		assert.Equal(t, "Packed 3 items into 1 box", got.Message)
		assert.Equal(t, "warehouse-cli/2.1", got.UserAgent)
		assert.Equal(t, "pack", got.ActionType)
		assert.Equal(t, int64(12), got.Duration)
	})

	t.Run("query combines level and path filters", func(t *testing.T) {
		entries, err := repo.Query(ctx, LogQueryOptions{Level: "warn", Path: "/api/pack"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "req-pack-b", entries[0].RequestID)
	})

	t.Run("results come back newest first", func(t *testing.T) {
		entries, err := repo.Query(ctx, LogQueryOptions{})
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(entries), 2)
		for i := 1; i < len(entries); i++ {
			assert.False(t, entries[i-1].Timestamp.Before(entries[i].Timestamp))
		}
	})

	t.Run("limit and skip page through results", func(t *testing.T) {
		first, err := repo.Query(ctx, LogQueryOptions{Limit: 2})
		require.NoError(t, err)
		require.Len(t, first, 2)

		second, err := repo.Query(ctx, LogQueryOptions{Limit: 2, Skip: 1})
		require.NoError(t, err)
		require.NotEmpty(t, second)
		assert.Equal(t, first[1].ID, second[0].ID)
	})

	t.Run("count respects filters", func(t *testing.T) {
		total, err := repo.Count(ctx, LogQueryOptions{})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, total, int64(5))

		errs, err := repo.Count(ctx, LogQueryOptions{Level: "error"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), errs)
	})

	t.Run("time window excludes old entries", func(t *testing.T) {
		past := time.Now().Add(-2 * time.Hour)
		cutoff := time.Now().Add(-1 * time.Hour)
		entries, err := repo.Query(ctx, LogQueryOptions{StartTime: &past, EndTime: &cutoff})
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestLogsRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	logs := NewLogsRepositoryWithCircuitBreaker(NewLogsRepository(db), cb)

	t.Run("full write and read cycle stays healthy", func(t *testing.T) {
		require.NoError(t, logs.Create(ctx, &LogEntryDocument{Level: "info", Message: "single"}))
		require.NoError(t, logs.CreateMany(ctx, []*LogEntryDocument{
			{Level: "info", Message: "bulk 1", RequestID: "bulk-1"},
			{Level: "info", Message: "bulk 2", RequestID: "bulk-2"},
		}))

		found, err := logs.Query(ctx, LogQueryOptions{RequestID: "bulk-1"})
		require.NoError(t, err)
		assert.Len(t, found, 1)

		count, err := logs.Count(ctx, LogQueryOptions{Level: "info"})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, count, int64(3))

		stats := cb.GetStats()
		assert.Equal(t, "closed", stats.State)
		assert.True(t, stats.IsHealthy)
	})

	t.Run("exposes its breaker for health monitoring", func(t *testing.T) {
		assert.Same(t, cb, logs.GetCircuitBreaker())
	})
}
