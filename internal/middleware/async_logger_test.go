package middleware

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/packlane/box-picker/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLoggingService implements service.LoggingService with a
// configurable CreateLog, for driving the async logger in tests.
type stubLoggingService struct {
	createLog func(context.Context, *model.LogEntry) error
	calls     atomic.Int64
}

func (s *stubLoggingService) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	s.calls.Add(1)
	if s.createLog != nil {
		return s.createLog(ctx, entry)
	}
	return nil
}

func (s *stubLoggingService) CreateLogs(context.Context, []*model.LogEntry) error { return nil }

func (s *stubLoggingService) QueryLogs(context.Context, model.LogQueryOptions) ([]model.LogEntry, error) {
	return nil, nil
}

func (s *stubLoggingService) CountLogs(context.Context, model.LogQueryOptions) (int64, error) {
	return 0, nil
}

func TestDefaultAsyncLoggerConfig(t *testing.T) {
	cfg := DefaultAsyncLoggerConfig()

	assert.Equal(t, 1000, cfg.BufferSize)
	assert.Equal(t, 4, cfg.NumWorkers)
	assert.Equal(t, 5*time.Second, cfg.WriteTimeout)
}

func TestNewAsyncLogger_NilServiceDisablesLogging(t *testing.T) {
	assert.Nil(t, NewAsyncLogger(nil, DefaultAsyncLoggerConfig()))
}

func TestAsyncLogger_StopDrainsQueue(t *testing.T) {
	svc := &stubLoggingService{}
	al := NewAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 64, NumWorkers: 2, WriteTimeout: time.Second})
	require.NotNil(t, al)

	for i := 0; i < 20; i++ {
		require.True(t, al.Log(&model.LogEntry{Level: "info", Message: "HTTP request"}))
	}
	al.Stop()

	enqueued, dropped, written, errCount := al.Stats()
	assert.Equal(t, int64(20), enqueued)
	assert.Zero(t, dropped)
	assert.Equal(t, int64(20), written)
	assert.Zero(t, errCount)
	assert.Equal(t, int64(20), svc.calls.Load())
}

func TestAsyncLogger_ShedsLoadWhenQueueIsFull(t *testing.T) {
	release := make(chan struct{})
	svc := &stubLoggingService{
		createLog: func(context.Context, *model.LogEntry) error {
			<-release
			return nil
		},
	}

	al := NewAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 2, NumWorkers: 1, WriteTimeout: time.Second})
	require.NotNil(t, al)

	dropped := 0
	for i := 0; i < 10; i++ {
		if !al.Log(&model.LogEntry{Level: "info", Message: "HTTP request"}) {
			dropped++
		}
	}
	assert.Greater(t, dropped, 0, "a full queue must drop instead of blocking")

	_, droppedStat, _, _ := al.Stats()
	assert.Equal(t, int64(dropped), droppedStat)

	close(release)
	al.Stop()
}

func TestAsyncLogger_CountsWriteErrors(t *testing.T) {
	svc := &stubLoggingService{
		createLog: func(context.Context, *model.LogEntry) error {
			return errors.New("write concern failed")
		},
	}

	al := NewAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 16, NumWorkers: 1, WriteTimeout: time.Second})
	require.NotNil(t, al)

	for i := 0; i < 3; i++ {
		al.Log(&model.LogEntry{Level: "error", Message: "boom"})
	}
	al.Stop()

	_, _, written, errCount := al.Stats()
	assert.Zero(t, written)
	assert.Equal(t, int64(3), errCount)
}

func TestGlobalAsyncLogger_Lifecycle(t *testing.T) {
	require.Nil(t, GetAsyncLogger())

	InitAsyncLogger(&stubLoggingService{}, DefaultAsyncLoggerConfig())
	first := GetAsyncLogger()
	require.NotNil(t, first)
	assert.True(t, first.Log(&model.LogEntry{Level: "info", Message: "HTTP request"}))

	// Re-initialization stops and replaces the previous instance.
	InitAsyncLogger(&stubLoggingService{}, DefaultAsyncLoggerConfig())
	second := GetAsyncLogger()
	require.NotNil(t, second)
	assert.NotSame(t, first, second)

	StopAsyncLogger()
	assert.Nil(t, GetAsyncLogger())
	assert.NotPanics(t, StopAsyncLogger)
}
