package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/packlane/box-picker/internal/domain/model"
	"github.com/packlane/box-picker/internal/logger"
	"github.com/packlane/box-picker/internal/service"
)

// AsyncLoggerConfig holds configuration for the async logger.
type AsyncLoggerConfig struct {
	// BufferSize is the capacity of the entry queue.
	BufferSize int
	// NumWorkers is the number of goroutines draining the queue.
	NumWorkers int
	// WriteTimeout bounds a single write to the log store.
	WriteTimeout time.Duration
}

// DefaultAsyncLoggerConfig returns sensible defaults for the async logger.
func DefaultAsyncLoggerConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{
		BufferSize:   1000,
		NumWorkers:   4,
		WriteTimeout: 5 * time.Second,
	}
}

// AsyncLogger writes request log entries to the store through a bounded
// queue and a fixed worker pool, so a slow store never blocks request
// handling and load spikes shed entries instead of spawning goroutines.
type AsyncLogger struct {
	logs         service.LoggingService
	queue        chan *model.LogEntry
	stop         chan struct{}
	workers      sync.WaitGroup
	writeTimeout time.Duration

	enqueued atomic.Int64
	dropped  atomic.Int64
	written  atomic.Int64
	errors   atomic.Int64
}

// NewAsyncLogger creates an async logger and starts its worker pool.
// Returns nil when no logging service is configured.
func NewAsyncLogger(logs service.LoggingService, cfg AsyncLoggerConfig) *AsyncLogger {
	if logs == nil {
		return nil
	}

	al := &AsyncLogger{
		logs:         logs,
		queue:        make(chan *model.LogEntry, cfg.BufferSize),
		stop:         make(chan struct{}),
		writeTimeout: cfg.WriteTimeout,
	}
	al.workers.Add(cfg.NumWorkers)
	for i := 0; i < cfg.NumWorkers; i++ {
		go al.run()
	}
	return al
}

func (al *AsyncLogger) run() {
	defer al.workers.Done()

	for {
		select {
		case entry, ok := <-al.queue:
			if !ok {
				return
			}
			al.persist(entry)
		case <-al.stop:
			al.drain()
			return
		}
	}
}

// drain writes whatever is still queued at shutdown.
func (al *AsyncLogger) drain() {
	for {
		select {
		case entry := <-al.queue:
			al.persist(entry)
		default:
			return
		}
	}
}

func (al *AsyncLogger) persist(entry *model.LogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), al.writeTimeout)
	defer cancel()

	if err := al.logs.CreateLog(ctx, entry); err != nil {
		al.errors.Add(1)
		log := logger.Logger()
		log.Warn().Err(err).Msg("Failed to write async log entry")
		return
	}
	al.written.Add(1)
}

// Log enqueues an entry for background persistence. It never blocks:
// when the queue is full the entry is dropped and false is returned.
func (al *AsyncLogger) Log(entry *model.LogEntry) bool {
	select {
	case al.queue <- entry:
		al.enqueued.Add(1)
		return true
	default:
		al.dropped.Add(1)
		return false
	}
}

// Stop shuts the logger down, flushing queued entries first.
func (al *AsyncLogger) Stop() {
	close(al.stop)
	al.workers.Wait()
	close(al.queue)
}

// Stats reports queue counters since startup.
func (al *AsyncLogger) Stats() (enqueued, dropped, written, errors int64) {
	return al.enqueued.Load(), al.dropped.Load(), al.written.Load(), al.errors.Load()
}

var (
	globalAsyncLogger   *AsyncLogger
	globalAsyncLoggerMu sync.RWMutex
)

// InitAsyncLogger installs the process-wide async logger used by
// RequestLogger. Replaces (and stops) any previously installed instance.
func InitAsyncLogger(logs service.LoggingService, cfg AsyncLoggerConfig) {
	globalAsyncLoggerMu.Lock()
	defer globalAsyncLoggerMu.Unlock()

	if globalAsyncLogger != nil {
		globalAsyncLogger.Stop()
	}
	globalAsyncLogger = NewAsyncLogger(logs, cfg)
}

// GetAsyncLogger returns the process-wide async logger, or nil if none
// has been installed.
func GetAsyncLogger() *AsyncLogger {
	globalAsyncLoggerMu.RLock()
	defer globalAsyncLoggerMu.RUnlock()
	return globalAsyncLogger
}

// StopAsyncLogger flushes and removes the process-wide async logger.
func StopAsyncLogger() {
	globalAsyncLoggerMu.Lock()
	defer globalAsyncLoggerMu.Unlock()

	if globalAsyncLogger != nil {
		globalAsyncLogger.Stop()
		globalAsyncLogger = nil
	}
}
