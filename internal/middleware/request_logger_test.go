//go:build !integration

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/packlane/box-picker/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLoggingService records entries so tests can inspect what the
// request logger persisted, without a real store.
type captureLoggingService struct {
	mu      sync.Mutex
	entries []*model.LogEntry
	notify  chan struct{}
}

func newCaptureLoggingService() *captureLoggingService {
	return &captureLoggingService{notify: make(chan struct{}, 16)}
}

func (s *captureLoggingService) CreateLog(_ context.Context, entry *model.LogEntry) error {
	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()
	s.notify <- struct{}{}
	return nil
}

func (s *captureLoggingService) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	for _, e := range entries {
		if err := s.CreateLog(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (s *captureLoggingService) QueryLogs(context.Context, model.LogQueryOptions) ([]model.LogEntry, error) {
	return nil, nil
}

func (s *captureLoggingService) CountLogs(context.Context, model.LogQueryOptions) (int64, error) {
	return 0, nil
}

// waitForEntry blocks until the request logger's background write lands.
func (s *captureLoggingService) waitForEntry(t *testing.T) *model.LogEntry {
	t.Helper()
	select {
	case <-s.notify:
	case <-time.After(2 * time.Second):
		t.Fatal("no log entry was persisted")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[len(s.entries)-1]
}

func Test_getLogLevel(t *testing.T) {
	assert.Equal(t, "info", getLogLevel(http.StatusOK))
	assert.Equal(t, "info", getLogLevel(http.StatusMovedPermanently))
	assert.Equal(t, "warn", getLogLevel(http.StatusBadRequest))
	assert.Equal(t, "warn", getLogLevel(http.StatusNotFound))
	assert.Equal(t, "error", getLogLevel(http.StatusInternalServerError))
	assert.Equal(t, "error", getLogLevel(http.StatusServiceUnavailable))
}

func TestRequestLogger_PersistsRequestDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := newCaptureLoggingService()

	router := gin.New()
	router.Use(RequestID(), RequestLogger(svc))
	router.POST("/api/pack", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"total_boxes": 1})
	})

	req := httptest.NewRequest(http.MethodPost, "/api/pack", nil)
	req.Header.Set("User-Agent", "packlane-client/2.1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	entry := svc.waitForEntry(t)
	assert.Equal(t, "POST", entry.Method)
	assert.Equal(t, "/api/pack", entry.Path)
	assert.Equal(t, http.StatusOK, entry.StatusCode)
	assert.Equal(t, "info", entry.Level)
	assert.Equal(t, "packlane-client/2.1", entry.UserAgent)
	assert.Equal(t, w.Header().Get(RequestIDHeader), entry.RequestID)
}

func TestRequestLogger_LevelFollowsStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		status    int
		wantLevel string
	}{
		{http.StatusOK, "info"},
		{http.StatusUnprocessableEntity, "warn"},
		{http.StatusInternalServerError, "error"},
	}

	for _, tt := range tests {
		svc := newCaptureLoggingService()
		router := gin.New()
		router.Use(RequestID(), RequestLogger(svc))
		router.GET("/api/boxes", func(c *gin.Context) {
			c.Status(tt.status)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/boxes", nil))

		assert.Equal(t, tt.status, w.Code)
		assert.Equal(t, tt.wantLevel, svc.waitForEntry(t).Level)
	}
}

func TestRequestLogger_NilServiceSkipsPersistence(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID(), RequestLogger(nil))
	router.GET("/api/boxes", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/boxes", nil))
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestLogger_CapturesAuthenticatedSubject(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := newCaptureLoggingService()

	router := gin.New()
	router.Use(RequestID())
	router.Use(func(c *gin.Context) {
		c.Set(SubjectKey, "warehouse-service")
		c.Next()
	})
	router.Use(RequestLogger(svc))
	router.GET("/api/boxes", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/boxes", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "warehouse-service", svc.waitForEntry(t).Subject)
}

func TestRequestLogger_UsesAsyncLoggerWhenInstalled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := newCaptureLoggingService()

	InitAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 8, NumWorkers: 1, WriteTimeout: time.Second})
	defer StopAsyncLogger()

	router := gin.New()
	router.Use(RequestID(), RequestLogger(svc))
	router.GET("/api/boxes", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/boxes", nil))
	require.Equal(t, http.StatusOK, w.Code)

	entry := svc.waitForEntry(t)
	assert.Equal(t, "/api/boxes", entry.Path)

	enqueued, _, _, _ := GetAsyncLogger().Stats()
	assert.GreaterOrEqual(t, enqueued, int64(1))
}
