package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/packlane/box-picker/internal/domain/model"
	"github.com/packlane/box-picker/internal/logger"
	"github.com/packlane/box-picker/internal/service"
)

// RequestLogger emits a structured console line for every request and, when a
// logging service is configured, persists the same entry. Persistence goes
// through the async logger's worker pool when one is installed.
func RequestLogger(loggingService service.LoggingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		entry := &model.LogEntry{
			Timestamp:  time.Now(),
			Level:      getLogLevel(c.Writer.Status()),
			Message:    "HTTP request",
			RequestID:  GetRequestID(c),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: c.Writer.Status(),
			Duration:   time.Since(start).Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
			Subject:    GetSubject(c),
		}

		logToConsole(entry)

		if loggingService == nil {
			return
		}
		if asyncLogger := GetAsyncLogger(); asyncLogger != nil {
			asyncLogger.Log(entry)
			return
		}
		// No worker pool installed; persist on a short-lived goroutine.
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = loggingService.CreateLog(ctx, entry)
		}()
	}
}

func logToConsole(entry *model.LogEntry) {
	log := logger.Logger().With().
		Str("request_id", entry.RequestID).
		Str("method", entry.Method).
		Str("path", entry.Path).
		Int("status_code", entry.StatusCode).
		Int64("duration_ms", entry.Duration).
		Str("ip", entry.IP).
		Str("user_agent", entry.UserAgent).
		Logger()

	switch entry.Level {
	case "error":
		log.Error().Msg(entry.Message)
	case "warn":
		log.Warn().Msg(entry.Message)
	default:
		log.Info().Msg(entry.Message)
	}
}

// getLogLevel maps an HTTP status to a log level.
func getLogLevel(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}
