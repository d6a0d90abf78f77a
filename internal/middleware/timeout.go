package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/packlane/box-picker/internal/domain/dto"
	"github.com/packlane/box-picker/internal/i18n"
)

// TimeoutConfig holds configuration for the timeout middleware.
type TimeoutConfig struct {
	// Timeout is the maximum duration for request processing.
	Timeout time.Duration
	// ErrorMessage is returned when no translator is installed.
	ErrorMessage string
}

// DefaultTimeoutConfig returns the default request timeout.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{
		Timeout:      30 * time.Second,
		ErrorMessage: "Request timeout",
	}
}

// Timeout bounds request processing. The handler runs in its own goroutine
// with a deadline on the request context; when the deadline fires first, the
// client gets a 504 and the handler's eventual writes are discarded by gin.
func Timeout(cfg TimeoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		var mu sync.Mutex
		finished := false
		done := make(chan struct{})

		go func() {
			defer func() {
				recover() //nolint:errcheck
				close(done)
			}()
			c.Next()
			mu.Lock()
			finished = true
			mu.Unlock()
		}()

		select {
		case <-done:
		case <-ctx.Done():
			mu.Lock()
			defer mu.Unlock()
			if finished || c.Writer.Written() {
				return
			}
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, timeoutResponse(c, cfg))
		}
	}
}

func timeoutResponse(c *gin.Context, cfg TimeoutConfig) dto.ErrorResponse {
	message := cfg.ErrorMessage
	if translator := i18n.GetTranslator(); translator != nil {
		message = translator.Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
	}
	return dto.NewError(dto.ErrCodeTimeout, message).WithRequestID(GetRequestID(c))
}

// TimeoutWithDuration returns the timeout middleware with a specific duration.
func TimeoutWithDuration(timeout time.Duration) gin.HandlerFunc {
	cfg := DefaultTimeoutConfig()
	cfg.Timeout = timeout
	return Timeout(cfg)
}
