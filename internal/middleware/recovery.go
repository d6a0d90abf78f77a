package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/packlane/box-picker/internal/domain/dto"
	"github.com/packlane/box-picker/internal/logger"
)

// Recovery turns panics into 500 responses instead of dropped connections.
// The panic value is logged with the request ID.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			log := logger.Logger()
			log.Error().
				Str("request_id", GetRequestID(c)).
				Interface("panic", r).
				Msg("PANIC recovered")

			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error:   dto.ErrCodeInternal,
				Message: "An unexpected error occurred",
			})
		}()
		c.Next()
	}
}
