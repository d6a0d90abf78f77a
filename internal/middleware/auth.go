package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/packlane/box-picker/internal/domain/dto"
	"github.com/packlane/box-picker/internal/i18n"
	"golang.org/x/crypto/bcrypt"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
)

// APIKeyAuth returns a middleware that validates API keys.
// It checks the X-API-Key header first, then falls back to the api_key
// query parameter. A key is accepted when it is present in validKeys or
// matches one of the bcrypt hashes in keyHashes. If both sets are empty,
// authentication is disabled.
func APIKeyAuth(validKeys map[string]bool, keyHashes []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(validKeys) == 0 && len(keyHashes) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}

		if key == "" {
			rejectUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
			return
		}

		if !validKeys[key] && !matchesKeyHash(key, keyHashes) {
			rejectUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
			return
		}

		c.Next()
	}
}

func rejectUnauthorized(c *gin.Context, messageKey string) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(c))
	resp := dto.NewError(dto.ErrCodeUnauthorized, message).WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized, resp)
}

// matchesKeyHash reports whether key matches any of the bcrypt hashes.
func matchesKeyHash(key string, hashes []string) bool {
	for _, h := range hashes {
		if bcrypt.CompareHashAndPassword([]byte(h), []byte(key)) == nil {
			return true
		}
	}
	return false
}
