// Package middleware provides JWT authentication middleware.
package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/packlane/box-picker/internal/domain/dto"
	"github.com/packlane/box-picker/internal/i18n"
)

const (
	// SubjectKey is the context key under which the token subject is stored.
	SubjectKey = "subject"
	// ScopesKey is the context key under which the token scopes are stored.
	ScopesKey = "scopes"
)

// JWTAuth returns a middleware that validates HS256 bearer tokens signed
// with the shared secret. The token subject and scopes are stored in the
// request context for downstream handlers and audit logging.
func JWTAuth(secret string) gin.HandlerFunc {
	secretBytes := []byte(secret)

	return func(c *gin.Context) {
		locale := i18n.GetLocale(c)
		requestID := GetRequestID(c)

		abort := func(key string) {
			message := i18n.GetTranslator().Translate(key, locale)
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(i18n.ErrKeyTokenRequired)
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			abort(i18n.ErrKeyInvalidToken)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			abort(i18n.ErrKeyTokenRequired)
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secretBytes, nil
		})
		if err != nil || !token.Valid {
			abort(i18n.ErrKeyInvalidToken)
			return
		}

		subject, err := claims.GetSubject()
		if err != nil || subject == "" {
			abort(i18n.ErrKeyInvalidToken)
			return
		}

		c.Set(SubjectKey, subject)
		c.Set(ScopesKey, extractScopes(claims))

		c.Next()
	}
}

// extractScopes reads the "scopes" claim as a string slice.
// Both JSON arrays and space-separated strings are accepted.
func extractScopes(claims jwt.MapClaims) []string {
	switch v := claims["scopes"].(type) {
	case []interface{}:
		scopes := make([]string, 0, len(v))
		for _, s := range v {
			if str, ok := s.(string); ok {
				scopes = append(scopes, str)
			}
		}
		return scopes
	case string:
		return strings.Fields(v)
	default:
		return nil
	}
}

// GetSubject retrieves the authenticated token subject from the gin context.
func GetSubject(c *gin.Context) string {
	if v, exists := c.Get(SubjectKey); exists {
		if subject, ok := v.(string); ok {
			return subject
		}
	}
	return ""
}
