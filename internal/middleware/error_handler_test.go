package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() *gin.Engine {
		router := gin.New()
		router.Use(RequestID(), ErrorHandler())
		return router
	}

	t.Run("converts unhandled context errors to 500", func(t *testing.T) {
		router := newRouter()
		router.GET("/fail", func(c *gin.Context) {
			_ = c.Error(errors.New("catalog lookup failed"))
		})

		req := httptest.NewRequest(http.MethodGet, "/fail", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "internal_error")
	})

	t.Run("leaves an already-written response alone", func(t *testing.T) {
		router := newRouter()
		router.GET("/handled", func(c *gin.Context) {
			_ = c.Error(errors.New("noted but handled"))
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		})

		req := httptest.NewRequest(http.MethodGet, "/handled", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_request")
	})

	t.Run("no-op without errors", func(t *testing.T) {
		router := newRouter()
		router.GET("/ok", func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})

		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", w.Body.String())
	})
}
