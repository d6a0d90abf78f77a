// Package middleware provides HTTP middleware components for the box picker service.
package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// IdempotencyKeyHeader is the header clients set to request replay protection.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL bounds how long a cached response can be replayed.
	IdempotencyKeyTTL = 5 * time.Minute
)

// cachedResponse is a recorded HTTP response eligible for replay.
type cachedResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
	Timestamp  time.Time
}

// IdempotencyConfig holds configuration for the idempotency middleware.
type IdempotencyConfig struct {
	Cache   *idempotencyCache
	TTL     time.Duration
	Enabled bool
}

// DefaultIdempotencyConfig returns idempotency configuration with the default TTL.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		Cache:   newIdempotencyCache(IdempotencyKeyTTL),
		TTL:     IdempotencyKeyTTL,
		Enabled: true,
	}
}

// isMutating reports whether the method can change server state and therefore
// participates in idempotency handling.
func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

// Idempotency replays a previously recorded response when a mutating request
// repeats the same Idempotency-Key with the same method, path, and body.
// Only 2xx responses are recorded.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Cache == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" || !isMutating(c.Request.Method) {
			c.Next()
			return
		}

		cacheKey := generateCacheKey(key, c.Request)
		if resp, ok := cfg.Cache.Get(cacheKey); ok {
			replayResponse(c, resp)
			return
		}

		rec := newIdempotencyRecorder(c.Writer)
		c.Writer = rec
		c.Next()

		if rec.status >= 200 && rec.status < 300 {
			cfg.Cache.Set(cacheKey, &cachedResponse{
				StatusCode: rec.status,
				Headers:    rec.snapshotHeaders(),
				Body:       rec.buf.Bytes(),
				Timestamp:  time.Now(),
			})
		}
	}
}

// replayResponse writes a recorded response and aborts the chain.
func replayResponse(c *gin.Context, resp *cachedResponse) {
	for k, v := range resp.Headers {
		c.Header(k, v)
	}
	c.Header("X-Idempotency-Replayed", "true")
	c.Data(resp.StatusCode, "application/json", resp.Body)
	c.Abort()
}

// generateCacheKey hashes the idempotency key together with the request
// method, path, and body, so the same key cannot replay a different request.
func generateCacheKey(idempotencyKey string, req *http.Request) string {
	h := sha256.New()
	io.WriteString(h, idempotencyKey)
	io.WriteString(h, req.Method)
	io.WriteString(h, req.URL.Path)

	if req.Body != nil {
		body, _ := io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewReader(body))
		h.Write(body)
	}

	return hex.EncodeToString(h.Sum(nil))
}

// idempotencyRecorder tees the response body and status so the middleware can
// cache what was sent to the client.
type idempotencyRecorder struct {
	gin.ResponseWriter
	buf    bytes.Buffer
	status int
}

func newIdempotencyRecorder(w gin.ResponseWriter) *idempotencyRecorder {
	return &idempotencyRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (w *idempotencyRecorder) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *idempotencyRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// snapshotHeaders copies the single-valued view of the response headers.
func (w *idempotencyRecorder) snapshotHeaders() map[string]string {
	headers := make(map[string]string)
	for k, v := range w.ResponseWriter.Header() {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}
	return headers
}
