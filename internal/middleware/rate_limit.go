package middleware

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/packlane/box-picker/internal/domain/dto"
	"github.com/packlane/box-picker/internal/i18n"
)

// defaultNumShards spreads clients over enough locks that concurrent
// packing requests rarely contend.
const defaultNumShards = 16

// bucket tracks remaining tokens for one identifier in the current window.
type bucket struct {
	tokens      int
	windowStart time.Time
}

type limiterShard struct {
	mu      sync.Mutex
	buckets map[string]*bucket
}

// ShardedRateLimiter is a fixed-window rate limiter sharded by FNV hash
// of the identifier to reduce lock contention.
type ShardedRateLimiter struct {
	shards []*limiterShard
	rate   int
	window time.Duration
	stopCh chan struct{}
}

// RateLimiter is an alias for ShardedRateLimiter for backward compatibility.
type RateLimiter = ShardedRateLimiter

// NewRateLimiter creates a sharded rate limiter with the default shard count.
func NewRateLimiter(rate int, window time.Duration) *ShardedRateLimiter {
	return NewShardedRateLimiter(rate, window, defaultNumShards)
}

// NewShardedRateLimiter creates a rate limiter with a custom shard count.
func NewShardedRateLimiter(rate int, window time.Duration, numShards int) *ShardedRateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}

	rl := &ShardedRateLimiter{
		shards: make([]*limiterShard, numShards),
		rate:   rate,
		window: window,
		stopCh: make(chan struct{}),
	}
	for i := range rl.shards {
		rl.shards[i] = &limiterShard{buckets: make(map[string]*bucket)}
	}

	go rl.sweepLoop()
	return rl
}

func (rl *ShardedRateLimiter) getShard(identifier string) *limiterShard {
	h := fnv.New32a()
	h.Write([]byte(identifier))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// checkRateLimit consumes one token for the identifier, starting a fresh
// window when the previous one has elapsed.
func (rl *ShardedRateLimiter) checkRateLimit(identifier string) (allowed bool, remaining int) {
	shard := rl.getShard(identifier)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	now := time.Now()
	b, ok := shard.buckets[identifier]
	if !ok || now.Sub(b.windowStart) > rl.window {
		shard.buckets[identifier] = &bucket{tokens: rl.rate - 1, windowStart: now}
		return true, rl.rate - 1
	}

	if b.tokens <= 0 {
		return false, 0
	}
	b.tokens--
	return true, b.tokens
}

// limit builds the middleware around an identifier function, so the IP
// and subject variants share one implementation.
func (rl *ShardedRateLimiter) limit(identify func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining := rl.checkRateLimit(identify(c))

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if allowed {
			c.Next()
			return
		}

		c.Header("Retry-After", rl.window.String())
		message := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
		resp := dto.NewError(dto.ErrCodeRateLimit, message).WithRequestID(GetRequestID(c))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, resp)
	}
}

// RateLimit returns a middleware that limits requests per client IP.
func (rl *ShardedRateLimiter) RateLimit() gin.HandlerFunc {
	return rl.limit(func(c *gin.Context) string {
		return c.ClientIP()
	})
}

// SubjectRateLimit returns a middleware that limits requests per
// authenticated subject, falling back to the client IP for anonymous
// callers.
func (rl *ShardedRateLimiter) SubjectRateLimit() gin.HandlerFunc {
	return rl.limit(func(c *gin.Context) string {
		if subject := GetSubject(c); subject != "" {
			return "subject:" + subject
		}
		return "ip:" + c.ClientIP()
	})
}

func (rl *ShardedRateLimiter) sweepLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.sweepStale()
		case <-rl.stopCh:
			return
		}
	}
}

// sweepStale drops buckets idle for more than two windows.
func (rl *ShardedRateLimiter) sweepStale() {
	cutoff := time.Now().Add(-2 * rl.window)

	for _, shard := range rl.shards {
		shard.mu.Lock()
		for id, b := range shard.buckets {
			if b.windowStart.Before(cutoff) {
				delete(shard.buckets, id)
			}
		}
		shard.mu.Unlock()
	}
}

// Stop shuts down the background sweep goroutine.
func (rl *ShardedRateLimiter) Stop() {
	close(rl.stopCh)
}

// Stats returns the tracked client counts, total and per shard.
func (rl *ShardedRateLimiter) Stats() (totalVisitors int, perShard []int) {
	perShard = make([]int, len(rl.shards))
	for i, shard := range rl.shards {
		shard.mu.Lock()
		perShard[i] = len(shard.buckets)
		totalVisitors += perShard[i]
		shard.mu.Unlock()
	}
	return totalVisitors, perShard
}
