package middleware

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"bookfair-reservation/internal/handler/httperr"
	"bookfair-reservation/internal/pkg/clock"
	"bookfair-reservation/internal/pkg/config"
	"bookfair-reservation/internal/pkg/errs"
)

var errRateLimited = errs.New("rate limit exceeded")

// Token bucket kept in a redis hash. Returns {allowed, remaining, retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
    tokens = capacity
    last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
    local elapsed = math.max(0, now_ms - last_refill)
    local intervals = math.floor(elapsed / interval_ms)
    if intervals > 0 then
        tokens = math.min(capacity, tokens + (intervals * refill_tokens))
        last_refill = last_refill + (intervals * interval_ms)
    end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
    allowed = 1
    tokens = tokens - 1
else
    retry_after_ms = interval_ms - (now_ms - last_refill)
    if retry_after_ms < 0 then retry_after_ms = 0 end
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

type RateLimiter struct {
	rdb   *redis.Client
	cfg   config.RateLimitConfig
	clock clock.Clock
}

// NewRateLimiter accepts a nil client; Limit then passes every request.
func NewRateLimiter(rdb *redis.Client, cfg config.RateLimitConfig, clk clock.Clock) *RateLimiter {
	return &RateLimiter{
		rdb:   rdb,
		cfg:   cfg,
		clock: clk,
	}
}

// Limit meters requests per scope and caller. Authenticated callers are keyed
// by user id, everyone else by client IP. Redis errors let the request through.
func (r *RateLimiter) Limit(scope string) gin.HandlerFunc {
	if r == nil || r.rdb == nil || !r.cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := r.key(scope, c)
		args := []any{
			r.clock.Now().UnixMilli(),
			r.cfg.Capacity,
			r.cfg.RefillTokens,
			r.cfg.RefillInterval.Milliseconds(),
			int64(r.cfg.TTL / time.Second),
		}

		vals, err := tokenBucketScript.Run(c.Request.Context(), r.rdb, []string{key}, args...).Int64Slice()
		if err != nil || len(vals) != 3 {
			slog.Warn("rate limiter unavailable, request allowed", "key", key, "error", fmt.Sprint(err))
			c.Next()
			return
		}

		allowed, remaining, retryMs := vals[0] == 1, vals[1], vals[2]
		c.Header("X-RateLimit-Limit", strconv.Itoa(r.cfg.Capacity))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if !allowed {
			secs := int(math.Ceil(float64(retryMs) / 1000.0))
			c.Header("Retry-After", strconv.Itoa(secs))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", gin.H{"retryAfter": secs})
			return
		}
		c.Next()
	}
}

func (r *RateLimiter) key(scope string, c *gin.Context) string {
	parts := []string{r.cfg.Prefix, scope}
	if id, ok := GetUserID(c); ok {
		parts = append(parts, "user", id.String())
	} else {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		parts = append(parts, "ip", ip)
	}
	return strings.Join(parts, ":")
}
