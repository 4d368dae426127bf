// ABOUTME: Per-IP rate limiting with fixed-window counters.
// ABOUTME: A stricter limit protects the CPU-heavy simulate and render endpoints.

package middleware

import (
	"fmt"
	"log/slog"
	"math"
	"net"
	"net/http"
	"sync"
	"time"
)

type window struct {
	count     int
	expiresAt time.Time
}

// RateLimiter enforces a maximum number of requests per fixed time
// window. Each client IP gets an independent counter.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	limit   int
	period  time.Duration
	created int // new windows since the last sweep
}

// NewRateLimiter allows limit requests per period for each key.
func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	return &RateLimiter{
		windows: make(map[string]*window),
		limit:   limit,
		period:  period,
	}
}

// Allow reports whether a request for key is within limits. When denied
// it also returns the time until the window resets.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, exists := rl.windows[key]
	if !exists || !now.Before(w.expiresAt) {
		rl.windows[key] = &window{count: 1, expiresAt: now.Add(rl.period)}

		// Sweep stale windows every 100 new ones to bound the map.
		rl.created++
		if rl.created >= 100 {
			for k, win := range rl.windows {
				if !now.Before(win.expiresAt) {
					delete(rl.windows, k)
				}
			}
			rl.created = 0
		}
		return true, 0
	}

	if w.count >= rl.limit {
		return false, time.Until(w.expiresAt)
	}
	w.count++
	return true, 0
}

// Limit wraps a handler with rl. A nil limiter disables limiting, which
// keeps the wiring uniform when RATE_LIMIT_ENABLED is off.
func Limit(rl *RateLimiter) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		if rl == nil {
			return next
		}
		return func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)
			ok, retryAfter := rl.Allow(key)
			if !ok {
				seconds := int(math.Ceil(retryAfter.Seconds()))
				if seconds < 1 {
					seconds = 1
				}
				w.Header().Set("Retry-After", fmt.Sprintf("%d", seconds))
				slog.Warn("Rate limit exceeded", "ip", key, "path", r.URL.Path)
				writeJSONError(w, "Too many requests", http.StatusTooManyRequests)
				return
			}
			next(w, r)
		}
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
