package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/askabhijit/clarity-bookings/internal/http/response"
)

// RateLimitConfig defines rate limiting parameters
type RateLimitConfig struct {
	Requests int                            // Max requests per window
	Window   time.Duration                  // Time window duration
	KeyFunc  func(r *http.Request) []string // Function to generate rate limit keys
	SkipFunc func(r *http.Request) bool     // Function to skip rate limiting
}

// RateLimiter counts requests per key in fixed windows, in memory. The
// counters live in the process, so limits are per instance rather than
// shared across a fleet.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	config  RateLimitConfig
}

type window struct {
	start time.Time
	count int
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		windows: make(map[string]*window),
		config:  config,
	}
}

// Middleware returns the rate limiting middleware
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rl.config.SkipFunc != nil && rl.config.SkipFunc(r) {
				next.ServeHTTP(w, r)
				return
			}

			for _, key := range rl.config.KeyFunc(r) {
				if !rl.allow(key) {
					response.RateLimit(w, "Too many requests. Try again later.")
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) allow(key string) bool {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	win, ok := rl.windows[key]
	if !ok || now.Sub(win.start) >= rl.config.Window {
		rl.windows[key] = &window{start: now, count: 1}
		rl.prune(now)
		return true
	}

	win.count++
	return win.count <= rl.config.Requests
}

// prune drops expired windows so the map does not grow with every new key.
// Called with the lock held.
func (rl *RateLimiter) prune(now time.Time) {
	for key, win := range rl.windows {
		if now.Sub(win.start) >= rl.config.Window {
			delete(rl.windows, key)
		}
	}
}

// SubmitRateLimitKeyFunc generates rate limit keys for booking submissions
func SubmitRateLimitKeyFunc(r *http.Request) []string {
	keys := []string{}

	ip := getClientIP(r)
	if ip != "" {
		keys = append(keys, "ip:"+ip)
	}

	return keys
}

// getClientIP extracts the real client IP from the request
func getClientIP(r *http.Request) string {
	// Check X-Forwarded-For header first
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// Take the first IP if there are multiple
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	return clientAddr(r)
}

func clientAddr(r *http.Request) string {
	host := r.RemoteAddr
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		host = host[:idx]
	}
	return host
}
