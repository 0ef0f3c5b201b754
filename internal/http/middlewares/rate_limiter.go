package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// KeyFunc picks the bucket a request is counted against.
type KeyFunc func(c echo.Context) string

// ByRealIP counts requests per client address.
func ByRealIP(c echo.Context) string {
	return "ip:" + c.RealIP()
}

// ByUserOrIP counts authenticated requests per user and falls back to the
// client address otherwise.
func ByUserOrIP(c echo.Context) string {
	if userID := UserID(c); userID != "" {
		return "user:" + userID
	}
	return ByRealIP(c)
}

type bucket struct {
	count int
	start time.Time
}

// fixedWindow counts requests per key. Buckets whose window has passed are
// swept at most once per window.
type fixedWindow struct {
	limit     int
	window    time.Duration
	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

func newFixedWindow(limit int, window time.Duration) *fixedWindow {
	return &fixedWindow{
		limit:   limit,
		window:  window,
		buckets: make(map[string]*bucket),
	}
}

func (w *fixedWindow) allow(key string, now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if now.Sub(w.lastSweep) > w.window {
		w.sweep(now)
	}

	b, ok := w.buckets[key]
	if !ok || now.Sub(b.start) > w.window {
		b = &bucket{start: now}
		w.buckets[key] = b
	}

	if b.count >= w.limit {
		return false
	}
	b.count++
	return true
}

func (w *fixedWindow) sweep(now time.Time) {
	for key, b := range w.buckets {
		if now.Sub(b.start) > w.window {
			delete(w.buckets, key)
		}
	}
	w.lastSweep = now
}

func (w *fixedWindow) size() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.buckets)
}

// RateLimiter allows limit requests per key in each fixed window.
func RateLimiter(limit int, window time.Duration, key KeyFunc) echo.MiddlewareFunc {
	limiter := newFixedWindow(limit, window)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.allow(key(c), time.Now()) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
