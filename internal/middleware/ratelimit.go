package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/kaushals1950/DhaaraAI/internal/transport"
)

// RateLimiter keeps one token bucket per client key. A client may burst up to
// limit requests and then refills at limit per window. Buckets are keyed by
// client IP and limiter name, so one limiter mounted under several prefixes
// shares a single quota.
type RateLimiter struct {
	name    string
	limit   int
	window  time.Duration
	now     func() time.Time
	mu      sync.Mutex
	clients map[string]*client
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(name string, limit int, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{
		name:    name,
		limit:   limit,
		window:  window,
		now:     time.Now,
		clients: make(map[string]*client),
	}
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	c, ok := rl.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rate.Every(rl.window/time.Duration(rl.limit)), rl.limit)}
		rl.clients[key] = c
	}
	c.lastSeen = now
	rl.evictIdle(now)

	return c.limiter.AllowN(now, 1)
}

// evictIdle drops clients idle for two windows; their buckets would be full again anyway.
func (rl *RateLimiter) evictIdle(now time.Time) {
	for key, c := range rl.clients {
		if now.Sub(c.lastSeen) > 2*rl.window {
			delete(rl.clients, key)
		}
	}
}

func clientIP(r *http.Request) string {
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		parts := strings.Split(xf, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientIP(r) + ":" + rl.name
		if !rl.Allow(key) {
			w.Header().Set("Retry-After", retryAfterSeconds(rl.window, rl.limit))
			transport.WriteError(w, http.StatusTooManyRequests, "rate limit exceeded", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func retryAfterSeconds(window time.Duration, limit int) string {
	secs := int((window / time.Duration(limit)).Seconds())
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}
