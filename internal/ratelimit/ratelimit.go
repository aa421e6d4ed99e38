// Package ratelimit provides the per-client limiter used by the read API.
package ratelimit

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// cleanupThreshold is the minimum map size before a cleanup pass runs.
	cleanupThreshold = 500
	// maxIdleAge is the duration after which an idle entry is eligible for
	// cleanup.
	maxIdleAge = 10 * time.Minute
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter is an IP-based rate limiter that prunes stale entries inline.
type IPRateLimiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	r       rate.Limit
	b       int
}

// NewIPRateLimiter creates a limiter allowing r events per second with
// burst b, per client IP.
func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		entries: make(map[string]*entry),
		r:       r,
		b:       b,
	}
}

// Allow reports whether the client identified by ip may proceed.
func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	e, ok := l.entries[ip]
	if !ok {
		if len(l.entries) >= cleanupThreshold {
			l.cleanupLocked(now)
		}
		e = &entry{limiter: rate.NewLimiter(l.r, l.b)}
		l.entries[ip] = e
	}
	e.lastSeen = now
	return e.limiter.Allow()
}

func (l *IPRateLimiter) cleanupLocked(now time.Time) {
	for ip, e := range l.entries {
		if now.Sub(e.lastSeen) > maxIdleAge {
			delete(l.entries, ip)
		}
	}
}

// Middleware wraps an http.Handler, returning 429 when the client is over
// its budget.
func (l *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if !l.Allow(host) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
