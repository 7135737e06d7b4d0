package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

type windowEntry struct {
	requests []time.Time
	mu       sync.Mutex
	// removed is set under mu when the sweeper drops the entry from the store.
	removed bool
}

// RateLimiter is a per-client sliding window limiter. Clients whose window
// has emptied are dropped at most once per window.
type RateLimiter struct {
	max        int
	window     time.Duration
	trustProxy bool
	store      sync.Map
	now        func() time.Time

	sweepMu   sync.Mutex
	lastSweep time.Time
}

// NewRateLimiter allows max requests per window and client. With trustProxy
// the client is the first X-Forwarded-For hop, otherwise the peer address.
func NewRateLimiter(max int, window time.Duration, trustProxy bool) *RateLimiter {
	return &RateLimiter{max: max, window: window, trustProxy: trustProxy, now: time.Now}
}

func (rl *RateLimiter) allow(client string) bool {
	now := rl.now()
	cutoff := now.Add(-rl.window)
	rl.sweep(now, cutoff)

	for {
		v, _ := rl.store.LoadOrStore(client, &windowEntry{})
		entry := v.(*windowEntry)

		entry.mu.Lock()
		if entry.removed {
			entry.mu.Unlock()
			continue
		}

		entry.prune(cutoff)
		if len(entry.requests) >= rl.max {
			entry.mu.Unlock()
			return false
		}

		entry.requests = append(entry.requests, now)
		entry.mu.Unlock()
		return true
	}
}

func (e *windowEntry) prune(cutoff time.Time) {
	filtered := e.requests[:0]
	for _, t := range e.requests {
		if t.After(cutoff) {
			filtered = append(filtered, t)
		}
	}
	e.requests = filtered
}

func (rl *RateLimiter) sweep(now, cutoff time.Time) {
	rl.sweepMu.Lock()
	if now.Sub(rl.lastSweep) < rl.window {
		rl.sweepMu.Unlock()
		return
	}
	rl.lastSweep = now
	rl.sweepMu.Unlock()

	rl.store.Range(func(key, v interface{}) bool {
		entry := v.(*windowEntry)
		entry.mu.Lock()
		entry.prune(cutoff)
		if len(entry.requests) == 0 {
			entry.removed = true
			rl.store.Delete(key)
		}
		entry.mu.Unlock()
		return true
	})
}

func (rl *RateLimiter) clients() int {
	n := 0
	rl.store.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.max <= 0 {
			next.ServeHTTP(w, r)
			return
		}
		if !rl.allow(clientIP(r, rl.trustProxy)) {
			w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			jsonError(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP is the peer address, or the first X-Forwarded-For hop when the
// service runs behind a trusted proxy.
func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			first, _, _ := strings.Cut(forwarded, ",")
			return strings.TrimSpace(first)
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
