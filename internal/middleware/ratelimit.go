// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// window holds the request times of one client inside the sliding window,
// oldest first.
type window struct {
	mu   sync.Mutex
	hits []time.Time
}

// prune drops hits older than cutoff and returns how many remain.
func (w *window) prune(cutoff time.Time) int {
	i := 0
	for i < len(w.hits) && !w.hits[i].After(cutoff) {
		i++
	}
	w.hits = append(w.hits[:0], w.hits[i:]...)
	return len(w.hits)
}

// RateLimiter limits requests per client IP over a sliding window.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*window
	limit   int
	period  time.Duration
	now     func() time.Time

	// TrustProxy makes the limiter key on X-Forwarded-For / X-Real-IP.
	// Only enable it behind a proxy that sets those headers.
	TrustProxy bool

	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewRateLimiter creates a rate limiter that allows limit requests per
// period. A background goroutine drops idle clients until Stop is called.
func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*window),
		limit:   limit,
		period:  period,
		now:     time.Now,
		stopCh:  make(chan struct{}),
	}

	go func() {
		ticker := time.NewTicker(max(period, time.Minute))
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.cleanup()
			case <-rl.stopCh:
				return
			}
		}
	}()

	return rl
}

// Stop terminates the background cleanup goroutine. It is safe to call
// more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

func (rl *RateLimiter) client(key string) *window {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	w, ok := rl.clients[key]
	if !ok {
		w = &window{}
		rl.clients[key] = w
	}
	return w
}

// allow records a hit for key and reports whether it is within the limit.
// When it is not, retry is how long until the oldest hit leaves the window.
func (rl *RateLimiter) allow(key string) (ok bool, retry time.Duration) {
	now := rl.now()
	w := rl.client(key)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.prune(now.Add(-rl.period)) >= rl.limit {
		if len(w.hits) == 0 {
			return false, rl.period
		}
		return false, w.hits[0].Add(rl.period).Sub(now)
	}
	w.hits = append(w.hits, now)
	return true, 0
}

// cleanup removes clients with no hit inside the window.
func (rl *RateLimiter) cleanup() {
	cutoff := rl.now().Add(-rl.period)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, w := range rl.clients {
		w.mu.Lock()
		idle := w.prune(cutoff) == 0
		w.mu.Unlock()
		if idle {
			delete(rl.clients, key)
		}
	}
}

// Middleware rejects clients over the limit with 429 and a Retry-After
// header in whole seconds.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r, rl.TrustProxy)
		ok, retry := rl.allow(ip)
		if !ok {
			secs := int(math.Ceil(retry.Seconds()))
			w.Header().Set("Retry-After", strconv.Itoa(max(secs, 1)))
			slog.Warn("rate limited", "ip", ip, "path", r.URL.Path, "request_id", RequestIDFromCtx(r.Context()))
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP returns the address to rate-limit on. Forwarding headers are
// only honoured when trustProxy is set.
func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			return strings.TrimSpace(first)
		}
		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return strings.TrimSpace(xri)
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
