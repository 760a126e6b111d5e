// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// fakeClock is a settable time source for the limiter.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(t *testing.T, limit int, period time.Duration) (*RateLimiter, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2025, 8, 24, 15, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(limit, period)
	rl.now = clock.now
	t.Cleanup(rl.Stop)
	return rl, clock
}

func TestRateLimiterAllow(t *testing.T) {
	rl, _ := newTestLimiter(t, 3, time.Second)

	for i := 0; i < 3; i++ {
		if ok, _ := rl.allow("test-ip"); !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if ok, _ := rl.allow("test-ip"); ok {
		t.Error("4th request should be rate-limited")
	}
	if ok, _ := rl.allow("other-ip"); !ok {
		t.Error("different IP should be allowed")
	}
}

func TestRateLimiterWindowSlides(t *testing.T) {
	rl, clock := newTestLimiter(t, 2, time.Minute)

	rl.allow("ip")
	clock.advance(40 * time.Second)
	rl.allow("ip")

	ok, retry := rl.allow("ip")
	if ok {
		t.Fatal("should be rate-limited")
	}
	if retry != 20*time.Second {
		t.Errorf("retry: got %v, want 20s", retry)
	}

	clock.advance(21 * time.Second)
	if ok, _ := rl.allow("ip"); !ok {
		t.Error("first hit left the window, request should pass")
	}
}

func TestRateLimiterMiddleware(t *testing.T) {
	rl, _ := newTestLimiter(t, 2, time.Minute)

	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	for i := 0; i < 2; i++ {
		if rr := do(); rr.Code != http.StatusOK {
			t.Fatalf("request %d: got status %d, want 200", i+1, rr.Code)
		}
	}

	rr := do()
	if rr.Code != http.StatusTooManyRequests {
		t.Errorf("got status %d, want 429", rr.Code)
	}
	if rr.Header().Get("Retry-After") != "60" {
		t.Errorf("Retry-After: got %q, want %q", rr.Header().Get("Retry-After"), "60")
	}
}

func TestRateLimiterZeroLimitRejects(t *testing.T) {
	for _, limit := range []int{0, -1} {
		rl, _ := newTestLimiter(t, limit, time.Minute)
		handler := Recoverer(rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusTooManyRequests {
			t.Errorf("limit %d: got status %d, want 429", limit, rr.Code)
		}
		if got := rr.Header().Get("Retry-After"); got != "60" {
			t.Errorf("limit %d: Retry-After got %q, want %q", limit, got, "60")
		}
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		trust      bool
		xff        string
		xri        string
		remoteAddr string
		want       string
	}{
		{"x-forwarded-for trusted", true, "10.0.0.1, 172.16.0.1", "", "192.168.1.1:1234", "10.0.0.1"},
		{"x-real-ip trusted", true, "", "10.0.0.2", "192.168.1.1:1234", "10.0.0.2"},
		{"headers ignored without trust", false, "10.0.0.1", "10.0.0.2", "192.168.1.1:1234", "192.168.1.1"},
		{"remote addr only", false, "", "", "192.168.1.1:1234", "192.168.1.1"},
		{"ipv6 remote addr", false, "", "", "[2001:db8::1]:443", "2001:db8::1"},
		{"remote addr no port", false, "", "", "192.168.1.1", "192.168.1.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}
			if got := clientIP(req, tt.trust); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRateLimiterCleanup(t *testing.T) {
	rl, clock := newTestLimiter(t, 10, time.Minute)

	rl.allow("ip-old")
	rl.allow("ip-fresh")
	clock.advance(50 * time.Second)
	rl.allow("ip-fresh")
	clock.advance(20 * time.Second)

	rl.cleanup()

	rl.mu.Lock()
	_, oldExists := rl.clients["ip-old"]
	_, freshExists := rl.clients["ip-fresh"]
	rl.mu.Unlock()

	if oldExists {
		t.Error("ip-old should have been cleaned up")
	}
	if !freshExists {
		t.Error("ip-fresh should still exist")
	}
}

func TestRateLimiterStopTwice(t *testing.T) {
	rl := NewRateLimiter(1, time.Second)
	rl.Stop()
	rl.Stop()
}
