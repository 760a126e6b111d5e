// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, pageKeyPrefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestConnectValkey(t *testing.T) {
	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")

	client, err := ConnectValkey(context.Background(), host, port, os.Getenv("VALKEY_PASSWORD"))
	if err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	defer client.Close()

	pong, err := client.Ping(context.Background()).Result()
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if pong != "PONG" {
		t.Errorf("expected PONG, got %q", pong)
	}
}

func TestConnectValkeyUnreachable(t *testing.T) {
	// Port 1 is reserved and refuses connections on any sane host.
	if _, err := ConnectValkey(context.Background(), "127.0.0.1", "1", ""); err == nil {
		t.Error("expected error for unreachable Valkey")
	}
}

func TestPageCacheSetAndGet(t *testing.T) {
	client := testValkeyClient(t)
	pc := NewPageCache(client, 1*time.Minute)

	ctx := context.Background()
	key := HomeKey(false, "abc123.deadbeef")

	// Miss.
	data, ok := pc.Get(ctx, key)
	if ok {
		t.Error("expected cache miss")
	}
	if data != nil {
		t.Error("expected nil data on miss")
	}

	html := []byte("<html><body>夏の! 高専FES!!</body></html>")
	pc.Set(ctx, key, html)

	data, ok = pc.Get(ctx, key)
	if !ok {
		t.Error("expected cache hit")
	}
	if string(data) != string(html) {
		t.Errorf("data mismatch: got %q, want %q", data, html)
	}

	// The other menu state is a separate entry.
	if _, ok := pc.Get(ctx, HomeKey(true, "abc123.deadbeef")); ok {
		t.Error("open menu should not share the closed entry")
	}
}

func TestPageCacheInvalidateAll(t *testing.T) {
	client := testValkeyClient(t)
	pc := NewPageCache(client, 1*time.Minute)

	ctx := context.Background()

	keys := []string{HomeKey(false, "a"), HomeKey(true, "a"), HomeKey(false, "b")}
	for _, k := range keys {
		pc.Set(ctx, k, []byte(k))
	}

	deleted, err := pc.InvalidateAll(ctx)
	if err != nil {
		t.Fatalf("InvalidateAll: %v", err)
	}
	if deleted != len(keys) {
		t.Errorf("deleted: got %d, want %d", deleted, len(keys))
	}

	for _, k := range keys {
		if _, ok := pc.Get(ctx, k); ok {
			t.Errorf("expected miss for %q after InvalidateAll", k)
		}
	}
}

func TestNewPageCacheDefaultTTL(t *testing.T) {
	pc := NewPageCache(nil, 0)
	if pc.ttl != DefaultPageTTL {
		t.Errorf("expected DefaultPageTTL (%v), got %v", DefaultPageTTL, pc.ttl)
	}
}

func TestHomeKey(t *testing.T) {
	tests := []struct {
		open bool
		tag  string
		want string
	}{
		{false, "f00d.beef", "home:closed:f00d.beef"},
		{true, "f00d.beef", "home:open:f00d.beef"},
	}
	for _, tt := range tests {
		if got := HomeKey(tt.open, tt.tag); got != tt.want {
			t.Errorf("HomeKey(%v, %q): got %q, want %q", tt.open, tt.tag, got, tt.want)
		}
	}
}

func TestNop(t *testing.T) {
	var p Pages = Nop{}
	ctx := context.Background()
	p.Set(ctx, "k", []byte("v"))
	if _, ok := p.Get(ctx, "k"); ok {
		t.Error("Nop should never hit")
	}
}
