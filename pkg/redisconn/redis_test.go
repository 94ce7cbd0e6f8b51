package redisconn

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestOptions(t *testing.T) {
	opts, err := Options("redis://:secret@cache.internal:6380/2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "cache.internal:6380" || opts.DB != 2 || opts.Password != "secret" {
		t.Errorf("unexpected parsed options: addr=%s db=%d", opts.Addr, opts.DB)
	}
	if opts.PoolSize != 10 || opts.DialTimeout != 5*time.Second {
		t.Errorf("pool settings not applied: size=%d dial=%s", opts.PoolSize, opts.DialTimeout)
	}
}

func TestNew_InvalidURL(t *testing.T) {
	if _, err := New(context.Background(), "not-a-valid-url"); err == nil {
		t.Fatal("expected error for invalid URL, got nil")
	}
}

func TestNew_UnreachableHost(t *testing.T) {
	if _, err := New(context.Background(), "redis://localhost:19999"); err == nil {
		t.Fatal("expected error when Redis is unreachable, got nil")
	}
}

// Integration tests below are skipped unless REDIS_URL is set.
func TestRedisIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	c, err := New(context.Background(), redisURL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close() //nolint:errcheck

	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
	if c.Redis() == nil {
		t.Fatal("expected non-nil underlying client")
	}
}
