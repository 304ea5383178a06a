package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestRedis_Key(t *testing.T) {
	r := NewRedis(nil, "mentara:plan")
	if got := r.key("abc"); got != "mentara:plan:abc" {
		t.Errorf("unexpected key %q", got)
	}
	if got := NewRedis(nil, "").key("abc"); got != "abc" {
		t.Errorf("expected bare key without prefix, got %q", got)
	}
}

func TestConnect_BadURL(t *testing.T) {
	if _, err := Connect(context.Background(), "not-a-url"); err == nil {
		t.Error("expected parse error")
	}
}

func TestRedis_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	defer client.Close()
	r := NewRedis(client, "test")

	ctx := context.Background()
	var dst map[string]int
	if _, err := r.Get(ctx, "k", &dst); err == nil {
		t.Error("expected Get error against unreachable server")
	}
	if err := r.Set(ctx, "k", map[string]int{"a": 1}, time.Minute); err == nil {
		t.Error("expected Set error against unreachable server")
	}
}

func TestNop(t *testing.T) {
	var n Nop
	ctx := context.Background()
	if err := n.Set(ctx, "k", 1, time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var v int
	hit, err := n.Get(ctx, "k", &v)
	if err != nil || hit {
		t.Errorf("expected a miss, got hit=%v err=%v", hit, err)
	}
}
