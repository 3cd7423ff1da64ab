package memcache

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestCache_RoundTripAndExpiry(t *testing.T) {
	c := NewWithSweep(0)
	ctx := context.Background()

	if err := c.Set(ctx, "k", []string{"a", "b"}, 1); err != nil {
		t.Fatalf("set: %v", err)
	}
	var out []string
	if ok, err := c.Get(ctx, "k", &out); !ok || err != nil || len(out) != 2 {
		t.Fatalf("get: ok=%v err=%v out=%v", ok, err, out)
	}

	time.Sleep(1100 * time.Millisecond)
	if ok, _ := c.Get(ctx, "k", &out); ok {
		t.Fatalf("expected expiry at ttl")
	}
}

func TestCache_StoresCopies(t *testing.T) {
	c := New()
	ctx := context.Background()
	in := []string{"a"}
	_ = c.Set(ctx, "k", in, 0)
	in[0] = "mutated"

	var out []string
	_, _ = c.Get(ctx, "k", &out)
	if out[0] != "a" {
		t.Fatalf("cache aliased caller slice: %v", out)
	}
	_ = c.Del(ctx, "k")
	if ok, _ := c.Get(ctx, "k", &out); ok {
		t.Fatalf("expected miss after Del")
	}
}

func TestCache_SweepsUnreadExpiredEntries(t *testing.T) {
	c := NewWithSweep(50 * time.Millisecond)
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		if err := c.Set(ctx, fmt.Sprintf("places:view:%d", i), []int{i}, 1); err != nil {
			t.Fatalf("set %d: %v", i, err)
		}
	}
	_ = c.Set(ctx, "places:view:live", []int{-1}, 900)
	if n := c.Len(); n != 1001 {
		t.Fatalf("held %d entries, want 1001", n)
	}

	deadline := time.Now().Add(3 * time.Second)
	for c.Len() != 1 {
		if time.Now().After(deadline) {
			t.Fatalf("expired entries never swept: %d held", c.Len())
		}
		time.Sleep(50 * time.Millisecond)
	}
	var out []int
	if ok, _ := c.Get(ctx, "places:view:live", &out); !ok || out[0] != -1 {
		t.Fatalf("live entry lost: ok=%v out=%v", ok, out)
	}
}
