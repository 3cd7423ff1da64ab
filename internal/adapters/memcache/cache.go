// Package memcache is the in-process snapshot store used when no redis
// address is configured.
package memcache

import (
	"context"
	"encoding/json"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"hbnb_web/internal/adapters/observability"
)

// SweepInterval is how often expired snapshots are dropped from memory.
const SweepInterval = time.Minute

// Cache keeps JSON copies of snapshots. Expired entries are removed by a
// background sweep whether or not they are read again.
type Cache struct {
	c *gocache.Cache
}

func New() *Cache { return NewWithSweep(SweepInterval) }

// NewWithSweep sets the sweep interval; every <= 0 disables the sweep.
func NewWithSweep(every time.Duration) *Cache {
	return &Cache{c: gocache.New(gocache.NoExpiration, every)}
}

func (c *Cache) Get(_ context.Context, key string, dst any) (bool, error) {
	v, ok := c.c.Get(key)
	if !ok {
		observability.ObserveCache("memory", "miss")
		return false, nil
	}
	observability.ObserveCache("memory", "hit")
	return true, json.Unmarshal(v.([]byte), dst)
}

// Set stores a JSON copy of v; ttlSec <= 0 never expires.
func (c *Cache) Set(_ context.Context, key string, v any, ttlSec int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	ttl := gocache.NoExpiration
	if ttlSec > 0 {
		ttl = time.Duration(ttlSec) * time.Second
	}
	c.c.Set(key, b, ttl)
	observability.ObserveCache("memory", "set")
	return nil
}

func (c *Cache) Del(_ context.Context, key string) error {
	c.c.Delete(key)
	observability.ObserveCache("memory", "del")
	return nil
}

// Len counts held entries, expired ones not yet swept included.
func (c *Cache) Len() int { return c.c.ItemCount() }
