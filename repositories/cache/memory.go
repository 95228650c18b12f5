package cache

import (
	// Go Internal Packages
	"context"
	"time"

	// External Packages
	"github.com/jellydator/ttlcache/v3"
)

// Memory is the in-process Store used when no shared cache is configured.
type Memory struct {
	cache *ttlcache.Cache[string, []byte]
}

func NewMemory() *Memory {
	c := ttlcache.New[string, []byte]()
	go c.Start()
	return &Memory{cache: c}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	item := m.cache.Get(key)
	if item == nil || item.IsExpired() {
		return nil, false
	}
	return item.Value(), true
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	m.cache.Set(key, value, ttl)
}

// Stop halts the background expiry loop.
func (m *Memory) Stop() {
	m.cache.Stop()
}
