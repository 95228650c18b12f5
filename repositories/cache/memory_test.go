package cache_test

import (
	// Go Internal Packages
	"context"
	"testing"
	"time"

	// Local Packages
	cache "bospay-gateway/repositories/cache"

	// External Packages
	"github.com/stretchr/testify/assert"
)

func TestMemory_SetGet(t *testing.T) {
	m := cache.NewMemory()
	t.Cleanup(m.Stop)
	ctx := context.Background()

	_, ok := m.Get(ctx, "missing")
	assert.False(t, ok)

	m.Set(ctx, "k", []byte("v"), time.Minute)
	got, ok := m.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), got)
}

func TestMemory_Expiry(t *testing.T) {
	m := cache.NewMemory()
	t.Cleanup(m.Stop)
	ctx := context.Background()

	m.Set(ctx, "k", []byte("v"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	_, ok := m.Get(ctx, "k")
	assert.False(t, ok)
}
