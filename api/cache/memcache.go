package cache

import (
	"context"
	"sync"
	"time"
)

// Create a in-memory cache with small TTL to minimize Redis calls.
type MemCache[T any] struct {
	memoryCache   sync.Map
	cleanupTicker *time.Ticker
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
}

// Simple cache item.
type memCacheItem[T any] struct {
	value T
	ttl   time.Time
}

// NewMemCache creates a new memory cache, expired keys are dropped every cleanupInterval.
func NewMemCache[T any](cleanupInterval time.Duration) *MemCache[T] {
	ctx, cancel := context.WithCancel(context.Background())
	mc := &MemCache[T]{
		cancel:        cancel,
		cleanupTicker: time.NewTicker(cleanupInterval),
		ctx:           ctx,
	}
	mc.startCleanupWorker()

	return mc
}

// startCleanupWorker starts the background worker for memory cleaning.
func (mc *MemCache[T]) startCleanupWorker() {
	mc.wg.Add(1)
	go func() {
		defer mc.wg.Done()
		for {
			select {
			case <-mc.cleanupTicker.C:
				mc.cleanup()
			case <-mc.ctx.Done():
				return
			}
		}
	}()
}

// cleanup go through each key and clean any expired key.
func (mc *MemCache[T]) cleanup() {
	now := time.Now()
	mc.memoryCache.Range(func(key, value any) bool {
		if now.After(value.(*memCacheItem[T]).ttl) {
			mc.memoryCache.Delete(key)
		}
		return true
	})
}

// Close shutdown the memory cache worker.
func (mc *MemCache[T]) Close() {
	mc.cancel()
	mc.cleanupTicker.Stop()
	mc.wg.Wait()
}

// Get returns the value of a key that didn't expire yet.
func (mc *MemCache[T]) Get(key string) (T, bool) {
	var zero T

	value, exists := mc.memoryCache.Load(key)
	if !exists {
		return zero, false
	}

	item := value.(*memCacheItem[T])
	if time.Now().After(item.ttl) {
		mc.memoryCache.Delete(key)
		return zero, false
	}

	return item.value, true
}

// Set a given key on the cache.
func (mc *MemCache[T]) Set(key string, value T, ttl time.Duration) {
	mc.memoryCache.Store(key, &memCacheItem[T]{
		value: value,
		ttl:   time.Now().Add(ttl),
	})
}

// Size returns how many keys are stored, expired or not.
func (mc *MemCache[T]) Size() int {
	count := 0
	mc.memoryCache.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}
