package utils

import (
	"sync"
	"sync/atomic"

	"github.com/dolthub/swiss"
	"github.com/floatdrop/lru"
)

// Cache A concurrent safe key/value cache. Implementations decide on eviction.
type Cache[K comparable, T any] interface {
	Get(key K) (value T, ok bool)
	Set(key K, value T)
	Delete(key K)
	Clear()
	Stats() (hits, misses uint64)
}

type cacheStats struct {
	hits, misses atomic.Uint64
}

func (s *cacheStats) record(ok bool) {
	if ok {
		s.hits.Add(1)
	} else {
		s.misses.Add(1)
	}
}

func (s *cacheStats) Stats() (hits, misses uint64) {
	return s.hits.Load(), s.misses.Load()
}

type LRUCache[K comparable, T any] struct {
	cacheStats
	lock   sync.Mutex
	size   int
	values *lru.LRU[K, T]
}

func NewLRUCache[K comparable, T any](size int) *LRUCache[K, T] {
	return &LRUCache[K, T]{
		size:   size,
		values: lru.New[K, T](size),
	}
}

func (c *LRUCache[K, T]) Get(key K) (value T, ok bool) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if v := c.values.Get(key); v != nil {
		c.record(true)
		return *v, true
	}
	c.record(false)
	return value, false
}

func (c *LRUCache[K, T]) Set(key K, value T) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.values.Set(key, value)
}

func (c *LRUCache[K, T]) Delete(key K) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.values.Remove(key)
}

func (c *LRUCache[K, T]) Clear() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.values = lru.New[K, T](c.size)
}

// MapCache Unordered cache, dropped entirely once it reaches its limit
type MapCache[K comparable, T any] struct {
	cacheStats
	lock   sync.RWMutex
	limit  int
	values *swiss.Map[K, T]
}

func NewMapCache[K comparable, T any](limit int) *MapCache[K, T] {
	return &MapCache[K, T]{
		limit:  limit,
		values: swiss.NewMap[K, T](uint32(limit)),
	}
}

func (c *MapCache[K, T]) Get(key K) (value T, ok bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	value, ok = c.values.Get(key)
	c.record(ok)
	return value, ok
}

func (c *MapCache[K, T]) Set(key K, value T) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.values.Count() >= c.limit {
		c.values.Clear()
	}
	c.values.Put(key, value)
}

func (c *MapCache[K, T]) Delete(key K) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.values.Delete(key)
}

func (c *MapCache[K, T]) Clear() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.values.Clear()
}

// NilCache Never stores anything
type NilCache[K comparable, T any] struct {
	cacheStats
}

func NewNilCache[K comparable, T any]() *NilCache[K, T] {
	return &NilCache[K, T]{}
}

func (c *NilCache[K, T]) Get(K) (value T, ok bool) {
	c.record(false)
	return value, false
}

func (c *NilCache[K, T]) Set(K, T) {}

func (c *NilCache[K, T]) Delete(K) {}

func (c *NilCache[K, T]) Clear() {}

var _ Cache[int, int] = (*LRUCache[int, int])(nil)
var _ Cache[int, int] = (*MapCache[int, int])(nil)
var _ Cache[int, int] = (*NilCache[int, int])(nil)
