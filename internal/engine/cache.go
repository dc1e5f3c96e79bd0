package engine

import (
	"container/list"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
)

// DefaultCacheEntries bounds the search cache when main passes no override.
const DefaultCacheEntries = 200

// searchCache holds per-engine search results for the process lifetime.
// Exclusively owned by the dispatcher; cleared only via the clear_cache tool.
var searchCache *ResultCache

// Cache metrics — atomic counters for thread-safe access.
var (
	cacheHits   atomic.Int64
	cacheMisses atomic.Int64
)

// ResultCache is a bounded LRU mapping cache keys to the full (untruncated)
// result list of one engine fetch plus the timestamp of the dispatch that
// populated it. Safe for concurrent use: search units from the same or
// different dispatches share it.
type ResultCache struct {
	mu       sync.Mutex
	entries  map[string]*list.Element
	order    *list.List // front = most recently used
	capacity int
}

type cacheEntry struct {
	key       string
	results   []Result
	timestamp string
}

// NewResultCache creates a cache holding at most capacity entries.
// Capacity below 1 is a configuration error.
func NewResultCache(capacity int) (*ResultCache, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("cache capacity must be >= 1, got %d", capacity)
	}
	return &ResultCache{
		entries:  make(map[string]*list.Element),
		order:    list.New(),
		capacity: capacity,
	}, nil
}

// Get returns the stored results and timestamp, marking the key
// most-recently-used on hit.
func (c *ResultCache) Get(key string) ([]Result, string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return nil, "", false
	}
	c.order.MoveToFront(el)
	entry := el.Value.(*cacheEntry)
	return entry.results, entry.timestamp, true
}

// Set inserts or overwrites. An existing key is refreshed to most-recent;
// a new key at capacity evicts the least-recently-used entry first.
func (c *ResultCache) Set(key string, results []Result, timestamp string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		entry := el.Value.(*cacheEntry)
		entry.results = results
		entry.timestamp = timestamp
		c.order.MoveToFront(el)
		return
	}

	if len(c.entries) >= c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}

	c.entries[key] = c.order.PushFront(&cacheEntry{
		key:       key,
		results:   results,
		timestamp: timestamp,
	})
}

// Clear empties all entries and recency tracking.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*list.Element)
	c.order.Init()
}

// Len reports the current entry count.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// InitCache sets up the process-wide search cache. Call after Init().
func InitCache(maxEntries int) error {
	c, err := NewResultCache(maxEntries)
	if err != nil {
		return err
	}
	searchCache = c
	slog.Info("cache: initialized", slog.Int("max_entries", maxEntries))
	return nil
}

// CacheKey builds a deterministic cache key from parts. Content-hashed so key
// length stays bounded regardless of query content.
func CacheKey(parts ...string) string {
	joined := strings.Join(parts, "|")
	hash := sha256.Sum256([]byte(joined))
	return fmt.Sprintf("ws:%x", hash[:12]) // 24-char hex prefix
}

// CacheGet reads from the process cache, counting hit/miss.
func CacheGet(key string) ([]Result, string, bool) {
	if searchCache == nil {
		cacheMisses.Add(1)
		return nil, "", false
	}
	results, ts, ok := searchCache.Get(key)
	if ok {
		slog.Debug("cache: hit", slog.String("key", key))
		cacheHits.Add(1)
	} else {
		cacheMisses.Add(1)
	}
	return results, ts, ok
}

// CacheSet stores the full result list for an engine fetch.
func CacheSet(key string, results []Result, timestamp string) {
	if searchCache == nil {
		return
	}
	searchCache.Set(key, results, timestamp)
}

// ClearCache empties the process cache.
func ClearCache() {
	if searchCache == nil {
		return
	}
	searchCache.Clear()
	slog.Info("cache: cleared")
}

// CacheStats returns current cache hit/miss counters.
func CacheStats() (hits, misses int64) {
	return cacheHits.Load(), cacheMisses.Load()
}
