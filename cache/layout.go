// Package cache provides a sharded LRU cache for shaped line layouts.
//
// Shaping is the most expensive step of the text pipeline, and editors
// repaint the same lines every frame. LayoutCache keys shaped results by
// text, font, and size so repeated ShapeLine calls become map lookups.
// Layouts are immutable, so a cached *textline.LineLayout can be shared
// between callers without copying.
package cache

import (
	"hash/fnv"
	"math"
	"sync"
	"sync/atomic"

	"github.com/gogpu/textline"
)

const (
	// shardCount is the number of independently locked shards. Must be a
	// power of 2 so shard selection is a bitwise AND.
	shardCount = 16

	// DefaultCapacity is the default maximum entries per shard.
	DefaultCapacity = 256

	shardMask = shardCount - 1
)

// LayoutKey identifies one shaped line. Every parameter that affects the
// shaping result is part of the key.
type LayoutKey struct {
	// TextHash is the FNV-1a hash of the line's text. The text itself is
	// not stored; a 64-bit hash collision returns the wrong layout, which
	// is accepted for this cache's use.
	TextHash uint64

	// FontID is the shaper's font identifier.
	FontID textline.FontID

	// SizeBits is the IEEE 754 bit pattern of the font size. The bit
	// pattern matches exactly where float comparison would not.
	SizeBits uint64
}

// NewLayoutKey builds the cache key for a (text, font, size) triple.
func NewLayoutKey(text string, fontID textline.FontID, fontSize float64) LayoutKey {
	return LayoutKey{
		TextHash: hashString(text),
		FontID:   fontID,
		SizeBits: math.Float64bits(fontSize),
	}
}

// hashString computes the FNV-1a hash of a string.
func hashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// shardIndex mixes the key fields into a shard selector.
func (k LayoutKey) shardIndex() int {
	h := k.TextHash ^ uint64(k.FontID)*0x9E3779B97F4A7C15 ^ k.SizeBits
	return int(h & shardMask)
}

// Stats reports cache effectiveness.
type Stats struct {
	Len       int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns hits over total lookups, or 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// LayoutCache is a thread-safe, sharded LRU cache of shaped layouts.
// Each shard holds up to the configured capacity and evicts least
// recently used entries first.
type LayoutCache struct {
	shards   [shardCount]*layoutShard
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type layoutShard struct {
	mu      sync.RWMutex
	entries map[LayoutKey]*layoutEntry
	lru     lruList
}

type layoutEntry struct {
	layout *textline.LineLayout
	node   *lruNode
}

// NewLayoutCache creates a cache holding up to capacity layouts per
// shard. Non-positive capacity uses DefaultCapacity.
func NewLayoutCache(capacity int) *LayoutCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &LayoutCache{capacity: capacity}
	for i := range c.shards {
		c.shards[i] = &layoutShard{entries: make(map[LayoutKey]*layoutEntry)}
	}
	return c
}

// Get returns the cached layout for key, marking it most recently used.
func (c *LayoutCache) Get(key LayoutKey) (*textline.LineLayout, bool) {
	shard := c.shards[key.shardIndex()]

	shard.mu.RLock()
	_, exists := shard.entries[key]
	shard.mu.RUnlock()

	if !exists {
		c.misses.Add(1)
		return nil, false
	}

	shard.mu.Lock()
	entry, ok := shard.entries[key]
	if !ok {
		// Evicted between the read check and the write lock.
		shard.mu.Unlock()
		c.misses.Add(1)
		return nil, false
	}
	shard.lru.MoveToFront(entry.node)
	layout := entry.layout
	shard.mu.Unlock()

	c.hits.Add(1)
	return layout, true
}

// Set stores a layout, evicting least recently used entries when the
// shard is full. The layout is shared, not copied.
func (c *LayoutCache) Set(key LayoutKey, layout *textline.LineLayout) {
	shard := c.shards[key.shardIndex()]

	shard.mu.Lock()
	defer shard.mu.Unlock()

	if existing, ok := shard.entries[key]; ok {
		existing.layout = layout
		shard.lru.MoveToFront(existing.node)
		return
	}

	for shard.lru.Len() >= c.capacity {
		oldest, ok := shard.lru.RemoveOldest()
		if !ok {
			break
		}
		delete(shard.entries, oldest)
		c.evictions.Add(1)
	}

	node := shard.lru.PushFront(key)
	shard.entries[key] = &layoutEntry{layout: layout, node: node}
}

// Delete removes an entry, reporting whether it was present.
func (c *LayoutCache) Delete(key LayoutKey) bool {
	shard := c.shards[key.shardIndex()]

	shard.mu.Lock()
	defer shard.mu.Unlock()

	entry, ok := shard.entries[key]
	if !ok {
		return false
	}
	shard.lru.Remove(entry.node)
	delete(shard.entries, key)
	return true
}

// Clear removes all entries. Statistics are kept.
func (c *LayoutCache) Clear() {
	for _, shard := range c.shards {
		shard.mu.Lock()
		shard.entries = make(map[LayoutKey]*layoutEntry)
		shard.lru = lruList{}
		shard.mu.Unlock()
	}
}

// Len returns the total number of cached layouts.
func (c *LayoutCache) Len() int {
	total := 0
	for _, shard := range c.shards {
		shard.mu.RLock()
		total += len(shard.entries)
		shard.mu.RUnlock()
	}
	return total
}

// Capacity returns the per-shard capacity.
func (c *LayoutCache) Capacity() int {
	return c.capacity
}

// Stats returns a snapshot of the cache counters.
func (c *LayoutCache) Stats() Stats {
	return Stats{
		Len:       c.Len(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
