/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package cache implements the resolution cache: a bounded least-recently-used
// map from (caller, request) to a resolution outcome.
//
// Entries form a doubly linked recency list from the most recently used head
// to the least recently used tail, so promotion and tail eviction are O(1).
// Once the cache grows past its capacity a whole batch of tail entries is
// evicted in one pass. The cache may therefore briefly hold up to one batch
// above what a strict LRU would, but it never exceeds capacity after an
// eviction cycle.
//
// Cache is not safe for concurrent use.
package cache

// Key identifies a resolution.
type Key struct {
	// Caller is the calling context identifier, e.g. the requiring file.
	Caller string
	// Request is the raw request string.
	Request string
}

// Value is a cached resolution outcome.
type Value struct {
	// Path is the resolved path, or the original request when !Resolved.
	Path string
	// Alias is the alias that matched.
	Alias string
	// Resolved is false for pass-through results.
	Resolved bool
}

// Stats is a point-in-time view of a Cache.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Entries   int
	Capacity  int
	Batch     int
}

// HitRate returns the hit rate as a percentage (0-100), or 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

type entry struct {
	key        Key
	value      Value
	prev, next *entry
}

// New creates a cache holding up to capacity entries and evicting batch
// entries per cycle. A non-positive capacity disables caching; batch is
// clamped to [1, capacity].
func New(capacity, batch int) *Cache {
	c := &Cache{items: make(map[Key]*entry)}
	c.Resize(capacity, batch)
	return c
}

// BatchFor returns percent of capacity, at least 1.
func BatchFor(capacity, percent int) int {
	return max(1, capacity*percent/100)
}

// Cache is an LRU cache with batch eviction.
type Cache struct {
	items    map[Key]*entry
	head     *entry
	tail     *entry
	capacity int
	batch    int

	bytes     int64
	hits      uint64
	misses    uint64
	evictions uint64
}

// Get returns the value for k and promotes it to the head.
func (c *Cache) Get(k Key) (Value, bool) {
	e, ok := c.items[k]
	if !ok {
		c.misses++
		return Value{}, false
	}
	c.hits++
	c.promote(e)
	return e.value, true
}

// Set stores v under k as the most recently used entry, evicting a batch
// from the tail when the cache grows past capacity.
func (c *Cache) Set(k Key, v Value) {
	if c.capacity <= 0 {
		return
	}
	if e, ok := c.items[k]; ok {
		c.bytes += size(Key{}, v) - size(Key{}, e.value)
		e.value = v
		c.promote(e)
		return
	}

	e := &entry{key: k, value: v, next: c.head}
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
	c.items[k] = e
	c.bytes += size(k, v)

	if len(c.items) > c.capacity {
		c.evict(c.batch)
	}
}

// contains reports whether k is cached without touching recency or stats.
func (c *Cache) contains(k Key) bool {
	_, ok := c.items[k]
	return ok
}

// Clear drops every entry. Hit/miss counters are kept.
func (c *Cache) Clear() {
	clear(c.items)
	c.head, c.tail = nil, nil
	c.bytes = 0
}

// Resize changes capacity and batch size, evicting from the tail until the
// cache fits the new capacity.
func (c *Cache) Resize(capacity, batch int) {
	c.capacity = capacity
	c.batch = min(max(batch, 1), max(capacity, 1))
	if capacity <= 0 {
		c.Clear()
		return
	}
	for len(c.items) > c.capacity {
		c.evict(c.batch)
	}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return len(c.items)
}

// Cap returns the configured capacity.
func (c *Cache) Cap() int {
	return c.capacity
}

// Bytes returns the total length of the strings held by cached entries.
func (c *Cache) Bytes() int64 {
	return c.bytes
}

// keys returns keys from most to least recently used.
func (c *Cache) keys() []Key {
	keys := make([]Key, 0, len(c.items))
	for e := c.head; e != nil; e = e.next {
		keys = append(keys, e.key)
	}
	return keys
}

// Stats returns counters and sizing.
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Entries:   len(c.items),
		Capacity:  c.capacity,
		Batch:     c.batch,
	}
}

// evict removes up to n entries from the tail.
func (c *Cache) evict(n int) {
	for ; n > 0 && c.tail != nil; n-- {
		e := c.tail
		c.unlink(e)
		delete(c.items, e.key)
		c.bytes -= size(e.key, e.value)
		c.evictions++
	}
}

func (c *Cache) promote(e *entry) {
	if c.head == e {
		return
	}
	c.unlink(e)
	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *Cache) unlink(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
	e.prev, e.next = nil, nil
}

func size(k Key, v Value) int64 {
	return int64(len(k.Caller) + len(k.Request) + len(v.Path) + len(v.Alias))
}
