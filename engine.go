package tempuscache

import (
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

/*
Cache implements a thread-safe, in-memory key-value store with:

- Per-entry sliding expiration
- LRU (Least Recently Used) eviction
- Active + Lazy expiration
- Configurable capacity limits
- Runtime statistics tracking
- Get-or-compute with a factory, deduped against the engine lock

================================================================================
ARCHITECTURAL OVERVIEW
================================================================================

tempuscache combines two core data structures, exactly as the teacher's
single-type cache did, generalized over K and V:

 1. index (map[K]*list.Element)
    - Provides O(1) key lookup.
    - Maps keys to their corresponding LRU list elements.

 2. recencyList (*list.List)
    - Maintains LRU ordering.
    - Most recently used entries sit at the front.
    - Least recently used entries sit at the back, ready for eviction.

================================================================================
CONCURRENCY MODEL
================================================================================

A single sync.Mutex protects index, list, stats bookkeeping exempted
(see stats.go), and lastCleanupAt. Every public operation takes it for
its full duration, including Find: spec §5 requires list promotion and
last-access updates to be treated as writes, so there is no read-only
fast path here, unlike the teacher's RWMutex (whose RLock was only ever
used by Stats, which this version makes lock-free via atomics instead).

A Get cache miss invokes the caller's factory while the lock is held.
This is deliberate (spec §5): it guarantees at most one factory
invocation per key across all concurrent callers, at the cost of
serializing unrelated keys during a slow factory. Factories must not
call back into the same Cache — doing so deadlocks, by design (spec §9).

================================================================================
EXPIRATION STRATEGY
================================================================================

Three-layer expiration, detailed in cleanup.go:
 1. Lazy — checked on every Find/Get lookup.
 2. Incremental active — a bounded tail sweep runs opportunistically on
    every Find, Get, Set, Remove and Len/IsEmpty call once
    cleanupInterval has elapsed.
 3. Full active — CleanupExpired, callable any time, unconditional.
*/
type Cache[K comparable, V any] struct {
	index *index[K]
	list  *recencyList[K, V]
	mu    sync.Mutex

	maxSize                  uint64
	defaultSlidingExpiration time.Duration
	cleanupInterval          time.Duration
	maxSweepPerTick          int
	lastCleanupAt            time.Time

	clock  clockwork.Clock
	logger *zap.Logger
	stats  statCounters
}

/*
New initializes and returns a configured Cache instance.

CONFIGURATION MODEL:
Uses the functional options pattern (options.go) to allow extensible
configuration without modifying the constructor signature. Unlike the
teacher's New, options can fail validation; the first error any option
returns aborts construction.

INITIALIZATION STEPS:
1. Allocate the index and recency list.
2. Install default ambient collaborators (real clock, no-op logger).
3. Apply user-provided options, bailing out on the first error.
4. Seed lastCleanupAt so the first opportunistic tick measures from
   construction time, not from the zero time.Time.

There is no background janitor goroutine and no Stop/shutdown channel
(see DESIGN.md): cleanup is entirely opportunistic, piggybacked on
caller traffic per spec §4.4, plus the always-available manual
CleanupExpired.
*/
func New[K comparable, V any](opts ...Option[K, V]) (*Cache[K, V], error) {
	c := &Cache[K, V]{
		index:           newIndex[K](),
		list:            newRecencyList[K, V](),
		maxSweepPerTick: 128,
		clock:           clockwork.NewRealClock(),
		logger:          nopLogger(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("tempuscache: %w", err)
		}
	}

	c.lastCleanupAt = c.clock.Now()
	return c, nil
}

/*
Find looks up key without invoking any factory (spec §4.3.2 find).

RETURNS:
- (value, true)  -> key present and not expired; promoted to the
                    recency head and its last-access instant refreshed.
- (zero, false)  -> key absent, or present but expired (and now
                    removed as a side effect).

This runs the opportunistic cleanup tick first, like Get, Set, Remove
and Len/IsEmpty. Clear, Keys, Resize, Stats and CleanupExpired do not
run it.
*/
func (c *Cache[K, V]) Find(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	c.cleanupTick(now)

	var zero V
	elem, found := c.index.find(key)
	if !found {
		c.stats.misses.Add(1)
		return zero, false
	}

	ent := entryAt[K, V](elem)
	if ent.expired(now) {
		c.removeElement(elem)
		c.stats.expirations.Add(1)
		c.stats.misses.Add(1)
		return zero, false
	}

	ent.lastAccessAt = now
	c.list.promote(elem)
	c.stats.hits.Add(1)
	return ent.value, true
}

/*
Get returns the value for key, computing and inserting it via factory
on a miss (spec §4.3.2 get — scenario a: "hit skips factory").

EXECUTION FLOW:
 1. Run the opportunistic cleanup tick.
 2. Look up key. If present and live, promote and return it —
    factory is NOT invoked.
 3. If present and expired, remove it first.
 4. Enforce capacity: evict from the tail while maxSize>0 and
    len()>=maxSize.
 5. Invoke factory() while still holding the lock (see type doc).
 6. On success, build an entry with createdAt=lastAccessAt=now and the
    configured default sliding expiration, apply any configurators, and
    link it at the recency head.
 7. On factory failure, the cache is left exactly as it was for key:
    no partial node, no spurious eviction survives past this call
    returning (the eviction in step 4 already happened, matching spec
    §4.3.2's own ordering — a failed factory does not "give back" a
    slot it made room for, since the slot itself was a correct,
    independent LRU eviction, not part of the new entry's insertion).
*/
func (c *Cache[K, V]) Get(key K, factory func() (V, error), configurators ...Configurator) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	c.cleanupTick(now)

	var zero V
	if elem, found := c.index.find(key); found {
		ent := entryAt[K, V](elem)
		if !ent.expired(now) {
			ent.lastAccessAt = now
			c.list.promote(elem)
			c.stats.hits.Add(1)
			return ent.value, nil
		}
		c.removeElement(elem)
		c.stats.expirations.Add(1)
	}

	c.stats.misses.Add(1)
	for c.maxSize > 0 && uint64(c.list.len()) >= c.maxSize {
		c.evictOldest()
	}

	value, err := factory()
	if err != nil {
		return zero, fmt.Errorf("tempuscache: factory for key %v: %w", key, err)
	}

	c.insertLocked(key, value, now, configurators)
	return value, nil
}

/*
Set inserts or overwrites key with value directly, bypassing a factory.
Not part of spec.md's literal operation set, but supplemented from
original_source/'s sample programs, which repeatedly insert known
values without a compute-on-miss callback (see SPEC_FULL.md). Internally
this is exactly Get's insertion path: build-or-replace the entry,
evict if needed, promote to the head.
*/
func (c *Cache[K, V]) Set(key K, value V, configurators ...Configurator) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	c.cleanupTick(now)

	if elem, found := c.index.find(key); found {
		ent := entryAt[K, V](elem)
		ent.value = value
		ent.lastAccessAt = now
		meta := EntryMeta{SlidingExpiration: ent.slidingExpiration, Size: ent.size}
		for _, cfg := range configurators {
			cfg(&meta)
		}
		ent.slidingExpiration = meta.SlidingExpiration
		ent.size = meta.Size
		c.list.promote(elem)
		return
	}

	for c.maxSize > 0 && uint64(c.list.len()) >= c.maxSize {
		c.evictOldest()
	}
	c.insertLocked(key, value, now, configurators)
}

// insertLocked builds a fresh entry and links it at the recency head.
// Callers must hold c.mu and must have already confirmed key is absent.
func (c *Cache[K, V]) insertLocked(key K, value V, now time.Time, configurators []Configurator) {
	meta := EntryMeta{SlidingExpiration: c.defaultSlidingExpiration}
	for _, cfg := range configurators {
		cfg(&meta)
	}

	ent := &entry[K, V]{
		key:               key,
		value:             value,
		createdAt:         now,
		lastAccessAt:      now,
		slidingExpiration: meta.SlidingExpiration,
		size:              meta.Size,
	}

	elem := c.list.pushFront(ent)
	c.index.insert(key, elem)
}

/*
Remove erases key from the cache (spec §4.3.2 remove).

BEHAVIOR:
- If key exists -> detach and discard it, return true.
- If key does not exist -> no-op, return false.

Idempotent: a second Remove(key) after the first always returns false
(spec §8 invariant 6).
*/
func (c *Cache[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cleanupTick(c.clock.Now())

	elem, found := c.index.find(key)
	if !found {
		return false
	}
	c.removeElement(elem)
	return true
}

/*
Clear empties the cache entirely (spec §4.3.2 clear): every entry is
detached and discarded, and lastCleanupAt resets to now. Idempotent:
Clear(); Clear() behaves identically to a single Clear().
*/
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.index.clear()
	c.list.init()
	c.lastCleanupAt = c.clock.Now()
}

// Len returns the current number of live entries (spec's size()). Like
// Find, Get, Set and Remove it first runs the opportunistic cleanup
// tick.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cleanupTick(c.clock.Now())
	return c.list.len()
}

// IsEmpty reports whether the cache currently holds no live entries.
func (c *Cache[K, V]) IsEmpty() bool {
	return c.Len() == 0
}

// Keys returns every live key in recency order, tail (least recently
// used) to head (most recently used). Supplemented from
// original_source/'s benchmark and test programs, which enumerate
// cache contents to assert eviction order (see SPEC_FULL.md). Read-only:
// it does not promote any node and does not run the cleanup tick, so it
// may include entries that are expired-but-not-yet-swept.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.list.keysFromBack()
}

/*
Resize changes the maximum live-entry bound immediately, evicting from
the tail until the new bound is satisfied. Supplemented from
original_source/'s benchmark programs, which vary capacity against one
long-lived instance rather than constructing a fresh cache per size
(see SPEC_FULL.md). newMaxSize of 0 disables the bound, same convention
as WithMaxSize.
*/
func (c *Cache[K, V]) Resize(newMaxSize uint64) (evicted int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.maxSize = newMaxSize
	for c.maxSize > 0 && uint64(c.list.len()) > c.maxSize {
		c.evictOldest()
		evicted++
	}
	return evicted
}

// Stats returns a point-in-time snapshot of hit/miss/eviction/expiration
// counters. Lock-free: see stats.go.
func (c *Cache[K, V]) Stats() Stats {
	return c.stats.snapshot()
}
