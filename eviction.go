package tempuscache

import (
	"container/list"

	"go.uber.org/zap"
)

/*
evictOldest removes the least recently used entry when capacity
constraints are exceeded (spec §4.3.4).

================================================================================
EVICTION POLICY
================================================================================

Strict LRU: the list's head is the most recently accessed or inserted
entry, the tail is the least recent. When maxSize is reached, the tail
is evicted. List order is total, so there is never a tie to break.

Eviction does not invoke any user-visible hook — only the ambient
Evictions counter and a debug log line, both observability rather than
a callback contract.

TIME COMPLEXITY: O(1), via the doubly linked list's constant-time tail
removal.
*/
func (c *Cache[K, V]) evictOldest() {
	elem := c.list.back()
	if elem == nil {
		return
	}
	key := entryAt[K, V](elem).key
	c.removeElement(elem)
	c.stats.evictions.Add(1)
	c.logger.Debug("evicted oldest entry", zap.Any("key", key))
}

// removeElement unlinks elem from both the list and the index, keeping
// the bijection invariant (§3 invariant 1) intact. Callers must already
// hold the engine lock; this performs no synchronization of its own.
//
// Used by: LRU eviction, lazy expiration on lookup, the cleanup
// scheduler, and explicit Remove.
func (c *Cache[K, V]) removeElement(e *list.Element) {
	c.list.detach(e)
	ent := entryAt[K, V](e)
	c.index.erase(ent.key)
}
