package tempuscache

import "time"

/*
entry is the record stored inside every LRU list node.

DESIGN PURPOSE

Each cache key maps to an entry instead of directly storing the value.
This lets the engine associate recency and expiration metadata with a
value without touching the value itself.

STRUCTURE

key                -> back-reference used by eviction to erase the
                      right index entry (see eviction.go); the node
                      itself is reached via the index, so this is the
                      only place the key is needed on the hot path.
value              -> the stored payload, generic over V.
createdAt          -> set once at insertion, never updated.
lastAccessAt       -> refreshed on every successful lookup or get-hit.
slidingExpiration  -> per-entry TTL window, reset on every access.
                      Zero means "never expires".
size               -> user-supplied metadata, not interpreted by the
                      engine beyond being passed through the
                      configurator (see options.go).
*/
type entry[K comparable, V any] struct {
	key               K
	value             V
	createdAt         time.Time
	lastAccessAt      time.Time
	slidingExpiration time.Duration
	size              uint64
}

// expired reports whether the entry is stale as of now, per the sliding
// expiration rule: zero window means the entry never expires.
func (e *entry[K, V]) expired(now time.Time) bool {
	if e.slidingExpiration <= 0 {
		return false
	}
	return now.Sub(e.lastAccessAt) >= e.slidingExpiration
}
