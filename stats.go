package tempuscache

import "sync/atomic"

/*
Stats is a point-in-time snapshot of cache effectiveness metrics.

================================================================================
PURPOSE
================================================================================

This structure tracks key operational indicators:

- Hits        → Get/Find calls that found a live, non-expired entry.
- Misses      → Get/Find calls that found nothing (absent or expired).
- Evictions   → Entries removed due to LRU capacity constraints.
- Expirations → Entries removed because their sliding window elapsed,
                whether discovered lazily on lookup or by a cleanup
                sweep.

These metrics provide visibility into cache effectiveness
and operational behavior.

For example:

    hit_ratio = Hits / (Hits + Misses)

================================================================================
CONCURRENCY MODEL
================================================================================

Unlike the rest of the engine, counters are sync/atomic values rather
than fields guarded by the engine's main lock. Stats() is meant to be
cheap to call from a metrics exporter on any goroutine without
contending with cache traffic, so it never takes the engine lock.
*/
type Stats struct {
	Hits        uint64
	Misses      uint64
	Evictions   uint64
	Expirations uint64
}

type statCounters struct {
	hits        atomic.Uint64
	misses      atomic.Uint64
	evictions   atomic.Uint64
	expirations atomic.Uint64
}

func (s *statCounters) snapshot() Stats {
	return Stats{
		Hits:        s.hits.Load(),
		Misses:      s.misses.Load(),
		Evictions:   s.evictions.Load(),
		Expirations: s.expirations.Load(),
	}
}
