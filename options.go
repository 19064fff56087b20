package tempuscache

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

/*
Option configures a Cache at construction time.

DESIGN PATTERN

This is the teacher's functional options pattern, generalized two ways:

 1. Options are parameterized over the cache's K/V type parameters, since
    New is now generic.
 2. An Option can fail validation and return an error, collected by New
    rather than silently ignored or clamped — the same idiom go-pkgz/lcw
    uses for its cache options.

    cache, err := New[string, []byte](
        WithMaxSize[string, []byte](1000),
        WithDefaultSlidingExpiration[string, []byte](10*time.Minute),
        WithCleanupInterval[string, []byte](time.Minute),
    )

Each Option mutates the Cache instance before it starts serving calls.
*/
type Option[K comparable, V any] func(*Cache[K, V]) error

// WithMaxSize bounds the cache to at most n live entries. 0 (the
// default) disables the bound.
func WithMaxSize[K comparable, V any](n uint64) Option[K, V] {
	return func(c *Cache[K, V]) error {
		c.maxSize = n
		return nil
	}
}

// WithDefaultSlidingExpiration sets the sliding expiration window applied
// to entries that don't override it via a Configurator. 0 (the default)
// means entries never expire unless a Configurator says otherwise.
func WithDefaultSlidingExpiration[K comparable, V any](d time.Duration) Option[K, V] {
	return func(c *Cache[K, V]) error {
		if d < 0 {
			return fmt.Errorf("tempuscache: default sliding expiration must not be negative, got %s", d)
		}
		c.defaultSlidingExpiration = d
		return nil
	}
}

// WithCleanupInterval sets the minimum wall time between opportunistic
// incremental sweeps. 0 (the default) disables background sweeping;
// CleanupExpired remains callable manually either way.
func WithCleanupInterval[K comparable, V any](d time.Duration) Option[K, V] {
	return func(c *Cache[K, V]) error {
		if d < 0 {
			return fmt.Errorf("tempuscache: cleanup interval must not be negative, got %s", d)
		}
		c.cleanupInterval = d
		return nil
	}
}

// WithClock overrides the ambient time source. Intended for tests, which
// can pass a clockwork.FakeClock to make sliding-expiration and cleanup
// scenarios deterministic instead of sleeping on the wall clock.
func WithClock[K comparable, V any](clock clockwork.Clock) Option[K, V] {
	return func(c *Cache[K, V]) error {
		if clock == nil {
			return fmt.Errorf("tempuscache: clock must not be nil")
		}
		c.clock = clock
		return nil
	}
}

// WithLogger installs a zap logger for debug-level lifecycle events
// (evictions, sweep summaries). Defaults to a no-op logger; never logs
// above Debug on the Find/Get hot path.
func WithLogger[K comparable, V any](logger *zap.Logger) Option[K, V] {
	return func(c *Cache[K, V]) error {
		if logger == nil {
			return fmt.Errorf("tempuscache: logger must not be nil")
		}
		c.logger = logger
		return nil
	}
}

// WithMaxSweepPerTick overrides the bounded incremental sweep size (see
// cleanup.go). Mostly useful for tests that want to observe the sweep
// boundary deterministically; the default of 128 suits production use.
func WithMaxSweepPerTick[K comparable, V any](n int) Option[K, V] {
	return func(c *Cache[K, V]) error {
		if n <= 0 {
			return fmt.Errorf("tempuscache: max sweep per tick must be positive, got %d", n)
		}
		c.maxSweepPerTick = n
		return nil
	}
}

/*
EntryMeta is the subset of entry state a Configurator is allowed to see
and mutate: the sliding expiration window and the user-tagged size. The
value, creation instant and last-access instant are deliberately not
exposed (spec: configurators must not touch value, and have no business
rewriting access history).
*/
type EntryMeta struct {
	SlidingExpiration time.Duration
	Size              uint64
}

// Configurator adjusts a newly created entry's metadata, typically
// passed to Get/Set to override the cache-wide default expiration or
// attach a size hint for a particular key.
type Configurator func(*EntryMeta)

// WithEntrySlidingExpiration overrides the default sliding expiration
// window for a single Get/Set call.
func WithEntrySlidingExpiration(d time.Duration) Configurator {
	return func(m *EntryMeta) {
		m.SlidingExpiration = d
	}
}

// WithEntrySize attaches a user-defined size annotation to a single
// entry. Never interpreted by the engine as a byte budget (see
// Non-goals); purely pass-through metadata for callers that want to
// track their own accounting externally.
func WithEntrySize(size uint64) Configurator {
	return func(m *EntryMeta) {
		m.Size = size
	}
}
