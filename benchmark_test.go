package tempuscache

import (
	"strconv"
	"testing"
	"time"
)

/*
BenchmarkGetHit measures the cost of a Get call that hits: lock
acquisition, cleanup tick check, index lookup, expiration check, and
list promotion, with the factory never invoked.

HOW GO BENCHMARKS WORK

The testing framework scales b.N to produce a stable measurement; the
loop body below represents the steady-state cost of re-reading the same
key, which is the common case for a memoization cache under a hot key.
*/
func BenchmarkGetHit(b *testing.B) {
	c, err := New[string, string](WithDefaultSlidingExpiration[string, string](time.Hour))
	if err != nil {
		b.Fatal(err)
	}
	factory := func() (string, error) { return "value", nil }
	if _, err := c.Get("key", factory); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Get("key", factory); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGetMissUniqueKeys measures the insertion path with map growth,
// unlike BenchmarkGetHit's single re-read of one key.
func BenchmarkGetMissUniqueKeys(b *testing.B) {
	c, err := New[string, int](WithMaxSize[string, int](10000))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := strconv.Itoa(i)
		if _, err := c.Get(k, func() (int, error) { return i, nil }); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSet measures the raw write-path cost: configurator
// application, list promotion, and map lookup on a repeatedly
// overwritten key.
func BenchmarkSet(b *testing.B) {
	c, err := New[string, string]()
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Set("key", "value")
	}
}

// BenchmarkGetParallel exercises the single-lock contention path under
// concurrent callers hitting the same key.
func BenchmarkGetParallel(b *testing.B) {
	c, err := New[string, string](WithDefaultSlidingExpiration[string, string](time.Hour))
	if err != nil {
		b.Fatal(err)
	}
	factory := func() (string, error) { return "value", nil }

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := c.Get("key", factory); err != nil {
				b.Fatal(err)
			}
		}
	})
}
