// Command tempuscachedemo exercises the tempuscache engine end to end:
// a factory miss, a hit that skips the factory, an LRU eviction, and a
// manual cleanup sweep. It is a demonstration program, explicitly out
// of the engine's core scope (spec §1) and carries none of the core's
// correctness guarantees on its own.
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/Krishna8167/tempuscache/v2"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	cache, err := tempuscache.New[string, string](
		tempuscache.WithMaxSize[string, string](3),
		tempuscache.WithDefaultSlidingExpiration[string, string](2*time.Second),
		tempuscache.WithCleanupInterval[string, string](500*time.Millisecond),
		tempuscache.WithLogger[string, string](logger),
	)
	if err != nil {
		panic(err)
	}

	loads := 0
	load := func(key string) func() (string, error) {
		return func() (string, error) {
			loads++
			return "value-for-" + key, nil
		}
	}

	v, _ := cache.Get("alpha", load("alpha"))
	fmt.Println("alpha (miss, computed):", v)

	v, _ = cache.Get("alpha", load("alpha"))
	fmt.Println("alpha (hit, factory skipped):", v, "loads so far:", loads)

	_, _ = cache.Get("beta", load("beta"))
	_, _ = cache.Get("gamma", load("gamma"))
	_, _ = cache.Get("delta", load("delta")) // evicts alpha: capacity is 3

	if _, found := cache.Find("alpha"); !found {
		fmt.Println("alpha was evicted as expected")
	}

	_, err = cache.Get("will-fail", func() (string, error) {
		return "", errors.New("upstream unavailable")
	})
	fmt.Println("factory error propagated:", err)

	fmt.Println("size before sleep:", cache.Len())
	time.Sleep(3 * time.Second)
	cache.CleanupExpired()
	fmt.Println("size after sliding expiration + manual cleanup:", cache.Len())

	fmt.Printf("stats: %+v\n", cache.Stats())
}
