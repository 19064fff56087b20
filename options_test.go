package tempuscache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsNegativeDurations(t *testing.T) {
	_, err := New[string, string](WithDefaultSlidingExpiration[string, string](-time.Second))
	assert.Error(t, err)

	_, err = New[string, string](WithCleanupInterval[string, string](-time.Second))
	assert.Error(t, err)
}

func TestNewRejectsNilClockAndLogger(t *testing.T) {
	_, err := New[string, string](WithClock[string, string](nil))
	assert.Error(t, err)

	_, err = New[string, string](WithLogger[string, string](nil))
	assert.Error(t, err)
}

func TestNewRejectsNonPositiveSweepBound(t *testing.T) {
	_, err := New[string, string](WithMaxSweepPerTick[string, string](0))
	assert.Error(t, err)
}

func TestDefaultConstructorIsUnboundedAndNonExpiring(t *testing.T) {
	c, err := New[string, int]()
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		_, err := c.Get(string(rune(i)), func() (int, error) { return i, nil })
		require.NoError(t, err)
	}
	assert.Equal(t, 1000, c.Len(), "with max_size=0 nothing should be evicted")
}

func TestConfiguratorOverridesDefaultExpiration(t *testing.T) {
	c, clock := newTestCache(t, WithDefaultSlidingExpiration[string, string](time.Hour))

	_, err := c.Get("short-lived", constFactory("v"), WithEntrySlidingExpiration(10*time.Millisecond))
	require.NoError(t, err)

	clock.Advance(20 * time.Millisecond)
	_, found := c.Find("short-lived")
	assert.False(t, found, "per-entry configurator must override the cache-wide default")
}

func TestConfiguratorSizeIsPassThroughOnly(t *testing.T) {
	c, _ := newTestCache(t)
	_, err := c.Get("k", constFactory("v"), WithEntrySize(4096))
	require.NoError(t, err)

	elem, found := c.index.find("k")
	require.True(t, found)
	assert.Equal(t, uint64(4096), entryAt[string, string](elem).size)
}
