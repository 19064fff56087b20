package tempuscache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvictOldestMaintainsBijection(t *testing.T) {
	c, _ := newTestCache(t, WithMaxSize[string, string](2))

	c.Set("1", "a")
	c.Set("2", "b")
	c.Set("3", "c") // evicts 1

	assert.Equal(t, c.list.len(), c.index.len(), "invariant 2: list length must equal index length")
	assert.Equal(t, 2, c.Len())

	_, found := c.Find("1")
	assert.False(t, found)
}

func TestEvictOldestNoOpOnEmptyList(t *testing.T) {
	c, _ := newTestCache(t)
	assert.NotPanics(t, func() { c.evictOldest() })
}

func TestCapacityNeverExceededUnderFactoryInserts(t *testing.T) {
	c, _ := newTestCache(t, WithMaxSize[string, string](5), WithDefaultSlidingExpiration[string, string](time.Hour))

	for i := 0; i < 50; i++ {
		_, err := c.Get(string(rune('a'+i%26))+string(rune('0'+i%10)), constFactory("v"))
		require.NoError(t, err)
		assert.LessOrEqual(t, c.Len(), 5)
	}
}
