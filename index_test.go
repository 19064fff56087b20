package tempuscache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexFindInsertErase(t *testing.T) {
	ix := newIndex[string]()
	l := newRecencyList[string, string]()
	elem := l.pushFront(&entry[string, string]{key: "a"})

	_, found := ix.find("a")
	assert.False(t, found)

	ix.insert("a", elem)
	got, found := ix.find("a")
	assert.True(t, found)
	assert.Equal(t, elem, got)
	assert.Equal(t, 1, ix.len())

	assert.True(t, ix.erase("a"))
	assert.False(t, ix.erase("a"), "erasing twice must return false the second time")
	assert.Equal(t, 0, ix.len())
}

func TestIndexClear(t *testing.T) {
	ix := newIndex[string]()
	l := newRecencyList[string, string]()
	ix.insert("a", l.pushFront(&entry[string, string]{key: "a"}))
	ix.insert("b", l.pushFront(&entry[string, string]{key: "b"}))

	ix.clear()
	assert.Equal(t, 0, ix.len())
	_, found := ix.find("a")
	assert.False(t, found)
}
