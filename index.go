package tempuscache

import "container/list"

/*
index is the key -> list-node handle map (spec component "Index", §4.2).

Hash and equality for K are delegated entirely to the Go runtime's
built-in map implementation: this is the concrete form the ambient
"hashing facility" takes for this module. No
third-party hashing library is wired in because nothing in this module
needs a hash function independent of map[K]; K only ever needs to key a
Go map.
*/
type index[K comparable] struct {
	m map[K]*list.Element
}

func newIndex[K comparable]() *index[K] {
	return &index[K]{m: make(map[K]*list.Element)}
}

func (ix *index[K]) find(k K) (*list.Element, bool) {
	elem, ok := ix.m[k]
	return elem, ok
}

// insert records k -> elem. Precondition: k is not already present;
// callers (engine.go) only call this after confirming a miss.
func (ix *index[K]) insert(k K, elem *list.Element) {
	ix.m[k] = elem
}

func (ix *index[K]) erase(k K) bool {
	if _, ok := ix.m[k]; !ok {
		return false
	}
	delete(ix.m, k)
	return true
}

func (ix *index[K]) len() int {
	return len(ix.m)
}

func (ix *index[K]) clear() {
	ix.m = make(map[K]*list.Element)
}
