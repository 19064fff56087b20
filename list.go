package tempuscache

import "container/list"

/*
recencyList maintains the LRU ordering of live entries: most recently
used at the head, least recently used at the tail.

It is a thin wrapper over container/list, the same building block the
teacher's map[string]*list.Element design used, generalized so callers
never touch *list.Element directly outside this file. Nodes are
heap-allocated by container/list, so their address is stable across
pushes, moves and removals — a live entry's value never moves in
memory while it is held, which is what lets Find/Get hand callers a
value read straight out of the node.

All operations here are O(1); none perform their own locking. Callers
(engine.go) hold the engine-wide lock for the duration.
*/
type recencyList[K comparable, V any] struct {
	l *list.List
}

func newRecencyList[K comparable, V any]() *recencyList[K, V] {
	return &recencyList[K, V]{l: list.New()}
}

// pushFront links a new node at the head and returns it.
func (r *recencyList[K, V]) pushFront(e *entry[K, V]) *list.Element {
	return r.l.PushFront(e)
}

// detach unlinks elem without deallocating the entry it holds.
func (r *recencyList[K, V]) detach(elem *list.Element) {
	r.l.Remove(elem)
}

// promote moves elem to the head, marking it most recently used.
func (r *recencyList[K, V]) promote(elem *list.Element) {
	r.l.MoveToFront(elem)
}

// back returns the tail element (least recently used), or nil if empty.
func (r *recencyList[K, V]) back() *list.Element {
	return r.l.Back()
}

// len returns the number of live nodes.
func (r *recencyList[K, V]) len() int {
	return r.l.Len()
}

// init resets the list to empty, dropping all node references.
func (r *recencyList[K, V]) init() {
	r.l.Init()
}

// entryAt extracts the typed entry held by a list element.
func entryAt[K comparable, V any](elem *list.Element) *entry[K, V] {
	return elem.Value.(*entry[K, V])
}

// keysFromBack returns every live key, tail to head — least to most
// recently used. Read-only: it does not promote any node.
func (r *recencyList[K, V]) keysFromBack() []K {
	keys := make([]K, 0, r.l.Len())
	for elem := r.l.Back(); elem != nil; elem = elem.Prev() {
		keys = append(keys, entryAt[K, V](elem).key)
	}
	return keys
}
