package skiplist

// OrderedMap is a concurrent ordered map from K to V. Per the design
// notes, the map carries no algorithmic content of its own: it shares the
// exact List engine and protocol that OrderedSet uses, with the node's
// value slot holding a real V instead of struct{}.
type OrderedMap[K any, V any] struct {
	list *List[K, V]
	recl reclaimer[K, V]
}

// NewOrderedMap creates an empty map ordered by cmp over keys, reclaiming
// erased nodes according to strategy.
func NewOrderedMap[K any, V any](cmp Comparator[K], strategy ReclaimStrategy, cfg ...Config) *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		list: NewList[K, V](cmp, cfg...),
		recl: newReclaimer[K, V](strategy),
	}
}

// Insert adds the key/value pair unless key is already present. It returns
// an Iterator positioned at the (possibly pre-existing) entry and whether
// insertion actually happened.
func (m *OrderedMap[K, V]) Insert(key K, value V) (Iterator[K, V], bool) {
	n := NewNode[K, V](key, value)
	existing, inserted := m.list.InsertNoDup(n)
	if !inserted {
		return Iterator[K, V]{list: m.list, node: existing}, false
	}
	n.grab()
	return Iterator[K, V]{list: m.list, node: n}, true
}

// Set upserts key with value, overwriting any existing value in place.
// This is the one convenience the original sl_map.h offers beyond the
// no-duplicate Insert (see SPEC_FULL.md §4); it is not part of spec.md's
// core algorithm.
func (m *OrderedMap[K, V]) Set(key K, value V) {
	n := NewNode[K, V](key, value)
	existing, inserted := m.list.InsertNoDup(n)
	if inserted {
		return
	}
	existing.SetValue(value)
	existing.release()
}

// Find returns an Iterator at the entry for key, or end() if none exists.
func (m *OrderedMap[K, V]) Find(key K) Iterator[K, V] {
	return Iterator[K, V]{list: m.list, node: m.list.Find(key)}
}

// Erase removes the entry at it — which is invalidated by this call — and
// returns an Iterator to the entry that followed it.
func (m *OrderedMap[K, V]) Erase(it Iterator[K, V]) Iterator[K, V] {
	if it.node == nil {
		return it
	}
	nxt := m.list.Next(it.node)
	err := m.list.EraseNode(it.node)
	victim := it.node
	it.Close()
	if err == nil {
		m.recl.retire(victim)
	}
	return Iterator[K, V]{list: m.list, node: nxt}
}

// EraseKey removes the entry for key, if any, returning whether one was
// removed.
func (m *OrderedMap[K, V]) EraseKey(key K) bool {
	for {
		n := m.list.Find(key)
		if n == nil {
			return false
		}
		err := m.list.EraseNode(n)
		n.release()
		if err == errBusy {
			continue
		}
		if err == nil {
			m.recl.retire(n)
		}
		return true
	}
}

// Size returns the number of entries in the map.
func (m *OrderedMap[K, V]) Size() int { return m.list.Size() }

// Empty reports whether the map has no entries.
func (m *OrderedMap[K, V]) Empty() bool { return m.list.Size() == 0 }

// Begin returns an Iterator at the smallest key, or end() if empty.
func (m *OrderedMap[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{list: m.list, node: m.list.Begin()}
}

// End returns the end() sentinel iterator.
func (m *OrderedMap[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{list: m.list}
}

// RBegin returns an Iterator at the largest key, or rend() if empty.
func (m *OrderedMap[K, V]) RBegin() Iterator[K, V] {
	return Iterator[K, V]{list: m.list, node: m.list.End()}
}

// REnd returns the rend() sentinel iterator.
func (m *OrderedMap[K, V]) REnd() Iterator[K, V] {
	return Iterator[K, V]{list: m.list}
}

// Close flushes pending reclamation and releases the map's sentinels. The
// map must not be used afterward.
func (m *OrderedMap[K, V]) Close() {
	m.recl.close()
	m.list.Free()
}
