package skiplist

// Iterator is a reference-counted cursor produced by OrderedSet or
// OrderedMap. A freshly returned Iterator holds one reference on its node;
// Next and Prev consume that reference and return a new Iterator holding
// the next one, and Close drops it without advancing. Assigning an
// Iterator to another variable shares the same reference (releasing one
// copy invalidates the other) — call Clone first if independent lifetimes
// are needed. The zero Iterator, and any Iterator for which Valid reports
// false, is the container's end()/rend() sentinel and holds no reference.
type Iterator[K any, V any] struct {
	list *List[K, V]
	node *Node[K, V]
}

// Valid reports whether the iterator refers to an element, as opposed to
// end().
func (it Iterator[K, V]) Valid() bool { return it.node != nil }

// Key returns the element's key. Valid must report true.
func (it Iterator[K, V]) Key() K { return it.node.key }

// Value returns the element's payload. Valid must report true.
func (it Iterator[K, V]) Value() V { return it.node.value }

// Clone returns an independent Iterator at the same position, holding its
// own reference.
func (it Iterator[K, V]) Clone() Iterator[K, V] {
	if it.node != nil {
		it.node.grab()
	}
	return it
}

// Close releases the iterator's reference. Safe to call on an already
// invalid iterator.
func (it Iterator[K, V]) Close() {
	if it.node != nil {
		it.node.release()
	}
}

// Next returns the iterator advanced by one position, releasing this
// iterator's reference.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	var nxt *Node[K, V]
	if it.node != nil {
		nxt = it.list.Next(it.node)
	}
	it.Close()
	return Iterator[K, V]{list: it.list, node: nxt}
}

// Prev returns the iterator moved back by one position, releasing this
// iterator's reference. Calling Prev on end() returns the last element,
// mirroring rbegin().
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	var prv *Node[K, V]
	if it.node != nil {
		prv = it.list.Prev(it.node)
	} else {
		prv = it.list.End()
	}
	it.Close()
	return Iterator[K, V]{list: it.list, node: prv}
}

// Equal reports whether two iterators refer to the same node. Two end()
// iterators always compare equal.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.node == other.node
}
