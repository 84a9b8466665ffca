package skiplist

// OrderedSet is a concurrent ordered set of values of type T, built on the
// raw List. Unlike List, OrderedSet owns its node allocations end to end:
// Insert allocates a node and Erase/EraseValue retire it through the
// configured ReclaimStrategy once the structural unlink succeeds.
type OrderedSet[T any] struct {
	list *List[T, struct{}]
	recl reclaimer[T, struct{}]
}

// NewOrderedSet creates an empty set ordered by cmp, reclaiming erased
// nodes according to strategy.
func NewOrderedSet[T any](cmp Comparator[T], strategy ReclaimStrategy, cfg ...Config) *OrderedSet[T] {
	return &OrderedSet[T]{
		list: NewList[T, struct{}](cmp, cfg...),
		recl: newReclaimer[T, struct{}](strategy),
	}
}

// Insert adds value unless an element comparing equal already exists. It
// returns an Iterator positioned at the (possibly pre-existing) element and
// whether insertion actually happened.
func (s *OrderedSet[T]) Insert(value T) (Iterator[T, struct{}], bool) {
	n := NewNode[T, struct{}](value, struct{}{})
	existing, inserted := s.list.InsertNoDup(n)
	if !inserted {
		return Iterator[T, struct{}]{list: s.list, node: existing}, false
	}
	n.grab()
	return Iterator[T, struct{}]{list: s.list, node: n}, true
}

// Find returns an Iterator at the element equal to value, or end() if none
// exists.
func (s *OrderedSet[T]) Find(value T) Iterator[T, struct{}] {
	return Iterator[T, struct{}]{list: s.list, node: s.list.Find(value)}
}

// Erase removes the element at it — which is invalidated by this call —
// and returns an Iterator to the element that followed it.
func (s *OrderedSet[T]) Erase(it Iterator[T, struct{}]) Iterator[T, struct{}] {
	if it.node == nil {
		return it
	}
	nxt := s.list.Next(it.node)
	err := s.list.EraseNode(it.node)
	victim := it.node
	it.Close()
	if err == nil {
		s.recl.retire(victim)
	}
	return Iterator[T, struct{}]{list: s.list, node: nxt}
}

// EraseValue removes the element equal to value, if any, returning whether
// one was removed.
func (s *OrderedSet[T]) EraseValue(value T) bool {
	for {
		n := s.list.Find(value)
		if n == nil {
			return false
		}
		err := s.list.EraseNode(n)
		n.release()
		if err == errBusy {
			continue
		}
		if err == nil {
			s.recl.retire(n)
		}
		return true
	}
}

// Size returns the number of elements in the set.
func (s *OrderedSet[T]) Size() int { return s.list.Size() }

// Empty reports whether the set has no elements.
func (s *OrderedSet[T]) Empty() bool { return s.list.Size() == 0 }

// Begin returns an Iterator at the smallest element, or end() if empty.
func (s *OrderedSet[T]) Begin() Iterator[T, struct{}] {
	return Iterator[T, struct{}]{list: s.list, node: s.list.Begin()}
}

// End returns the end() sentinel iterator.
func (s *OrderedSet[T]) End() Iterator[T, struct{}] {
	return Iterator[T, struct{}]{list: s.list}
}

// RBegin returns an Iterator at the largest element, or rend() if empty.
// Advance it with Prev to walk in descending order.
func (s *OrderedSet[T]) RBegin() Iterator[T, struct{}] {
	return Iterator[T, struct{}]{list: s.list, node: s.list.End()}
}

// REnd returns the rend() sentinel iterator.
func (s *OrderedSet[T]) REnd() Iterator[T, struct{}] {
	return Iterator[T, struct{}]{list: s.list}
}

// Close flushes pending reclamation and releases the set's sentinels. The
// set must not be used afterward.
func (s *OrderedSet[T]) Close() {
	s.recl.close()
	s.list.Free()
}
