package skiplist

// EraseNode logically then physically unlinks n from the list. It returns
// nil on success. errAlreadyRemoved/errAlreadyUnlinked indicate another
// goroutine already won the race to remove n — benign from the caller's
// perspective, since the end state (n absent) is what was asked for.
// errBusy indicates a concurrent EraseNode currently owns n's
// being-modified flag; EraseByKey retries transparently on errBusy, and
// OrderedSet.EraseValue and OrderedMap.EraseKey do the same. The
// containers' Erase(iterator) makes a single attempt and returns the
// following iterator whatever the result.
func (l *List[K, V]) EraseNode(n *Node[K, V]) error {
	if n.removed.Load() {
		return errAlreadyRemoved
	}
	if !n.beingModified.CompareAndSwap(false, true) {
		return errBusy
	}
	n.removed.Store(true)
	if !n.fullyLinked.Load() {
		n.beingModified.Store(false)
		return errAlreadyUnlinked
	}

	maxLayer := l.maxLayer()
	top := int(n.top)

	for l.eraseAttempt(n, top, maxLayer) {
		l.onRetry("erase")
	}

	n.fullyLinked.Store(false)
	n.beingModified.Store(false)
	l.numEntries.Add(-1)
	return nil
}

// eraseAttempt performs one descent of the unlink protocol for a node
// already marked removed. It returns true if the caller should retry the
// whole descent.
func (l *List[K, V]) eraseAttempt(n *Node[K, V], top, maxLayer int) (retry bool) {
	prevs := make([]*Node[K, V], maxLayer)
	nexts := make([]*Node[K, V], maxLayer)
	locked := make([]*Node[K, V], 0, maxLayer)

	unlock := func() {
		for _, pr := range locked {
			pr.beingModified.Store(false)
		}
	}

	cur := l.head
	for lvl := maxLayer - 1; lvl >= 0; lvl-- {
		for {
			// n is already removed, so nextAtLayer transparently skips it:
			// nxt here is n's true successor at this layer, never n itself.
			nxt := l.nextAtLayer(cur, lvl)

			if nxt != l.tail && l.cmpNode(n, nxt) > 0 {
				nxt.release()
				cur = nxt
				continue
			}

			if lvl > top {
				nxt.release()
				break
			}

			prevs[lvl] = cur
			nexts[lvl] = nxt

			dedup := lvl < top && prevs[lvl+1] == cur
			if !dedup {
				if !cur.beingModified.CompareAndSwap(false, true) {
					nxt.release()
					unlock()
					return true
				}
				locked = append(locked, cur)
			}

			if (cur != l.head && !cur.isValid()) || (nxt != l.tail && !nxt.isValid()) {
				nxt.release()
				unlock()
				return true
			}

			check := l.nextAtLayer(cur, lvl)
			same := check == nexts[lvl]
			check.release()
			if !same {
				nxt.release()
				unlock()
				return true
			}

			nxt.release()
			break
		}
	}

	for lvl := 0; lvl <= top; lvl++ {
		prevs[lvl].writeLock()
		prevs[lvl].next[lvl].Store(nexts[lvl])
		prevs[lvl].writeUnlock()
	}
	unlock()
	return false
}

// EraseByKey finds the node comparing equal to key and erases it, retrying
// transparently if it races against a concurrent erase of the same node.
// Returns ErrNotFound if no such node exists at the time of the search.
func (l *List[K, V]) EraseByKey(key K) error {
	for {
		n := l.Find(key)
		if n == nil {
			return errNotFound
		}
		err := l.EraseNode(n)
		n.release()
		switch err {
		case nil, errAlreadyRemoved, errAlreadyUnlinked:
			return nil
		case errBusy:
			continue
		default:
			return err
		}
	}
}
