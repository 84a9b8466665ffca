package skiplist

import "sync/atomic"

// Insert links node into the list, allowing duplicate keys. node must be
// freshly allocated via NewNode and not already linked elsewhere.
func (l *List[K, V]) Insert(n *Node[K, V]) {
	l.insertCommon(n, false)
}

// InsertNoDup links node into the list unless a node comparing equal
// already exists, in which case it returns that existing node — holding
// one reference the caller must release — and inserted=false. node is not
// linked in the duplicate case and is the caller's to discard or reuse.
func (l *List[K, V]) InsertNoDup(n *Node[K, V]) (existing *Node[K, V], inserted bool) {
	return l.insertCommon(n, true)
}

func (l *List[K, V]) insertCommon(n *Node[K, V], noDup bool) (existing *Node[K, V], inserted bool) {
	fanout, maxLayer := l.fanout(), l.maxLayer()
	top := randomTopLayer(fanout, maxLayer)
	n.top = int32(top)
	n.next = make([]atomic.Pointer[Node[K, V]], top+1)

	n.writeLock()
	defer n.writeUnlock()

	for {
		dup, retry := l.insertAttempt(n, top, maxLayer, noDup)
		if retry {
			l.onRetry("insert")
			continue
		}
		if dup != nil {
			return dup, false
		}
		n.fullyLinked.Store(true)
		l.numEntries.Add(1)
		return nil, true
	}
}

// insertAttempt performs one top-to-bottom descent of the insert protocol
// described in the package design notes. It returns a non-nil existing node
// (holding a reference) if noDup found a duplicate, or retry=true if flag
// contention or a stale pointer observation requires the caller to restart
// the whole descent from the top layer.
func (l *List[K, V]) insertAttempt(n *Node[K, V], top, maxLayer int, noDup bool) (existing *Node[K, V], retry bool) {
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
			nxt := l.nextAtLayer(cur, lvl)

			if nxt != l.tail && l.cmpNode(n, nxt) > 0 {
				nxt.release()
				cur = nxt
				continue
			}

			if noDup && nxt != l.tail && l.cmpNode(n, nxt) == 0 {
				unlock()
				return nxt, false
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
					return nil, true
				}
				locked = append(locked, cur)
			}

			if (cur != l.head && !cur.isValid()) || (nxt != l.tail && !nxt.isValid()) {
				nxt.release()
				unlock()
				return nil, true
			}

			n.next[lvl].Store(nxt)
			check := l.nextAtLayer(cur, lvl)
			same := check == nxt
			check.release()
			if !same {
				nxt.release()
				unlock()
				return nil, true
			}

			nxt.release()
			break
		}
	}

	for lvl := 0; lvl <= top; lvl++ {
		prevs[lvl].writeLock()
		prevs[lvl].next[lvl].Store(n)
		prevs[lvl].writeUnlock()
	}
	unlock()
	return nil, false
}
