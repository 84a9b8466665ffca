package skiplist

import (
	"sync"

	uatomic "go.uber.org/atomic"
)

// Comparator performs a three-way comparison of two keys, returning a
// negative number if a orders before b, zero if equal, and a positive
// number if a orders after b.
type Comparator[K any] func(a, b K) int

// Config holds tunable parameters for a List. Fanout and MaxLayer take
// effect only at construction; changing a list's fanout or max layer after
// its first Insert is not supported (see package Non-goals).
type Config struct {
	// Fanout is the inverse probability (1/Fanout) that the random level
	// generator grows a new node's top layer by one more than the last.
	// Default 4.
	Fanout int
	// MaxLayer caps the number of layers a node, and the list itself, can
	// have. Default 12. Clipped to 256.
	MaxLayer int
	// OnRetry, if set, is called with the operation name ("insert" or
	// "erase") each time that operation restarts its descent due to flag
	// contention or a stale pointer observation. Intended for test and
	// diagnostic instrumentation, not for control flow.
	OnRetry func(op string)
}

// DefaultConfig returns the package's default tuning: fanout 4, max layer
// 12.
func DefaultConfig() Config {
	return Config{Fanout: 4, MaxLayer: 12}
}

// List is the raw concurrent skiplist: head/tail sentinels plus the
// comparator and configuration shared by every mutator and search helper
// in this package. List does not own the memory of the nodes it threads —
// callers allocate nodes with NewNode and remain responsible for them once
// erased. OrderedSet and OrderedMap build node ownership and reclamation
// on top of List.
type List[K any, V any] struct {
	head, tail *Node[K, V]
	cmp        Comparator[K]

	cfgMu sync.RWMutex
	cfg   Config

	numEntries uatomic.Int64
}

// NewList creates an empty list ordered by cmp. An optional Config may be
// supplied; DefaultConfig is used otherwise.
func NewList[K any, V any](cmp Comparator[K], cfg ...Config) *List[K, V] {
	c := DefaultConfig()
	if len(cfg) > 0 {
		c = cfg[0]
	}
	if c.Fanout <= 0 {
		c.Fanout = 4
	}
	if c.MaxLayer <= 0 {
		c.MaxLayer = 12
	}
	if c.MaxLayer > maxTopLayer+1 {
		c.MaxLayer = maxTopLayer + 1
	}

	l := &List[K, V]{cmp: cmp, cfg: c}
	l.head = newSentinel[K, V](sentinelHead, c.MaxLayer)
	l.tail = newSentinel[K, V](sentinelTail, c.MaxLayer)
	for lvl := 0; lvl < c.MaxLayer; lvl++ {
		l.head.next[lvl].Store(l.tail)
	}
	return l
}

// Free releases the head and tail sentinels. The caller must have already
// drained (erased) every node from the list.
func (l *List[K, V]) Free() {
	freeNode(l.head)
	freeNode(l.tail)
}

// Size returns the number of nodes currently linked at layer zero.
func (l *List[K, V]) Size() int {
	return int(l.numEntries.Load())
}

// GetConfig returns the list's current configuration.
func (l *List[K, V]) GetConfig() Config {
	l.cfgMu.RLock()
	defer l.cfgMu.RUnlock()
	return l.cfg
}

// SetConfig replaces the list's OnRetry hook. Fanout and MaxLayer are fixed
// at construction and any change to them here is ignored.
func (l *List[K, V]) SetConfig(c Config) {
	l.cfgMu.Lock()
	defer l.cfgMu.Unlock()
	l.cfg.OnRetry = c.OnRetry
}

func (l *List[K, V]) fanout() int {
	l.cfgMu.RLock()
	defer l.cfgMu.RUnlock()
	return l.cfg.Fanout
}

func (l *List[K, V]) maxLayer() int {
	l.cfgMu.RLock()
	defer l.cfgMu.RUnlock()
	return l.cfg.MaxLayer
}

func (l *List[K, V]) onRetry(op string) {
	l.cfgMu.RLock()
	hook := l.cfg.OnRetry
	l.cfgMu.RUnlock()
	if hook != nil {
		hook(op)
	}
}

// cmpNode performs the three-way comparison between two nodes, shortcutting
// sentinel comparisons: head orders before everything, tail orders after
// everything, per the package's ordering invariant.
func (l *List[K, V]) cmpNode(a, b *Node[K, V]) int {
	if a == b {
		return 0
	}
	switch {
	case a.sentinel == sentinelHead:
		return -1
	case a.sentinel == sentinelTail:
		return 1
	case b.sentinel == sentinelHead:
		return 1
	case b.sentinel == sentinelTail:
		return -1
	default:
		return l.cmp(a.key, b.key)
	}
}

// cmpKey compares a node's key against a bare query key, treating the
// sentinels the same way cmpNode does.
func (l *List[K, V]) cmpKey(a *Node[K, V], key K) int {
	switch a.sentinel {
	case sentinelHead:
		return -1
	case sentinelTail:
		return 1
	default:
		return l.cmp(a.key, key)
	}
}

// nextAtLayer walks past removed/unlinked successors at layer lvl starting
// from cur, returning a reference-counted handle to the first valid node
// (possibly the tail sentinel, which is always valid, never nil). This is
// the hazard-protected read used by every search and mutator in the
// package: between the caller observing cur.next[lvl] and grabbing the
// successor's reference, cur cannot be erased out from under it (the
// spinlock prevents a concurrent eraser from swinging cur's own pointers
// mid-read), and once grabbed the successor cannot be freed before the
// caller releases it.
func (l *List[K, V]) nextAtLayer(cur *Node[K, V], lvl int) *Node[K, V] {
	cur.readLock()
	nxt := cur.next[lvl].Load()
	if nxt != nil {
		nxt.grab()
	}
	cur.readUnlock()

	for nxt != nil && !nxt.isValid() {
		nxt.readLock()
		following := nxt.next[lvl].Load()
		if following != nil {
			following.grab()
		}
		nxt.readUnlock()
		nxt.release()
		nxt = following
	}
	return nxt
}
