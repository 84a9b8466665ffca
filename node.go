package skiplist

import (
	"fmt"
	"sync/atomic"

	uatomic "go.uber.org/atomic"
)

type sentinelKind uint8

const (
	sentinelNone sentinelKind = iota
	sentinelHead
	sentinelTail
)

// maxTopLayer is the hard clip on a node's top layer, independent of any
// list's configured MaxLayer.
const maxTopLayer = 255

// Node is one record in a List: a comparison key, a payload value, and the
// per-node concurrency-control state — the fully-linked/being-modified/
// removed flags, the external reference count, and the readers-writer
// spinlock guarding the next-pointer array (see rwspin.go).
type Node[K any, V any] struct {
	key   K
	value V

	top  int32
	next []atomic.Pointer[Node[K, V]]

	fullyLinked   uatomic.Bool
	beingModified uatomic.Bool
	removed       uatomic.Bool

	refCount uatomic.Int64
	access   uatomic.Uint32

	sentinel sentinelKind
}

// NewNode allocates a node carrying key and value. The node is not linked
// into any List until passed to List.Insert or List.InsertNoDup.
func NewNode[K any, V any](key K, value V) *Node[K, V] {
	return &Node[K, V]{key: key, value: value}
}

func newSentinel[K any, V any](kind sentinelKind, maxLayer int) *Node[K, V] {
	n := &Node[K, V]{top: int32(maxLayer - 1), sentinel: kind}
	n.next = make([]atomic.Pointer[Node[K, V]], maxLayer)
	n.fullyLinked.Store(true)
	return n
}

// Key returns the node's comparison key.
func (n *Node[K, V]) Key() K { return n.key }

// Value returns the node's payload value.
func (n *Node[K, V]) Value() V { return n.value }

// SetValue overwrites the node's payload in place. The skiplist does not
// serialize value mutation the way it serializes structural changes, so
// this is only safe on a node not yet visible to other goroutines, or one
// the caller otherwise externally synchronizes access to (e.g. OrderedMap's
// Set, which holds the only reference at the moment it calls this).
func (n *Node[K, V]) SetValue(v V) { n.value = v }

// TopLayer returns the highest layer at which the node participates.
func (n *Node[K, V]) TopLayer() int { return int(n.top) }

// grab increments the node's external reference count. Every grab must be
// matched by exactly one release.
func (n *Node[K, V]) grab() { n.refCount.Inc() }

// release decrements the external reference count. Releasing a node whose
// count is already zero indicates a grab/release mismatch in the caller and
// is a programming error, not a runtime race — it panics immediately rather
// than leaving the count permanently wrong.
func (n *Node[K, V]) release() {
	if n.refCount.Dec() < 0 {
		panic(fmt.Sprintf("skiplist: release of node with zero reference count (key=%v)", n.key))
	}
}

// isValid reports whether the node is currently part of the reachable
// chain: fully linked and not (yet) removed.
func (n *Node[K, V]) isValid() bool {
	return n.fullyLinked.Load() && !n.removed.Load()
}

// IsSafeToFree reports whether the node may be physically freed: removed,
// not under structural modification, with no active spinlock holder and no
// external references.
func (n *Node[K, V]) IsSafeToFree() bool {
	return n.removed.Load() &&
		!n.beingModified.Load() &&
		n.access.Load() == 0 &&
		n.refCount.Load() == 0
}

// freeNode drops the node's next-pointer array. Callers must have already
// established IsSafeToFree (or, for sentinels, that the list is being torn
// down with no other goroutine present).
func freeNode[K any, V any](n *Node[K, V]) {
	n.next = nil
}

func clipTopLayer(top int) int {
	if top > maxTopLayer {
		return maxTopLayer
	}
	if top < 0 {
		return 0
	}
	return top
}
