package skiplist

import "runtime"

// The access counter packs a readers-writer spinlock into a single 32-bit
// field: the low 20 bits count active readers of next[*], the 21st bit
// marks an active writer. At most one writer is ever meaningful at a time
// (enforced by the CAS in writeLock), and readers back off while it is set.
const (
	accessReaderMask uint32 = 0x000FFFFF
	accessWriterBit  uint32 = 1 << 20
)

// readLock takes a shared hold on the node's next-pointer array, backing
// off and retrying if a writer currently holds it.
func (n *Node[K, V]) readLock() {
	for {
		v := n.access.Load()
		if v&accessWriterBit != 0 {
			runtime.Gosched()
			continue
		}
		if n.access.CompareAndSwap(v, v+1) {
			return
		}
	}
}

func (n *Node[K, V]) readUnlock() {
	n.access.Sub(1)
}

// writeLock takes exclusive access to the node's next-pointer array,
// first claiming the writer bit then waiting for any in-flight readers to
// drain. No new reader can acquire readLock once the writer bit is set.
func (n *Node[K, V]) writeLock() {
	for {
		v := n.access.Load()
		if v&accessWriterBit != 0 {
			runtime.Gosched()
			continue
		}
		if n.access.CompareAndSwap(v, v|accessWriterBit) {
			break
		}
	}
	for n.access.Load()&accessReaderMask != 0 {
		runtime.Gosched()
	}
}

func (n *Node[K, V]) writeUnlock() {
	n.access.Store(0)
}
