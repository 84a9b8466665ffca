package skiplist

import (
	"sync/atomic"
	"testing"
)

func TestNode_GrabReleaseRefCount(t *testing.T) {
	n := NewNode[int, string](1, "one")
	n.grab()
	n.grab()
	if n.refCount.Load() != 2 {
		t.Fatalf("refCount = %d, want 2", n.refCount.Load())
	}
	n.release()
	n.release()
	if n.refCount.Load() != 0 {
		t.Fatalf("refCount = %d, want 0", n.refCount.Load())
	}
}

func TestNode_ReleaseWithoutGrabPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on unmatched release")
		}
	}()
	n := NewNode[int, string](1, "one")
	n.release()
}

func TestNode_IsSafeToFree(t *testing.T) {
	n := NewNode[int, string](1, "one")
	n.next = make([]atomic.Pointer[Node[int, string]], 1)
	if n.IsSafeToFree() {
		t.Fatal("not removed yet, must not be safe to free")
	}
	n.removed.Store(true)
	if !n.IsSafeToFree() {
		t.Fatal("removed, unheld, unreferenced node should be safe to free")
	}
	n.grab()
	if n.IsSafeToFree() {
		t.Fatal("held node must not be safe to free")
	}
	n.release()
	n.beingModified.Store(true)
	if n.IsSafeToFree() {
		t.Fatal("node under modification must not be safe to free")
	}
}

func TestNode_ReadWriteSpinlockExclusion(t *testing.T) {
	n := NewNode[int, string](1, "one")
	n.readLock()
	n.readLock()
	if n.access.Load()&accessReaderMask != 2 {
		t.Fatalf("expected 2 active readers, got %d", n.access.Load()&accessReaderMask)
	}
	n.readUnlock()
	n.readUnlock()
	if n.access.Load() != 0 {
		t.Fatalf("access = %d, want 0 after draining readers", n.access.Load())
	}

	n.writeLock()
	if n.access.Load()&accessWriterBit == 0 {
		t.Fatal("writer bit not set after writeLock")
	}
	n.writeUnlock()
	if n.access.Load() != 0 {
		t.Fatalf("access = %d, want 0 after writeUnlock", n.access.Load())
	}
}
