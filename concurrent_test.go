package skiplist_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/lattice-db/skiplist"
)

// TestOrderedSet_ConcurrentDisjointInsert covers disjoint-subset concurrent
// insertion: numWorkers goroutines each insert their own slice of the key
// space, and the set must end up containing every key exactly once.
func TestOrderedSet_ConcurrentDisjointInsert(t *testing.T) {
	const (
		numWorkers = 8
		total      = 1_000_000
	)
	s := skiplist.NewOrderedSet[int](intCmp, skiplist.ReclaimDeferred)
	defer s.Close()

	g, _ := errgroup.WithContext(context.Background())
	per := total / numWorkers
	for w := 0; w < numWorkers; w++ {
		w := w
		g.Go(func() error {
			start := w * per
			end := start + per
			for k := start; k < end; k++ {
				s.Insert(k)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.Equal(t, total, s.Size())

	prev := -1
	count := 0
	for it := s.Begin(); it.Valid(); it = it.Next() {
		require.Greater(t, it.Key(), prev)
		prev = it.Key()
		count++
	}
	require.Equal(t, total, count)
}

// TestOrderedSet_ConcurrentInsertAndEraseDisjointKeys covers simultaneous
// inserters and erasers operating on disjoint key ranges, verifying that
// neither operation corrupts the shared spine.
func TestOrderedSet_ConcurrentInsertAndEraseDisjointKeys(t *testing.T) {
	const n = 200_000
	s := skiplist.NewOrderedSet[int](intCmp, skiplist.ReclaimDeferred)
	defer s.Close()

	for k := 0; k < n; k += 2 {
		ins, _ := s.Insert(k)
		ins.Close()
	}

	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error {
		for k := 1; k < n; k += 2 {
			s.Insert(k)
		}
		return nil
	})
	g.Go(func() error {
		for k := 0; k < n; k += 2 {
			s.EraseValue(k)
		}
		return nil
	})
	require.NoError(t, g.Wait())

	require.Equal(t, n/2, s.Size())
	for k := 1; k < n; k += 2 {
		it := s.Find(k)
		require.True(t, it.Valid(), "odd key %d should survive", k)
		it.Close()
	}
	for k := 0; k < n; k += 2 {
		it := s.Find(k)
		require.False(t, it.Valid(), "even key %d should have been erased", k)
	}
}

func TestOrderedMap_ConcurrentDisjointInsert(t *testing.T) {
	const (
		numWorkers = 8
		total      = 400_000
	)
	m := skiplist.NewOrderedMap[int, int](intCmp, skiplist.ReclaimBusyWait)
	defer m.Close()

	g, _ := errgroup.WithContext(context.Background())
	per := total / numWorkers
	for w := 0; w < numWorkers; w++ {
		w := w
		g.Go(func() error {
			start := w * per
			end := start + per
			for k := start; k < end; k++ {
				m.Set(k, k*k)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.Equal(t, total, m.Size())

	for k := 0; k < total; k += 997 {
		it := m.Find(k)
		require.True(t, it.Valid())
		require.Equal(t, k*k, it.Value())
		it.Close()
	}
}
