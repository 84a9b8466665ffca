package skiplist_test

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lattice-db/skiplist"
)

// TestOrderedSet_DifferentialAgainstSortedSlice runs a sequence of random
// insert/erase/query operations against both an OrderedSet and a plain map
// reference model, checking the two never disagree, then compares the final
// traversal with the model's keys as a sorted slice. Modeled on the
// original's stl_map_compare.cc cross-check harness.
func TestOrderedSet_DifferentialAgainstSortedSlice(t *testing.T) {
	s := skiplist.NewOrderedSet[int](intCmp, skiplist.ReclaimDeferred)
	defer s.Close()

	reference := map[int]bool{}
	rng := rand.New(rand.NewPCG(1, 2))

	insertRef := func(k int) bool {
		if reference[k] {
			return false
		}
		reference[k] = true
		return true
	}
	eraseRef := func(k int) bool {
		if !reference[k] {
			return false
		}
		delete(reference, k)
		return true
	}

	const ops = 20_000
	for i := 0; i < ops; i++ {
		k := rng.IntN(2000)
		switch rng.IntN(3) {
		case 0:
			ins, gotInserted := s.Insert(k)
			ins.Close()
			wantInserted := insertRef(k)
			require.Equal(t, wantInserted, gotInserted, "insert(%d) mismatch at op %d", k, i)
		case 1:
			gotErased := s.EraseValue(k)
			wantErased := eraseRef(k)
			require.Equal(t, wantErased, gotErased, "erase(%d) mismatch at op %d", k, i)
		case 2:
			it := s.Find(k)
			gotFound := it.Valid()
			it.Close()
			require.Equal(t, reference[k], gotFound, "find(%d) mismatch at op %d", k, i)
		}
	}

	require.Equal(t, len(reference), s.Size())

	want := make([]int, 0, len(reference))
	for k := range reference {
		want = append(want, k)
	}
	sort.Ints(want)

	var got []int
	for it := s.Begin(); it.Valid(); it = it.Next() {
		got = append(got, it.Key())
	}
	require.Equal(t, want, got, "final ordered traversal diverged from reference model")
}

// TestOrderedMap_DifferentialAgainstSortedMap checks OrderedMap.Set/EraseKey
// semantics against a plain Go map reference, comparing the final size and
// every surviving key's value.
func TestOrderedMap_DifferentialAgainstSortedMap(t *testing.T) {
	m := skiplist.NewOrderedMap[int, int](intCmp, skiplist.ReclaimBusyWait)
	defer m.Close()

	reference := map[int]int{}
	rng := rand.New(rand.NewPCG(7, 11))

	const ops = 10_000
	for i := 0; i < ops; i++ {
		k := rng.IntN(500)
		switch rng.IntN(2) {
		case 0:
			v := rng.IntN(1_000_000)
			m.Set(k, v)
			reference[k] = v
		case 1:
			delete(reference, k)
			m.EraseKey(k)
		}
	}

	require.Equal(t, len(reference), m.Size())
	for k, v := range reference {
		it := m.Find(k)
		require.True(t, it.Valid())
		require.Equal(t, v, it.Value())
		it.Close()
	}
}
