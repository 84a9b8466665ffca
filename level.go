package skiplist

import "math/rand/v2"

// randomTopLayer draws a node's top layer from a geometric distribution
// with success probability 1/fanout, capped at maxLayer-1. rand/v2's
// top-level functions pull from a per-goroutine source, so concurrent
// inserters never contend on a shared PRNG lock.
func randomTopLayer(fanout, maxLayer int) int {
	lvl := 0
	for lvl < maxLayer-1 && rand.IntN(fanout) == 0 {
		lvl++
	}
	return clipTopLayer(lvl)
}
