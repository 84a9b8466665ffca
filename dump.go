package skiplist

import (
	"fmt"
	"strings"
)

// dump renders the per-layer chains for diagnostics. Unexported: it is a
// test aid only, not part of the public surface, modeled on the original's
// debug dump utility.
func (l *List[K, V]) dump() string {
	var b strings.Builder
	maxLayer := l.maxLayer()
	for lvl := maxLayer - 1; lvl >= 0; lvl-- {
		fmt.Fprintf(&b, "L%d: head", lvl)
		cur := l.head
		for {
			nxt := cur.next[lvl].Load()
			if nxt == nil || nxt == l.tail {
				break
			}
			fmt.Fprintf(&b, " -> %v(rm=%v,fl=%v)", nxt.key, nxt.removed.Load(), nxt.fullyLinked.Load())
			cur = nxt
		}
		b.WriteString(" -> tail\n")
	}
	return b.String()
}
