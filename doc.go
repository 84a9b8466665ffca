// Package skiplist implements a concurrent ordered collection backed by a
// fine-grained-synchronized skiplist. Multiple readers and writers may
// operate on the same List, OrderedSet, or OrderedMap simultaneously
// without a global lock: mutators coordinate through per-node modification
// flags and a readers-writer spinlock over each node's next-pointer array,
// and physical reclamation of an erased node is deferred until it is
// provably safe (see Node.IsSafeToFree).
//
// List is the raw, user-node-owning engine. OrderedSet and OrderedMap are
// container façades that additionally own node allocation and choose a
// reclamation strategy (ReclaimBusyWait or ReclaimDeferred).
package skiplist
