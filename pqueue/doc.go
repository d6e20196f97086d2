// Package pqueue provides a generic min-priority queue ordered by an injected
// three-way comparator.
//
// The queue is a binary tree balanced by subtree size rather than by key order:
//
//   - Push compares the new value with the value stored at the current node;
//     the smaller one stays, the larger one descends into whichever child
//     subtree currently holds fewer elements.
//   - Pop returns the root value and refills every vacated node with the
//     smaller of its children's values, pruning leaves that become empty.
//
// Complexity:
//
//   - Push: O(log n) (the descent always picks the lighter subtree).
//   - Peek: O(1).
//   - Pop:  O(h), h = tree height; h stays O(log n) for the push/pop mixes
//     produced by Dijkstra-style workloads.
//   - Contains: O(n) exact scan.
//
// Contains walks every subtree whose root is not greater than the probe. The
// heap order only relates a node to its descendants, so it cannot be searched
// like a binary search tree; callers needing fast membership (e.g. "already
// settled" in Dijkstra) should keep a separate dense marker indexed by the
// value's identity.
//
// Thread safety:
//
//   - PriorityQueue is not safe for concurrent use; synchronize externally.
//
// Example:
//
//	q := pqueue.New(func(a, b int) int { return a - b })
//	q.Push(3)
//	q.Push(1)
//	v, _ := q.Pop() // v == 1
package pqueue
