// File: pqueue.go
// Role: Size-balanced binary min-heap over an injected Comparator.
// Determinism:
//   - Equal values (Comparator == 0) keep the incumbent at the node; ordering among
//     ties is stable for a fixed sequence of operations.
// Concurrency:
//   - None. A PriorityQueue belongs to a single goroutine.

package pqueue

// Comparator is a three-way order over T.
// It returns a negative number when a < b, zero when a == b, positive when a > b.
type Comparator[T any] func(a, b T) int

// node is one element of the size-balanced tree.
// size counts the elements stored in the subtree rooted at this node.
type node[T any] struct {
	val   T
	size  int
	left  *node[T]
	right *node[T]
}

// PriorityQueue is a min-priority queue of T ordered by its Comparator.
type PriorityQueue[T any] struct {
	cmp  Comparator[T]
	root *node[T]
}

// New returns an empty queue ordered by cmp.
// cmp must not be nil.
func New[T any](cmp Comparator[T]) *PriorityQueue[T] {
	if cmp == nil {
		panic("pqueue: nil comparator")
	}

	return &PriorityQueue[T]{cmp: cmp}
}

// Len returns the number of stored values.
// Complexity: O(1).
func (q *PriorityQueue[T]) Len() int {
	if q.root == nil {
		return 0
	}

	return q.root.size
}

// Push inserts v.
//
// Steps:
//  1. Empty tree: v becomes the root.
//  2. At each node keep the smaller of (node value, carried value) and carry
//     the larger one down.
//  3. Fill a missing child first; otherwise descend into the lighter subtree
//     (left on equal sizes).
//
// Complexity: O(log n).
func (q *PriorityQueue[T]) Push(v T) {
	if q.root == nil {
		q.root = &node[T]{val: v, size: 1}
		return
	}

	n := q.root
	carry := v
	for {
		n.size++
		if q.cmp(carry, n.val) < 0 {
			n.val, carry = carry, n.val
		}
		switch {
		case n.left == nil:
			n.left = &node[T]{val: carry, size: 1}
			return
		case n.right == nil:
			n.right = &node[T]{val: carry, size: 1}
			return
		case n.left.size > n.right.size:
			n = n.right
		default:
			n = n.left
		}
	}
}

// Peek returns the minimum value without removing it.
// The boolean is false when the queue is empty.
// Complexity: O(1).
func (q *PriorityQueue[T]) Peek() (T, bool) {
	if q.root == nil {
		var zero T
		return zero, false
	}

	return q.root.val, true
}

// Pop removes and returns the minimum value.
// The boolean is false when the queue is empty.
// Complexity: O(h).
func (q *PriorityQueue[T]) Pop() (T, bool) {
	if q.root == nil {
		var zero T
		return zero, false
	}
	out := q.root.val
	q.root = q.pull(q.root)

	return out, true
}

// pull discards n.val and refills n from the smaller child, recursively.
// It returns the subtree that replaces n (nil once n has become empty).
func (q *PriorityQueue[T]) pull(n *node[T]) *node[T] {
	var next *node[T]
	switch {
	case n.left == nil && n.right == nil:
		return nil
	case n.left == nil:
		next = n.right
	case n.right == nil:
		next = n.left
	case q.cmp(n.right.val, n.left.val) < 0:
		next = n.right
	default:
		next = n.left
	}

	n.val = next.val
	n.size--
	if next == n.left {
		n.left = q.pull(next)
	} else {
		n.right = q.pull(next)
	}

	return n
}

// Contains reports whether some stored value compares equal to v.
// The heap is scanned exhaustively; only subtrees whose root is not greater
// than v can hold an equal value, which prunes the walk.
// Complexity: O(n) worst case.
func (q *PriorityQueue[T]) Contains(v T) bool {
	stack := make([]*node[T], 0, 16)
	if q.root != nil {
		stack = append(stack, q.root)
	}
	var n *node[T]
	for len(stack) > 0 {
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		c := q.cmp(n.val, v)
		if c == 0 {
			return true
		}
		if c > 0 {
			// every descendant is >= n.val > v
			continue
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
	}

	return false
}

// Clear drops every stored value.
// Complexity: O(1).
func (q *PriorityQueue[T]) Clear() {
	q.root = nil
}
