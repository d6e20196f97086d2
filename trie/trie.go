// Package trie implements the exact-match city name index.
//
// Names are stored byte by byte in an arena: every node lives in one slice and
// children are referenced by index, so the whole index is a handful of
// allocations regardless of how many cities the map holds. Only exact lookup
// is exposed; the index never answers prefix or range questions.
package trie

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidName indicates an empty name or one containing a byte in 0..31 or ';'.
	ErrInvalidName = errors.New("trie: invalid name")

	// ErrDuplicateName indicates the name is already mapped.
	ErrDuplicateName = errors.New("trie: name already present")
)

// noValue marks a node that terminates no stored name.
const noValue int32 = -1

// nodeIndex addresses a node inside the arena; the root is index 0.
type nodeIndex int32

// edge is one labelled child link. Children are kept in insertion order; the
// fan-out of real city names is small, so a linear scan beats a map here.
type edge struct {
	label byte
	child nodeIndex
}

type arenaNode struct {
	children []edge
	value    int32
}

// Trie maps byte strings to int32 identifiers.
type Trie struct {
	nodes []arenaNode
	count int
}

// New returns an empty Trie.
func New() *Trie {
	t := &Trie{nodes: make([]arenaNode, 1, 64)}
	t.nodes[0].value = noValue

	return t
}

// ValidName reports whether name can be used as a city name:
// non-empty, no ASCII control byte (0..31) and no ';'.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] <= 31 || name[i] == ';' {
			return false
		}
	}

	return true
}

// Insert maps name to id.
// Complexity: O(len(name) · fan-out).
func (t *Trie) Insert(name string, id int32) error {
	if !ValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if id < 0 {
		return fmt.Errorf("trie: negative id %d", id)
	}

	cur := nodeIndex(0)
	for i := 0; i < len(name); i++ {
		next, ok := t.child(cur, name[i])
		if !ok {
			next = t.alloc()
			t.nodes[cur].children = append(t.nodes[cur].children, edge{label: name[i], child: next})
		}
		cur = next
	}
	if t.nodes[cur].value != noValue {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	t.nodes[cur].value = id
	t.count++

	return nil
}

// Lookup returns the id mapped to name.
// Invalid names are never present, so they simply miss.
// Complexity: O(len(name) · fan-out).
func (t *Trie) Lookup(name string) (int32, bool) {
	if name == "" {
		return 0, false
	}
	cur := nodeIndex(0)
	var ok bool
	for i := 0; i < len(name); i++ {
		if cur, ok = t.child(cur, name[i]); !ok {
			return 0, false
		}
	}
	v := t.nodes[cur].value
	if v == noValue {
		return 0, false
	}

	return v, true
}

// Len returns the number of stored names.
func (t *Trie) Len() int { return t.count }

func (t *Trie) child(n nodeIndex, label byte) (nodeIndex, bool) {
	for _, e := range t.nodes[n].children {
		if e.label == label {
			return e.child, true
		}
	}

	return 0, false
}

func (t *Trie) alloc() nodeIndex {
	t.nodes = append(t.nodes, arenaNode{value: noValue})

	return nodeIndex(len(t.nodes) - 1)
}
