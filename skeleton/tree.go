// SPDX-License-Identifier: MIT

package skeleton

import (
	"cmp"
	"fmt"
)

// noNode marks a missing parent or child link.
const noNode = -1

// root is the arena index of the root node; Build always places it first.
const root = 0

// node is one arena slot. Internal nodes use left/right; leaves use the two
// slots (lo, hi) that own their ≤2 domain keys.
type node[T cmp.Ordered] struct {
	leftCap T

	parent      int
	left, right int
	isLeftChild bool
	leaf        bool
	empty       bool

	// leaf only
	lo, hi       T
	span         int // number of domain keys owned: 1 or 2
	hasLo, hasHi bool
}

// Tree is a static skeleton tree over a sorted domain of keys of type T.
type Tree[T cmp.Ordered] struct {
	nodes    []node[T]
	size     int
	inserted int
}

// Build constructs the skeleton over domain, which must be non-empty and
// strictly ascending. The slice is not retained.
//
// Algorithm Outline:
//  1. |domain| ≤ 2: emit a leaf with leftCap = domain[0].
//  2. Otherwise m = (|domain|−1)/2; emit an internal node with
//     leftCap = domain[m], then build domain[0..m] as its left child and
//     domain[m+1..] as its right child.
//
// Every key ends up owned by exactly one leaf slot.
//
// Errors: ErrEmptyDomain, ErrUnsortedDomain.
// Complexity: O(N) time and memory.
func Build[T cmp.Ordered](domain []T) (*Tree[T], error) {
	if len(domain) == 0 {
		return nil, ErrEmptyDomain
	}
	for i := 1; i < len(domain); i++ {
		if !(domain[i-1] < domain[i]) {
			return nil, fmt.Errorf("Build: index %d: %v !< %v: %w", i, domain[i-1], domain[i], ErrUnsortedDomain)
		}
	}
	t := &Tree[T]{
		nodes: make([]node[T], 0, 2*len(domain)),
		size:  len(domain),
	}
	t.build(domain, noNode, false)

	return t, nil
}

// build appends the subtree for domain and returns its arena index.
func (t *Tree[T]) build(domain []T, parent int, isLeft bool) int {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, node[T]{
		leftCap:     domain[0],
		parent:      parent,
		left:        noNode,
		right:       noNode,
		isLeftChild: isLeft,
		empty:       true,
	})
	if len(domain) <= 2 {
		leaf := &t.nodes[idx]
		leaf.leaf = true
		leaf.lo = domain[0]
		leaf.span = len(domain)
		if len(domain) == 2 {
			leaf.hi = domain[1]
		}
		return idx
	}

	m := (len(domain) - 1) / 2
	t.nodes[idx].leftCap = domain[m]
	// Children are appended after idx, so take indices, not pointers.
	left := t.build(domain[:m+1], idx, true)
	right := t.build(domain[m+1:], idx, false)
	t.nodes[idx].left, t.nodes[idx].right = left, right

	return idx
}

// Len returns the number of keys in the build domain.
func (t *Tree[T]) Len() int { return t.size }

// Inserted returns the number of distinct keys inserted so far.
func (t *Tree[T]) Inserted() int { return t.inserted }

// Empty reports whether nothing has been inserted.
func (t *Tree[T]) Empty() bool { return t.nodes[root].empty }

// descend follows the routing rule from the root down to a leaf.
func (t *Tree[T]) descend(v T) int {
	cur := root
	for !t.nodes[cur].leaf {
		if v <= t.nodes[cur].leftCap {
			cur = t.nodes[cur].left
		} else {
			cur = t.nodes[cur].right
		}
	}
	return cur
}

// Contains reports whether v belongs to the build domain.
// Complexity: O(log N).
func (t *Tree[T]) Contains(v T) bool {
	leaf := &t.nodes[t.descend(v)]
	if v <= leaf.leftCap {
		return v == leaf.lo
	}
	return leaf.span == 2 && v == leaf.hi
}

// Insert marks v present. Inserting the same key again is a no-op.
// A key outside the build domain returns ErrNotInDomain and leaves the tree
// unchanged.
// Complexity: O(log N).
func (t *Tree[T]) Insert(v T) error {
	idx := t.descend(v)
	leaf := &t.nodes[idx]
	if v <= leaf.leftCap {
		if v != leaf.lo {
			return fmt.Errorf("Insert(%v): %w", v, ErrNotInDomain)
		}
		if !leaf.hasLo {
			leaf.hasLo = true
			t.inserted++
		}
	} else {
		if leaf.span < 2 || v != leaf.hi {
			return fmt.Errorf("Insert(%v): %w", v, ErrNotInDomain)
		}
		if !leaf.hasHi {
			leaf.hasHi = true
			t.inserted++
		}
	}

	// Ancestors of a non-empty node are already non-empty.
	for i := idx; i != noNode && t.nodes[i].empty; i = t.nodes[i].parent {
		t.nodes[i].empty = false
	}

	return nil
}

// Max returns the greatest inserted key, or false if nothing was inserted.
// Complexity: O(log N).
func (t *Tree[T]) Max() (T, bool) {
	return t.maxFrom(root)
}

// maxFrom returns the greatest inserted key in the subtree rooted at idx.
// Internal nodes prefer the right child unless it is empty.
func (t *Tree[T]) maxFrom(idx int) (T, bool) {
	var zero T
	cur := &t.nodes[idx]
	if cur.empty {
		return zero, false
	}
	for !cur.leaf {
		if !t.nodes[cur.right].empty {
			cur = &t.nodes[cur.right]
		} else {
			cur = &t.nodes[cur.left]
		}
	}
	if cur.hasHi {
		return cur.hi, true
	}
	return cur.lo, true
}

// predecessor returns the greatest inserted key lying below the key range of
// node idx. It climbs while the current node is a left child; at a right
// child the parent's left subtree holds everything below, so its max is the
// answer unless that subtree is empty, in which case the climb continues
// from the parent.
// Complexity: O(log N) amortized over one upward walk.
func (t *Tree[T]) predecessor(idx int) (T, bool) {
	var zero T
	cur := idx
	for {
		for t.nodes[cur].parent != noNode && t.nodes[cur].isLeftChild {
			cur = t.nodes[cur].parent
		}
		parent := t.nodes[cur].parent
		if parent == noNode {
			return zero, false
		}
		if v, ok := t.maxFrom(t.nodes[parent].left); ok {
			return v, true
		}
		cur = parent
	}
}

// FindValueOrPredecessor returns the greatest inserted key ≤ v, or false if
// no inserted key qualifies. v need not belong to the domain.
//
// The descent uses the insertion routing rule and stops early at an empty
// node: nothing beneath it can answer, so the predecessor of that node is the
// result. At a leaf the right slot is checked before the left slot, so a probe
// beyond the leaf's larger key still finds it.
// Complexity: O(log N).
func (t *Tree[T]) FindValueOrPredecessor(v T) (T, bool) {
	cur := root
	for !t.nodes[cur].empty && !t.nodes[cur].leaf {
		if v <= t.nodes[cur].leftCap {
			cur = t.nodes[cur].left
		} else {
			cur = t.nodes[cur].right
		}
	}
	if nd := &t.nodes[cur]; nd.leaf {
		if nd.hasHi && nd.hi <= v {
			return nd.hi, true
		}
		if nd.hasLo && nd.lo <= v {
			return nd.lo, true
		}
	}
	return t.predecessor(cur)
}
