// SPDX-License-Identifier: MIT

// Package skeleton implements a static order-statistic tree ("skeleton tree")
// over a fixed, sorted key domain.
//
// 🚀 What is a skeleton tree?
//
//	The full shape of a balanced binary search tree is built up front from
//	the sorted domain. Keys are then only ever *marked present*; the shape
//	never changes. Each node carries an empty flag that flips exactly once,
//	on the first insertion beneath it. This is enough to answer
//	"greatest present key ≤ v" with one descent and one upward walk.
//
// Shape:
//
//	build(domain):
//	  |domain| ≤ 2  → leaf{leftCap = domain[0], two empty slots}
//	  otherwise     → m = (|domain|−1)/2
//	                  internal{leftCap = domain[m],
//	                           left  = build(domain[0..m]),
//	                           right = build(domain[m+1..])}
//
//	Routing everywhere: v ≤ leftCap → left, else right.
//
// Memory layout:
//
//	All nodes of one tree live in a single arena slice; parent, left and right
//	are arena indices. Dropping the *Tree drops every node at once, so no node
//	outlives the tree that owns it and there are no reference cycles.
//
// Complexity:
//
//   - Build:                  O(N) time and memory, O(log N) depth.
//   - Insert:                 O(log N).
//   - Max:                    O(log N).
//   - FindValueOrPredecessor: O(log N) (one descent plus one upward walk).
//
// Errors:
//
//   - ErrEmptyDomain:    Build on an empty slice.
//   - ErrUnsortedDomain: Build on a slice that is not strictly ascending.
//   - ErrNotInDomain:    Insert of a key the tree was not built over.
//
// Concurrency:
//
//	A Tree is not safe for concurrent mutation. Build one per owner.
package skeleton
