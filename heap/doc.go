// SPDX-License-Identifier: MIT

// Package heap provides an indexable binary heap: a priority queue of
// distinct values that supports in-place priority updates (decrease-key and
// increase-key) in O(log n).
//
// Unlike container/heap, which leaves locating an element to the caller,
// Heap keeps a position map from value to slot in the backing slice. This
// lets Dijkstra's solver update a frontier vertex directly instead of pushing
// stale duplicates ("lazy decrease-key").
//
// Order:
//
//	The direction is fixed at construction: MinFirst keeps the lowest
//	priority at the root, MaxFirst the highest. A single three-way comparator
//	governs every sift so both disciplines share one code path.
//
// Invariants (hold after every exported call):
//
//  1. items[0:n] is a complete binary tree; the parent of slot k>0 is
//     (k-1)/2, its children are 2k+1 and 2k+2.
//  2. No child is stronger than its parent under the heap's order.
//  3. Values in items[0:n] are distinct.
//  4. pos has exactly the live values as keys and items[pos[v]].value == v.
//
// Errors (sentinel):
//
//	– ErrEmpty          PeekRoot/ExtractRoot on an empty heap.
//	– ErrDuplicateValue Insert of a value already present.
//	– ErrValueNotFound  UpdatePriority of a value not present.
//
// Complexity:
//
//	Insert       O(log n) amortized, O(n) when the backing slice grows.
//	PeekRoot     O(1)
//	ExtractRoot  O(log n)
//	UpdatePriority O(log n)
//	Size/Contains/Priority O(1)
//
// Thread safety:
//
//	Heap is not safe for concurrent use.
package heap
