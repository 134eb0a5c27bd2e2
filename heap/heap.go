// SPDX-License-Identifier: MIT

package heap

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Heap.
var (
	// ErrEmpty indicates a root operation on a heap with no values.
	ErrEmpty = errors.New("heap: empty")

	// ErrDuplicateValue indicates Insert of a value that is already present.
	ErrDuplicateValue = errors.New("heap: duplicate value")

	// ErrValueNotFound indicates UpdatePriority of a value that is absent.
	ErrValueNotFound = errors.New("heap: value not found")
)

// Order selects which priority sits at the root.
type Order int

const (
	// MinFirst keeps the lowest priority at the root.
	MinFirst Order = iota

	// MaxFirst keeps the highest priority at the root.
	MaxFirst
)

// String implements fmt.Stringer.
func (o Order) String() string {
	if o == MaxFirst {
		return "max-first"
	}

	return "min-first"
}

// defaultCapacity is the initial backing slice capacity.
const defaultCapacity = 10

// item pairs a value with its priority.
type item[T comparable] struct {
	value    T
	priority float64
}

// Heap is an indexable binary heap of distinct values with float64 priorities.
type Heap[T comparable] struct {
	order Order
	items []item[T]
	pos   map[T]int
}

// New returns an empty heap with the given order.
func New[T comparable](order Order) *Heap[T] {
	return &Heap[T]{
		order: order,
		items: make([]item[T], 0, defaultCapacity),
		pos:   make(map[T]int, defaultCapacity),
	}
}

// NewMin returns an empty min-first heap.
func NewMin[T comparable]() *Heap[T] { return New[T](MinFirst) }

// NewMax returns an empty max-first heap.
func NewMax[T comparable]() *Heap[T] { return New[T](MaxFirst) }

// Order reports the discipline fixed at construction.
func (h *Heap[T]) Order() Order { return h.order }

// Size returns the number of values in the heap.
func (h *Heap[T]) Size() int { return len(h.items) }

// Contains reports whether v is in the heap.
func (h *Heap[T]) Contains(v T) bool {
	_, ok := h.pos[v]

	return ok
}

// Priority returns v's current priority.
func (h *Heap[T]) Priority(v T) (float64, bool) {
	k, ok := h.pos[v]
	if !ok {
		return 0, false
	}

	return h.items[k].priority, true
}

// Insert adds v with priority p. v must not already be present.
func (h *Heap[T]) Insert(v T, p float64) error {
	if _, ok := h.pos[v]; ok {
		return fmt.Errorf("Insert(%v): %w", v, ErrDuplicateValue)
	}

	h.items = append(h.items, item[T]{value: v, priority: p})
	k := len(h.items) - 1
	h.pos[v] = k
	h.up(k)

	return nil
}

// PeekRoot returns the root value without removing it.
func (h *Heap[T]) PeekRoot() (T, error) {
	if len(h.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return h.items[0].value, nil
}

// ExtractRoot removes and returns the root value. The last value is moved to
// the root and sifted down.
func (h *Heap[T]) ExtractRoot() (T, error) {
	n := len(h.items)
	if n == 0 {
		var zero T
		return zero, ErrEmpty
	}

	root := h.items[0].value
	h.swap(0, n-1)
	h.items[n-1] = item[T]{} // drop the reference for the GC
	h.items = h.items[:n-1]
	delete(h.pos, root)
	h.down(0)

	return root, nil
}

// UpdatePriority replaces v's priority with p, then sifts v up if it got
// stronger or down otherwise.
func (h *Heap[T]) UpdatePriority(v T, p float64) error {
	k, ok := h.pos[v]
	if !ok {
		return fmt.Errorf("UpdatePriority(%v): %w", v, ErrValueNotFound)
	}

	old := h.items[k].priority
	h.items[k].priority = p
	if h.compare(p, old) > 0 {
		h.up(k)
	} else {
		h.down(k)
	}

	return nil
}

// compare returns 1 if a value with priority p1 belongs above one with p2,
// 0 if they tie and -1 if it belongs below.
func (h *Heap[T]) compare(p1, p2 float64) int {
	if p1 == p2 {
		return 0
	}
	if h.order == MinFirst {
		if p1 < p2 {
			return 1
		}
		return -1
	}
	if p1 > p2 {
		return 1
	}

	return -1
}

// compareAt applies compare to the priorities in slots i and j.
func (h *Heap[T]) compareAt(i, j int) int {
	return h.compare(h.items[i].priority, h.items[j].priority)
}

// swap exchanges slots i and j and keeps pos in sync.
func (h *Heap[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i].value] = i
	h.pos[h.items[j].value] = j
}

// up moves slot k toward the root while it is stronger than its parent.
func (h *Heap[T]) up(k int) {
	for k > 0 {
		parent := (k - 1) / 2
		if h.compareAt(k, parent) <= 0 {
			return
		}
		h.swap(k, parent)
		k = parent
	}
}

// down moves slot k toward the leaves while a child is stronger.
// On equal children the left one is chosen.
func (h *Heap[T]) down(k int) {
	n := len(h.items)
	for {
		child := 2*k + 1
		if child >= n {
			return
		}
		if right := child + 1; right < n && h.compareAt(child, right) < 0 {
			child = right
		}
		if h.compareAt(k, child) >= 0 {
			return
		}
		h.swap(k, child)
		k = child
	}
}
