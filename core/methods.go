// Accessors, child attachment, iterative destruction, and size
// accounting for Node. All multi-node operations go through Walk.
package core

import (
	"fmt"
	"unsafe"
)

// Value returns the node's payload.
func (n *Node[T]) Value() T { return n.value }

// SetValue replaces the node's payload.
func (n *Node[T]) SetValue(v T) { n.value = v }

// Depth returns the node's distance from the root (root = 0).
func (n *Node[T]) Depth() uint16 { return n.depth }

// ChildIndex returns the node's slot among its parent's children
// (0 for a root).
func (n *Node[T]) ChildIndex() uint16 { return n.childIndex }

// ChildCount returns the number of occupied child slots.
func (n *Node[T]) ChildCount() int { return int(n.childCount) }

// Arity returns the fixed branching factor of the node.
func (n *Node[T]) Arity() int { return len(n.children) }

// Child returns the child at slot index, or ErrSlotOutOfRange when the
// index falls outside the arity. An in-range but unoccupied slot yields
// a nil node and no error, so deferred population can be observed.
func (n *Node[T]) Child(index int) (*Node[T], error) {
	if index < 0 || index >= len(n.children) {
		return nil, fmt.Errorf("core: Child(%d): arity=%d: %w", index, len(n.children), ErrSlotOutOfRange)
	}

	return n.children[index], nil
}

// Attach installs child into the slot at index, fixing the child's
// depth to the parent's depth plus one and its child index to the
// slot. Children must be attached in ascending slot order starting at
// 0, so occupied slots never have gaps.
//
// On any error the tree is left unmodified:
//
//   - ErrNilNode          child is nil.
//   - ErrSlotOutOfRange   index is outside [0, arity).
//   - ErrSlotOrder        index ≠ current child count.
//   - ErrArityMismatch    child was constructed with a different arity.
//   - ErrDepthOverflow    the parent sits at the maximum depth.
//
// If the child already carries descendants, their depths are
// renumbered so that every node's depth stays parent's depth + 1.
//
// Complexity: O(1), plus O(size of child's subtree) renumbering when
// the child is not a leaf.
func (n *Node[T]) Attach(index int, child *Node[T]) error {
	if child == nil {
		return fmt.Errorf("core: Attach(%d): %w", index, ErrNilNode)
	}
	if index < 0 || index >= len(n.children) {
		return fmt.Errorf("core: Attach(%d): arity=%d: %w", index, len(n.children), ErrSlotOutOfRange)
	}
	if index != int(n.childCount) {
		return fmt.Errorf("core: Attach(%d): next free slot is %d: %w", index, n.childCount, ErrSlotOrder)
	}
	if len(child.children) != len(n.children) {
		return fmt.Errorf("core: Attach(%d): child arity=%d, parent arity=%d: %w",
			index, len(child.children), len(n.children), ErrArityMismatch)
	}
	if n.depth == maxDepth {
		return fmt.Errorf("core: Attach(%d): %w", index, ErrDepthOverflow)
	}

	n.children[index] = child
	n.childCount++

	child.childIndex = uint16(index)
	child.depth = n.depth + 1

	// Bottom-up assembly: the child may already own a subtree whose
	// depths were numbered relative to the old root position.
	if child.childCount > 0 {
		child.Walk(true, func(leaf *Node[T]) bool {
			for c := 0; c < int(leaf.childCount); c++ {
				leaf.children[c].depth = leaf.depth + 1
			}
			return false
		})
	}

	return nil
}

// Destroy severs every child link in the subtree rooted at n, leaving
// each node a childless root so the collector can reclaim them
// independently and stale aliases cannot reach detached descendants.
//
// The teardown is an explicit iterative queue drain, never recursion,
// so trees deeper than the call stack are released safely. Destroying
// an already destroyed (or leaf) node is a no-op.
//
// Complexity: O(n) time, O(width) memory.
func (n *Node[T]) Destroy() {
	if n == nil {
		return
	}

	queue := []*Node[T]{n}
	for len(queue) > 0 {
		leaf := queue[0]
		queue = queue[1:]

		for c := 0; c < int(leaf.childCount); c++ {
			queue = append(queue, leaf.children[c])
			leaf.children[c] = nil
		}
		leaf.childCount = 0
	}
}

// ByteSize returns the memory footprint of the subtree rooted at n:
// the sum, over the node and every descendant, of the node struct
// itself plus its fixed child-slot array. Each node contributes its
// own footprint exactly once, so the result is nodeCount × one-node
// footprint for a given T and arity.
//
// Complexity: O(n).
func (n *Node[T]) ByteSize() uintptr {
	var total uintptr
	slotSize := unsafe.Sizeof((*Node[T])(nil))

	n.Walk(true, func(leaf *Node[T]) bool {
		total += unsafe.Sizeof(*leaf) + uintptr(cap(leaf.children))*slotSize
		return false
	})

	return total
}
