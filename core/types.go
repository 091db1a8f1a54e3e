// Package core defines the Node type, its sentinel errors, and the
// New constructor.
//
// This file declares the arity domain, the Node struct, and the
// construction entry point; methods live in methods.go, traversal in
// walk.go, and the generation-slot protocol in slot.go.
package core

import (
	"errors"
	"fmt"
	"math"
)

// Arity domain shared by every constructor. The bookkeeping fields
// (depth, childIndex, childCount) are uint16, so the arity must fit
// the same domain.
const (
	// MinArity is the smallest admissible branching factor.
	MinArity = 1

	// MaxArity is the largest admissible branching factor.
	MaxArity = math.MaxUint16
)

// maxDepth is the top of the uint16 depth domain; attaching below a
// node at this depth fails with ErrDepthOverflow.
const maxDepth = math.MaxUint16

// Sentinel errors for core tree operations.
var (
	// ErrArity indicates a branching factor outside [MinArity, MaxArity].
	ErrArity = errors.New("core: arity out of range")

	// ErrNilNode indicates a nil node was passed where a node is required.
	ErrNilNode = errors.New("core: node is nil")

	// ErrSlotOutOfRange indicates a child slot index ≥ the fixed arity.
	ErrSlotOutOfRange = errors.New("core: child slot index out of range")

	// ErrSlotOrder indicates an attach that would leave a gap in the
	// occupied slots; children must be attached in ascending order.
	ErrSlotOrder = errors.New("core: children must be attached in ascending slot order")

	// ErrArityMismatch indicates a child whose arity differs from its parent's.
	ErrArityMismatch = errors.New("core: child arity differs from parent arity")

	// ErrDepthOverflow indicates an attach below a node at the maximum depth.
	ErrDepthOverflow = errors.New("core: maximum tree depth exceeded")
)

// Node is a tree node holding a value of type T and up to N children,
// where N is the arity passed to New. Every node of a tree shares the
// same arity; Attach rejects mismatches.
//
// The child slot array has a fixed length equal to the arity. Occupied
// slots are 0..childCount-1 with no gaps, each child's depth is its
// parent's depth plus one, and each child's childIndex equals its slot.
// Attach maintains all three invariants.
//
// The zero Node is not usable; construct nodes with New.
type Node[T any] struct {
	// value is the user payload.
	value T

	// depth is the distance from the root; a detached root has depth 0.
	depth uint16

	// childIndex is this node's slot in its parent's child array;
	// 0 for a root.
	childIndex uint16

	// childCount is the number of occupied child slots.
	childCount uint16

	// children is the fixed-length slot array; len(children) == arity.
	// Slots childCount..arity-1 are nil.
	children []*Node[T]
}

// New constructs a detached root node with the given arity and value:
// depth 0, child index 0, no children. The arity is permanent and
// every node later attached into the same tree must share it.
//
// Returns ErrArity if arity is outside [MinArity, MaxArity].
//
// Complexity: O(arity) for the slot array allocation.
func New[T any](arity int, value T) (*Node[T], error) {
	if arity < MinArity || arity > MaxArity {
		return nil, fmt.Errorf("core: New: arity=%d not in [%d,%d]: %w",
			arity, MinArity, MaxArity, ErrArity)
	}

	return &Node[T]{
		value:    value,
		children: make([]*Node[T], arity),
	}, nil
}
