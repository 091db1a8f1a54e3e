// Package core provides the fixed-arity tree Node type and the
// queue-based breadth-first traversal that backs every other operation
// in ntree.
//
// What
//
//   - Node[T]: a generic tree node owning up to N children, where N
//     (the arity) is fixed at construction and shared by every node of
//     a tree. Each node tracks its depth, its index among its parent's
//     children, and its occupied child count.
//   - Walk: the single traversal primitive. An iterative, queue-based
//     breadth-first walk with an early-stop callback. Destruction,
//     size accounting, max-branching search and serialization are all
//     built on it; no other traversal mechanism exists.
//   - Slot[T]: the generation-slot protocol — a by-value record of
//     "where the next node goes" (parent + child index), drained from
//     a queue identically by deserialization and random generation.
//   - MaxBranchingSubtree: returns the breadth-first-earliest node
//     with the largest child count, as an alias into the tree.
//   - Destroy: iterative teardown severing every child link, so deep
//     trees are released without touching the call stack.
//   - ByteSize: per-node memory footprint summed over the tree.
//
// Ownership
//
//	A node owns its children exclusively: a child is attached to at
//	most one parent, in ascending slot order, and its depth and child
//	index are fixed at attach time. Attach enforces the slot bound,
//	ascending order, and arity agreement, so "no sharing, no gaps,
//	no cycles" holds by construction.
//
// Concurrency
//
//	None. All operations assume exclusive access to the tree, and
//	Walk callbacks must not mutate tree shape mid-walk: children are
//	enqueued at the moment their parent is visited, so concurrent or
//	reentrant mutation produces undefined iteration results.
//
// Complexity (n = node count)
//
//   - Walk, Destroy, ByteSize, MaxBranchingSubtree: O(n) time,
//     O(width) memory for the queue.
//   - Attach: O(1), plus O(subtree) depth renumbering when the
//     attached child already has descendants.
//
// Errors
//
//   - ErrArity            if a constructor arity is outside [1, 65535].
//   - ErrNilNode          if a nil child is attached.
//   - ErrSlotOutOfRange   if a child index is ≥ the arity.
//   - ErrSlotOrder        if children are attached out of ascending order.
//   - ErrArityMismatch    if a child's arity differs from its parent's.
//   - ErrDepthOverflow    if attaching would exceed the uint16 depth domain.
package core
