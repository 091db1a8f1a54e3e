// Queue-based breadth-first traversal. This is the only traversal
// mechanism in ntree; destruction, size accounting, max-branching
// search and the codec are all built on it.
package core

// WalkFunc is invoked once per visited node. Returning true stops the
// entire walk immediately — no further nodes are visited, including
// unvisited siblings and later levels. Returning false continues to
// the next queued node.
//
// The callback must not mutate the shape of the tree being walked
// (attach, destroy); children are enqueued at the moment their parent
// is visited, so mid-walk mutation produces undefined iteration.
type WalkFunc[T any] func(leaf *Node[T]) bool

// Walk visits n (when includeSelf is true) and every descendant
// exactly once in breadth-first order: all nodes at depth d before any
// node at depth d+1, and within a depth in parent-then-slot order.
// A node's children are enqueued when the node itself is dequeued, so
// a subtree is always scheduled after its root.
//
// The walk is iterative with an explicit queue; stack usage does not
// grow with tree depth. A nil receiver or nil callback walks nothing.
//
// Complexity: O(n) time, O(width) memory.
func (n *Node[T]) Walk(includeSelf bool, fn WalkFunc[T]) {
	if n == nil || fn == nil {
		return
	}

	queue := make([]*Node[T], 0, len(n.children)+1)
	if includeSelf {
		queue = append(queue, n)
	} else {
		for c := 0; c < int(n.childCount); c++ {
			queue = append(queue, n.children[c])
		}
	}

	for len(queue) > 0 {
		leaf := queue[0]
		queue = queue[1:]

		for c := 0; c < int(leaf.childCount); c++ {
			queue = append(queue, leaf.children[c])
		}

		if fn(leaf) {
			return
		}
	}
}
