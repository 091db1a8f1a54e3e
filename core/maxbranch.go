package core

// MaxBranchingSubtree scans the subtree rooted at n and returns the
// largest child count seen together with the node bearing it. The
// tracked maximum is only overwritten by a strictly larger count, so
// ties keep the breadth-first-earliest node.
//
// The returned node is an alias into the tree, not a copy; the tree
// retains ownership. A nil receiver yields (0, nil).
//
// Complexity: O(n).
func (n *Node[T]) MaxBranchingSubtree() (int, *Node[T]) {
	if n == nil {
		return 0, nil
	}

	best := -1
	var holder *Node[T]

	n.Walk(true, func(leaf *Node[T]) bool {
		if amount := int(leaf.childCount); amount > best {
			best = amount
			holder = leaf
		}
		return false
	})

	return best, holder
}
