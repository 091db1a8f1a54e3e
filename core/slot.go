// The generation-slot protocol: an explicit by-value description of
// "a node that will exist here", drained from a queue identically by
// codec.Decode and builder.Random.
package core

// Slot describes the destination of a not-yet-built node: the parent
// it will be attached to and the child slot it will occupy. The zero
// Slot (nil parent) designates a tree's root position; the producer
// that fills it keeps ownership of the new node.
type Slot[T any] struct {
	// Parent is the node the future child attaches to; nil for a root.
	Parent *Node[T]

	// Index is the child slot assigned to the future node.
	Index uint16
}

// Fill installs child at the recorded position. For a root slot
// (nil Parent) there is nothing to attach and Fill succeeds; otherwise
// it forwards to Parent.Attach with all of its error conditions.
func (s Slot[T]) Fill(child *Node[T]) error {
	if s.Parent == nil {
		return nil
	}

	return s.Parent.Attach(int(s.Index), child)
}

// Slots manufactures the pending slots announced by a node's child
// count: one per future child, indices 0..count-1 in order. A count
// of zero (or less) yields no slots.
//
// Complexity: O(count).
func Slots[T any](parent *Node[T], count int) []Slot[T] {
	if count <= 0 {
		return nil
	}

	out := make([]Slot[T], count)
	for c := 0; c < count; c++ {
		out[c] = Slot[T]{Parent: parent, Index: uint16(c)}
	}

	return out
}
