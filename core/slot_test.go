package core_test

import (
	"errors"
	"testing"

	"github.com/treelab/ntree/core"
)

// TestSlot_FillRoot verifies that a parentless slot accepts any node
// without attaching it anywhere.
func TestSlot_FillRoot(t *testing.T) {
	var rootSlot core.Slot[int]
	n := mustNew(t, 2, 1)
	if err := rootSlot.Fill(n); err != nil {
		t.Fatalf("root slot Fill: unexpected error: %v", err)
	}
	if got := n.Depth(); got != 0 {
		t.Errorf("Depth() = %d; want 0 (still a root)", got)
	}
}

// TestSlot_FillAttaches verifies Fill forwards to Attach.
func TestSlot_FillAttaches(t *testing.T) {
	parent := mustNew(t, 2, "P")
	child := mustNew(t, 2, "C")

	slot := core.Slot[string]{Parent: parent, Index: 0}
	if err := slot.Fill(child); err != nil {
		t.Fatalf("Fill: unexpected error: %v", err)
	}
	if got, _ := parent.Child(0); got != child {
		t.Errorf("Child(0) = %v; want the filled child", got)
	}
	if got := child.Depth(); got != 1 {
		t.Errorf("child Depth() = %d; want 1", got)
	}
}

// TestSlot_FillPropagatesAttachErrors verifies error forwarding.
func TestSlot_FillPropagatesAttachErrors(t *testing.T) {
	parent := mustNew(t, 2, "P")
	slot := core.Slot[string]{Parent: parent, Index: 1} // gap: slot 0 empty
	if err := slot.Fill(mustNew(t, 2, "C")); !errors.Is(err, core.ErrSlotOrder) {
		t.Errorf("want ErrSlotOrder, got %v", err)
	}
}

// TestSlots_AnnouncedChildren verifies slot manufacture for a count.
func TestSlots_AnnouncedChildren(t *testing.T) {
	parent := mustNew(t, 4, 0)
	slots := core.Slots(parent, 3)
	if len(slots) != 3 {
		t.Fatalf("len(slots) = %d; want 3", len(slots))
	}
	for i, s := range slots {
		if s.Parent != parent {
			t.Errorf("slot %d: wrong parent", i)
		}
		if got := int(s.Index); got != i {
			t.Errorf("slot %d: Index = %d; want %d", i, got, i)
		}
	}

	if got := core.Slots(parent, 0); got != nil {
		t.Errorf("Slots(_, 0) = %v; want nil", got)
	}
}
