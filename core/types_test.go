package core_test

import (
	"errors"
	"testing"

	"github.com/treelab/ntree/core"
)

// mustNew constructs a node or fails the test.
func mustNew[T any](t *testing.T, arity int, value T) *core.Node[T] {
	t.Helper()
	n, err := core.New(arity, value)
	if err != nil {
		t.Fatalf("New(%d, %v): unexpected error: %v", arity, value, err)
	}
	return n
}

// mustAttach attaches child at index or fails the test.
func mustAttach[T any](t *testing.T, parent *core.Node[T], index int, child *core.Node[T]) {
	t.Helper()
	if err := parent.Attach(index, child); err != nil {
		t.Fatalf("Attach(%d): unexpected error: %v", index, err)
	}
}

// TestNew_ArityDomain verifies the [MinArity, MaxArity] bound.
func TestNew_ArityDomain(t *testing.T) {
	for _, arity := range []int{0, -1, core.MaxArity + 1} {
		if _, err := core.New(arity, 0); !errors.Is(err, core.ErrArity) {
			t.Errorf("New(%d): want ErrArity, got %v", arity, err)
		}
	}
	n, err := core.New(core.MinArity, 7)
	if err != nil {
		t.Fatalf("New(MinArity): unexpected error: %v", err)
	}
	if got := n.Arity(); got != core.MinArity {
		t.Errorf("Arity() = %d; want %d", got, core.MinArity)
	}
}

// TestNew_FreshNode checks the initial state of a constructed node.
func TestNew_FreshNode(t *testing.T) {
	n := mustNew(t, 5, 42)
	if got := n.Value(); got != 42 {
		t.Errorf("Value() = %d; want 42", got)
	}
	if got := n.Depth(); got != 0 {
		t.Errorf("Depth() = %d; want 0", got)
	}
	if got := n.ChildIndex(); got != 0 {
		t.Errorf("ChildIndex() = %d; want 0", got)
	}
	if got := n.ChildCount(); got != 0 {
		t.Errorf("ChildCount() = %d; want 0", got)
	}
	for i := 0; i < n.Arity(); i++ {
		if c, err := n.Child(i); err != nil || c != nil {
			t.Errorf("Child(%d) = %v, %v; want nil, nil", i, c, err)
		}
	}
}

// TestSetValue verifies payload replacement.
func TestSetValue(t *testing.T) {
	n := mustNew(t, 2, "before")
	n.SetValue("after")
	if got := n.Value(); got != "after" {
		t.Errorf("Value() = %q; want %q", got, "after")
	}
}

// TestChild_OutOfRange verifies slot bound checking on reads.
func TestChild_OutOfRange(t *testing.T) {
	n := mustNew(t, 3, 0)
	for _, idx := range []int{-1, 3, 100} {
		if _, err := n.Child(idx); !errors.Is(err, core.ErrSlotOutOfRange) {
			t.Errorf("Child(%d): want ErrSlotOutOfRange, got %v", idx, err)
		}
	}
}

// TestAttach_FixesDepthAndIndex checks the attach-time bookkeeping.
func TestAttach_FixesDepthAndIndex(t *testing.T) {
	root := mustNew(t, 3, "R")
	a := mustNew(t, 3, "A")
	b := mustNew(t, 3, "B")
	mustAttach(t, root, 0, a)
	mustAttach(t, root, 1, b)

	if got := root.ChildCount(); got != 2 {
		t.Fatalf("ChildCount() = %d; want 2", got)
	}
	for i, child := range []*core.Node[string]{a, b} {
		if got := child.Depth(); got != 1 {
			t.Errorf("child %d: Depth() = %d; want 1", i, got)
		}
		if got := child.ChildIndex(); got != uint16(i) {
			t.Errorf("child %d: ChildIndex() = %d; want %d", i, got, i)
		}
		if c, err := root.Child(i); err != nil || c != child {
			t.Errorf("Child(%d) = %v, %v; want the attached child", i, c, err)
		}
	}
}

// TestAttach_Errors verifies every rejection leaves the tree unmodified.
func TestAttach_Errors(t *testing.T) {
	tests := []struct {
		name    string
		attach  func(parent *core.Node[int]) error
		wantErr error
	}{
		{
			name:    "nil child",
			attach:  func(p *core.Node[int]) error { return p.Attach(0, nil) },
			wantErr: core.ErrNilNode,
		},
		{
			name: "index beyond arity",
			attach: func(p *core.Node[int]) error {
				return p.Attach(p.Arity(), mustNew(t, p.Arity(), 1))
			},
			wantErr: core.ErrSlotOutOfRange,
		},
		{
			name:    "negative index",
			attach:  func(p *core.Node[int]) error { return p.Attach(-1, mustNew(t, p.Arity(), 1)) },
			wantErr: core.ErrSlotOutOfRange,
		},
		{
			name:    "gap in slot order",
			attach:  func(p *core.Node[int]) error { return p.Attach(1, mustNew(t, p.Arity(), 1)) },
			wantErr: core.ErrSlotOrder,
		},
		{
			name:    "arity mismatch",
			attach:  func(p *core.Node[int]) error { return p.Attach(0, mustNew(t, p.Arity()+1, 1)) },
			wantErr: core.ErrArityMismatch,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			parent := mustNew(t, 2, 0)
			if err := tc.attach(parent); !errors.Is(err, tc.wantErr) {
				t.Fatalf("want %v, got %v", tc.wantErr, err)
			}
			if got := parent.ChildCount(); got != 0 {
				t.Errorf("tree modified on error: ChildCount() = %d; want 0", got)
			}
		})
	}
}

// TestAttach_FullNode covers the capacity error once all slots are taken.
func TestAttach_FullNode(t *testing.T) {
	parent := mustNew(t, 2, 0)
	mustAttach(t, parent, 0, mustNew(t, 2, 1))
	mustAttach(t, parent, 1, mustNew(t, 2, 2))

	if err := parent.Attach(2, mustNew(t, 2, 3)); !errors.Is(err, core.ErrSlotOutOfRange) {
		t.Fatalf("attach beyond arity: want ErrSlotOutOfRange, got %v", err)
	}
	if got := parent.ChildCount(); got != 2 {
		t.Errorf("tree modified on error: ChildCount() = %d; want 2", got)
	}
}

// TestAttach_DepthOverflow verifies the uint16 depth ceiling is an
// explicit error, not a silent wrap.
func TestAttach_DepthOverflow(t *testing.T) {
	cur := mustNew(t, 1, 0)
	for i := 1; i <= core.MaxArity; i++ {
		next := mustNew(t, 1, i)
		mustAttach(t, cur, 0, next)
		cur = next
	}

	// cur now sits at the maximum depth; one more level must fail.
	if err := cur.Attach(0, mustNew(t, 1, -1)); !errors.Is(err, core.ErrDepthOverflow) {
		t.Fatalf("want ErrDepthOverflow, got %v", err)
	}
	if got := cur.ChildCount(); got != 0 {
		t.Errorf("tree modified on error: ChildCount() = %d; want 0", got)
	}
}

// TestAttach_RenumbersSubtree checks depth renumbering under
// bottom-up assembly: descendants of an attached child keep the
// parent+1 depth invariant.
func TestAttach_RenumbersSubtree(t *testing.T) {
	b := mustNew(t, 2, "B")
	c := mustNew(t, 2, "C")
	mustAttach(t, b, 0, c)

	root := mustNew(t, 2, "R")
	mustAttach(t, root, 0, b)

	if got := b.Depth(); got != 1 {
		t.Errorf("b.Depth() = %d; want 1", got)
	}
	if got := c.Depth(); got != 2 {
		t.Errorf("c.Depth() = %d; want 2", got)
	}
}
