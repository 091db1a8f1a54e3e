// Package ntree is a small toolkit for fixed-arity trees: a generic
// node container, a breadth-first traversal engine, and a line-oriented
// text codec that round-trips tree shape and values.
//
// 🌳 What is ntree?
//
//	A compact, dependency-light library that brings together:
//		• Core primitives: a generic Node[T] owning up to N children,
//		  with depth / child-index / child-count bookkeeping
//		• Traversal: a single queue-based breadth-first Walk with an
//		  early-stop callback, backing every other operation
//		• Search: MaxBranchingSubtree, the widest node of a tree
//		• Codec: Encode/Decode through a plain "<count>:<value>" line
//		  format, plus pretty and depth-truncated display modes
//		• Builder: deterministic random tree generation from an
//		  explicit seed or *rand.Rand
//
// ✨ Why choose ntree?
//
//   - Minimal API, clear naming, sentinel errors with errors.Is support
//   - Iterative everywhere – no recursion, safe for arbitrarily deep trees
//   - Deterministic – generation and traversal order are fully reproducible
//
// Everything is organized under three subpackages and a demo binary:
//
//	core/      — Node, Walk, Slot, Destroy, ByteSize, MaxBranchingSubtree
//	codec/     — Encode/Decode for the line format + display options
//	builder/   — seeded random tree generation
//	cmd/ntree  — generate-or-load demo with per-stage profiling
//
// Quick ASCII example (arity 2):
//
//	    A
//	   / \
//	  B   C
//
//	root, _ := core.New(2, "A")
//	b, _ := core.New(2, "B")
//	c, _ := core.New(2, "C")
//	_ = root.Attach(0, b)
//	_ = root.Attach(1, c)
//	_ = codec.Encode(os.Stdout, root) // "2:A\n0:B\n0:C\n"
//
//	go get github.com/treelab/ntree
package ntree
