// Package codec encodes and decodes fixed-arity trees through a
// line-oriented text format.
//
// Format
//
//	One line per node, in breadth-first order starting at the root:
//
//	    <childCount>:<value>\n
//
//	childCount is a non-negative integer and value is the payload's
//	natural textual form (fmt %v on encode, the caller's ParseFunc on
//	decode). Blank lines and lines without a ':' are ignored by the
//	reader — they are skipped, not treated as record separators.
//
// Display modes
//
//	Two orthogonal Encode options produce human-oriented variants:
//
//	  - WithPretty prefixes each line with min(depth, 32)+childIndex
//	    tab characters and a "<depth>: " label.
//	  - WithMaxDepth(d) truncates the dump: the first visited node
//	    deeper than d emits a literal "..." line and stops the entire
//	    encoding (the traversal has a single global stop signal, so
//	    truncation ends the whole output, not just the branch).
//
//	Both variants are display-only. The extra label and the marker
//	line are not recognized by Decode, so pretty or depth-truncated
//	output is NOT valid deserialization input; only the plain
//	encoding round-trips.
//
// Decoding policy
//
//   - An empty stream yields a nil root and no error; callers must
//     check before use.
//   - A stream that ends while child slots are still pending yields
//     the partially populated tree with no error (best-effort, same
//     policy as the generator when it hits its node budget).
//   - Malformed count or value text is a hard error (ErrParse,
//     ErrCount); there is no repair pass and no rollback of the
//     half-built tree.
//
// Round-trip law
//
//	For any tree whose values survive their own textual form,
//	Decode(Encode(tree)) reproduces the tree's shape: identical child
//	counts and breadth-first value sequence.
package codec
