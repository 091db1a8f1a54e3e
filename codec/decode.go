package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/treelab/ntree/core"
)

// lineSep splits a record into its count and value fields.
const lineSep = ':'

// Decode reconstructs a tree of the given arity from the plain line
// format, parsing each value with parse. It mirrors the encoder's
// breadth-first order through a queue of pending generation slots:
// every decoded line fills the oldest slot and announces one new slot
// per declared child.
//
// Reader policy:
//
//   - Blank lines and lines without a ':' are skipped, not errors.
//   - An empty (or nil) stream yields a nil root and no error.
//   - A stream that ends with slots still pending yields the partial
//     tree with no error — a best-effort read, by contract.
//
// Hard failures: core.ErrArity for an arity outside the node domain,
// ErrNilParse for a nil parser, ErrParse for unconvertible count or
// value text, ErrCount for a count outside [0, arity], and any reader
// error wrapped.
//
// Complexity: O(lines) time, O(pending slots) memory.
func Decode[T any](r io.Reader, arity int, parse ParseFunc[T]) (*core.Node[T], error) {
	if arity < core.MinArity || arity > core.MaxArity {
		return nil, fmt.Errorf("codec: Decode: arity=%d: %w", arity, core.ErrArity)
	}
	if parse == nil {
		return nil, fmt.Errorf("codec: Decode: %w", ErrNilParse)
	}
	if r == nil {
		return nil, nil // absent input, absent root
	}

	var root *core.Node[T]

	// Seed with the root slot: no parent, child index 0.
	pending := []core.Slot[T]{{}}

	sc := bufio.NewScanner(r)
	for len(pending) > 0 && sc.Scan() {
		line := sc.Text()
		if len(line) == 0 {
			continue
		}
		cut := strings.IndexByte(line, lineSep)
		if cut < 0 {
			continue
		}

		count, err := strconv.Atoi(line[:cut])
		if err != nil {
			return nil, fmt.Errorf("%w: child count %q", ErrParse, line[:cut])
		}
		if count < 0 || count > arity {
			return nil, fmt.Errorf("%w: %d not in [0,%d]", ErrCount, count, arity)
		}

		value, err := parse(line[cut+1:])
		if err != nil {
			return nil, fmt.Errorf("%w: value %q: %v", ErrParse, line[cut+1:], err)
		}

		leaf, err := core.New(arity, value)
		if err != nil {
			return nil, fmt.Errorf("codec: Decode: %w", err)
		}

		slot := pending[0]
		pending = pending[1:]
		if err = slot.Fill(leaf); err != nil {
			return nil, fmt.Errorf("codec: Decode: %w", err)
		}
		if slot.Parent == nil {
			root = leaf
		}

		pending = append(pending, core.Slots(leaf, count)...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("codec: decode: %w", err)
	}

	return root, nil
}
