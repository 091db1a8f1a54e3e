package codec

import (
	"bufio"
	"fmt"
	"io"

	"github.com/treelab/ntree/core"
)

const (
	// maxPrettyTabs caps the depth contribution to the tab prefix.
	maxPrettyTabs = 32

	// truncationMark replaces output once the depth limit is hit.
	truncationMark = "..."
)

// Encode walks the tree breadth-first and writes one line per node to
// w: "<childCount>:<value>\n", with the value rendered by fmt %v.
// Options select the pretty and depth-truncated display variants; see
// the package documentation for why those variants do not round-trip.
//
// Returns ErrNilRoot for a nil tree, ErrOptionViolation for invalid
// options, or the underlying write error wrapped.
//
// Complexity: O(n) over the emitted prefix of the tree.
func Encode[T any](w io.Writer, root *core.Node[T], opts ...Option) error {
	if root == nil {
		return ErrNilRoot
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}

	bw := bufio.NewWriter(w)

	var werr error
	root.Walk(true, func(leaf *core.Node[T]) bool {
		// Depth truncation replaces this node's line with the marker
		// and stops the whole walk; there is no per-branch prune.
		if o.MaxDepth > 0 && int(leaf.Depth()) > o.MaxDepth {
			_, werr = bw.WriteString(truncationMark + "\n")
			return true
		}

		if o.Pretty {
			if werr = writePrettyPrefix(bw, leaf.Depth(), leaf.ChildIndex()); werr != nil {
				return true
			}
		}

		_, werr = fmt.Fprintf(bw, "%d:%v\n", leaf.ChildCount(), leaf.Value())

		return werr != nil
	})
	if werr != nil {
		return fmt.Errorf("codec: encode: %w", werr)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("codec: encode: %w", err)
	}

	return nil
}

// writePrettyPrefix emits the display indentation for one line:
// min(depth, 32)+childIndex tabs, then a "<depth>: " label. Deeper
// siblings sit slightly further right so they are easier to tell apart.
func writePrettyPrefix(bw *bufio.Writer, depth, childIndex uint16) error {
	tabs := int(depth)
	if tabs > maxPrettyTabs {
		tabs = maxPrettyTabs
	}
	tabs += int(childIndex)

	for t := 0; t < tabs; t++ {
		if err := bw.WriteByte('\t'); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(bw, "%d: ", depth)

	return err
}
