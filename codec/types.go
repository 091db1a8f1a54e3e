// Tunable options and error definitions for tree encoding/decoding.
package codec

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for codec operations.
var (
	// ErrNilRoot is returned when Encode is given a nil tree.
	ErrNilRoot = errors.New("codec: root is nil")

	// ErrNilParse is returned when Decode is given a nil value parser.
	ErrNilParse = errors.New("codec: parse function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("codec: invalid option supplied")

	// ErrParse is returned when a line's count or value text cannot be
	// converted.
	ErrParse = errors.New("codec: malformed line field")

	// ErrCount is returned when a parsed child count falls outside
	// [0, arity].
	ErrCount = errors.New("codec: child count out of range")
)

// Option configures Encode behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded internally and
// surfaced as ErrOptionViolation when Encode is invoked.
type Option func(*EncodeOptions)

// EncodeOptions holds parameters that customize Encode output.
type EncodeOptions struct {
	// MaxDepth, if > 0, truncates the dump at this depth: the first
	// visited node deeper than MaxDepth emits a "..." line and stops
	// the entire encoding. 0 disables the limit.
	MaxDepth int

	// Pretty enables the indented display mode: per-line tab prefix
	// and a "<depth>: " label. Pretty output is not decodable.
	Pretty bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns EncodeOptions with the plain, decodable
// encoding: no depth limit, no indentation.
func DefaultOptions() EncodeOptions {
	return EncodeOptions{
		MaxDepth: 0,
		Pretty:   false,
		err:      nil,
	}
}

// WithMaxDepth truncates the dump below depth d.
//
//	d > 0: nodes deeper than d are replaced by one "..." line, and the
//	       encoding stops there — the whole output, not just one
//	       branch, since the walk has a single stop signal
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
//
// Truncated output is display-only and not decodable.
func WithMaxDepth(d int) Option {
	return func(o *EncodeOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithPretty enables the indented, labeled display mode.
// Pretty output is display-only and not decodable.
func WithPretty() Option {
	return func(o *EncodeOptions) {
		o.Pretty = true
	}
}

// ParseFunc converts a value's textual form back into T.
// Decode applies it to the text after the first ':' of each line.
type ParseFunc[T any] func(s string) (T, error)

// ParseInt is a ready-made ParseFunc for int-valued trees.
func ParseInt(s string) (int, error) { return strconv.Atoi(s) }

// ParseString is a ready-made ParseFunc for string-valued trees.
func ParseString(s string) (string, error) { return s, nil }
