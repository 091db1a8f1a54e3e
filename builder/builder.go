package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/treelab/ntree/core"
)

// Sentinel errors for the generator.
var (
	// ErrTooFewNodes indicates a node budget below 1.
	ErrTooFewNodes = errors.New("builder: max node count must be at least 1")

	// ErrNilValueFn indicates a nil payload generator.
	ErrNilValueFn = errors.New("builder: value function is nil")
)

// maxRandomValue bounds RandomInt payloads: values lie in [0, 255).
const maxRandomValue = 255

// Random generates a tree of the given arity containing at most
// maxNodes nodes, drawing each payload from valueFn.
//
// Generation drains a queue of core.Slot values exactly the way
// codec.Decode does: each step builds one node into the oldest slot,
// then announces branchFn(rng) future children (clamped to the arity)
// as new pending slots. When the node budget runs out, remaining
// slots simply stay unfilled — child counts always reflect actually
// attached children, mirroring the decoder's best-effort policy.
//
// The caller owns the returned root until Destroy.
//
// Returns ErrTooFewNodes for a budget below 1, ErrNilValueFn for a nil
// payload generator, or core.ErrArity for an arity outside the domain.
//
// Complexity: O(maxNodes) time, O(pending slots) memory.
func Random[T any](arity, maxNodes int, valueFn func(*rand.Rand) T, opts ...Option) (*core.Node[T], error) {
	if maxNodes < 1 {
		return nil, fmt.Errorf("Random: maxNodes=%d: %w", maxNodes, ErrTooFewNodes)
	}
	if valueFn == nil {
		return nil, fmt.Errorf("Random: %w", ErrNilValueFn)
	}

	cfg := newConfig(opts...)

	var root *core.Node[T]

	// Seed with the root slot: no parent, child index 0.
	pending := []core.Slot[T]{{}}
	built := 0

	for len(pending) > 0 {
		slot := pending[0]
		pending = pending[1:]

		leaf, err := core.New(arity, valueFn(cfg.rng))
		if err != nil {
			return nil, fmt.Errorf("Random: %w", err)
		}
		if err = slot.Fill(leaf); err != nil {
			return nil, fmt.Errorf("Random: %w", err)
		}
		if slot.Parent == nil {
			root = leaf
		}

		built++
		if built >= maxNodes {
			break
		}

		branches := cfg.branchFn(cfg.rng)
		if branches < 0 {
			branches = 0
		}
		if branches > arity {
			branches = arity
		}

		pending = append(pending, core.Slots(leaf, branches)...)
	}

	return root, nil
}

// RandomInt generates an int-valued tree with payloads drawn uniformly
// from [0, maxRandomValue).
func RandomInt(arity, maxNodes int, opts ...Option) (*core.Node[int], error) {
	return Random(arity, maxNodes, func(rng *rand.Rand) int {
		return rng.Intn(maxRandomValue)
	}, opts...)
}
