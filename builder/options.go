// Functional options for the tree generator.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     the generator itself never panics and returns sentinel errors.
//   - Determinism is explicit: seeding is done via WithSeed or
//     WithRand. No hidden globals; everything flows through config.
package builder

import (
	"math/rand"
)

// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// Default branch distribution: 2 + Intn(4) children per node, clamped
// to the arity by the generator.
const (
	defaultBranchMin    = 2
	defaultBranchSpread = 4
)

// Option customizes the generator by mutating a config instance
// before generation begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config holds the resolved generation parameters.
type config struct {
	// rng drives every random draw; never nil after resolution.
	rng *rand.Rand

	// branchFn yields the announced child count for each new node.
	// Results are clamped to [0, arity] by the generator.
	branchFn func(*rand.Rand) int
}

// newConfig resolves options over deterministic defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		rng:      rand.New(rand.NewSource(defaultSeed)),
		branchFn: defaultBranch,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// defaultBranch draws the reference branch distribution: 2..5 children.
func defaultBranch(rng *rand.Rand) int {
	return defaultBranchMin + rng.Intn(defaultBranchSpread)
}

// WithSeed creates a new *rand.Rand with the given seed.
// Policy: seed==0 ⇒ use the fixed default seed; otherwise use the
// provided seed verbatim. Use this in tests to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) Option {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return func(c *config) {
		// Seeded source → reproducible draws.
		c.rng = rand.New(rand.NewSource(s))
	}
}

// WithRand provides an explicit RNG for generation.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithBranchFn overrides the per-node branch-count generator. The
// returned count is clamped to [0, arity] by the generator.
// Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithBranchFn(fn func(*rand.Rand) int) Option {
	if fn == nil {
		// Fail fast: branch policy must be explicit if customized.
		panic("builder: WithBranchFn(nil)")
	}
	return func(c *config) {
		c.branchFn = fn
	}
}
