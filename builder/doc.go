// Package builder generates random fixed-arity trees deterministically.
//
// What
//
//   - Random: builds a tree of up to maxNodes nodes by draining a
//     queue of generation slots — the same protocol codec.Decode uses,
//     with the branch distribution playing the role of the announced
//     child counts.
//   - RandomInt: convenience wrapper producing int payloads in
//     [0, 255).
//
// Determinism
//
//	There is no hidden global seed and no wall-clock reseeding.
//	Seeding is explicit through WithSeed or WithRand; the default is a
//	fixed seed, so two calls with equal arguments yield identical
//	trees. Same inputs, same options ⇒ same tree, byte for byte under
//	codec.Encode.
//
// Option contract
//
//	Options are functional. Option constructors validate and panic on
//	meaningless inputs (nil RNG, nil functions) to surface programmer
//	error early; the generator itself never panics at runtime and
//	returns only sentinel errors.
//
// Complexity
//
//	O(maxNodes) time and O(pending slots) memory.
package builder
