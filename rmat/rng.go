// Package rmat - RNG policy for the generator.
//
// Goals:
//   - Determinism: same seed ⇒ identical edge sets across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//   - Isolation: every Generate call owns its own *rand.Rand, so results
//     never depend on process-wide state or call ordering.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe, but streams are never shared:
//     each call constructs and consumes its own instance.
package rmat

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}
