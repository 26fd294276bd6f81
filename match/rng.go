// Package match - deterministic seed derivation for restart streams.
package match

import "math/rand"

// defaultSeed replaces a zero Options.Seed so default runs stay
// reproducible instead of drifting with the clock.
const defaultSeed int64 = 1

// deriveSeed mixes the base seed with a start index through the
// SplitMix64 finalizer, giving each restart an independent stream
// regardless of how close the inputs are.
func deriveSeed(base int64, start uint64) int64 {
	x := uint64(base) ^ (start + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// startRNG returns the generator used to perturb start k's initial
// point. Same seed and k, same stream, on every run.
func startRNG(seed int64, k int) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(deriveSeed(seed, uint64(k))))
}
