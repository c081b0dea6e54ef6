package abstract

import "math/rand"

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 1

// Stream identifiers for derived RNGs. The tree always uses the seed itself.
const (
	streamSymmetry uint64 = 1
)

// resolveSeed applies the zero-seed policy.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return defaultSeed
	}
	return seed
}

// rngFromSeed returns a deterministic *rand.Rand for an already resolved seed.
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed with
// a SplitMix64 finalizer, so nearby seeds map to unrelated streams.
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG returns the RNG for a named substream of seed. Unlike drawing from
// the main stream, it leaves the main stream untouched.
// Complexity: O(1).
func deriveRNG(seed int64, stream uint64) *rand.Rand {
	return rngFromSeed(deriveSeed(seed, stream))
}
