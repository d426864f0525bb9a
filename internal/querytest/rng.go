package querytest

import "math/rand"

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// with a SplitMix64 finalizer, so neighbouring instances get unrelated streams.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// instanceRNG returns the deterministic stream for instance k of a session.
func instanceRNG(seed int64, k int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(seed, uint64(k))))
}

// Index returns a uniform index in [0, n). Requires n > 0.
func Index(rng *rand.Rand, n int) int {
	return rng.Intn(n)
}

// Range returns a uniform half-open range [s, e) with 0 <= s <= e <= n,
// including empty ranges.
func Range(rng *rand.Rand, n int) (s, e int) {
	s, e = rng.Intn(n+1), rng.Intn(n+1)
	if e < s {
		s, e = e, s
	}

	return s, e
}

// Len returns a length in [lo, hi). Requires lo < hi.
func Len(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo)
}
