package fenwick_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rangefold/fenwick"
)

const benchN = 1 << 20

// newBenchTree returns a tree over benchN seeded values.
func newBenchTree() *fenwick.Tree[uint32] {
	rng := rand.New(rand.NewSource(42))
	src := make([]uint32, benchN)
	for i := range src {
		src[i] = uint32(rng.Intn(100))
	}

	return fenwick.FromSlice(src)
}

// BenchmarkAdd measures point additions.
func BenchmarkAdd(b *testing.B) {
	ft := newBenchTree()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ft.Add(i&(benchN-1), 1)
	}
}

// BenchmarkPrefixSum measures prefix queries.
func BenchmarkPrefixSum(b *testing.B) {
	ft := newBenchTree()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ft.PrefixSum(i & (benchN - 1))
	}
}

// BenchmarkUpperBound measures the binary descent.
func BenchmarkUpperBound(b *testing.B) {
	ft := newBenchTree()
	total := ft.PrefixSum(benchN)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ft.UpperBound(uint32(i) % total)
	}
}

// BenchmarkPush measures appends from empty.
func BenchmarkPush(b *testing.B) {
	ft := fenwick.New[uint32]()
	for i := 0; i < b.N; i++ {
		ft.Push(uint32(i))
	}
}
