package doubling_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rangefold/assoc"
	"github.com/katalvlaran/rangefold/doubling"
)

// BenchmarkJump_1e5 jumps far on a random functional graph of 100 000 nodes.
func BenchmarkJump_1e5(b *testing.B) {
	const n = 100_000
	rng := rand.New(rand.NewSource(42))
	steps := make([]doubling.Step[int64], n)
	for i := range steps {
		steps[i] = doubling.Step[int64]{Next: rng.Intn(n), Value: int64(rng.Intn(100))}
	}
	tbl, err := doubling.New[int64](assoc.Sum[int64]{}, steps)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tbl.Jump(i%n, uint64(i)*7919%n, 0)
	}
}
