// Package suites holds the randomized differential sessions for every
// structure: each Suite pairs a structure with a brute-force model and a
// weighted command mix for querytest.Run. Package tests and the
// rangestress command share them.
package suites

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/rangefold/internal/querytest"
)

// Suite is a named differential session.
type Suite struct {
	Name    string
	Factory querytest.Factory
}

// All returns every suite sorted by name.
func All() []Suite {
	out := []Suite{
		SegtreeConcat,
		SegtreeInversion,
		Segtree2DConcat,
		Segtree2DSum,
		Fenwick,
		Fenwick2D,
		Wavelet,
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// Lookup finds a suite by name.
func Lookup(name string) (Suite, bool) {
	for _, s := range All() {
		if s.Name == name {
			return s, true
		}
	}

	return Suite{}, false
}

// Names lists the suite names in order.
func Names() []string {
	all := All()
	out := make([]string, len(all))
	for i, s := range all {
		out[i] = s.Name
	}

	return out
}

// letter draws a one-letter string from the first limit letters.
func letter(rng *rand.Rand, limit int) string {
	return string(rune('a' + rng.Intn(min(limit, 26))))
}
