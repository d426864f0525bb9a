package suites

import (
	"fmt"
	"math/bits"
	"math/rand"
	"slices"

	"github.com/katalvlaran/rangefold/internal/querytest"
	"github.com/katalvlaran/rangefold/wavelet"
)

// Wavelet queries a static wavelet matrix against linear scans.
var Wavelet = Suite{Name: "wavelet", Factory: waveletSession}

func waveletSession(env querytest.Env) ([]querytest.Command, error) {
	width := max(bits.Len(uint(env.ValueLimit-1)), 1)
	src := make([]uint32, querytest.Len(env.Rng, 1, env.MaxLen))
	for i := range src {
		src[i] = uint32(env.Rng.Intn(env.ValueLimit))
	}
	m, err := wavelet.New(src, width)
	if err != nil {
		return nil, err
	}
	n := len(src)
	value := func(rng *rand.Rand) uint32 { return uint32(rng.Intn(env.ValueLimit + 1)) }

	return []querytest.Command{
		{Name: "access", Weight: 1, Run: func(rng *rand.Rand) error {
			i := querytest.Index(rng, n)

			return querytest.Expect(fmt.Sprintf("Access(%d)", i), m.Access(i), src[i])
		}},
		{Name: "rank", Weight: 2, Run: func(rng *rand.Rand) error {
			v, end := value(rng), querytest.Index(rng, n+1)
			want := 0
			for _, x := range src[:end] {
				if x == v {
					want++
				}
			}

			return querytest.Expect(fmt.Sprintf("Rank(%d,%d)", v, end), m.Rank(v, end), want)
		}},
		{Name: "select", Weight: 2, Run: func(rng *rand.Rand) error {
			v, k := value(rng), querytest.Index(rng, n)
			want, found, seen := 0, false, 0
			for i, x := range src {
				if x != v {
					continue
				}
				if seen == k {
					want, found = i, true

					break
				}
				seen++
			}
			got, ok := m.Select(v, k)
			if !found {
				return querytest.Expect(fmt.Sprintf("Select(%d) found", v), ok, false)
			}

			return querytest.Expect(fmt.Sprintf("Select(%d)", v), got, want)
		}},
		{Name: "quantile", Weight: 2, Run: func(rng *rand.Rand) error {
			l, r := querytest.Range(rng, n)
			if l == r {
				return nil
			}
			k := rng.Intn(r - l)
			sorted := slices.Clone(src[l:r])
			slices.Sort(sorted)

			return querytest.Expect(fmt.Sprintf("Quantile(%d,%d,%d)", l, r, k), m.Quantile(l, r, k), sorted[k])
		}},
		{Name: "range_freq", Weight: 2, Run: func(rng *rand.Rand) error {
			l, r := querytest.Range(rng, n)
			lo, hi := value(rng), value(rng)
			want := 0
			for _, x := range src[l:r] {
				if lo <= x && x < hi {
					want++
				}
			}

			return querytest.Expect(fmt.Sprintf("RangeFreq(%d,%d,%d,%d)", l, r, lo, hi), m.RangeFreq(l, r, lo, hi), want)
		}},
	}, nil
}
