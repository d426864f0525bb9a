package suites

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/rangefold/assoc"
	"github.com/katalvlaran/rangefold/internal/querytest"
	"github.com/katalvlaran/rangefold/segtree2d"
)

// Segtree2DConcat drives a 2D tree of one-letter strings and checks every
// fold against the documented cell order.
var Segtree2DConcat = Suite{Name: "segtree2d-concat", Factory: segtree2dConcat}

func segtree2dConcat(env querytest.Env) ([]querytest.Command, error) {
	h := querytest.Len(env.Rng, 1, env.MaxLen)
	w := querytest.Len(env.Rng, 1, env.MaxLen)
	grid := make([][]string, h)
	for i := range grid {
		grid[i] = make([]string, w)
		for j := range grid[i] {
			grid[i][j] = letter(env.Rng, env.ValueLimit)
		}
	}
	tr, err := segtree2d.New[string](assoc.Concat{}, grid)
	if err != nil {
		return nil, err
	}

	return []querytest.Command{
		{Name: "update", Weight: 1, Run: func(rng *rand.Rand) error {
			i, j, v := querytest.Index(rng, h), querytest.Index(rng, w), letter(rng, env.ValueLimit)
			grid[i][j] = v
			tr.Update(i, j, v)

			return nil
		}},
		{Name: "fold", Weight: 3, Run: func(rng *rand.Rand) error {
			rs, re := querytest.Range(rng, h)
			cs, ce := querytest.Range(rng, w)
			var sb strings.Builder
			for _, c := range segtree2d.CanonicalOrder(h, w, rs, re, cs, ce) {
				sb.WriteString(grid[c.Row][c.Col])
			}
			got, _ := tr.Fold(rs, re, cs, ce)

			return querytest.Expect(fmt.Sprintf("Fold(%d,%d,%d,%d)", rs, re, cs, ce), got, sb.String())
		}},
		{Name: "to_grid", Weight: 1, Run: func(*rand.Rand) error {
			return querytest.Expect("ToGrid", tr.ToGrid(), grid)
		}},
	}, nil
}

// Segtree2DSum drives a 2D sum tree against brute-force rectangle sums.
var Segtree2DSum = Suite{Name: "segtree2d-sum", Factory: segtree2dSum}

func segtree2dSum(env querytest.Env) ([]querytest.Command, error) {
	h := querytest.Len(env.Rng, 1, env.MaxLen)
	w := querytest.Len(env.Rng, 1, env.MaxLen)
	grid := make([][]int, h)
	for i := range grid {
		grid[i] = make([]int, w)
		for j := range grid[i] {
			grid[i][j] = env.Rng.Intn(env.ValueLimit)
		}
	}
	tr, err := segtree2d.New[int](assoc.Sum[int]{}, grid)
	if err != nil {
		return nil, err
	}

	return []querytest.Command{
		{Name: "update", Weight: 1, Run: func(rng *rand.Rand) error {
			i, j, v := querytest.Index(rng, h), querytest.Index(rng, w), rng.Intn(env.ValueLimit)
			grid[i][j] = v
			tr.Update(i, j, v)

			return nil
		}},
		{Name: "fold", Weight: 3, Run: func(rng *rand.Rand) error {
			rs, re := querytest.Range(rng, h)
			cs, ce := querytest.Range(rng, w)
			want := 0
			for i := rs; i < re; i++ {
				for j := cs; j < ce; j++ {
					want += grid[i][j]
				}
			}
			got, ok := tr.Fold(rs, re, cs, ce)
			if err := querytest.Expect("Fold ok", ok, rs < re && cs < ce); err != nil {
				return err
			}

			return querytest.Expect(fmt.Sprintf("Fold(%d,%d,%d,%d)", rs, re, cs, ce), got, want)
		}},
	}, nil
}
