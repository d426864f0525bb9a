package suites

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/rangefold/fenwick"
	"github.com/katalvlaran/rangefold/fenwick2d"
	"github.com/katalvlaran/rangefold/internal/querytest"
)

// Fenwick drives a uint32 Fenwick tree with push/add/prefix/upper-bound
// against a plain slice.
var Fenwick = Suite{Name: "fenwick", Factory: fenwickSession}

func fenwickSession(env querytest.Env) ([]querytest.Command, error) {
	value := func(rng *rand.Rand) uint32 { return uint32(rng.Intn(env.ValueLimit)) }
	model := make([]uint32, querytest.Len(env.Rng, 0, env.MaxLen))
	for i := range model {
		model[i] = value(env.Rng)
	}
	ft := fenwick.FromSlice(model)
	prefix := func(i int) uint32 {
		var s uint32
		for _, v := range model[:i] {
			s += v
		}

		return s
	}

	return []querytest.Command{
		{Name: "push", Weight: 1, Run: func(rng *rand.Rand) error {
			x := value(rng)
			model = append(model, x)
			ft.Push(x)

			return nil
		}},
		{Name: "add", Weight: 2, Run: func(rng *rand.Rand) error {
			if len(model) == 0 {
				return nil
			}
			i, x := querytest.Index(rng, len(model)), value(rng)
			model[i] += x
			ft.Add(i, x)

			return nil
		}},
		{Name: "prefix_sum", Weight: 2, Run: func(rng *rand.Rand) error {
			i := querytest.Index(rng, len(model)+1)

			return querytest.Expect(fmt.Sprintf("PrefixSum(%d)", i), ft.PrefixSum(i), prefix(i))
		}},
		{Name: "range_sum", Weight: 1, Run: func(rng *rand.Rand) error {
			l, r := querytest.Range(rng, len(model))

			return querytest.Expect(fmt.Sprintf("RangeSum(%d,%d)", l, r), ft.RangeSum(l, r), prefix(r)-prefix(l))
		}},
		{Name: "upper_bound", Weight: 2, Run: func(rng *rand.Rand) error {
			x := uint32(rng.Intn(env.ValueLimit * (len(model) + 1)))
			want := 0
			for i := 1; i <= len(model); i++ {
				if prefix(i) <= x {
					want = i
				}
			}

			return querytest.Expect(fmt.Sprintf("UpperBound(%d)", x), ft.UpperBound(x), want)
		}},
	}, nil
}

// Fenwick2D drives a uint32 2D Fenwick tree against a plain grid.
var Fenwick2D = Suite{Name: "fenwick2d", Factory: fenwick2dSession}

func fenwick2dSession(env querytest.Env) ([]querytest.Command, error) {
	h := querytest.Len(env.Rng, 1, env.MaxLen)
	w := querytest.Len(env.Rng, 1, env.MaxLen)
	grid := make([][]uint32, h)
	for i := range grid {
		grid[i] = make([]uint32, w)
		for j := range grid[i] {
			grid[i][j] = uint32(env.Rng.Intn(env.ValueLimit))
		}
	}
	ft, err := fenwick2d.FromSlice(grid)
	if err != nil {
		return nil, err
	}
	rect := func(top, bottom, left, right int) uint32 {
		var s uint32
		for i := top; i < bottom; i++ {
			for j := left; j < right; j++ {
				s += grid[i][j]
			}
		}

		return s
	}

	return []querytest.Command{
		{Name: "add", Weight: 2, Run: func(rng *rand.Rand) error {
			i, j, x := querytest.Index(rng, h), querytest.Index(rng, w), uint32(rng.Intn(env.ValueLimit))
			grid[i][j] += x
			ft.Add(i, j, x)

			return nil
		}},
		{Name: "double_prefix_sum", Weight: 2, Run: func(rng *rand.Rand) error {
			i, j := querytest.Index(rng, h+1), querytest.Index(rng, w+1)

			return querytest.Expect(fmt.Sprintf("DoublePrefixSum(%d,%d)", i, j), ft.DoublePrefixSum(i, j), rect(0, i, 0, j))
		}},
		{Name: "rect_sum", Weight: 1, Run: func(rng *rand.Rand) error {
			t, b := querytest.Range(rng, h)
			l, r := querytest.Range(rng, w)

			return querytest.Expect(fmt.Sprintf("RectSum(%d,%d,%d,%d)", t, b, l, r), ft.RectSum(t, b, l, r), rect(t, b, l, r))
		}},
		{Name: "horizontal_upper_bound", Weight: 2, Run: func(rng *rand.Rand) error {
			row := querytest.Index(rng, h+1)
			x := uint32(rng.Intn(env.ValueLimit * (row*w + 1)))
			want := 0
			for j := 1; j <= w; j++ {
				if rect(0, row, 0, j) <= x {
					want = j
				}
			}

			return querytest.Expect(fmt.Sprintf("HorizontalUpperBound(%d,%d)", row, x), ft.HorizontalUpperBound(row, x), want)
		}},
	}, nil
}
