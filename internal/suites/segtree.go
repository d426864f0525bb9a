package suites

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/rangefold/assoc"
	"github.com/katalvlaran/rangefold/internal/querytest"
	"github.com/katalvlaran/rangefold/segtree"
)

// SegtreeConcat drives a 1D tree of one-letter strings under concatenation
// against a plain slice.
var SegtreeConcat = Suite{Name: "segtree-concat", Factory: segtreeConcat}

func segtreeConcat(env querytest.Env) ([]querytest.Command, error) {
	n := querytest.Len(env.Rng, 1, env.MaxLen)
	model := make([]string, n)
	for i := range model {
		model[i] = letter(env.Rng, env.ValueLimit)
	}
	st, err := segtree.New[string](assoc.Concat{}, model)
	if err != nil {
		return nil, err
	}

	return []querytest.Command{
		{Name: "set", Weight: 1, Run: func(rng *rand.Rand) error {
			i, v := querytest.Index(rng, n), letter(rng, env.ValueLimit)
			model[i] = v
			st.Set(i, v)

			return nil
		}},
		{Name: "get", Weight: 1, Run: func(rng *rand.Rand) error {
			i := querytest.Index(rng, n)

			return querytest.Expect(fmt.Sprintf("Get(%d)", i), st.Get(i), model[i])
		}},
		{Name: "fold", Weight: 3, Run: func(rng *rand.Rand) error {
			s, e := querytest.Range(rng, n)
			got, ok := st.Fold(s, e)
			want := strings.Join(model[s:e], "")
			if err := querytest.Expect(fmt.Sprintf("Fold(%d,%d) ok", s, e), ok, s < e); err != nil {
				return err
			}

			return querytest.Expect(fmt.Sprintf("Fold(%d,%d)", s, e), got, want)
		}},
	}, nil
}

// inversions summarizes a run of small values: per-value counts and the
// number of inverted pairs inside the run. Merging is associative but not
// commutative.
type inversions struct {
	counts []int
	inv    int
}

type inversionOp struct{}

func (inversionOp) Op(lhs, rhs inversions) inversions {
	out := inversions{counts: make([]int, len(lhs.counts)), inv: lhs.inv + rhs.inv}
	greater := 0 // lhs elements greater than the current rhs value
	for v := len(lhs.counts) - 1; v >= 0; v-- {
		out.inv += greater * rhs.counts[v]
		greater += lhs.counts[v]
	}
	for v := range out.counts {
		out.counts[v] = lhs.counts[v] + rhs.counts[v]
	}

	return out
}

func singleton(v, limit int) inversions {
	c := make([]int, limit)
	c[v] = 1

	return inversions{counts: c}
}

// SegtreeInversion folds inversion summaries and checks the inversion count
// of every queried range against a quadratic scan.
var SegtreeInversion = Suite{Name: "segtree-inversion", Factory: segtreeInversion}

func segtreeInversion(env querytest.Env) ([]querytest.Command, error) {
	limit := env.ValueLimit
	n := querytest.Len(env.Rng, 1, env.MaxLen)
	model := make([]int, n)
	leaves := make([]inversions, n)
	for i := range model {
		model[i] = env.Rng.Intn(limit)
		leaves[i] = singleton(model[i], limit)
	}
	st, err := segtree.New[inversions](inversionOp{}, leaves)
	if err != nil {
		return nil, err
	}

	return []querytest.Command{
		{Name: "set", Weight: 1, Run: func(rng *rand.Rand) error {
			i, v := querytest.Index(rng, n), rng.Intn(limit)
			model[i] = v
			st.Set(i, singleton(v, limit))

			return nil
		}},
		{Name: "fold", Weight: 2, Run: func(rng *rand.Rand) error {
			s, e := querytest.Range(rng, n)
			got, ok := st.Fold(s, e)
			if !ok {
				return querytest.Expect(fmt.Sprintf("Fold(%d,%d) ok", s, e), ok, s < e)
			}
			want := 0
			for a := s; a < e; a++ {
				for b := a + 1; b < e; b++ {
					if model[a] > model[b] {
						want++
					}
				}
			}

			return querytest.Expect(fmt.Sprintf("inversions[%d,%d)", s, e), got.inv, want)
		}},
	}, nil
}
