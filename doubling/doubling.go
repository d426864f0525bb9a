package doubling

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/rangefold/assoc"
)

// Step is one edge of the functional graph: node i moves to Next and
// contributes Value.
type Step[T any] struct {
	Next  int
	Value T
}

// Table is a doubling table: levels[k][i] is the result of 2^k steps from i.
type Table[T any] struct {
	op     func(lhs, rhs T) T
	levels [][]Step[T]
}

// New builds the table for steps.
//
// The number of levels is log2 of the next power of two of len(steps),
// plus one, so Find can cover at least len(steps) steps.
// Returns ErrEmptySteps or ErrStepOutOfRange on malformed input.
// Complexity: O(n log n).
func New[T any](op assoc.Semigroup[T], steps []Step[T]) (*Table[T], error) {
	n := len(steps)
	if n == 0 {
		return nil, ErrEmptySteps
	}
	for i, s := range steps {
		if s.Next < 0 || s.Next >= n {
			return nil, fmt.Errorf("%w: steps[%d].Next = %d, n = %d", ErrStepOutOfRange, i, s.Next, n)
		}
	}
	t := &Table[T]{op: op.Op}
	base := make([]Step[T], n)
	copy(base, steps)
	t.levels = append(t.levels, base)
	extra := bits.Len(uint(n - 1)) // trailing zeros of the next power of two
	for k := 0; k < extra; k++ {
		t.levels = append(t.levels, t.square(t.levels[k]))
	}

	return t, nil
}

// Len returns the number of nodes.
func (t *Table[T]) Len() int { return len(t.levels[0]) }

// Levels returns the number of levels; Find covers up to 2^Levels() steps.
func (t *Table[T]) Levels() int { return len(t.levels) }

// Jump returns the node and folded value reached after exactly k steps
// from start, starting from init.
//
// Bits of k are consumed from the lowest; once the stored levels run out,
// the next powers are built by squaring a scratch copy of the top level.
// Complexity: O(log k) when k < 2^Levels(), plus O(n) per extra bit otherwise.
func (t *Table[T]) Jump(start int, k uint64, init T) (int, T) {
	t.checkNode(start)
	pos, acc := start, init
	var cur []Step[T]
	for lv := 0; k != 0; lv, k = lv+1, k>>1 {
		switch {
		case lv < len(t.levels):
			cur = t.levels[lv]
		default:
			cur = t.square(cur)
		}
		if k&1 == 1 {
			s := cur[pos]
			pos, acc = s.Next, t.op(acc, s.Value)
		}
	}

	return pos, acc
}

// square composes level with itself, turning 2^k-step jumps into
// 2^(k+1)-step jumps.
func (t *Table[T]) square(level []Step[T]) []Step[T] {
	out := make([]Step[T], len(level))
	for i, s := range level {
		mid := level[s.Next]
		out[i] = Step[T]{Next: mid.Next, Value: t.op(s.Value, mid.Value)}
	}

	return out
}

// Find walks from start, accumulating edge values onto init, and returns
// the number of steps taken, the first position at which pred holds and
// the accumulated value there.
//
// If pred(start, init) already holds it returns (0, start, init). pred must
// be monotone along the walk (false, …, false, true, …) and turn true within
// 2^Levels() steps; otherwise the result is unspecified.
// Complexity: O(Levels()) predicate calls.
func (t *Table[T]) Find(start int, init T, pred func(pos int, acc T) bool) (dist, end int, acc T) {
	t.checkNode(start)
	if pred(start, init) {
		return 0, start, init
	}
	pos, acc := start, init
	for lv := len(t.levels) - 1; lv >= 0; lv-- {
		s := t.levels[lv][pos]
		if next := t.op(acc, s.Value); !pred(s.Next, next) {
			pos, acc = s.Next, next
			dist += 1 << uint(lv)
		}
	}
	last := t.levels[0][pos]

	return dist + 1, last.Next, t.op(acc, last.Value)
}

func (t *Table[T]) checkNode(i int) {
	if i < 0 || i >= len(t.levels[0]) {
		panic(fmt.Errorf("%w: node %d not in [0, %d)", ErrIndexOutOfRange, i, len(t.levels[0])))
	}
}
