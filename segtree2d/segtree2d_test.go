package segtree2d_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/rangefold/assoc"
	"github.com/katalvlaran/rangefold/internal/querytest"
	"github.com/katalvlaran/rangefold/internal/suites"
	"github.com/katalvlaran/rangefold/segtree2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// letters returns an h×w grid filled row-major with "a", "b", ….
func letters(h, w int) [][]string {
	grid := make([][]string, h)
	for i := range grid {
		grid[i] = make([]string, w)
		for j := range grid[i] {
			grid[i][j] = string(rune('a' + i*w + j))
		}
	}

	return grid
}

// TestNew_Validation covers empty and jagged grids.
func TestNew_Validation(t *testing.T) {
	_, err := segtree2d.New[int](assoc.Sum[int]{}, nil)
	assert.ErrorIs(t, err, segtree2d.ErrEmptyGrid)

	_, err = segtree2d.New[int](assoc.Sum[int]{}, [][]int{{}, {}})
	assert.ErrorIs(t, err, segtree2d.ErrEmptyGrid)

	_, err = segtree2d.New[int](assoc.Sum[int]{}, [][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, segtree2d.ErrJaggedGrid)

	// An empty first row followed by a longer one is jagged, not empty.
	_, err = segtree2d.New[string](assoc.Concat{}, [][]string{{}, {"a"}})
	assert.ErrorIs(t, err, segtree2d.ErrJaggedGrid)
	assert.NotErrorIs(t, err, segtree2d.ErrEmptyGrid)

	assert.Panics(t, func() { segtree2d.MustNew[int](assoc.Sum[int]{}, [][]int{}) })
}

// TestFold_FourByFive is the hand scenario over a 4×5 letter grid.
func TestFold_FourByFive(t *testing.T) {
	tr := segtree2d.MustNew[string](assoc.Concat{}, letters(4, 5))
	require.Equal(t, 4, tr.Height())
	require.Equal(t, 5, tr.Width())

	cases := []struct {
		rs, re, cs, ce int
		want           string
	}{
		{1, 2, 2, 3, "h"},
		{1, 3, 2, 4, "himn"},
		{0, 4, 0, 5, "abcdefghijklmnopqrst"},
		{1, 4, 1, 2, "glq"},
	}
	for _, tc := range cases {
		got, ok := tr.Fold(tc.rs, tc.re, tc.cs, tc.ce)
		require.True(t, ok)
		assert.Equalf(t, tc.want, got, "Fold(%d,%d,%d,%d)", tc.rs, tc.re, tc.cs, tc.ce)
	}

	_, ok := tr.Fold(2, 2, 0, 5)
	assert.False(t, ok, "empty row range")
	_, ok = tr.Fold(0, 4, 3, 3)
	assert.False(t, ok, "empty column range")
}

// TestFold_InternalRowNodes pins the order when a row node spans two rows.
func TestFold_InternalRowNodes(t *testing.T) {
	tr := segtree2d.MustNew[string](assoc.Concat{}, letters(8, 3))
	got, ok := tr.Fold(0, 8, 0, 3)
	require.True(t, ok)
	assert.Equal(t, "abc"+"def"+"gjhkil"+"mpnqor"+"stu"+"vwx", got)
}

// render concatenates the grid cells in the given order.
func render(grid [][]string, cells []segtree2d.Cell) string {
	var sb strings.Builder
	for _, c := range cells {
		sb.WriteString(grid[c.Row][c.Col])
	}

	return sb.String()
}

// TestFold_MatchesCanonicalOrder checks every rectangle of several shapes.
func TestFold_MatchesCanonicalOrder(t *testing.T) {
	shapes := [][2]int{{1, 1}, {1, 7}, {7, 1}, {3, 3}, {5, 6}, {8, 3}, {6, 5}}
	for _, s := range shapes {
		h, w := s[0], s[1]
		grid := letters(h, w)
		tr := segtree2d.MustNew[string](assoc.Concat{}, grid)
		for rs := 0; rs <= h; rs++ {
			for re := rs; re <= h; re++ {
				for cs := 0; cs <= w; cs++ {
					for ce := cs; ce <= w; ce++ {
						want := render(grid, segtree2d.CanonicalOrder(h, w, rs, re, cs, ce))
						got, ok := tr.Fold(rs, re, cs, ce)
						require.Equal(t, want != "", ok)
						require.Equalf(t, want, got, "%dx%d Fold(%d,%d,%d,%d)", h, w, rs, re, cs, ce)
					}
				}
			}
		}
	}
}

// TestCanonicalOrder_CoversRectangle checks the order is a permutation of the
// rectangle that reduces to row-major when rows are visited one at a time.
func TestCanonicalOrder_CoversRectangle(t *testing.T) {
	cells := segtree2d.CanonicalOrder(8, 8, 1, 7, 2, 5)
	require.Len(t, cells, 18)
	seen := map[segtree2d.Cell]bool{}
	for _, c := range cells {
		assert.False(t, seen[c])
		seen[c] = true
		assert.True(t, c.Row >= 1 && c.Row < 7 && c.Col >= 2 && c.Col < 5)
	}

	rowMajor := segtree2d.CanonicalOrder(4, 5, 1, 4, 0, 5)
	for k, c := range rowMajor {
		assert.Equal(t, segtree2d.Cell{Row: 1 + k/5, Col: k % 5}, c)
	}
	assert.Nil(t, segtree2d.CanonicalOrder(4, 5, 2, 2, 0, 5))
}

// TestUpdate keeps folds consistent after assignments.
func TestUpdate(t *testing.T) {
	grid := letters(4, 5)
	tr := segtree2d.MustNew[string](assoc.Concat{}, grid)
	tr.Update(1, 2, "H")
	tr.Update(3, 0, "P")
	grid[1][2], grid[3][0] = "H", "P"

	got, _ := tr.Fold(1, 3, 2, 4)
	assert.Equal(t, "Himn", got)
	got, _ = tr.Fold(0, 4, 0, 5)
	assert.Equal(t, "abcdefgHijklmnoPqrst", got)
	assert.Equal(t, grid, tr.ToGrid())
	assert.Equal(t, "P", tr.Get(3, 0))

	for rs := 0; rs < 4; rs++ {
		for re := rs + 1; re <= 4; re++ {
			want := render(grid, segtree2d.CanonicalOrder(4, 5, rs, re, 0, 5))
			got, _ := tr.Fold(rs, re, 0, 5)
			assert.Equal(t, want, got)
		}
	}
}

// TestFoldHorizontally reads leaf and internal row nodes.
func TestFoldHorizontally(t *testing.T) {
	tr := segtree2d.MustNew[int](assoc.Sum[int]{}, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}, {10, 11, 12}})
	v, ok := tr.FoldHorizontally(4, 0, 3) // leaf row 0
	require.True(t, ok)
	assert.Equal(t, 6, v)
	v, _ = tr.FoldHorizontally(3, 1, 3) // node over rows 2 and 3
	assert.Equal(t, 8+9+11+12, v)
	v, _ = tr.FoldHorizontally(1, 0, 3) // root
	assert.Equal(t, 78, v)
	_, ok = tr.FoldHorizontally(2, 1, 1)
	assert.False(t, ok)
}

// TestPanics checks the precondition violations.
func TestPanics(t *testing.T) {
	tr := segtree2d.MustNew[int](assoc.Sum[int]{}, [][]int{{1, 2}, {3, 4}})
	cases := []struct {
		name   string
		fn     func()
		target error
	}{
		{"UpdateRow", func() { tr.Update(2, 0, 1) }, segtree2d.ErrIndexOutOfRange},
		{"UpdateCol", func() { tr.Update(0, -1, 1) }, segtree2d.ErrIndexOutOfRange},
		{"Get", func() { tr.Get(0, 2) }, segtree2d.ErrIndexOutOfRange},
		{"HorizontalRow0", func() { tr.FoldHorizontally(0, 0, 1) }, segtree2d.ErrIndexOutOfRange},
		{"HorizontalRowPast", func() { tr.FoldHorizontally(4, 0, 1) }, segtree2d.ErrIndexOutOfRange},
		{"HorizontalCols", func() { tr.FoldHorizontally(2, 1, 0) }, segtree2d.ErrInvalidRange},
		{"FoldRows", func() { tr.Fold(1, 0, 0, 1) }, segtree2d.ErrInvalidRange},
		{"FoldCols", func() { tr.Fold(0, 1, 0, 3) }, segtree2d.ErrInvalidRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				err, ok := r.(error)
				require.True(t, ok)
				assert.True(t, errors.Is(err, tc.target), "got %v", err)
			}()
			tc.fn()
		})
	}
}

// TestDifferential runs the randomized sessions for both stock suites.
func TestDifferential(t *testing.T) {
	for _, s := range []suites.Suite{suites.Segtree2DConcat, suites.Segtree2DSum} {
		t.Run(s.Name, func(t *testing.T) {
			_, err := querytest.Run(t.Context(), s.Factory, querytest.WithInstances(15), querytest.WithMaxLen(9))
			require.NoError(t, err)
		})
	}
}
