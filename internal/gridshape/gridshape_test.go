package gridshape_test

import (
	"testing"

	"github.com/katalvlaran/rangefold/internal/gridshape"
	"github.com/stretchr/testify/assert"
)

// TestMeasure covers empty, rectangular and jagged inputs.
func TestMeasure(t *testing.T) {
	cases := []struct {
		name         string
		grid         [][]int
		h, w, badRow int
	}{
		{"NoRows", nil, 0, 0, -1},
		{"EmptyRow", [][]int{{}}, 1, 0, -1},
		{"Rect", [][]int{{1, 2}, {3, 4}, {5, 6}}, 3, 2, -1},
		{"JaggedLast", [][]int{{1, 2}, {3, 4}, {5}}, 3, 2, 2},
		{"JaggedSecond", [][]int{{1}, {2, 3}, {4}}, 3, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, w, bad := gridshape.Measure(tc.grid)
			assert.Equal(t, tc.h, h)
			assert.Equal(t, tc.w, w)
			assert.Equal(t, tc.badRow, bad)
		})
	}
}

// TestClone verifies the copy is deep.
func TestClone(t *testing.T) {
	src := [][]int{{1, 2}, {3, 4}}
	dst := gridshape.Clone(src)
	src[0][0] = 99
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, dst)
}

// TestBitHelpers checks Lsb and FloorPow2 on small values.
func TestBitHelpers(t *testing.T) {
	lsb := map[int]int{1: 1, 2: 2, 3: 1, 4: 4, 6: 2, 12: 4, 40: 8, 0: 0}
	for in, want := range lsb {
		assert.Equalf(t, want, gridshape.Lsb(in), "Lsb(%d)", in)
	}
	pow := map[int]int{-1: 0, 0: 0, 1: 1, 2: 2, 3: 2, 4: 4, 5: 4, 1023: 512, 1024: 1024}
	for in, want := range pow {
		assert.Equalf(t, want, gridshape.FloorPow2(in), "FloorPow2(%d)", in)
	}
}
