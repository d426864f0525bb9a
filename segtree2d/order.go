package segtree2d

import "github.com/katalvlaran/rangefold/internal/bottomup"

// Cell addresses one grid cell.
type Cell struct {
	Row, Col int
}

// CanonicalOrder returns the cells of [rowStart, rowEnd) × [colStart, colEnd)
// in the exact order Fold applies Op to them on a height × width tree:
// for each canonical row node top to bottom, for each canonical column node
// left to right, the node block in row-major order.
//
// An empty range yields nil. Ranges are not validated beyond that; callers
// pass the same ranges they give Fold.
func CanonicalOrder(height, width, rowStart, rowEnd, colStart, colEnd int) []Cell {
	if rowStart >= rowEnd || colStart >= colEnd {
		return nil
	}
	rows := bottomup.Nodes(height, rowStart, rowEnd)
	cols := bottomup.Nodes(width, colStart, colEnd)
	out := make([]Cell, 0, (rowEnd-rowStart)*(colEnd-colStart))
	for _, rn := range rows {
		rlo, rhi := bottomup.Leaves(height, rn)
		for _, cn := range cols {
			clo, chi := bottomup.Leaves(width, cn)
			for r := rlo; r < rhi; r++ {
				for c := clo; c < chi; c++ {
					out = append(out, Cell{Row: r, Col: c})
				}
			}
		}
	}

	return out
}
