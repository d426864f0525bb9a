package segtree2d_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rangefold/assoc"
	"github.com/katalvlaran/rangefold/segtree2d"
)

// ExampleTree_Fold sums a sub-rectangle before and after a point update.
func ExampleTree_Fold() {
	grid := [][]int{
		{1, 2, 3},
		{4, 5, 6},
	}
	t, err := segtree2d.New[int](assoc.Sum[int]{}, grid)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	s, _ := t.Fold(0, 2, 1, 3)
	fmt.Println(s)
	t.Update(1, 2, 10)
	s, _ = t.Fold(0, 2, 1, 3)
	fmt.Println(s)
	// Output:
	// 16
	// 20
}

// ExampleCanonicalOrder shows the order used when a row node spans two rows.
func ExampleCanonicalOrder() {
	var parts []string
	for _, c := range segtree2d.CanonicalOrder(8, 2, 1, 6, 0, 2) {
		parts = append(parts, fmt.Sprintf("%d,%d", c.Row, c.Col))
	}
	fmt.Println(strings.Join(parts, " "))
	// Output:
	// 1,0 1,1 2,0 3,0 2,1 3,1 4,0 4,1 5,0 5,1
}
