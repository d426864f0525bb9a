package wavelet_test

import (
	"fmt"

	"github.com/katalvlaran/rangefold/wavelet"
)

// ExampleMatrix shows the bit rows and a few range queries.
func ExampleMatrix() {
	m, err := wavelet.New([]uint32{5, 4, 5, 5, 2, 1, 5, 6, 1, 3, 5, 0}, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(m)
	fmt.Println(m.Rank(5, 7), m.Quantile(3, 9, 2), m.RangeFreq(2, 9, 2, 6))
	// Output:
	// 111100110010
	// 100100000010
	// 110101111010
	// 4 2 4
}
