package transpose_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/blocktranspose/transpose"
)

// ExampleNaive transposes a 2×3 matrix into 3×2.
func ExampleNaive() {
	src := []int{
		1, 2, 3,
		4, 5, 6,
	}
	dst := make([]int, len(src))
	if err := transpose.Naive(src, 2, 3, dst); err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(dst)
	// Output:
	// [1 4 2 5 3 6]
}

// ExampleBlocked uses 2×2 tiles on a 5×5 matrix: four full tiles plus the
// row, column and corner remainders.
func ExampleBlocked() {
	src := make([]int, 25)
	for i := range src {
		src[i] = i
	}
	dst := make([]int, 25)
	if err := transpose.Blocked(src, 5, 5, 2, dst); err != nil {
		fmt.Println("error:", err)

		return
	}
	for r := 0; r < 5; r++ {
		fmt.Println(dst[r*5 : r*5+5])
	}
	fmt.Println(transpose.Check(src, dst, 5, 5))
	// Output:
	// [0 5 10 15 20]
	// [1 6 11 16 21]
	// [2 7 12 17 22]
	// [3 8 13 18 23]
	// [4 9 14 19 24]
	// true
}

// ExampleBlocked_rejected shows the explicit error replacing a silent no-op.
func ExampleBlocked_rejected() {
	src := []int{1, 2, 3, 4}
	dst := make([]int, 4)
	err := transpose.Blocked(src, 2, 2, 3, dst)
	fmt.Println(errors.Is(err, transpose.ErrBlockSizeTooLarge), dst)
	// Output:
	// true [0 0 0 0]
}
