package grid_test

import (
	"fmt"

	"github.com/voxfield/fluxgrid/grid"
)

// ExampleFrom2D builds a closed 3×3 border ring and inspects it.
func ExampleFrom2D() {
	b, err := grid.From2D([][]int{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(b)
	fmt.Println("rank:", b.Rank())
	fmt.Println("strides:", b.Strides())
	// Output:
	// grid.Binary(3×3, 8 walls)
	// rank: 2
	// strides: [3 1]
}

// ExampleLinspace spans a physical axis over five cells.
func ExampleLinspace() {
	fmt.Println(grid.Linspace(-1, 1, 5))
	// Output:
	// [-1 -0.5 0 0.5 1]
}

// ExampleResolveAxes shows default integer axes versus explicit
// physical coordinates.
func ExampleResolveAxes() {
	defaults, _ := grid.ResolveAxes([]int{2, 3})
	fmt.Println("defaults:", defaults)

	physical, _ := grid.ResolveAxes([]int{2, 3},
		grid.Linspace(0, 10, 2),
		grid.Linspace(-1, 1, 3),
	)
	fmt.Println("physical:", physical)
	// Output:
	// defaults: [[0 1] [0 1 2]]
	// physical: [[0 10] [-1 0 1]]
}
