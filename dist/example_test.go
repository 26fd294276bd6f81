package dist_test

import (
	"fmt"

	"github.com/voxfield/fluxgrid/dist"
	"github.com/voxfield/fluxgrid/grid"
)

// ExampleSample fills a small 1D grid with a linear gradient.
func ExampleSample() {
	ax, _ := grid.ResolveAxes([]int{3}, grid.Linspace(0, 4, 3))
	field, err := dist.Sample(dist.NewLinear1D(0.5, 1), ax)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(field.Data())
	// Output:
	// [1 2 3]
}

// ExampleOnAxes sweeps a 1D gradient along the second axis of a 2D
// grid: rows repeat, columns climb.
func ExampleOnAxes() {
	along, err := dist.OnAxes(dist.NewLinear1D(1, 0), 2, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(along.Name())

	ax, _ := grid.ResolveAxes([]int{2, 3})
	field, _ := dist.Sample(along, ax)
	fmt.Println(field.Data())
	// Output:
	// linear1d@[1]
	// [0 1 2 0 1 2]
}

// ExampleNewNormal1D evaluates the standard Gaussian at its peak.
func ExampleNewNormal1D() {
	n, err := dist.NewNormal1D(0, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.4f\n", n.Eval([]float64{0}))
	// Output:
	// 0.3989
}
