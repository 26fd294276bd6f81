package dist

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/voxfield/fluxgrid/grid"
)

// Sample evaluates d over the outer-product coordinate grid described
// by ax and returns one intensity per cell, row-major.
//
// Separable distributions (AxisFactored) are filled as an outer
// product: per-axis factor evaluation, then a copy plus floats.Scale
// per last-axis run. Everything else takes a single tight loop that
// advances an N-dimensional cursor and evaluates once per cell, with
// no per-cell allocation in Sample itself.
//
// Geometry errors surface from grid (ErrNoDims, ErrBadExtent); a
// concrete-rank distribution on a grid of a different rank returns
// ErrRankMismatch.
func Sample(d Distribution, ax grid.Axes) (*grid.Dense, error) {
	if d == nil {
		return nil, ErrNilDistribution
	}
	dims := make([]int, len(ax))
	for i, a := range ax {
		dims[i] = len(a)
	}
	out, err := grid.NewDense(dims)
	if err != nil {
		return nil, err
	}
	if r := d.Rank(); r != RankAny && r != len(ax) {
		return nil, fmt.Errorf("%w: distribution wants %d, grid has %d", ErrRankMismatch, r, len(ax))
	}

	if f, ok := d.(AxisFactored); ok {
		if factors, ok := f.AxisFactors(ax); ok {
			fillOuter(out, factors)
			return out, nil
		}
	}
	fillEval(out, d, ax)
	return out, nil
}

// fillOuter writes Π_d factors[d][c_d] into every cell. The last-axis
// factor array is copied into each run and scaled by the product of
// the leading-axis factors, so transcendental evaluation happens only
// once per axis value.
func fillOuter(out *grid.Dense, factors [][]float64) {
	data := out.Data()
	dims := out.Dims()
	last := len(dims) - 1
	w := dims[last]
	runFactor := factors[last]

	lead := make([]int, last)
	for base := 0; base < len(data); base += w {
		s := 1.0
		for d := 0; d < last; d++ {
			s *= factors[d][lead[d]]
		}
		run := data[base : base+w]
		copy(run, runFactor)
		if s != 1 {
			floats.Scale(s, run)
		}
		for d := last - 1; d >= 0; d-- {
			lead[d]++
			if lead[d] < dims[d] {
				break
			}
			lead[d] = 0
		}
	}
}

// fillEval walks cells in row-major order with an odometer cursor,
// refreshing only the coordinates that changed since the previous
// cell.
func fillEval(out *grid.Dense, d Distribution, ax grid.Axes) {
	data := out.Data()
	dims := out.Dims()
	last := len(dims) - 1

	coords := make([]int, len(dims))
	point := make([]float64, len(dims))
	for dd := range point {
		point[dd] = ax[dd][0]
	}

	for i := range data {
		data[i] = d.Eval(point)
		for dd := last; dd >= 0; dd-- {
			coords[dd]++
			if coords[dd] < dims[dd] {
				point[dd] = ax[dd][coords[dd]]
				break
			}
			coords[dd] = 0
			point[dd] = ax[dd][0]
		}
	}
}
