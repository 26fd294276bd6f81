package grid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Axes holds one 1D coordinate array per dimension. Axes[d][c] is the
// physical coordinate of cell index c along axis d, so a cell's
// position in space is the tuple of its per-axis lookups. Axis values
// need not be uniform or even monotone; samplers only read them.
type Axes [][]float64

// ResolveAxes pairs coordinate axes with array extents.
//
// With no axes given it synthesizes default integer coordinates
// 0..n-1 per dimension, matching flat cell indexing. Otherwise exactly
// one axis per dimension must be supplied (ErrAxisCount) and each must
// hold one coordinate per cell (ErrAxisLength). Supplied axes are
// deep-copied so later caller mutation cannot skew cached samples.
func ResolveAxes(dims []int, axes ...[]float64) (Axes, error) {
	if len(dims) == 0 {
		return nil, ErrNoDims
	}
	for _, n := range dims {
		if n < 1 {
			return nil, ErrBadExtent
		}
	}

	if len(axes) == 0 {
		out := make(Axes, len(dims))
		for d, n := range dims {
			ax := make([]float64, n)
			for c := range ax {
				ax[c] = float64(c)
			}
			out[d] = ax
		}
		return out, nil
	}

	if len(axes) != len(dims) {
		return nil, fmt.Errorf("%w: have %d axes, want %d", ErrAxisCount, len(axes), len(dims))
	}
	out := make(Axes, len(dims))
	for d, ax := range axes {
		if len(ax) != dims[d] {
			return nil, fmt.Errorf("%w: axis %d has %d values, want %d", ErrAxisLength, d, len(ax), dims[d])
		}
		cp := make([]float64, len(ax))
		copy(cp, ax)
		out[d] = cp
	}
	return out, nil
}

// Point maps per-axis cell coordinates to a physical point, writing
// into dst when it has sufficient capacity and allocating otherwise.
// coords must already be in range; samplers call this per cell.
func (a Axes) Point(coords []int, dst []float64) []float64 {
	if cap(dst) < len(a) {
		dst = make([]float64, len(a))
	}
	dst = dst[:len(a)]
	for d := range a {
		dst[d] = a[d][coords[d]]
	}
	return dst
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
// n == 1 yields just {lo}; n < 1 yields nil.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n < 1:
		return nil
	case n == 1:
		return []float64{lo}
	default:
		return floats.Span(make([]float64, n), lo, hi)
	}
}
