// Package grid_test: coordinate axis resolution and spacing helpers.
package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/voxfield/fluxgrid/grid"
)

// TestResolveAxesDefaults ensures omitted axes synthesize integer cell
// indices per dimension.
func TestResolveAxesDefaults(t *testing.T) {
	ax, err := grid.ResolveAxes([]int{2, 3})
	require.NoError(t, err)
	require.Len(t, ax, 2)
	require.Equal(t, []float64{0, 1}, ax[0])
	require.Equal(t, []float64{0, 1, 2}, ax[1])
}

// TestResolveAxesValidation covers the arity and length checks.
func TestResolveAxesValidation(t *testing.T) {
	_, err := grid.ResolveAxes(nil)
	require.ErrorIs(t, err, grid.ErrNoDims)

	_, err = grid.ResolveAxes([]int{3, 0}, []float64{0, 1, 2}, nil)
	require.ErrorIs(t, err, grid.ErrBadExtent)

	// One axis for a rank-2 grid.
	_, err = grid.ResolveAxes([]int{2, 2}, []float64{0, 1})
	require.ErrorIs(t, err, grid.ErrAxisCount)

	// Axis 1 holds 2 values for an extent of 3.
	_, err = grid.ResolveAxes([]int{2, 3}, []float64{0, 1}, []float64{0, 1})
	require.ErrorIs(t, err, grid.ErrAxisLength)
}

// TestResolveAxesCopiesInput ensures later mutation of caller slices
// cannot reach the resolved axes.
func TestResolveAxesCopiesInput(t *testing.T) {
	src := []float64{-1, 0, 1}
	ax, err := grid.ResolveAxes([]int{3}, src)
	require.NoError(t, err)

	src[0] = 42
	require.Equal(t, []float64{-1, 0, 1}, ax[0])
}

// TestAxesPoint maps cell coordinates through physical axes.
func TestAxesPoint(t *testing.T) {
	ax, err := grid.ResolveAxes([]int{2, 3},
		[]float64{10, 20},
		[]float64{0.5, 1.5, 2.5},
	)
	require.NoError(t, err)

	p := ax.Point([]int{1, 2}, nil)
	require.Equal(t, []float64{20, 2.5}, p)

	// A caller-provided buffer is reused in place.
	buf := make([]float64, 2)
	p = ax.Point([]int{0, 0}, buf)
	require.Equal(t, []float64{10, 0.5}, p)
	require.Equal(t, &buf[0], &p[0])
}

// TestLinspace pins endpoint-inclusive spacing and the degenerate
// single-sample case.
func TestLinspace(t *testing.T) {
	require.Equal(t, []float64{-10, -5, 0, 5, 10}, grid.Linspace(-10, 10, 5))
	require.Equal(t, []float64{-3}, grid.Linspace(-3, 3, 1))
	require.Nil(t, grid.Linspace(0, 1, 0))
}
