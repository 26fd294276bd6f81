// Package shape_test contains unit tests for Shape construction,
// enclosure state, intensity caching and flux integration.
package shape_test

import (
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voxfield/fluxgrid/dist"
	"github.com/voxfield/fluxgrid/enclosure"
	"github.com/voxfield/fluxgrid/grid"
	"github.com/voxfield/fluxgrid/shape"
)

// ring4 is the canonical 4×4 wall ring with a 2×2 cavity.
func ring4(t *testing.T, opts ...shape.Option) *shape.Shape {
	t.Helper()
	s, err := shape.From2D([][]int{
		{1, 1, 1, 1},
		{1, 0, 0, 1},
		{1, 0, 0, 1},
		{1, 1, 1, 1},
	}, opts...)
	require.NoError(t, err)
	return s
}

// gaussian is the closed-form density oracle.
func gaussian(x, mean, stddev float64) float64 {
	z := (x - mean) / stddev
	return math.Exp(-z*z/2) / (stddev * math.Sqrt(2*math.Pi))
}

// TestNewValidation covers nil borders and invalid options.
func TestNewValidation(t *testing.T) {
	_, err := shape.New(nil)
	require.ErrorIs(t, err, shape.ErrNilBorder)

	b, err := grid.From2D([][]int{{1, 0, 1}})
	require.NoError(t, err)
	_, err = shape.New(b, shape.WithConnectivity(enclosure.Connectivity(42)))
	require.ErrorIs(t, err, shape.ErrOptionViolation)

	_, err = shape.From2D([][]int{{1, 2}})
	require.ErrorIs(t, err, grid.ErrCellValue)
}

// TestIsClosed checks enclosure state on sealed, breached and
// corner-touching borders.
func TestIsClosed(t *testing.T) {
	assert.True(t, ring4(t).IsClosed())

	open, err := shape.From2D([][]int{
		{1, 1, 1},
		{1, 0, 0},
		{1, 1, 1},
	})
	require.NoError(t, err)
	assert.False(t, open.IsClosed())

	// Diagonal wall contacts seal under the default connectivity and
	// leak under Moore.
	diamond := [][]int{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	}
	faces, err := shape.From2D(diamond)
	require.NoError(t, err)
	assert.True(t, faces.IsClosed())

	moore, err := shape.From2D(diamond, shape.WithConnectivity(enclosure.ConnMoore))
	require.NoError(t, err)
	assert.False(t, moore.IsClosed())
}

// TestInteriorMask checks the mask itself and that repeated access
// serves the same computed instance.
func TestInteriorMask(t *testing.T) {
	s := ring4(t)
	in := s.Interior()
	require.Equal(t, 4, in.Count())
	for _, c := range [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}} {
		set, err := in.At(c[0], c[1])
		require.NoError(t, err)
		assert.True(t, set, "cell %v", c)
	}
	assert.Same(t, in, s.Interior())
}

// TestFluxUniform pins the canonical example: a 2×2 cavity under a
// constant law integrates to cavity size times the constant.
func TestFluxUniform(t *testing.T) {
	s := ring4(t)

	got, err := s.Flux(dist.NewUniform(1))
	require.NoError(t, err)
	assert.Equal(t, 4.0, got)

	got, err = s.Flux(dist.NewUniform(2.5))
	require.NoError(t, err)
	assert.Equal(t, 10.0, got)
}

// TestFluxLinearGradient integrates a 1D gradient over a sealed span
// with physical axis coordinates.
func TestFluxLinearGradient(t *testing.T) {
	b, err := grid.NewBinary([]int{5}, []uint8{1, 0, 0, 0, 1})
	require.NoError(t, err)
	s, err := shape.New(b)
	require.NoError(t, err)

	// Interior cells 1..3 at coordinates 1,2,3 → 1+2+3.
	got, err := s.Flux(dist.NewLinear1D(1, 0), grid.Linspace(0, 4, 5))
	require.NoError(t, err)
	assert.Equal(t, 6.0, got)

	// Same cells on a shifted axis: 11+12+13.
	got, err = s.Flux(dist.NewLinear1D(1, 0), grid.Linspace(10, 14, 5))
	require.NoError(t, err)
	assert.Equal(t, 36.0, got)
}

// TestFluxNormal2D checks a separable Gaussian against the closed-form
// oracle summed over the interior cells.
func TestFluxNormal2D(t *testing.T) {
	s := ring4(t)
	n, err := dist.NewNormal2D(0, 0, 1, 1)
	require.NoError(t, err)

	ax := grid.Linspace(-1, 2, 4) // cells sit at -1, 0, 1, 2
	got, err := s.Flux(n, ax, ax)
	require.NoError(t, err)

	want := 0.0
	for _, x := range []float64{0, 1} {
		for _, y := range []float64{0, 1} {
			want += gaussian(x, 0, 1) * gaussian(y, 0, 1)
		}
	}
	assert.InEpsilon(t, want, got, 1e-12)
}

// TestFluxOpenShape ensures a non-closed shape warns and yields zero
// without error, even when other inputs are questionable.
func TestFluxOpenShape(t *testing.T) {
	var warned []string
	open, err := shape.From2D([][]int{
		{1, 1, 1},
		{1, 0, 0},
		{1, 1, 1},
	}, shape.WithOnWarn(func(msg string) { warned = append(warned, msg) }))
	require.NoError(t, err)

	got, err := open.Flux(dist.NewUniform(5))
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
	require.Len(t, warned, 1)
	assert.True(t, strings.Contains(warned[0], "not closed"), "warning = %q", warned[0])

	// The zero-with-warning path wins over axis validation on open
	// shapes; callers probing closure get an answer, not an error.
	got, err = open.Flux(dist.NewUniform(5), []float64{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
	assert.Len(t, warned, 2)
}

// TestFluxValidation ensures sampling problems fail the call at once.
func TestFluxValidation(t *testing.T) {
	s := ring4(t)

	_, err := s.Flux(nil)
	require.ErrorIs(t, err, dist.ErrNilDistribution)

	// One axis for a rank-2 shape.
	_, err = s.Flux(dist.NewUniform(1), grid.Linspace(0, 3, 4))
	require.ErrorIs(t, err, grid.ErrAxisCount)

	// Axis length disagrees with the extent.
	_, err = s.Flux(dist.NewUniform(1), grid.Linspace(0, 3, 4), grid.Linspace(0, 1, 2))
	require.ErrorIs(t, err, grid.ErrAxisLength)

	// A rank-1 law cannot cover a rank-2 shape directly.
	_, err = s.Flux(dist.NewLinear1D(1, 0))
	require.ErrorIs(t, err, dist.ErrRankMismatch)
}

// TestIntensityCache observes cache behavior through the OnRecompute
// hook: recomputation happens exactly on identity change.
func TestIntensityCache(t *testing.T) {
	recomputes := 0
	s := ring4(t, shape.WithOnRecompute(func() { recomputes++ }))

	u1 := dist.NewUniform(1)
	_, err := s.Flux(u1)
	require.NoError(t, err)
	assert.Equal(t, 1, recomputes)

	// Identical identity and axes: served from cache.
	_, err = s.Flux(u1)
	require.NoError(t, err)
	_, err = s.Flux(dist.NewUniform(1)) // equal record, distinct value
	require.NoError(t, err)
	assert.Equal(t, 1, recomputes)

	// Changed parameter value.
	_, err = s.Flux(dist.NewUniform(2))
	require.NoError(t, err)
	assert.Equal(t, 2, recomputes)

	// Changed axes.
	_, err = s.Flux(dist.NewUniform(2), grid.Linspace(0, 1, 4), grid.Linspace(0, 1, 4))
	require.NoError(t, err)
	assert.Equal(t, 3, recomputes)

	// The slot holds one entry: returning to the first request
	// resamples again.
	_, err = s.Flux(u1)
	require.NoError(t, err)
	assert.Equal(t, 4, recomputes)
}

// TestIntensityCacheIdentityContract: equal (name, params, rank)
// records hit the same cache slot even across implementation types.
func TestIntensityCacheIdentityContract(t *testing.T) {
	recomputes := 0
	s := ring4(t, shape.WithOnRecompute(func() { recomputes++ }))

	_, err := s.FillIntensity(dist.NewUniform(3))
	require.NoError(t, err)

	same, err := dist.NewFunc("uniform", dist.RankAny,
		[]dist.Param{{Name: "value", Value: 3}},
		func([]float64) float64 { return 3 })
	require.NoError(t, err)

	field, err := s.FillIntensity(same)
	require.NoError(t, err)
	assert.Equal(t, 1, recomputes, "equal identity must not resample")
	assert.Equal(t, 3.0, field.Value(0))
}

// TestFailedFillKeepsCache ensures a failed sampling leaves the
// previous slot intact.
func TestFailedFillKeepsCache(t *testing.T) {
	recomputes := 0
	s := ring4(t, shape.WithOnRecompute(func() { recomputes++ }))

	u := dist.NewUniform(1)
	_, err := s.FillIntensity(u)
	require.NoError(t, err)
	require.Equal(t, 1, recomputes)

	_, err = s.FillIntensity(dist.NewLinear1D(1, 0)) // rank mismatch
	require.ErrorIs(t, err, dist.ErrRankMismatch)

	_, err = s.FillIntensity(u) // still cached
	require.NoError(t, err)
	assert.Equal(t, 1, recomputes)
}

// TestFillIntensityValues checks the returned field itself, masked and
// unmasked cells alike.
func TestFillIntensityValues(t *testing.T) {
	s := ring4(t)
	field, err := s.FillIntensity(dist.NewUniform(0.5))
	require.NoError(t, err)
	require.Equal(t, []int{4, 4}, field.Dims())
	assert.Equal(t, 8.0, field.Sum()) // every cell sampled, walls included
}

// TestCloneSemantics: clones share border and computed interior but
// fill independent caches; hooks carry over.
func TestCloneSemantics(t *testing.T) {
	recomputes := 0
	s := ring4(t, shape.WithOnRecompute(func() { recomputes++ }))
	require.True(t, s.IsClosed()) // force the interior before cloning

	c := s.Clone()
	assert.Same(t, s.Border(), c.Border())
	assert.Same(t, s.Interior(), c.Interior())

	u := dist.NewUniform(1)
	_, err := s.Flux(u)
	require.NoError(t, err)
	require.Equal(t, 1, recomputes)

	// The clone starts cold and fills its own slot.
	got, err := c.Flux(u)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got)
	assert.Equal(t, 2, recomputes)

	// The parent's slot is still warm.
	_, err = s.Flux(u)
	require.NoError(t, err)
	assert.Equal(t, 2, recomputes)
}

// TestCloneParallelFlux runs one clone per goroutine after forcing the
// interior; all must agree.
func TestCloneParallelFlux(t *testing.T) {
	s := ring4(t)
	require.True(t, s.IsClosed())

	const workers = 8
	results := make([]float64, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			local := s.Clone()
			got, err := local.Flux(dist.NewUniform(1.5))
			if err != nil {
				t.Errorf("worker %d: %v", w, err)
				return
			}
			results[w] = got
		}(w)
	}
	wg.Wait()

	for w, got := range results {
		assert.Equal(t, 6.0, got, "worker %d", w)
	}
}

// hollowBox builds an n×n×n wall cube with an open cavity spanning
// [1, n-2] on every axis.
func hollowBox(n int) [][][]int {
	planes := make([][][]int, n)
	for z := range planes {
		planes[z] = make([][]int, n)
		for y := range planes[z] {
			planes[z][y] = make([]int, n)
			for x := range planes[z][y] {
				cavity := z >= 1 && z <= n-2 && y >= 1 && y <= n-2 && x >= 1 && x <= n-2
				if !cavity {
					planes[z][y][x] = 1
				}
			}
		}
	}
	return planes
}

// TestFrom3D integrates over hollow boxes: a 4×4×4 with an 8-cell
// cavity and the 5×5×5 with a 27-cell cavity.
func TestFrom3D(t *testing.T) {
	s, err := shape.From3D(hollowBox(4))
	require.NoError(t, err)
	require.True(t, s.IsClosed())

	got, err := s.Flux(dist.NewUniform(2))
	require.NoError(t, err)
	assert.Equal(t, 16.0, got) // 8 cavity cells × 2

	cube, err := shape.From3D(hollowBox(5))
	require.NoError(t, err)
	require.True(t, cube.IsClosed())
	require.Equal(t, 27, cube.Interior().Count())

	got, err = cube.Flux(dist.NewUniform(1))
	require.NoError(t, err)
	assert.Equal(t, 27.0, got)
}
