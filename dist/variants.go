package dist

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/voxfield/fluxgrid/grid"
)

// ones returns a factor array that leaves an axis untouched in an
// outer product.
func ones(n int) []float64 {
	f := make([]float64, n)
	for i := range f {
		f[i] = 1
	}
	return f
}

// Uniform is a constant intensity, the same value at every point of
// any rank.
type Uniform struct {
	value float64
}

// NewUniform returns a constant distribution with the given value.
func NewUniform(value float64) Uniform { return Uniform{value: value} }

// Name implements Distribution.
func (u Uniform) Name() string { return "uniform" }

// Params implements Distribution.
func (u Uniform) Params() []Param { return []Param{{Name: "value", Value: u.value}} }

// Rank implements Distribution; a constant fits any grid.
func (u Uniform) Rank() int { return RankAny }

// Eval implements Distribution.
func (u Uniform) Eval(_ []float64) float64 { return u.value }

// AxisFactors implements AxisFactored: the constant rides on the first
// axis, every other axis contributes 1.
func (u Uniform) AxisFactors(ax grid.Axes) ([][]float64, bool) {
	if len(ax) == 0 {
		return nil, false
	}
	factors := make([][]float64, len(ax))
	first := make([]float64, len(ax[0]))
	for i := range first {
		first[i] = u.value
	}
	factors[0] = first
	for d := 1; d < len(ax); d++ {
		factors[d] = ones(len(ax[d]))
	}
	return factors, true
}

// Linear1D is the affine law slope·x + intercept over one coordinate.
type Linear1D struct {
	slope, intercept float64
}

// NewLinear1D returns a linear gradient along a single axis.
func NewLinear1D(slope, intercept float64) Linear1D {
	return Linear1D{slope: slope, intercept: intercept}
}

// Name implements Distribution.
func (l Linear1D) Name() string { return "linear1d" }

// Params implements Distribution.
func (l Linear1D) Params() []Param {
	return []Param{
		{Name: "slope", Value: l.slope},
		{Name: "intercept", Value: l.intercept},
	}
}

// Rank implements Distribution.
func (l Linear1D) Rank() int { return 1 }

// Eval implements Distribution.
func (l Linear1D) Eval(point []float64) float64 { return l.slope*point[0] + l.intercept }

// AxisFactors implements AxisFactored for the rank-1 case.
func (l Linear1D) AxisFactors(ax grid.Axes) ([][]float64, bool) {
	if len(ax) != 1 {
		return nil, false
	}
	f := make([]float64, len(ax[0]))
	for i, x := range ax[0] {
		f[i] = l.slope*x + l.intercept
	}
	return [][]float64{f}, true
}

// Normal1D is the Gaussian probability density over one coordinate.
type Normal1D struct {
	norm distuv.Normal
}

// NewNormal1D returns a Gaussian density with the given mean and
// standard deviation. stddev must be positive (ErrBadStdDev otherwise;
// NaN is rejected too).
func NewNormal1D(mean, stddev float64) (Normal1D, error) {
	if !(stddev > 0) {
		return Normal1D{}, fmt.Errorf("%w: got %v", ErrBadStdDev, stddev)
	}
	return Normal1D{norm: distuv.Normal{Mu: mean, Sigma: stddev}}, nil
}

// Name implements Distribution.
func (n Normal1D) Name() string { return "normal1d" }

// Params implements Distribution.
func (n Normal1D) Params() []Param {
	return []Param{
		{Name: "mean", Value: n.norm.Mu},
		{Name: "stddev", Value: n.norm.Sigma},
	}
}

// Rank implements Distribution.
func (n Normal1D) Rank() int { return 1 }

// Eval implements Distribution.
func (n Normal1D) Eval(point []float64) float64 { return n.norm.Prob(point[0]) }

// AxisFactors implements AxisFactored for the rank-1 case.
func (n Normal1D) AxisFactors(ax grid.Axes) ([][]float64, bool) {
	if len(ax) != 1 {
		return nil, false
	}
	f := make([]float64, len(ax[0]))
	for i, x := range ax[0] {
		f[i] = n.norm.Prob(x)
	}
	return [][]float64{f}, true
}

// Normal2D is the separable product of two Gaussian densities, one per
// coordinate.
type Normal2D struct {
	x, y distuv.Normal
}

// NewNormal2D returns a 2D Gaussian density with independent means and
// standard deviations per axis. Both deviations must be positive.
func NewNormal2D(meanX, meanY, stddevX, stddevY float64) (Normal2D, error) {
	if !(stddevX > 0) {
		return Normal2D{}, fmt.Errorf("%w: stddevX %v", ErrBadStdDev, stddevX)
	}
	if !(stddevY > 0) {
		return Normal2D{}, fmt.Errorf("%w: stddevY %v", ErrBadStdDev, stddevY)
	}
	return Normal2D{
		x: distuv.Normal{Mu: meanX, Sigma: stddevX},
		y: distuv.Normal{Mu: meanY, Sigma: stddevY},
	}, nil
}

// Name implements Distribution.
func (n Normal2D) Name() string { return "normal2d" }

// Params implements Distribution.
func (n Normal2D) Params() []Param {
	return []Param{
		{Name: "meanX", Value: n.x.Mu},
		{Name: "meanY", Value: n.y.Mu},
		{Name: "stddevX", Value: n.x.Sigma},
		{Name: "stddevY", Value: n.y.Sigma},
	}
}

// Rank implements Distribution.
func (n Normal2D) Rank() int { return 2 }

// Eval implements Distribution.
func (n Normal2D) Eval(point []float64) float64 {
	return n.x.Prob(point[0]) * n.y.Prob(point[1])
}

// AxisFactors implements AxisFactored: the density splits into one
// Gaussian factor per axis.
func (n Normal2D) AxisFactors(ax grid.Axes) ([][]float64, bool) {
	if len(ax) != 2 {
		return nil, false
	}
	fx := make([]float64, len(ax[0]))
	for i, x := range ax[0] {
		fx[i] = n.x.Prob(x)
	}
	fy := make([]float64, len(ax[1]))
	for i, y := range ax[1] {
		fy[i] = n.y.Prob(y)
	}
	return [][]float64{fx, fy}, true
}

// Func is a caller-defined distribution: an arbitrary evaluation
// function with an explicit name, rank and parameter record. It takes
// the general sampling path, never the outer-product one.
type Func struct {
	name   string
	rank   int
	params []Param
	fn     func(point []float64) float64
}

// NewFunc wraps fn as a Distribution. fn must not be nil (ErrNilFunc)
// and rank must be RankAny or positive (ErrBadRank). params is copied;
// pass the values fn actually closes over, in a stable order, so that
// identity-based caching stays truthful.
func NewFunc(name string, rank int, params []Param, fn func(point []float64) float64) (Func, error) {
	if fn == nil {
		return Func{}, ErrNilFunc
	}
	if rank < RankAny {
		return Func{}, fmt.Errorf("%w: got %d", ErrBadRank, rank)
	}
	if name == "" {
		name = "func"
	}
	cp := make([]Param, len(params))
	copy(cp, params)
	return Func{name: name, rank: rank, params: cp, fn: fn}, nil
}

// Name implements Distribution.
func (f Func) Name() string { return f.name }

// Params implements Distribution.
func (f Func) Params() []Param {
	cp := make([]Param, len(f.params))
	copy(cp, f.params)
	return cp
}

// Rank implements Distribution.
func (f Func) Rank() int { return f.rank }

// Eval implements Distribution.
func (f Func) Eval(point []float64) float64 { return f.fn(point) }
