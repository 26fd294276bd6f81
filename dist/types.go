// Package dist defines core types and sentinel errors for intensity
// distributions.
package dist

import (
	"errors"

	"github.com/voxfield/fluxgrid/grid"
)

// Sentinel errors for distribution construction and sampling.
var (
	// ErrNilDistribution indicates a nil Distribution was supplied.
	ErrNilDistribution = errors.New("dist: distribution must not be nil")
	// ErrBadStdDev indicates a non-positive standard deviation.
	ErrBadStdDev = errors.New("dist: standard deviation must be positive")
	// ErrNilFunc indicates a custom distribution without an evaluation function.
	ErrNilFunc = errors.New("dist: evaluation function must not be nil")
	// ErrBadRank indicates a rank that is neither RankAny nor positive.
	ErrBadRank = errors.New("dist: rank must be RankAny or positive")
	// ErrAxisProjection indicates an OnAxes axis list that does not fit
	// the host rank or the inner distribution.
	ErrAxisProjection = errors.New("dist: invalid axis projection")
	// ErrRankMismatch indicates a distribution applied to a grid of a
	// different rank.
	ErrRankMismatch = errors.New("dist: distribution rank does not match grid rank")
)

// RankAny marks a distribution that accepts points of any rank, such
// as a constant background.
const RankAny = 0

// Param is one named scalar parameter of a distribution. The ordered
// parameter list is part of the distribution's identity: matchers
// tune values by position and cached consumers fingerprint the record.
type Param struct {
	Name  string
	Value float64
}

// Distribution is a scalar intensity law over physical coordinates.
//
// Identity contract: two distributions with equal Name(), Params() and
// Rank() must evaluate identically everywhere. Eval must be safe for
// concurrent use; implementations hold no mutable state.
type Distribution interface {
	// Name identifies the law, including any structural wrapping
	// (e.g. "linear1d@[2]" for a projected gradient).
	Name() string
	// Params returns the ordered parameter record. Callers own the
	// returned slice.
	Params() []Param
	// Rank returns how many coordinates Eval consumes, or RankAny.
	Rank() int
	// Eval returns the intensity at the given point. len(point) must
	// equal Rank() unless Rank() is RankAny.
	Eval(point []float64) float64
}

// AxisFactored is an optional capability for separable distributions:
// laws whose value at a cell is the product of one factor per axis,
// intensity(c) = Π_d factors[d][c_d].
//
// AxisFactors returns per-axis factor arrays matching the given axes,
// or ok=false when the law cannot be factored over them (wrong rank,
// non-separable composition). Sample uses the factors to fill fields
// as an outer product instead of evaluating every cell.
type AxisFactored interface {
	AxisFactors(ax grid.Axes) ([][]float64, bool)
}
