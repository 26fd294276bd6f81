// Package match - problem, options, result and sentinel errors.
package match

import (
	"errors"
	"math"

	"github.com/voxfield/fluxgrid/dist"
	"github.com/voxfield/fluxgrid/shape"
)

// Sentinel errors for MatchFlux pre-flight validation. The search
// itself reports failures through Result, never through errors.
var (
	// ErrNilShape indicates a missing source or target shape.
	ErrNilShape = errors.New("match: source and target shapes must not be nil")
	// ErrNilBuild indicates a missing Build callback.
	ErrNilBuild = errors.New("match: build callback must not be nil")
	// ErrNoParams indicates an empty parameter list.
	ErrNoParams = errors.New("match: at least one parameter required")
	// ErrParamName indicates empty or duplicate parameter names.
	ErrParamName = errors.New("match: parameter names must be unique and non-empty")
	// ErrDimensionMismatch indicates names, guess and bounds disagree
	// in length.
	ErrDimensionMismatch = errors.New("match: parameter names, guess and bounds must agree in length")
	// ErrBadGuess indicates a NaN or infinite initial guess entry.
	ErrBadGuess = errors.New("match: initial guess must be finite")
	// ErrBadBound indicates an empty interval (min > max) or a
	// non-finite pinned value.
	ErrBadBound = errors.New("match: invalid parameter bound")
	// ErrBuild indicates the Build callback rejected the initial guess
	// during the pre-flight probe.
	ErrBuild = errors.New("match: build callback failed for the initial guess")
	// ErrBadOptions indicates negative budgets, tolerances or counts.
	ErrBadOptions = errors.New("match: invalid options")
)

// Bound is a closed interval constraint on one parameter. Leave a side
// open with ±Inf (NaN is treated the same way). Min == Max pins the
// parameter: it is excluded from the search and reported verbatim.
type Bound struct {
	Min, Max float64
}

// Unbounded returns a bound with both sides open.
func Unbounded() Bound { return Bound{Min: math.Inf(-1), Max: math.Inf(1)} }

// AtLeast bounds a parameter from below only.
func AtLeast(lo float64) Bound { return Bound{Min: lo, Max: math.Inf(1)} }

// AtMost bounds a parameter from above only.
func AtMost(hi float64) Bound { return Bound{Min: math.Inf(-1), Max: hi} }

// Between bounds a parameter on both sides.
func Between(lo, hi float64) Bound { return Bound{Min: lo, Max: hi} }

// Fixed pins a parameter to a single value.
func Fixed(v float64) Bound { return Bound{Min: v, Max: v} }

// normalized maps NaN sides to open sides.
func (b Bound) normalized() Bound {
	if math.IsNaN(b.Min) {
		b.Min = math.Inf(-1)
	}
	if math.IsNaN(b.Max) {
		b.Max = math.Inf(1)
	}
	return b
}

// Problem describes one flux-matching task.
type Problem struct {
	// Source provides the flux to reproduce, under SourceDist.
	Source     *shape.Shape
	SourceDist dist.Distribution
	// SourceAxes are the source's physical coordinates; nil means
	// integer cell indices.
	SourceAxes [][]float64

	// Target is the shape whose flux is tuned. TargetAxes as above.
	Target     *shape.Shape
	TargetAxes [][]float64

	// Build binds a candidate parameter vector to a concrete
	// distribution. x follows ParamNames order. Returning an error
	// (or nil) marks the candidate infeasible; during the search that
	// scores +Inf instead of aborting.
	Build func(x []float64) (dist.Distribution, error)

	// ParamNames gives the order and reporting names of the tuned
	// parameters. InitialGuess and Bounds align with it.
	ParamNames   []string
	InitialGuess []float64
	// Bounds constrain each parameter; nil means all unbounded.
	Bounds []Bound
}

// Options tunes the search. The zero value picks defaults throughout.
type Options struct {
	// MaxIterations caps optimizer major iterations per start.
	// 0 = 200 per tuned parameter.
	MaxIterations int
	// MaxEvaluations caps objective calls per start.
	// 0 = 500 per tuned parameter.
	MaxEvaluations int
	// FuncTol is the absolute objective-improvement tolerance that
	// counts as convergence. 0 = 1e-10.
	FuncTol float64
	// Starts is the number of independent descents. 0 or 1 = single
	// start from the exact guess; higher values add perturbed starts.
	Starts int
	// Workers caps concurrent descents when Starts > 1.
	// 0 = GOMAXPROCS.
	Workers int
	// Seed drives the deterministic perturbation streams. 0 selects a
	// fixed default, so results are reproducible either way.
	Seed int64
	// OnEvaluate observes every objective evaluation. With parallel
	// starts it is called concurrently from worker goroutines.
	OnEvaluate func(x []float64, flux, objective float64)
}

// DefaultOptions returns the canonical search settings.
func DefaultOptions() Options { return Options{Starts: 1} }

// Result is the outcome of one MatchFlux call.
type Result struct {
	// Success reports whether the best descent converged within its
	// budgets. A false Success still carries the best point found.
	Success bool
	// Message is a human-readable account of how the search ended.
	Message string
	// TargetFlux is the source flux being matched.
	TargetFlux float64
	// FinalFlux is the target-shape flux at the returned parameters.
	FinalFlux float64
	// Params maps each ParamNames entry to its matched value, always
	// inside its bound.
	Params map[string]float64
	// Objective is (FinalFlux − TargetFlux)² at the optimum.
	Objective float64
	// Evaluations and Iterations are totals across all starts.
	Evaluations int
	Iterations  int
}
