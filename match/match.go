// Package match - unified entry point for flux matching.
//
// Contracts:
//   - Problem is validated before the first flux evaluation; structural
//     mistakes return sentinel errors, they never start a search.
//   - Bounds hold by construction: Build only ever sees in-box vectors.
//   - Same Problem, Options and Seed give the same Result, regardless
//     of Workers.
//
// Complexity: O(starts × evals × C) flux evaluations dominate, where C
// is the target cell count; everything else is bookkeeping.
package match

import (
	"fmt"
	"math"
	"runtime"

	"gonum.org/v1/gonum/optimize"

	"github.com/voxfield/fluxgrid/shape"
)

const (
	defaultIterPerParam = 200
	defaultEvalPerParam = 500
	defaultFuncTol      = 1e-10

	// convergenceWindow is how many iterations the best objective must
	// stagnate within FuncTol before the converger calls it done.
	convergenceWindow = 50
)

// config is Options with every default resolved.
type config struct {
	maxIter    int
	maxEval    int
	funcTol    float64
	starts     int
	workers    int
	seed       int64
	onEvaluate func(x []float64, flux, objective float64)
}

func resolveOptions(o Options, nParams int) (config, error) {
	if o.MaxIterations < 0 || o.MaxEvaluations < 0 || o.Starts < 0 || o.Workers < 0 {
		return config{}, fmt.Errorf("%w: budgets and counts must be non-negative", ErrBadOptions)
	}
	if o.FuncTol < 0 || math.IsNaN(o.FuncTol) {
		return config{}, fmt.Errorf("%w: FuncTol must be a non-negative number", ErrBadOptions)
	}
	c := config{
		maxIter:    o.MaxIterations,
		maxEval:    o.MaxEvaluations,
		funcTol:    o.FuncTol,
		starts:     o.Starts,
		workers:    o.Workers,
		seed:       o.Seed,
		onEvaluate: o.OnEvaluate,
	}
	if c.maxIter == 0 {
		c.maxIter = defaultIterPerParam * nParams
	}
	if c.maxEval == 0 {
		c.maxEval = defaultEvalPerParam * nParams
	}
	if c.funcTol == 0 {
		c.funcTol = defaultFuncTol
	}
	if c.starts == 0 {
		c.starts = 1
	}
	if c.workers == 0 {
		c.workers = runtime.GOMAXPROCS(0)
	}
	return c, nil
}

// MatchFlux searches for parameters whose built distribution, fluxed
// through Target, reproduces the flux of SourceDist through Source.
//
// Pipeline:
//  1. validate the problem, resolve option defaults
//  2. clamp the guess into the box, probe Build once
//  3. compute the reference flux through Source
//  4. run starts (concurrently when Workers allows), each a bounded
//     Nelder-Mead descent from a seeded perturbation of the guess
//  5. package the best start, re-evaluating at its point for FinalFlux
func MatchFlux(p Problem, opts Options) (Result, error) {
	n, err := validateProblem(p)
	if err != nil {
		return Result{}, err
	}
	cfg, err := resolveOptions(opts, n)
	if err != nil {
		return Result{}, err
	}

	bounds := p.Bounds
	if bounds == nil {
		bounds = make([]Bound, n)
		for i := range bounds {
			bounds[i] = Unbounded()
		}
	}
	box := newBoxMap(bounds)
	guess := box.clampAll(p.InitialGuess)
	if err := probeBuild(p, append([]float64(nil), guess...)); err != nil {
		return Result{}, err
	}

	targetFlux, err := p.Source.Flux(p.SourceDist, p.SourceAxes...)
	if err != nil {
		return Result{}, err
	}

	// Every parameter pinned: nothing to search, evaluate the one point.
	if box.freeDims() == 0 {
		flux, objective, ok := evaluate(p.Target, p, guess, targetFlux)
		msg := "all parameters fixed; evaluated the pinned point"
		if !ok {
			msg = "all parameters fixed; evaluation at the pinned point failed"
		}
		return packageResult(p, startOutcome{
			x:         guess,
			flux:      flux,
			objective: objective,
			evals:     1,
		}, targetFlux, ok, msg), nil
	}

	// Force the interior classification once, so clones share it.
	p.Target.IsClosed()

	outcomes := runStarts(p, cfg, box, guess, targetFlux)

	best := 0
	totalEvals, totalIters := 0, 0
	for k := range outcomes {
		totalEvals += outcomes[k].evals
		totalIters += outcomes[k].iters
		if outcomes[k].objective < outcomes[best].objective {
			best = k
		}
	}
	out := outcomes[best]
	out.evals = totalEvals
	out.iters = totalIters

	finalFlux, _, ok := evaluate(p.Target, p, out.x, targetFlux)
	out.flux = finalFlux
	success := ok && out.err == nil && statusConverged(out.status) &&
		!math.IsNaN(out.objective) && !math.IsInf(out.objective, 1)

	return packageResult(p, out, targetFlux, success, statusMessage(out)), nil
}

// startOutcome is one descent's bookkeeping.
type startOutcome struct {
	x         []float64
	flux      float64
	objective float64
	status    optimize.Status
	err       error
	evals     int
	iters     int
}

// evaluate builds and integrates one candidate. Any failure scores
// +Inf so the search routes around it instead of aborting.
func evaluate(tgt *shape.Shape, p Problem, x []float64, targetFlux float64) (flux, objective float64, ok bool) {
	d, err := p.Build(x)
	if err != nil || d == nil {
		return math.NaN(), math.Inf(1), false
	}
	f, err := tgt.Flux(d, p.TargetAxes...)
	if err != nil {
		return math.NaN(), math.Inf(1), false
	}
	diff := f - targetFlux
	return f, diff * diff, true
}

// runStart descends from one starting point on its own target clone.
func runStart(tgt *shape.Shape, p Problem, cfg config, box boxMap, from []float64, targetFlux float64) startOutcome {
	obj := func(u []float64) float64 {
		x := box.toExternal(u)
		flux, objective, _ := evaluate(tgt, p, x, targetFlux)
		if cfg.onEvaluate != nil {
			cfg.onEvaluate(append([]float64(nil), x...), flux, objective)
		}
		return objective
	}

	problem := optimize.Problem{Func: obj}
	settings := &optimize.Settings{
		MajorIterations: cfg.maxIter,
		FuncEvaluations: cfg.maxEval,
		Converger: &optimize.FunctionConverge{
			Absolute:   cfg.funcTol,
			Iterations: convergenceWindow,
		},
	}

	res, err := optimize.Minimize(problem, box.toInternal(from), settings, &optimize.NelderMead{})

	out := startOutcome{err: err, objective: math.Inf(1)}
	if res != nil {
		out.x = box.toExternal(res.X)
		out.objective = res.F
		out.status = res.Status
		out.evals = res.Stats.FuncEvaluations
		out.iters = res.Stats.MajorIterations
	}
	if out.x == nil {
		out.x = append([]float64(nil), from...)
	}
	return out
}

func statusConverged(s optimize.Status) bool {
	switch s {
	case optimize.Success,
		optimize.FunctionThreshold,
		optimize.FunctionConvergence,
		optimize.GradientThreshold,
		optimize.StepConvergence,
		optimize.MethodConverge:
		return true
	default:
		return false
	}
}

func statusMessage(out startOutcome) string {
	switch {
	case out.err != nil:
		return "optimizer error: " + out.err.Error()
	case math.IsInf(out.objective, 1):
		return "no feasible candidate: every evaluation failed"
	case statusConverged(out.status):
		return fmt.Sprintf("converged (%v)", out.status)
	default:
		return fmt.Sprintf("stopped before convergence (%v)", out.status)
	}
}

func packageResult(p Problem, out startOutcome, targetFlux float64, success bool, msg string) Result {
	params := make(map[string]float64, len(p.ParamNames))
	for i, name := range p.ParamNames {
		params[name] = out.x[i]
	}
	return Result{
		Success:     success,
		Message:     msg,
		TargetFlux:  targetFlux,
		FinalFlux:   out.flux,
		Params:      params,
		Objective:   out.objective,
		Evaluations: out.evals,
		Iterations:  out.iters,
	}
}
