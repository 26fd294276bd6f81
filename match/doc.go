// Package match - bounded black-box flux matching.
//
// Given a source shape with a fixed intensity law and a target shape
// with a parameterized law, MatchFlux searches for parameter values
// that make the target's flux reproduce the source's. The law is a
// black box behind a Build callback, so any Distribution family works,
// including user-defined ones.
//
// Design principles:
//   - Validate everything up front; the search itself never errors.
//     Budget exhaustion and non-convergence are results, not errors.
//   - Bounds hold by construction: candidates pass through a transform
//     to an unbounded internal space (sine box for two-sided bounds,
//     square-root shift for one-sided), so no out-of-bounds parameter
//     vector is ever built or returned, even from an out-of-box guess.
//   - Deterministic: restart perturbations derive from Options.Seed via
//     per-start mixed streams; equal inputs give equal results
//     regardless of worker count.
//   - A candidate whose Build or flux fails scores +Inf and the search
//     moves on; an open target shape simply yields constant zero flux.
//
// Pipeline:
//  1. Validate problem and options (sentinel errors from types.go).
//  2. Source flux once: the matching target value.
//  3. Nelder-Mead descent (gonum optimize) on (flux − target)² over
//     the transformed space, budgeted by MaxIterations/MaxEvaluations
//     and a FunctionConverge stop on FuncTol.
//  4. Optional multi-start: Starts independent descents from guess
//     perturbations, run concurrently on Workers goroutines over
//     per-goroutine shape clones; best objective wins, ties to the
//     lowest start index.
//  5. Package Result: name→value parameters, achieved flux, status
//     message, evaluation/iteration totals.
package match
