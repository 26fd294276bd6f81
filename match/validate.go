// Package match - pre-flight validation.
//
// Everything that can be rejected cheaply is rejected here, before the
// first flux evaluation: nil shapes and callbacks, parameter-record
// geometry, inverted bounds, non-finite guesses, axis/target fit, and
// one probe call of Build on the clamped guess. A Problem that passes
// validation cannot fail structurally mid-search; later failures score
// +Inf and the descent routes around them.
package match

import (
	"fmt"
	"math"

	"github.com/voxfield/fluxgrid/dist"
	"github.com/voxfield/fluxgrid/grid"
)

// validateProblem checks the static structure of p and returns the
// tuned parameter count.
//
// Stages:
//  1. presence - Source, Target, SourceDist, Build
//  2. names    - non-empty, unique
//  3. vectors  - guess and bounds lengths match names, guess finite
//  4. bounds   - min ≤ max, pins finite
//  5. axes     - TargetAxes fit the target geometry
func validateProblem(p Problem) (int, error) {
	if p.Source == nil || p.Target == nil {
		return 0, ErrNilShape
	}
	if p.SourceDist == nil {
		return 0, dist.ErrNilDistribution
	}
	if p.Build == nil {
		return 0, ErrNilBuild
	}

	n := len(p.ParamNames)
	if n == 0 {
		return 0, ErrNoParams
	}
	seen := make(map[string]struct{}, n)
	for _, name := range p.ParamNames {
		if name == "" {
			return 0, fmt.Errorf("%w: empty name", ErrParamName)
		}
		if _, dup := seen[name]; dup {
			return 0, fmt.Errorf("%w: %q listed twice", ErrParamName, name)
		}
		seen[name] = struct{}{}
	}

	if len(p.InitialGuess) != n {
		return 0, fmt.Errorf("%w: %d names, %d guesses", ErrDimensionMismatch, n, len(p.InitialGuess))
	}
	for i, g := range p.InitialGuess {
		if math.IsNaN(g) || math.IsInf(g, 0) {
			return 0, fmt.Errorf("%w: %s = %v", ErrBadGuess, p.ParamNames[i], g)
		}
	}
	if p.Bounds != nil && len(p.Bounds) != n {
		return 0, fmt.Errorf("%w: %d names, %d bounds", ErrDimensionMismatch, n, len(p.Bounds))
	}
	for i, b := range p.Bounds {
		nb := b.normalized()
		if nb.Min > nb.Max {
			return 0, fmt.Errorf("%w: %s has min %v > max %v", ErrBadBound, p.ParamNames[i], nb.Min, nb.Max)
		}
		if nb.Min == nb.Max && math.IsInf(nb.Min, 0) {
			return 0, fmt.Errorf("%w: %s pinned at %v", ErrBadBound, p.ParamNames[i], nb.Min)
		}
	}

	if _, err := grid.ResolveAxes(p.Target.Dims(), p.TargetAxes...); err != nil {
		return 0, err
	}
	return n, nil
}

// probeBuild runs Build once on the clamped guess so family binding
// mistakes surface as errors instead of a silently unreachable search.
func probeBuild(p Problem, guess []float64) error {
	d, err := p.Build(guess)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuild, err)
	}
	if d == nil {
		return fmt.Errorf("%w: returned nil distribution", ErrBuild)
	}
	if r := d.Rank(); r != dist.RankAny && r != p.Target.Rank() {
		return fmt.Errorf("match: built distribution: %w: rank %d vs target rank %d",
			dist.ErrRankMismatch, r, p.Target.Rank())
	}
	return nil
}
