// Package match - concurrent restart driver.
package match

import (
	"math"

	"golang.org/x/sync/errgroup"
)

// runStarts executes every descent and returns per-start outcomes.
// Start 0 departs from the exact clamped guess; start k > 0 from a
// seeded perturbation, so multi-start never loses the caller's point.
// Outcomes land in per-index slots, no locking needed, and the result
// is independent of worker scheduling.
func runStarts(p Problem, cfg config, box boxMap, guess []float64, targetFlux float64) []startOutcome {
	outcomes := make([]startOutcome, cfg.starts)
	if cfg.starts == 1 {
		outcomes[0] = runStart(p.Target.Clone(), p, cfg, box, guess, targetFlux)
		return outcomes
	}

	var g errgroup.Group
	g.SetLimit(min(cfg.workers, cfg.starts))
	for k := 0; k < cfg.starts; k++ {
		g.Go(func() error {
			tgt := p.Target.Clone()
			from := perturbGuess(k, cfg.seed, box, guess)
			outcomes[k] = runStart(tgt, p, cfg, box, from, targetFlux)
			return nil
		})
	}
	// Workers never fail; Wait is only the join point.
	_ = g.Wait()
	return outcomes
}

// perturbGuess draws start k's initial point: uniform inside finite
// boxes, Gaussian around the guess on open sides, always in box.
func perturbGuess(k int, seed int64, box boxMap, guess []float64) []float64 {
	if k == 0 {
		return guess
	}
	rng := startRNG(seed, k)
	out := make([]float64, len(guess))
	for i, t := range box.ts {
		switch t.kind {
		case transformFixed:
			out[i] = t.min
		case transformBoth:
			out[i] = t.min + rng.Float64()*(t.max-t.min)
		default:
			scale := 0.25 * math.Abs(guess[i])
			if scale < 1 {
				scale = 1
			}
			out[i] = t.clamp(guess[i] + rng.NormFloat64()*scale)
		}
	}
	return out
}
