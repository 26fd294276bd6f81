// Package shape ties the pieces together: a border array, its
// enclosure classification, a cached per-cell intensity field and flux
// integration over the enclosed interior.
//
// 🚀 What is a Shape?
//
//	An N-dimensional voxel outline (walls = 1, space = 0) plus derived
//	state. A Shape answers three questions: does it enclose anything
//	(IsClosed), what does a given intensity law look like over its
//	cells (FillIntensity), and how much of that intensity falls inside
//	it (Flux).
//
// ✨ Key features:
//   - lazy, cached interior classification (computed once per Shape)
//   - single-slot intensity cache keyed by a SHA-256 fingerprint of
//     the distribution identity and the coordinate axes: repeated flux
//     queries with unchanged inputs never resample
//   - open shapes warn and yield zero flux instead of failing, so
//     probing code can treat closure as data, not as an error
//   - Clone for parallel evaluation: clones share the immutable border
//     and computed interior, each with its own intensity cache
//
// ⚙️ Usage:
//
//	s, err := shape.From2D([][]int{
//	  {1, 1, 1},
//	  {1, 0, 1},
//	  {1, 1, 1},
//	})
//	if err != nil { ... }
//
//	total, err := s.Flux(dist.NewUniform(1))
//	// total == 1: one interior cell at intensity 1
//
// Hooks:
//
//	WithOnWarn observes non-fatal conditions (open-shape flux);
//	WithOnRecompute fires on every intensity resampling, which makes
//	cache behavior observable without exposing cache internals.
//
// A Shape is not safe for concurrent use; share work by cloning after
// forcing the interior (one IsClosed or Flux call). Hooks carry over
// into clones and run on whichever goroutine triggers them.
package shape
