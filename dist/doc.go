// Package dist defines scalar intensity distributions over physical
// coordinates and samples them onto dense cell grids.
//
// 🚀 What is a distribution here?
//
//	A rule assigning one non-negative-or-not scalar to every point in
//	space: constant background, linear gradient, Gaussian beam profile.
//	Shapes pair a distribution with their coordinate axes to obtain a
//	per-cell intensity field, which flux integration then reduces.
//
// ✨ Key features:
//   - fixed variants: Uniform, Linear1D, Normal1D, Normal2D
//     (Gaussians via gonum distuv)
//   - Func for custom laws with an explicit name/rank/parameter record
//   - OnAxes projection: apply a low-rank law along chosen axes of a
//     higher-rank grid (a 1D profile swept across a volume)
//   - Sample fills a grid.Dense in one pass; separable distributions
//     take an outer-product fast path over per-axis factor arrays
//
// ⚙️ Usage:
//
//	import "github.com/voxfield/fluxgrid/dist"
//
//	beam, err := dist.NewNormal1D(0, 2.5)      // mean 0, stddev 2.5
//	if err != nil { ... }
//
//	along, err := dist.OnAxes(beam, 3, 2)      // sweep along axis 2 of a volume
//	if err != nil { ... }
//
//	field, err := dist.Sample(along, axes)     // one value per cell
//
// Identity:
//
//	Name(), Params() and Rank() form a stable identity record. Cached
//	consumers fingerprint it to decide whether a previously sampled
//	field is still valid, so two distributions that agree on the record
//	and the axes must sample identically.
//
// Performance:
//
//   - Sample, separable path: O(Σ extents) evaluations + O(C) copies
//   - Sample, general path:   O(C) evaluations (C = cell count)
//
// Errors are sentinel values (ErrBadStdDev, ErrNilFunc, ErrBadRank,
// ErrAxisProjection, ErrRankMismatch); match with errors.Is.
package dist
