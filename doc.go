// Package fluxgrid is an in-memory toolkit for voxelized flux analysis:
// it decides whether an N-dimensional binary border encloses an interior,
// integrates an intensity distribution over that interior ("flux"), and
// fits distribution parameters so one shape's flux reproduces another's.
//
// 🚀 What is fluxgrid?
//
//	A small, deterministic numerical library that brings together:
//		• Dense N-dimensional arrays: borders, masks and fields in flat row-major storage
//		• Enclosure detection: boundary flood fill with face or Moore connectivity
//		• Intensity fields: uniform, linear and Gaussian laws plus custom callables,
//		  sampled in one pass over a coordinate grid and cached by fingerprint
//		• Flux integration: interior-masked summation with a non-fatal warning
//		  channel for open shapes
//		• Parameter matching: bounded, derivative-free search (Nelder–Mead) that
//		  reproduces a target flux, with deterministic parallel restarts
//
// ✨ Why choose fluxgrid?
//
//   - Explicit contracts – sentinel errors, validated construction, no panics on input
//   - Reproducible – seeded restarts, no time-based randomness anywhere
//   - Cache-aware – interior masks and intensity arrays computed once per fingerprint
//   - Extensible – hooks (OnWarn, OnRecompute, OnEvaluate…) for observation and tests
//
// Everything is organized under five subpackages plus a CLI:
//
//	grid/      — dense N-dimensional arrays, coordinate axes, index mapping
//	enclosure/ — interior-mask computation over binary borders
//	dist/      — intensity distributions and vectorized grid sampling
//	shape/     — Shape: border + cached interior + cached intensity + Flux
//	match/     — flux parameter matching over bounded parameter boxes
//	cmd/       — the fluxgrid command: flux, match, runs
//
// Quick ASCII example (a 2D border enclosing four cells):
//
//	1 1 1 1
//	1 0 0 1
//	1 0 0 1
//	1 1 1 1
//
//	flux under Uniform(1.0) = 4
//
// Dive into the per-package docs for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/voxfield/fluxgrid
package fluxgrid
