// Package grid provides dense N-dimensional arrays for voxelized flux
// analysis. It supports:
//
//   - Binary — an immutable border array whose cells are exactly 0 or 1
//   - Mask   — a boolean array marking classified cells (e.g. interior)
//   - Dense  — a float64 array holding sampled intensity values
//   - Axes   — per-axis 1D coordinate arrays with default integer indices
//
// All three array kinds share one geometry model: extents per axis
// ("dims"), row-major strides, and a flat backing slice. The last axis
// varies fastest, so Index and Coords are exact inverses and neighbor
// steps along axis d are ±Strides()[d] in flat space.
//
// Construction deep-copies caller data; arrays never alias user slices.
// Accessors that take coordinates are bounds-checked and return sentinel
// errors; flat-index accessors are unchecked and meant for hot loops that
// iterate 0..Len().
package grid
