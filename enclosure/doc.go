// Package enclosure classifies the open cells of an N-dimensional
// border array into exterior and interior by flood fill.
//
// What:
//
//   - Interior computes the mask of open cells sealed off from the
//     array boundary by wall cells.
//   - IsClosed reports whether the walls enclose anything at all.
//   - Connectivity selects how the fill leaks: across faces only
//     (ConnFaces) or through diagonals as well (ConnMoore).
//
// Why:
//
//   - Voxelized vessels: decide whether a scanned hull holds volume.
//   - Flux accounting: restrict field integration to enclosed cells.
//   - Mask generation: derive region-of-interest masks from outlines.
//
// How:
//
//	The fill seeds an explicit FIFO queue with every open cell on a
//	bounding face and walks open-cell neighbors from there. Whatever
//	the walk never reaches is interior. No recursion is used, so depth
//	equals zero regardless of volume size.
//
// Complexity:
//
//   - Interior / IsClosed: O(C×K) time, O(C) memory
//     (C = cell count, K = neighbors per cell: 2×N or 3^N−1).
//
// Options:
//
//   - Options.Conn: ConnFaces (default) or ConnMoore. A diagonal gap
//     between two walls stops a ConnFaces fill but lets ConnMoore
//     through, so Moore never classifies more cells as interior.
//
// Errors:
//
//   - ErrNilGrid: no border array was supplied.
//   - ErrConnectivity: unknown Connectivity value.
package enclosure
