package grid

import "math"

// maxCells bounds the flat cell count so stride arithmetic can never
// overflow int, even after a ±stride neighbor step.
const maxCells = math.MaxInt / 2

// frame is the geometry shared by every array kind in this package:
// per-axis extents, row-major strides and the total cell count.
// It is embedded by value, so Binary, Mask and Dense all promote the
// same index math.
type frame struct {
	dims    []int
	strides []int
	total   int
}

// newFrame validates dims and precomputes strides.
//
// Strides are row-major: the last axis has stride 1 and each earlier
// axis multiplies by the extents after it. As a consequence
// Index(c...) = Σ c[d]·strides[d] and Coords is its exact inverse.
func newFrame(dims []int) (frame, error) {
	if len(dims) == 0 {
		return frame{}, ErrNoDims
	}
	d := make([]int, len(dims))
	copy(d, dims)

	s := make([]int, len(d))
	total := 1
	for i := len(d) - 1; i >= 0; i-- {
		if d[i] < 1 {
			return frame{}, ErrBadExtent
		}
		if total > maxCells/d[i] {
			return frame{}, ErrTooLarge
		}
		s[i] = total
		total *= d[i]
	}
	return frame{dims: d, strides: s, total: total}, nil
}

// Rank returns the number of dimensions.
func (f *frame) Rank() int { return len(f.dims) }

// Len returns the total number of cells.
func (f *frame) Len() int { return f.total }

// Dims returns a copy of the per-axis extents.
func (f *frame) Dims() []int {
	d := make([]int, len(f.dims))
	copy(d, f.dims)
	return d
}

// Strides returns a copy of the row-major strides.
func (f *frame) Strides() []int {
	s := make([]int, len(f.strides))
	copy(s, f.strides)
	return s
}

// Extent returns the size of axis d.
func (f *frame) Extent(d int) int { return f.dims[d] }

// SameDims reports whether dims equals this frame's extents, axis by axis.
func (f *frame) SameDims(dims []int) bool {
	if len(dims) != len(f.dims) {
		return false
	}
	for i, n := range f.dims {
		if dims[i] != n {
			return false
		}
	}
	return true
}

// Index converts per-axis coordinates to a flat index.
// Every coordinate is bounds-checked; on violation it returns
// ErrIndexOutOfBounds.
//
// Complexity: O(rank).
func (f *frame) Index(coords ...int) (int, error) {
	if len(coords) != len(f.dims) {
		return 0, ErrIndexOutOfBounds
	}
	idx := 0
	for d, c := range coords {
		if c < 0 || c >= f.dims[d] {
			return 0, ErrIndexOutOfBounds
		}
		idx += c * f.strides[d]
	}
	return idx, nil
}

// Coords converts a flat index back to per-axis coordinates, writing
// into dst when it has sufficient capacity and allocating otherwise.
// idx must lie in [0, Len()); it is not checked, as this runs inside
// hot traversal loops.
func (f *frame) Coords(idx int, dst []int) []int {
	if cap(dst) < len(f.dims) {
		dst = make([]int, len(f.dims))
	}
	dst = dst[:len(f.dims)]
	for d := range f.dims {
		dst[d] = idx / f.strides[d] % f.dims[d]
	}
	return dst
}

// OnBoundary reports whether the cell at flat index idx touches the
// array boundary, i.e. any of its coordinates equals 0 or extent-1.
func (f *frame) OnBoundary(idx int) bool {
	for d, n := range f.dims {
		c := idx / f.strides[d] % n
		if c == 0 || c == n-1 {
			return true
		}
	}
	return false
}
