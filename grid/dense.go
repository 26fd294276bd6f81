package grid

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Dense is a dense N-dimensional float64 array. Intensity samplers fill
// one value per cell; integrators then reduce over it. The backing
// slice is reachable through Data for single-pass fills, so a Dense is
// mutable until its producer hands it off, after which the rest of the
// module reads it only.
type Dense struct {
	frame
	data []float64
}

// NewDense builds a zero-filled array with the given extents.
func NewDense(dims []int) (*Dense, error) {
	f, err := newFrame(dims)
	if err != nil {
		return nil, err
	}
	return &Dense{frame: f, data: make([]float64, f.total)}, nil
}

// NewDenseData builds an array over row-major data, which is copied.
// Returns ErrDataLength when len(data) differs from the cell count.
func NewDenseData(dims []int, data []float64) (*Dense, error) {
	d, err := NewDense(dims)
	if err != nil {
		return nil, err
	}
	if len(data) != d.total {
		return nil, fmt.Errorf("%w: have %d values, want %d", ErrDataLength, len(data), d.total)
	}
	copy(d.data, data)
	return d, nil
}

// At returns the value at the given coordinates, bounds-checked.
func (d *Dense) At(coords ...int) (float64, error) {
	idx, err := d.Index(coords...)
	if err != nil {
		return 0, err
	}
	return d.data[idx], nil
}

// Set stores v at the given coordinates, bounds-checked.
func (d *Dense) Set(v float64, coords ...int) error {
	idx, err := d.Index(coords...)
	if err != nil {
		return err
	}
	d.data[idx] = v
	return nil
}

// Value returns the value at flat index idx without bounds checking.
func (d *Dense) Value(idx int) float64 { return d.data[idx] }

// Data returns the live row-major backing slice. Producers write it
// once during a fill; consumers must not mutate it.
func (d *Dense) Data() []float64 { return d.data }

// Fill sets every cell to v.
func (d *Dense) Fill(v float64) {
	for i := range d.data {
		d.data[i] = v
	}
}

// Sum returns the unmasked total of all cells.
func (d *Dense) Sum() float64 { return floats.Sum(d.data) }

// Clone returns an independent deep copy.
func (d *Dense) Clone() *Dense {
	cp := &Dense{frame: d.frame, data: make([]float64, len(d.data))}
	cp.dims = d.Dims()
	cp.strides = d.Strides()
	copy(cp.data, d.data)
	return cp
}

// String summarizes the array, e.g. "grid.Dense(5×5×5, sum=12.25)".
func (d *Dense) String() string {
	var sb strings.Builder
	sb.WriteString("grid.Dense(")
	for i, n := range d.dims {
		if i > 0 {
			sb.WriteString("×")
		}
		fmt.Fprintf(&sb, "%d", n)
	}
	fmt.Fprintf(&sb, ", sum=%g)", d.Sum())
	return sb.String()
}
