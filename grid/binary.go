package grid

import (
	"fmt"
	"strings"
)

// Binary is a dense N-dimensional 0/1 array. Within fluxgrid it carries
// border geometry: 1-cells are walls, 0-cells are open space.
//
// A Binary is immutable after construction. Constructors deep-copy and
// validate their input, and no accessor exposes the backing slice, so a
// Binary may be shared freely across goroutines and cached against.
type Binary struct {
	frame
	cells []uint8
}

// NewBinary builds an N-dimensional border array from row-major cells.
// The last axis varies fastest. It returns:
//
//   - ErrNoDims / ErrBadExtent / ErrTooLarge for invalid geometry,
//   - ErrDataLength when len(cells) differs from the cell count,
//   - ErrCellValue when any cell is neither 0 nor 1.
//
// cells is copied; the caller keeps ownership of its slice.
func NewBinary(dims []int, cells []uint8) (*Binary, error) {
	f, err := newFrame(dims)
	if err != nil {
		return nil, err
	}
	if len(cells) != f.total {
		return nil, fmt.Errorf("%w: have %d cells, want %d", ErrDataLength, len(cells), f.total)
	}
	cp := make([]uint8, f.total)
	for i, v := range cells {
		if v > 1 {
			return nil, fmt.Errorf("%w: cell %d holds %d", ErrCellValue, i, v)
		}
		cp[i] = v
	}
	return &Binary{frame: f, cells: cp}, nil
}

// FromBools builds a border array from a row-major bool slice, true
// meaning wall. Geometry validation matches NewBinary; the cell values
// themselves cannot be invalid.
func FromBools(dims []int, cells []bool) (*Binary, error) {
	f, err := newFrame(dims)
	if err != nil {
		return nil, err
	}
	if len(cells) != f.total {
		return nil, fmt.Errorf("%w: have %d cells, want %d", ErrDataLength, len(cells), f.total)
	}
	cp := make([]uint8, f.total)
	for i, v := range cells {
		if v {
			cp[i] = 1
		}
	}
	return &Binary{frame: f, cells: cp}, nil
}

// From2D builds a rank-2 Binary from nested rows, the shape literals
// read naturally in source and tests. All rows must share one length
// (ErrRagged otherwise) and every value must be 0 or 1.
func From2D(rows [][]int) (*Binary, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrNoDims
	}
	w := len(rows[0])
	cells := make([]uint8, 0, len(rows)*w)
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRagged, r, len(row), w)
		}
		for c, v := range row {
			if v != 0 && v != 1 {
				return nil, fmt.Errorf("%w: cell (%d,%d) holds %d", ErrCellValue, r, c, v)
			}
			cells = append(cells, uint8(v))
		}
	}
	return NewBinary([]int{len(rows), w}, cells)
}

// From3D builds a rank-3 Binary from nested planes, rows and cells.
// Mirrors From2D for volumetric literals.
func From3D(planes [][][]int) (*Binary, error) {
	if len(planes) == 0 || len(planes[0]) == 0 || len(planes[0][0]) == 0 {
		return nil, ErrNoDims
	}
	h, w := len(planes[0]), len(planes[0][0])
	cells := make([]uint8, 0, len(planes)*h*w)
	for p, plane := range planes {
		if len(plane) != h {
			return nil, fmt.Errorf("%w: plane %d has %d rows, want %d", ErrRagged, p, len(plane), h)
		}
		for r, row := range plane {
			if len(row) != w {
				return nil, fmt.Errorf("%w: plane %d row %d has %d cells, want %d", ErrRagged, p, r, len(row), w)
			}
			for c, v := range row {
				if v != 0 && v != 1 {
					return nil, fmt.Errorf("%w: cell (%d,%d,%d) holds %d", ErrCellValue, p, r, c, v)
				}
				cells = append(cells, uint8(v))
			}
		}
	}
	return NewBinary([]int{len(planes), h, w}, cells)
}

// At returns the cell at the given coordinates, bounds-checked.
func (b *Binary) At(coords ...int) (uint8, error) {
	idx, err := b.Index(coords...)
	if err != nil {
		return 0, err
	}
	return b.cells[idx], nil
}

// Cell returns the cell at flat index idx without bounds checking.
// idx must lie in [0, Len()).
func (b *Binary) Cell(idx int) uint8 { return b.cells[idx] }

// Count returns the number of 1-cells (wall cells).
func (b *Binary) Count() int {
	n := 0
	for _, v := range b.cells {
		n += int(v)
	}
	return n
}

// Clone returns an independent deep copy.
func (b *Binary) Clone() *Binary {
	cp := &Binary{frame: b.frame, cells: make([]uint8, len(b.cells))}
	cp.dims = b.Dims()
	cp.strides = b.Strides()
	copy(cp.cells, b.cells)
	return cp
}

// String summarizes the array for logs and debugging, e.g.
// "grid.Binary(7×7, 24 walls)".
func (b *Binary) String() string {
	var sb strings.Builder
	sb.WriteString("grid.Binary(")
	for d, n := range b.dims {
		if d > 0 {
			sb.WriteString("×")
		}
		fmt.Fprintf(&sb, "%d", n)
	}
	fmt.Fprintf(&sb, ", %d walls)", b.Count())
	return sb.String()
}
