package grid

import (
	"fmt"
	"strings"
)

// Mask is a dense N-dimensional boolean array. Classifiers produce one
// to mark a cell subset, such as the enclosed interior of a border
// array. A returned Mask is treated as read-only by everything in this
// module; SetBit exists for the classifiers that build it.
type Mask struct {
	frame
	bits []bool
}

// NewMask builds an all-false mask with the given extents.
func NewMask(dims []int) (*Mask, error) {
	f, err := newFrame(dims)
	if err != nil {
		return nil, err
	}
	return &Mask{frame: f, bits: make([]bool, f.total)}, nil
}

// At returns the bit at the given coordinates, bounds-checked.
func (m *Mask) At(coords ...int) (bool, error) {
	idx, err := m.Index(coords...)
	if err != nil {
		return false, err
	}
	return m.bits[idx], nil
}

// Bit returns the bit at flat index idx without bounds checking.
func (m *Mask) Bit(idx int) bool { return m.bits[idx] }

// SetBit sets the bit at flat index idx without bounds checking.
func (m *Mask) SetBit(idx int, v bool) { m.bits[idx] = v }

// Count returns the number of set bits.
//
// Complexity: O(Len).
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.bits {
		if v {
			n++
		}
	}
	return n
}

// Clone returns an independent deep copy.
func (m *Mask) Clone() *Mask {
	cp := &Mask{frame: m.frame, bits: make([]bool, len(m.bits))}
	cp.dims = m.Dims()
	cp.strides = m.Strides()
	copy(cp.bits, m.bits)
	return cp
}

// String summarizes the mask, e.g. "grid.Mask(7×7, 9 set)".
func (m *Mask) String() string {
	var sb strings.Builder
	sb.WriteString("grid.Mask(")
	for d, n := range m.dims {
		if d > 0 {
			sb.WriteString("×")
		}
		fmt.Fprintf(&sb, "%d", n)
	}
	fmt.Fprintf(&sb, ", %d set)", m.Count())
	return sb.String()
}
