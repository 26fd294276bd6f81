package grid

import "errors"

// Sentinel errors returned by grid constructors and accessors.
// Callers should match them with errors.Is.
var (
	// ErrNoDims is returned when a constructor receives an empty dims slice.
	ErrNoDims = errors.New("grid: at least one dimension required")

	// ErrBadExtent is returned when any per-axis extent is smaller than 1.
	ErrBadExtent = errors.New("grid: every extent must be at least 1")

	// ErrTooLarge is returned when the product of extents overflows the
	// addressable flat-index range.
	ErrTooLarge = errors.New("grid: cell count overflows addressable range")

	// ErrDataLength is returned when supplied backing data does not contain
	// exactly one value per cell.
	ErrDataLength = errors.New("grid: data length does not match cell count")

	// ErrCellValue is returned when a border cell holds anything other
	// than 0 or 1.
	ErrCellValue = errors.New("grid: border cells must be 0 or 1")

	// ErrRagged is returned by the nested-slice constructors when inner
	// slices disagree on length.
	ErrRagged = errors.New("grid: nested slices must share a common length")

	// ErrIndexOutOfBounds is returned by coordinate accessors when any
	// coordinate falls outside [0, extent).
	ErrIndexOutOfBounds = errors.New("grid: index out of bounds")

	// ErrAxisCount is returned when the number of coordinate axes does not
	// equal the array rank.
	ErrAxisCount = errors.New("grid: coordinate axes count must equal rank")

	// ErrAxisLength is returned when a coordinate axis length does not
	// equal the extent of its dimension.
	ErrAxisLength = errors.New("grid: coordinate axis length must equal its extent")
)
