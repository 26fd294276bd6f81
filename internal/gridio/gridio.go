// Package gridio loads border arrays and axis coordinates from JSON
// files for the fluxgrid CLI.
//
// A border file carries either nested arrays, whose nesting depth
// defines the rank:
//
//	{"cells": [[1,1,1],[1,0,1],[1,1,1]]}
//
// or a flat row-major form with explicit extents:
//
//	{"dims": [3,3], "flat": [1,1,1,1,0,1,1,1,1]}
//
// Loaders return a complete value or an error, never both; cell and
// geometry violations surface as the grid package's sentinels.
package gridio

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/voxfield/fluxgrid/grid"
)

var (
	// ErrRead indicates the file could not be read.
	ErrRead = errors.New("gridio: cannot read file")
	// ErrParse indicates the file is not valid JSON.
	ErrParse = errors.New("gridio: invalid JSON")
	// ErrBorderForm indicates a border file with neither (nor both of)
	// the nested and flat forms.
	ErrBorderForm = errors.New("gridio: border file needs cells, or dims and flat")
	// ErrAxisSpec indicates an axis entry that is neither an array nor
	// a linspace spec.
	ErrAxisSpec = errors.New("gridio: axis must be an array of numbers or {\"linspace\": [lo, hi]}")
)

type borderFile struct {
	Cells json.RawMessage `json:"cells"`
	Dims  []int           `json:"dims"`
	Flat  []float64       `json:"flat"`
}

// ReadBorder loads a border array from the JSON file at path.
func ReadBorder(path string) (*grid.Binary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return ParseBorder(data)
}

// ParseBorder decodes a border file from raw JSON.
func ParseBorder(data []byte) (*grid.Binary, error) {
	var f borderFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	hasCells := len(f.Cells) > 0 && string(f.Cells) != "null"
	hasFlat := f.Dims != nil || f.Flat != nil
	switch {
	case hasCells && hasFlat:
		return nil, fmt.Errorf("%w: both forms given", ErrBorderForm)
	case hasCells:
		return parseNested(f.Cells)
	case f.Dims != nil && f.Flat != nil:
		cells := make([]uint8, len(f.Flat))
		for i, v := range f.Flat {
			if v != 0 && v != 1 {
				return nil, fmt.Errorf("%w: flat[%d] = %v", grid.ErrCellValue, i, v)
			}
			cells[i] = uint8(v)
		}
		return grid.NewBinary(f.Dims, cells)
	default:
		return nil, ErrBorderForm
	}
}

// parseNested walks nested cell arrays: the first chain of first
// elements fixes the extents, then one recursive pass flattens
// row-major, rejecting ragged rows and non-0/1 values.
func parseNested(raw json.RawMessage) (*grid.Binary, error) {
	var root any
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	var dims []int
	for probe := root; ; {
		arr, ok := probe.([]any)
		if !ok {
			break
		}
		dims = append(dims, len(arr))
		if len(arr) == 0 {
			break
		}
		probe = arr[0]
	}
	if len(dims) == 0 {
		return nil, fmt.Errorf("%w: cells is not an array", ErrBorderForm)
	}

	total := 1
	for _, d := range dims {
		total *= d
	}
	cells := make([]uint8, 0, total)

	var flatten func(node any, depth int) error
	flatten = func(node any, depth int) error {
		if depth == len(dims) {
			num, ok := node.(float64)
			if !ok {
				return fmt.Errorf("%w: value at depth %d is %T", grid.ErrRagged, depth, node)
			}
			if num != 0 && num != 1 {
				return fmt.Errorf("%w: %v", grid.ErrCellValue, num)
			}
			cells = append(cells, uint8(num))
			return nil
		}
		arr, ok := node.([]any)
		if !ok {
			return fmt.Errorf("%w: depth %d is %T, want array", grid.ErrRagged, depth, node)
		}
		if len(arr) != dims[depth] {
			return fmt.Errorf("%w: depth %d has %d entries, want %d", grid.ErrRagged, depth, len(arr), dims[depth])
		}
		for _, child := range arr {
			if err := flatten(child, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := flatten(root, 0); err != nil {
		return nil, err
	}
	return grid.NewBinary(dims, cells)
}
