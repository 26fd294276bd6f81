package gridio

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/voxfield/fluxgrid/grid"
)

// axisSpec is one axis entry: an explicit coordinate array, or a
// linspace pair resolved against the border's extent on that axis.
type axisSpec struct {
	values   []float64
	linspace *[2]float64
}

func (a *axisSpec) UnmarshalJSON(data []byte) error {
	var arr []float64
	if err := json.Unmarshal(data, &arr); err == nil {
		a.values = arr
		return nil
	}
	var obj struct {
		Linspace []float64 `json:"linspace"`
	}
	if err := json.Unmarshal(data, &obj); err == nil && len(obj.Linspace) == 2 {
		a.linspace = &[2]float64{obj.Linspace[0], obj.Linspace[1]}
		return nil
	}
	return ErrAxisSpec
}

type axesFile struct {
	Axes []axisSpec `json:"axes"`
}

// ReadAxes loads per-axis coordinates from the JSON file at path,
// resolved against dims:
//
//	{"axes": [{"linspace": [0, 10]}, [0, 1, 4, 9]]}
func ReadAxes(path string, dims []int) ([][]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return ParseAxes(data, dims)
}

// ParseAxes decodes an axes file from raw JSON and validates the
// result against dims.
func ParseAxes(data []byte, dims []int) ([][]float64, error) {
	var f axesFile
	if err := json.Unmarshal(data, &f); err != nil {
		if errors.Is(err, ErrAxisSpec) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(f.Axes) != len(dims) {
		return nil, fmt.Errorf("%w: %d axes for %d dimensions", grid.ErrAxisCount, len(f.Axes), len(dims))
	}

	axes := make([][]float64, len(f.Axes))
	for i, spec := range f.Axes {
		if spec.linspace != nil {
			axes[i] = grid.Linspace(spec.linspace[0], spec.linspace[1], dims[i])
			continue
		}
		axes[i] = spec.values
	}
	ax, err := grid.ResolveAxes(dims, axes...)
	if err != nil {
		return nil, err
	}
	return ax, nil
}
