// Distribution construction shared by the flux and match commands.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/voxfield/fluxgrid/dist"
)

// parseParams decodes repeated --param name=value flags.
func parseParams(pairs []string) (map[string]float64, error) {
	params := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("bad --param %q: want name=value", pair)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("bad --param %q: %v", pair, err)
		}
		params[name] = v
	}
	return params, nil
}

// buildDistribution constructs a family by name. Parameter names match
// each family's reported parameter record; absent entries take the
// family defaults.
func buildDistribution(family string, params map[string]float64) (dist.Distribution, error) {
	switch family {
	case "uniform":
		return dist.NewUniform(param(params, "value", 1)), nil
	case "linear1d":
		return dist.NewLinear1D(param(params, "slope", 1), param(params, "intercept", 0)), nil
	case "normal1d":
		return dist.NewNormal1D(param(params, "mean", 0), param(params, "stddev", 1))
	case "normal2d":
		return dist.NewNormal2D(
			param(params, "meanX", 0), param(params, "meanY", 0),
			param(params, "stddevX", 1), param(params, "stddevY", 1))
	default:
		return nil, fmt.Errorf("unknown distribution family %q (have uniform, linear1d, normal1d, normal2d)", family)
	}
}

func param(params map[string]float64, name string, def float64) float64 {
	if v, ok := params[name]; ok {
		return v
	}
	return def
}
