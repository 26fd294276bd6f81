// Scenario files for the match command, read with viper.
//
// A scenario is a YAML document:
//
//	name: ring-uniform
//	source:
//	  border: source.json
//	  dist: uniform
//	  params: {value: 2.5}
//	  coords: coords.json        # optional axes file
//	target:
//	  border: target.json
//	  coords: coords.json
//	match:
//	  family: uniform
//	  params: [value]            # tuned parameters, vector order
//	  guess: [1.0]
//	  base: {}                   # untuned family parameters
//	  bounds:
//	    value: [0, 100]          # [min, max]; [v] pins; absent: unbounded
//	options:
//	  starts: 4
//	  seed: 7
//
// File paths are resolved relative to the scenario file.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/voxfield/fluxgrid/dist"
	"github.com/voxfield/fluxgrid/internal/gridio"
	"github.com/voxfield/fluxgrid/match"
	"github.com/voxfield/fluxgrid/shape"
)

type scenario struct {
	Name    string          `mapstructure:"name"`
	Source  scenarioSource  `mapstructure:"source"`
	Target  scenarioTarget  `mapstructure:"target"`
	Match   scenarioMatch   `mapstructure:"match"`
	Options scenarioOptions `mapstructure:"options"`

	baseDir string
}

type scenarioSource struct {
	Border string             `mapstructure:"border"`
	Dist   string             `mapstructure:"dist"`
	Params map[string]float64 `mapstructure:"params"`
	Coords string             `mapstructure:"coords"`
}

type scenarioTarget struct {
	Border string `mapstructure:"border"`
	Coords string `mapstructure:"coords"`
}

type scenarioMatch struct {
	Family string               `mapstructure:"family"`
	Params []string             `mapstructure:"params"`
	Guess  []float64            `mapstructure:"guess"`
	Base   map[string]float64   `mapstructure:"base"`
	Bounds map[string][]float64 `mapstructure:"bounds"`
}

type scenarioOptions struct {
	MaxIterations  int     `mapstructure:"max_iterations"`
	MaxEvaluations int     `mapstructure:"max_evaluations"`
	FuncTol        float64 `mapstructure:"func_tol"`
	Starts         int     `mapstructure:"starts"`
	Workers        int     `mapstructure:"workers"`
	Seed           int64   `mapstructure:"seed"`
}

// loadScenario reads and decodes one scenario file.
func loadScenario(path string) (*scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var sc scenario
	if err := v.Unmarshal(&sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	sc.baseDir = filepath.Dir(path)
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &sc, nil
}

// problem assembles the match problem and options this scenario
// describes.
func (sc *scenario) problem() (match.Problem, match.Options, error) {
	var p match.Problem

	source, sourceAxes, err := sc.loadSide(sc.Source.Border, sc.Source.Coords, "source")
	if err != nil {
		return p, match.Options{}, err
	}
	sourceDist, err := buildDistribution(sc.Source.Dist, sc.Source.Params)
	if err != nil {
		return p, match.Options{}, fmt.Errorf("scenario source: %w", err)
	}
	target, targetAxes, err := sc.loadSide(sc.Target.Border, sc.Target.Coords, "target")
	if err != nil {
		return p, match.Options{}, err
	}

	bounds, err := sc.bounds()
	if err != nil {
		return p, match.Options{}, err
	}

	family := sc.Match.Family
	tuned := slices.Clone(sc.Match.Params)
	base := sc.Match.Base

	p = match.Problem{
		Source:     source,
		SourceDist: sourceDist,
		SourceAxes: sourceAxes,
		Target:     target,
		TargetAxes: targetAxes,
		Build: func(x []float64) (dist.Distribution, error) {
			params := make(map[string]float64, len(base)+len(tuned))
			for name, value := range base {
				params[name] = value
			}
			for i, name := range tuned {
				params[name] = x[i]
			}
			return buildDistribution(family, params)
		},
		ParamNames:   tuned,
		InitialGuess: sc.Match.Guess,
		Bounds:       bounds,
	}
	opts := match.Options{
		MaxIterations:  sc.Options.MaxIterations,
		MaxEvaluations: sc.Options.MaxEvaluations,
		FuncTol:        sc.Options.FuncTol,
		Starts:         sc.Options.Starts,
		Workers:        sc.Options.Workers,
		Seed:           sc.Options.Seed,
	}
	return p, opts, nil
}

// loadSide loads one side's border and optional coordinates.
func (sc *scenario) loadSide(borderPath, coordsPath, side string) (*shape.Shape, [][]float64, error) {
	if borderPath == "" {
		return nil, nil, fmt.Errorf("scenario: %s.border is required", side)
	}
	border, err := gridio.ReadBorder(sc.resolve(borderPath))
	if err != nil {
		return nil, nil, fmt.Errorf("scenario %s: %w", side, err)
	}
	s, err := shape.New(border, shape.WithOnWarn(func(msg string) {
		warnColor.Fprintln(os.Stderr, msg)
	}))
	if err != nil {
		return nil, nil, fmt.Errorf("scenario %s: %w", side, err)
	}
	var axes [][]float64
	if coordsPath != "" {
		axes, err = gridio.ReadAxes(sc.resolve(coordsPath), s.Dims())
		if err != nil {
			return nil, nil, fmt.Errorf("scenario %s: %w", side, err)
		}
	}
	return s, axes, nil
}

// bounds maps the scenario's per-name bound specs onto the tuned
// parameter order.
func (sc *scenario) bounds() ([]match.Bound, error) {
	if len(sc.Match.Bounds) == 0 {
		return nil, nil
	}
	for name := range sc.Match.Bounds {
		if !slices.Contains(sc.Match.Params, name) {
			return nil, fmt.Errorf("scenario: bound for unknown parameter %q", name)
		}
	}
	bounds := make([]match.Bound, len(sc.Match.Params))
	for i, name := range sc.Match.Params {
		spec, ok := sc.Match.Bounds[name]
		if !ok {
			bounds[i] = match.Unbounded()
			continue
		}
		switch len(spec) {
		case 1:
			bounds[i] = match.Fixed(spec[0])
		case 2:
			bounds[i] = match.Between(spec[0], spec[1])
		default:
			return nil, fmt.Errorf("scenario: bound for %s needs [value] or [min, max], got %d entries", name, len(spec))
		}
	}
	return bounds, nil
}

func (sc *scenario) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(sc.baseDir, path)
}
