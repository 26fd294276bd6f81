// Package match - parameter-space transforms for bound enforcement.
//
// The optimizer walks an unbounded internal space; every candidate it
// proposes is mapped through these transforms before touching user
// code. The mapping is surjective onto the box, so bounds hold by
// construction rather than by penalty terms:
//
//   - two-sided [a,b]:  x = a + (b−a)·(sin u + 1)/2
//   - lower-only [a,∞): x = a − 1 + √(u²+1)
//   - upper-only (−∞,b]: x = b + 1 − √(u²+1)
//   - unbounded: identity
//   - pinned (a == b): excluded from the internal space entirely
//
// A final clamp guards the box edges against floating-point rounding.
package match

import "math"

// transformKind classifies how one parameter maps to internal space.
type transformKind int

const (
	transformIdentity transformKind = iota
	transformLower
	transformUpper
	transformBoth
	transformFixed
)

// paramTransform maps a single parameter between its bounded external
// value and the optimizer's internal coordinate.
type paramTransform struct {
	kind     transformKind
	min, max float64
}

// newTransform classifies a (normalized) bound.
func newTransform(b Bound) paramTransform {
	b = b.normalized()
	hasMin := !math.IsInf(b.Min, -1)
	hasMax := !math.IsInf(b.Max, 1)
	switch {
	case hasMin && hasMax && b.Min == b.Max:
		return paramTransform{kind: transformFixed, min: b.Min, max: b.Max}
	case hasMin && hasMax:
		return paramTransform{kind: transformBoth, min: b.Min, max: b.Max}
	case hasMin:
		return paramTransform{kind: transformLower, min: b.Min, max: b.Max}
	case hasMax:
		return paramTransform{kind: transformUpper, min: b.Min, max: b.Max}
	default:
		return paramTransform{kind: transformIdentity, min: b.Min, max: b.Max}
	}
}

// clamp projects an external value into the bound. Comparisons against
// ±Inf sides are no-ops, so one body serves every kind.
func (t paramTransform) clamp(x float64) float64 {
	if t.kind == transformFixed {
		return t.min
	}
	if x < t.min {
		return t.min
	}
	if x > t.max {
		return t.max
	}
	return x
}

// external maps an internal coordinate to its bounded value.
func (t paramTransform) external(u float64) float64 {
	switch t.kind {
	case transformFixed:
		return t.min
	case transformBoth:
		return t.clamp(t.min + (t.max-t.min)*(math.Sin(u)+1)/2)
	case transformLower:
		return t.clamp(t.min - 1 + math.Sqrt(u*u+1))
	case transformUpper:
		return t.clamp(t.max + 1 - math.Sqrt(u*u+1))
	default:
		return u
	}
}

// internal inverts external. x is clamped first, so out-of-box guesses
// project to the nearest feasible point instead of producing NaN.
func (t paramTransform) internal(x float64) float64 {
	x = t.clamp(x)
	switch t.kind {
	case transformFixed:
		return 0
	case transformBoth:
		arg := 2*(x-t.min)/(t.max-t.min) - 1
		if arg < -1 {
			arg = -1
		}
		if arg > 1 {
			arg = 1
		}
		return math.Asin(arg)
	case transformLower:
		d := x - t.min + 1 // d ≥ 1 after clamp, so the root argument is ≥ 0
		return math.Sqrt(d*d - 1)
	case transformUpper:
		d := t.max - x + 1
		return math.Sqrt(d*d - 1)
	default:
		return x
	}
}

// boxMap aggregates per-parameter transforms and hides pinned
// parameters from the optimizer: internal vectors span free
// dimensions only.
type boxMap struct {
	ts   []paramTransform
	free []int
}

func newBoxMap(bounds []Bound) boxMap {
	m := boxMap{ts: make([]paramTransform, len(bounds))}
	for i, b := range bounds {
		m.ts[i] = newTransform(b)
		if m.ts[i].kind != transformFixed {
			m.free = append(m.free, i)
		}
	}
	return m
}

// freeDims returns the number of optimized dimensions.
func (m boxMap) freeDims() int { return len(m.free) }

// clampAll projects a full external vector into the box.
func (m boxMap) clampAll(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, t := range m.ts {
		out[i] = t.clamp(x[i])
	}
	return out
}

// toInternal converts a full external vector to the internal vector
// over free dimensions.
func (m boxMap) toInternal(x []float64) []float64 {
	u := make([]float64, len(m.free))
	for k, i := range m.free {
		u[k] = m.ts[i].internal(x[i])
	}
	return u
}

// toExternal expands an internal vector to the full external vector,
// filling pinned parameters with their fixed values.
func (m boxMap) toExternal(u []float64) []float64 {
	x := make([]float64, len(m.ts))
	for i, t := range m.ts {
		if t.kind == transformFixed {
			x[i] = t.min
		}
	}
	for k, i := range m.free {
		x[i] = m.ts[i].external(u[k])
	}
	return x
}
