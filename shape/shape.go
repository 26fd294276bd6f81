package shape

import (
	"github.com/voxfield/fluxgrid/dist"
	"github.com/voxfield/fluxgrid/enclosure"
	"github.com/voxfield/fluxgrid/grid"
)

// openFluxWarning is delivered through OnWarn when flux is requested
// on a shape that encloses nothing.
const openFluxWarning = "shape is not closed: flux is ill-defined, returning 0"

// intensityCache is the single cache slot: the last sampled field and
// the fingerprint it answers for. Replaced wholesale on miss, so the
// cache always holds one coherent (fingerprint, field) pair.
type intensityCache struct {
	fp    Fingerprint
	field *grid.Dense
}

// Shape is a border array with derived enclosure state and a cached
// intensity field. Zero shared mutability: the border is immutable,
// the interior is computed once, and the intensity slot belongs to
// this instance alone.
//
// A Shape is not safe for concurrent use. For parallel evaluation,
// force the interior once (IsClosed or Flux) and give each goroutine
// its own Clone.
type Shape struct {
	border *grid.Binary
	opts   Options

	interiorDone bool
	interior     *grid.Mask
	closed       bool

	cache *intensityCache
}

// New wraps a border array. The array is shared, not copied: a
// grid.Binary is immutable, so the Shape's caches can never be
// invalidated from outside. Returns ErrNilBorder for a nil array and
// ErrOptionViolation for invalid options.
func New(border *grid.Binary, opts ...Option) (*Shape, error) {
	if border == nil {
		return nil, ErrNilBorder
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Shape{border: border, opts: o}, nil
}

// From2D builds a Shape straight from nested 0/1 rows.
func From2D(rows [][]int, opts ...Option) (*Shape, error) {
	b, err := grid.From2D(rows)
	if err != nil {
		return nil, err
	}
	return New(b, opts...)
}

// From3D builds a Shape straight from nested 0/1 planes.
func From3D(planes [][][]int, opts ...Option) (*Shape, error) {
	b, err := grid.From3D(planes)
	if err != nil {
		return nil, err
	}
	return New(b, opts...)
}

// Rank returns the border's dimensionality.
func (s *Shape) Rank() int { return s.border.Rank() }

// Dims returns the border's per-axis extents.
func (s *Shape) Dims() []int { return s.border.Dims() }

// Border returns the underlying immutable border array.
func (s *Shape) Border() *grid.Binary { return s.border }

// ensureInterior classifies the interior on first use. New validated
// the border and connectivity, so classification cannot fail here.
func (s *Shape) ensureInterior() {
	if s.interiorDone {
		return
	}
	in, err := enclosure.Interior(s.border, enclosure.Options{Conn: s.opts.Conn})
	if err != nil {
		panic("shape: interior classification failed on validated inputs: " + err.Error())
	}
	s.interior = in
	s.closed = in.Count() > 0
	s.interiorDone = true
}

// IsClosed reports whether the border seals off at least one cell.
// Computed once, then served from the Shape.
func (s *Shape) IsClosed() bool {
	s.ensureInterior()
	return s.closed
}

// Interior returns the enclosed-cell mask. The mask is owned by the
// Shape (and its clones); treat it as read-only.
func (s *Shape) Interior() *grid.Mask {
	s.ensureInterior()
	return s.interior
}

// FillIntensity returns the per-cell intensity field of d over the
// shape's cells. Omitted axes default to integer cell indices;
// supplied axes must match the border's extents.
//
// The field is cached: a repeated call with an identical distribution
// identity and identical axes returns the cached array without
// resampling. Any change of name, parameter values, rank or axis
// coordinates changes the fingerprint and triggers a recompute (and
// the OnRecompute hook). A failed sampling leaves the previous cache
// entry in place.
func (s *Shape) FillIntensity(d dist.Distribution, axes ...[]float64) (*grid.Dense, error) {
	if d == nil {
		return nil, dist.ErrNilDistribution
	}
	ax, err := grid.ResolveAxes(s.border.Dims(), axes...)
	if err != nil {
		return nil, err
	}
	return s.fill(d, ax)
}

// fill serves from the cache slot or resamples on fingerprint change.
func (s *Shape) fill(d dist.Distribution, ax grid.Axes) (*grid.Dense, error) {
	fp := fingerprint(d, ax)
	if c := s.cache; c != nil && c.fp == fp {
		return c.field, nil
	}
	field, err := dist.Sample(d, ax)
	if err != nil {
		return nil, err
	}
	s.opts.OnRecompute()
	s.cache = &intensityCache{fp: fp, field: field}
	return field, nil
}

// Flux integrates the intensity of d over the enclosed interior:
// the sum of field values at interior cells.
//
// An open shape is not an error. It warns through OnWarn and yields 0,
// so callers can probe shapes whose closure they do not know yet.
// Sampling problems (nil distribution, rank mismatch, bad axes) do
// fail, and they fail on this call rather than later.
func (s *Shape) Flux(d dist.Distribution, axes ...[]float64) (float64, error) {
	if d == nil {
		return 0, dist.ErrNilDistribution
	}
	s.ensureInterior()
	if !s.closed {
		s.opts.OnWarn(openFluxWarning)
		return 0, nil
	}
	ax, err := grid.ResolveAxes(s.border.Dims(), axes...)
	if err != nil {
		return 0, err
	}
	field, err := s.fill(d, ax)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for i, n := 0, field.Len(); i < n; i++ {
		if s.interior.Bit(i) {
			total += field.Value(i)
		}
	}
	return total, nil
}

// Clone returns a Shape sharing the immutable border, the options and
// any interior already computed, with an empty intensity cache. This
// is the unit of parallelism: clone once per goroutine and each fills
// its own cache. Hooks carry over and run on whichever goroutine
// triggers them.
func (s *Shape) Clone() *Shape {
	cp := *s
	cp.cache = nil
	return &cp
}
