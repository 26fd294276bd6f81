// Package shape provides tunable options and error definitions for
// Shape construction.
package shape

import (
	"errors"
	"fmt"

	"github.com/voxfield/fluxgrid/enclosure"
)

// Sentinel errors for Shape construction.
var (
	// ErrNilBorder is returned when New receives a nil border array.
	ErrNilBorder = errors.New("shape: border array must not be nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("shape: invalid option supplied")
)

// Option configures Shape behavior via functional arguments.
// An invalid Option (e.g. unknown connectivity) is recorded internally
// and surfaced as ErrOptionViolation when New is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing a Shape.
type Options struct {
	// Conn selects the neighborhood used to classify the interior.
	Conn enclosure.Connectivity

	// OnWarn receives non-fatal condition messages, such as a flux
	// query on an open shape. Default is a no-op.
	OnWarn func(msg string)

	// OnRecompute fires every time the intensity field is actually
	// resampled, i.e. on every cache miss. Default is a no-op.
	OnRecompute func()

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - face-only connectivity (diagonal wall contacts seal)
//   - no-op hooks (OnWarn, OnRecompute)
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Conn:        enclosure.ConnFaces,
		OnWarn:      func(string) {},
		OnRecompute: func() {},
		err:         nil,
	}
}

// WithConnectivity selects face-only or Moore interior classification.
// Unknown values surface as ErrOptionViolation from New.
func WithConnectivity(c enclosure.Connectivity) Option {
	return func(o *Options) {
		switch c {
		case enclosure.ConnFaces, enclosure.ConnMoore:
			o.Conn = c
		default:
			o.err = fmt.Errorf("%w: connectivity %v", ErrOptionViolation, c)
		}
	}
}

// WithOnWarn registers a callback for non-fatal condition messages.
func WithOnWarn(fn func(msg string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnWarn = fn
		}
	}
}

// WithOnRecompute registers a callback invoked on every intensity
// resampling.
func WithOnRecompute(fn func()) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRecompute = fn
		}
	}
}
