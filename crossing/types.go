// File: types.go
// Role: sentinel errors and the functional-options config for Minimize,
// mirroring the teacher's bfs/types.go BFSOptions shape.
package crossing

import (
	"context"
	"errors"
)

// ErrGraphNil is returned if a nil L-graph pointer is passed.
var ErrGraphNil = errors.New("crossing: graph is nil")

// Strategy selects the crossing-minimization algorithm. NONE leaves layer
// order exactly as layering produced it (spec §4.4's "no-op" strategy,
// useful for deterministic golden-file tests and for callers who already
// have a preferred order).
type Strategy int

const (
	LayerSweep Strategy = iota
	None
)

// Options holds parameters and callbacks to customize Minimize, following
// the teacher's BFSOptions/DefaultOptions convention.
type Options struct {
	// Ctx allows cancellation between sweep passes.
	Ctx context.Context

	// Strategy picks the algorithm; defaults to LayerSweep.
	Strategy Strategy

	// MinPasses is the guaranteed minimum number of down+up sweep pairs
	// performed before an unchanged pass is allowed to stop the search.
	// Defaults to 5 (see DESIGN.md's Open Question 1 resolution).
	MinPasses int

	// MaxPasses caps the total number of down+up sweep pairs regardless of
	// convergence, guarding against pathological inputs. Defaults to 50.
	MaxPasses int

	// OnSweep, if set, is called after every pass with the pass index
	// (0-based) and whether it changed any layer's order.
	OnSweep func(pass int, changed bool)

	err error
}

// Option configures Minimize.
type Option func(*Options)

// DefaultOptions returns an Options with sane defaults: Context.Background,
// LayerSweep strategy, MinPasses 5, MaxPasses 50, no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Strategy:  LayerSweep,
		MinPasses: 5,
		MaxPasses: 50,
		OnSweep:   func(int, bool) {},
	}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrategy selects the crossing-minimization algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithMinPasses overrides the guaranteed minimum pass count. Negative
// values are recorded as an option violation.
func WithMinPasses(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = errors.New("crossing: MinPasses must be >= 0")
			return
		}
		o.MinPasses = n
	}
}

// WithMaxPasses overrides the pass cap.
func WithMaxPasses(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = errors.New("crossing: MaxPasses must be >= 1")
			return
		}
		o.MaxPasses = n
	}
}

// WithOnSweep installs a per-pass observer hook.
func WithOnSweep(fn func(pass int, changed bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSweep = fn
		}
	}
}
