// File: types.go
// Role: visitation-state constants, sentinel errors, and the functional
// options config for AssignLayers.
package layering

import (
	"context"
	"errors"
)

const (
	white = iota
	gray
	black
)

// ErrCycleDetected indicates the L-graph still contains a cycle; callers
// must run cyclebreak.BreakCycles first.
var ErrCycleDetected = errors.New("layering: cycle detected; run cyclebreak first")

type config struct {
	ctx context.Context
}

// Option configures AssignLayers.
type Option func(*config)

// WithContext makes the traversal check ctx.Err() between nodes. Defaults
// to context.Background().
func WithContext(ctx context.Context) Option {
	return func(c *config) { c.ctx = ctx }
}

func buildConfig(opts []Option) config {
	c := config{ctx: context.Background()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
