// File: types.go
// Role: visitation-state constants and the functional-options config,
// mirroring the teacher's dfs/types.go White/Gray/Black convention.
package cyclebreak

import "context"

// Visitation states for the three-color DFS.
const (
	white = iota // unvisited
	gray         // on the current recursion stack
	black        // fully explored
)

// config holds BreakCycles' optional knobs.
type config struct {
	ctx context.Context
}

// Option configures BreakCycles.
type Option func(*config)

// WithContext makes the traversal check ctx.Err() between nodes, returning
// early with ctx.Err() if it has been canceled. Defaults to
// context.Background(), i.e. no cancellation, when not supplied.
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
