// File: options.go
// Role: Options and its functional With* constructors.
package layout

import (
	"github.com/ortholayer/layered/crossing"
	"github.com/ortholayer/layered/routing"
)

// Options configures a Layout call. The zero value is never used directly;
// construct one via DefaultOptions and layer With* functions over it.
type Options struct {
	Direction        routing.RoutingDirection
	NodeNodeSpacing  float64
	EdgeEdgeSpacing  float64
	EdgeNodeSpacing  float64
	LayerSpacing     float64
	CrossingStrategy crossing.Strategy
	Seed             int64
}

// Option customizes Options before a Layout call.
type Option func(*Options)

// DefaultOptions returns the engine's defaults: RIGHT direction, 20-unit
// node-node and layer spacing, 10-unit edge-edge and edge-node spacing,
// the layer-sweep crossing strategy, and seed 0 (meaning "deterministic
// default seed", per lgraph.New's policy).
func DefaultOptions() Options {
	return Options{
		Direction:        routing.Right,
		NodeNodeSpacing:  20,
		EdgeEdgeSpacing:  10,
		EdgeNodeSpacing:  10,
		LayerSpacing:     20,
		CrossingStrategy: crossing.LayerSweep,
		Seed:             0,
	}
}

// WithDirection selects the layout direction.
func WithDirection(dir routing.RoutingDirection) Option {
	return func(o *Options) { o.Direction = dir }
}

// WithNodeNodeSpacing sets the minimum gap between two nodes in the same
// layer. Panics if spacing is negative.
func WithNodeNodeSpacing(spacing float64) Option {
	if spacing < 0 {
		panic("layout: WithNodeNodeSpacing negative")
	}
	return func(o *Options) { o.NodeNodeSpacing = spacing }
}

// WithEdgeEdgeSpacing sets the minimum gap between two parallel routed
// edges. Panics if spacing is negative.
func WithEdgeEdgeSpacing(spacing float64) Option {
	if spacing < 0 {
		panic("layout: WithEdgeEdgeSpacing negative")
	}
	return func(o *Options) { o.EdgeEdgeSpacing = spacing }
}

// WithEdgeNodeSpacing sets the minimum gap between a routed edge and a
// node it does not connect to. Panics if spacing is negative.
func WithEdgeNodeSpacing(spacing float64) Option {
	if spacing < 0 {
		panic("layout: WithEdgeNodeSpacing negative")
	}
	return func(o *Options) { o.EdgeNodeSpacing = spacing }
}

// WithLayerSpacing sets the minimum gap between two consecutive layers.
// Panics if spacing is negative.
func WithLayerSpacing(spacing float64) Option {
	if spacing < 0 {
		panic("layout: WithLayerSpacing negative")
	}
	return func(o *Options) { o.LayerSpacing = spacing }
}

// WithCrossingStrategy selects the crossing-minimization algorithm.
func WithCrossingStrategy(s crossing.Strategy) Option {
	return func(o *Options) { o.CrossingStrategy = s }
}

// WithSeed sets the RNG seed driving routing's cycle-detection
// tie-breaks. seed==0 uses the engine's deterministic default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}
