// File: types.go
// Role: sentinel errors and the functional-options config for RouteEdges.
package routing

import "errors"

// ErrGraphNil is returned if a nil L-graph pointer is passed to RouteEdges.
var ErrGraphNil = errors.New("routing: graph is nil")

// Options configures RouteEdges.
type Options struct {
	Direction RoutingDirection
}

// Option configures RouteEdges.
type Option func(*Options)

// DefaultOptions returns Options defaulted to the Right direction.
func DefaultOptions() Options {
	return Options{Direction: Right}
}

// WithDirection selects the routing direction.
func WithDirection(dir RoutingDirection) Option {
	return func(o *Options) { o.Direction = dir }
}
