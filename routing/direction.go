// File: direction.go
// Role: RoutingDirection, the parametric strategy generalizing forward/
// cross axis mapping to all four layout directions.
package routing

import "github.com/ortholayer/layered/graph"

// RoutingDirection maps the engine's canonical (forward, cross) coordinate
// pair — forward growing from layer to layer, cross stacking within a
// layer — onto a concrete graph.Point. The canonical coordinates are
// exactly what placement computed (Position.X=forward, Position.Y=cross,
// the RIGHT orientation); every other direction is a linear remapping of
// the same two numbers, so routing's segment/slot math never needs a
// direction-specific code path.
type RoutingDirection struct {
	Name string

	// Point converts a (forward, cross) pair into a graph.Point in the
	// direction's final coordinate space.
	Point func(forward, cross float64) graph.Point

	// ForwardSide and CrossLowSide/CrossHighSide name which graph.Side a
	// port must face to be, respectively, the exit side toward the next
	// layer and the two cross-axis sides a node presents within a layer.
	ForwardSide   graph.Side
	CrossLowSide  graph.Side
	CrossHighSide graph.Side
}

// Right is the canonical direction: layers grow left to right, the cross
// axis grows top to bottom.
var Right = RoutingDirection{
	Name:          "RIGHT",
	Point:         func(forward, cross float64) graph.Point { return graph.Point{X: forward, Y: cross} },
	ForwardSide:   graph.SideEast,
	CrossLowSide:  graph.SideNorth,
	CrossHighSide: graph.SideSouth,
}

// Left mirrors Right across the cross axis: layers grow right to left.
var Left = RoutingDirection{
	Name:          "LEFT",
	Point:         func(forward, cross float64) graph.Point { return graph.Point{X: -forward, Y: cross} },
	ForwardSide:   graph.SideWest,
	CrossLowSide:  graph.SideNorth,
	CrossHighSide: graph.SideSouth,
}

// Down swaps the forward and cross axes relative to Right: layers grow top
// to bottom, the cross axis grows left to right.
var Down = RoutingDirection{
	Name:          "DOWN",
	Point:         func(forward, cross float64) graph.Point { return graph.Point{X: cross, Y: forward} },
	ForwardSide:   graph.SideSouth,
	CrossLowSide:  graph.SideWest,
	CrossHighSide: graph.SideEast,
}

// Up mirrors Down: layers grow bottom to top.
var Up = RoutingDirection{
	Name:          "UP",
	Point:         func(forward, cross float64) graph.Point { return graph.Point{X: cross, Y: -forward} },
	ForwardSide:   graph.SideNorth,
	CrossLowSide:  graph.SideWest,
	CrossHighSide: graph.SideEast,
}

// ByName returns the built-in RoutingDirection matching name
// ("RIGHT"/"LEFT"/"DOWN"/"UP"), defaulting to Right if unrecognized.
func ByName(name string) RoutingDirection {
	switch name {
	case "LEFT":
		return Left
	case "DOWN":
		return Down
	case "UP":
		return Up
	default:
		return Right
	}
}
