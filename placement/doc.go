// Package placement implements phase P5: assigning every L-node an absolute
// position once layering (P3) has fixed its layer and crossing (P4) has
// fixed its order within that layer.
//
// Coordinates are always computed in the engine's canonical orientation —
// layers growing along X (the forward axis), nodes within a layer stacked
// along Y (the cross axis) — the way layout's RIGHT direction is defined;
// layout's exporter remaps into the caller's chosen direction afterward, so
// this package never needs to know about Direction at all.
//
// Placement redistributes each node's ports along their side per its
// portConstraints setting, then runs in two passes per layer the way the
// original's assignCoordinates two-pass port-extent precomputation works:
// the first pass measures how far each node's north/south ports protrude
// beyond its own bounding box, recording the layer-wide maxima on
// lgraph.Layer; the second pass stacks nodes top to bottom, widening the
// gap between two nodes by their protruding ports' extents so connecting
// edges never have to double back across a neighboring node to reach a
// port that sticks out past it.
//
// Placement only seeds layer 0's X at 0; every later layer's X is finished
// by routing.RouteEdges once it knows how many routing slots each
// inter-layer gap actually needs (spec §4.6 step 7) — the reason this
// package takes no LayerMin-only horizontal pass of its own.
package placement
