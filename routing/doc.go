// Package routing implements phase P6: turning every L-edge into an
// orthogonal sequence of bend points between its source and target ports.
//
// The routing strategy is generalized into a single parametric
// RoutingDirection (see direction.go) that maps a "forward axis" (the
// direction layers grow in) and a "cross axis" (the direction nodes stack
// within a layer) onto concrete X/Y deltas. The original this engine is
// grounded on (original_source/elk-cpp's orthogonal routing generator) only
// ever implements WEST_TO_EAST and explicitly throws for the other three —
// this package resolves that gap by building the whole pipeline against the
// RoutingDirection abstraction from the start, so RIGHT, LEFT, DOWN and UP
// share one implementation (see DESIGN.md's Open Question 2 resolution).
//
// Within each inter-layer gap, the ports of edges crossing that gap are
// merged transitively into Segments, so a fan-out or fan-in hyperedge
// becomes one shared Segment spanning all its cross-axis connection
// coordinates. Segments that would
// have to cross each other are given a dependency edge recording which one
// must be routed closer to the gap's "low" side; RouteEdges breaks any
// cycles those dependencies form (using the same randomized
// Eades-Lin-Smyth heuristic the original's hyper_edge_cycle_detector.cpp
// uses, seeded from the L-graph's single owned RNG) and then assigns each
// segment a routing slot by topological order. Slot 0 lies EdgeNode
// spacing past the source layer's edge of the gap, and each further slot
// lies EdgeEdge spacing beyond the previous one.
//
// Self-loops — edges whose source and target are the same node — are
// routed separately (see selfloop.go), placed on whichever free side of the
// node currently carries the fewest other edges, the same heuristic the
// original's self_loops.cpp uses for chooseBestSide.
package routing
