// Package layered is a layered graph-drawing engine: a multi-phase pipeline
// that turns a directed graph of sized nodes with side-affine ports into
// absolute 2D coordinates for every node, every port, and an orthogonal
// bend-point sequence for every edge.
//
// The pipeline runs once per graph, in order:
//
//   - Cycle breaking        — reverse DFS back edges so the graph is a DAG
//   - Layer assignment      — partition nodes into ordered layers
//   - Crossing minimization — permute nodes within layers to reduce crossings
//   - Node placement        — assign the cross-axis coordinate per node
//   - Orthogonal routing    — turn edges into horizontal/vertical segments
//
// The engine is deterministic: the same graph and seed always produce the
// same output, and every heuristic tie-break draws from a single owned RNG
// rather than from package-level or wall-clock state.
//
// Everything is organized under dedicated subpackages:
//
//	graph/      — the user-facing graph model (nodes, ports, edges, sizes)
//	lgraph/     — the mutable intermediate L-graph the pipeline operates on
//	cyclebreak/ — phase P2: DFS-based cycle breaking
//	layering/   — phase P3: layer assignment and long-edge dummy insertion
//	crossing/   — phase P4: barycenter layer-sweep crossing minimization
//	placement/  — phase P5: port-extent-aware node placement
//	routing/    — phase P6: hyperedge segment construction and orthogonal routing
//	layout/     — phases P1/P7 plus the public Layout entry point and Options
//
// A simple diamond:
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
//
// lays out as three layers {A}, {B, C} and {D}, with B and C stacked in the
// middle layer and orthogonal edges connecting them.
//
//	go get github.com/ortholayer/layered/layout
package layered
