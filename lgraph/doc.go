// Package lgraph defines the L-graph: the mutable intermediate graph
// representation the layout pipeline (cyclebreak, layering, crossing,
// placement, routing) operates on, distinct from the user-facing
// graph.Graph. It is built once by layout's importer (P1) and discarded
// once layout's exporter (P7) has copied the results back.
//
// All L-entities — L-nodes, L-ports, L-edges — live in arenas owned by a
// single *LGraph value and are addressed by compact integer handles rather
// than pointers, so the parent/child and port/edge back-references the
// original data model describes (spec §3, §9) never form a reference cycle
// and never need a garbage collector to reason about. This mirrors the
// teacher's core.Graph, which keeps vertices and edges in owning maps
// rather than letting Vertex and Edge hold pointers to each other; here the
// relationships are denser (ports own edge lists, edges reference two
// ports), so maps become slices indexed by handle for O(1) access without
// hashing.
//
// LGraph is not safe for concurrent use — spec §5 establishes the engine as
// single-threaded and synchronous, so unlike core.Graph's per-field RWMutex
// pair, LGraph carries no locks at all; one goroutine owns one LGraph for
// its entire lifetime.
package lgraph
