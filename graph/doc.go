// Package graph defines the user-facing graph model consumed and produced by
// the layered layout engine: nodes with a size and position, ports with a
// side affinity, and edges connecting one port to another.
//
// This type is deliberately minimal. It is not a general-purpose graph
// library — it carries no traversal algorithms, no import/export codecs, and
// no property-bag type beyond the handful of string-keyed entries the engine
// itself recognizes (the "portConstraints" key, which layout's importer
// reads from Node.Metadata and Graph.Metadata). Everything else — building arbitrary topologies,
// reading and writing a wire format, rendering — is the caller's concern.
//
// A Graph is mutated in place by layout.Layout: node and port positions and
// edge bend points are filled in, and Graph.Size is computed from the result.
package graph
