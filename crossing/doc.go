// Package crossing implements phase P4: permuting each layer's node order
// to reduce edge crossings, using the barycenter layer-sweep heuristic.
//
// Each sweep pass visits layers in order (a "down" pass, free layer 0 fixed,
// each subsequent layer resorted by the mean order-index of its neighbors in
// the layer above) and then in reverse (an "up" pass, mirroring against the
// layer below), exactly as ELK's layer-sweep crossing minimizer alternates
// directions. A per-layer changed bit, tracked in a github.com/soniakeys/bits
// bitset the way soniakeys-graph's search package tracks a visited set,
// records whether a pass actually reordered anything; once a full down+up
// pair leaves every bit clear the sweep stops, subject to a guaranteed
// minimum number of passes so a lucky early standstill cannot stop the
// search before it has explored enough orderings (see DESIGN.md's Open
// Question 1 resolution).
//
// Options follow the teacher's bfs package: a functional-options struct with
// a context and tunable hooks (here, a per-pass OnSweep callback useful for
// diagnostics), defaulted through DefaultOptions.
package crossing
