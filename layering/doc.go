// Package layering implements phase P3: assigning every L-node a layer
// index and inserting a chain of NodeLongEdgeDummy nodes on every edge that
// would otherwise span more than one layer.
//
// Layer assignment uses the longest-path algorithm: a post-order DFS (the
// same White/Gray/Black traversal and ctx-cancellation convention the
// teacher's dfs.TopologicalSort uses) produces a reverse topological order,
// then each node's layer is the maximum of zero and one more than every
// predecessor's layer. This places every node as close to its sources as
// its constraints allow, matching spec §4.3's requirement that no edge
// point backward across layers once P2 has run.
package layering
