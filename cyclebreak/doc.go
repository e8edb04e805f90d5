// Package cyclebreak implements phase P2 of the layout pipeline: finding
// the back edges of a depth-first search of the L-graph (not necessarily a
// minimum feedback set) and reversing them in place so
// layering (P3) can always assume a DAG.
//
// The detector is the three-color depth-first search the teacher's dfs
// package uses for cycle enumeration (White/Gray/Back-edge), simplified
// here to its single responsibility: the first time a Gray→Gray back edge
// is found, that edge is reversed immediately and the search continues as
// if it had always pointed the other way, rather than collecting every
// cycle up front and reconciling them afterward. Reversal happens through
// lgraph.LGraph.ReverseEdge, which only flips a Reversed flag, so the
// original direction survives for P7 to draw the arrowhead correctly
// (spec §4.2).
package cyclebreak
