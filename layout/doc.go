// Package layout ties every phase package together behind one call: Layout
// imports a graph.Graph into an lgraph.LGraph (P1), runs cyclebreak,
// layering, crossing, placement and routing in sequence (P2-P6), and
// exports the result back into the same graph.Graph (P7), matching the
// original's layered_layout.cpp phase sequence and its progress-callback
// fractions (Importing 0.0, Breaking cycles 0.15, Assigning layers 0.30,
// Processing long edges 0.45, Minimizing crossings 0.60, Placing nodes
// 0.75, Routing edges 0.90, Layout complete 1.0).
//
// Configuration follows the teacher's builder package: a closed Options
// struct built through functional With* options, whose constructors
// validate and panic on meaningless input (negative spacing) rather than
// deferring the error to call time; a nil progress callback is allowed and
// simply skipped — the
// same "fail fast on a programmer error, never panic inside an algorithm"
// split the teacher's builder.BuilderOption constructors use.
package layout
