// File: layout.go
// Role: Layout, the single entry point orchestrating every phase.
package layout

import (
	"github.com/ortholayer/layered/crossing"
	"github.com/ortholayer/layered/cyclebreak"
	"github.com/ortholayer/layered/graph"
	"github.com/ortholayer/layered/layering"
	"github.com/ortholayer/layered/lgraph"
	"github.com/ortholayer/layered/placement"
	"github.com/ortholayer/layered/routing"
)

// ProgressFunc receives the name and completion fraction (0.0-1.0) of the
// phase Layout just started, matching layered_layout.cpp's progress-monitor
// calls. May be nil.
type ProgressFunc func(phase string, fraction float64)

// dummySize is the placeholder box every long-edge dummy node reports; it
// has no visual footprint of its own (spec §4.3) but a non-zero Size keeps
// placement's spacing arithmetic well-defined.
var dummySize = graph.Size{Width: 1, Height: 1}

// Layout runs every phase of the pipeline over g in place: cycle breaking,
// layering, long-edge splitting, crossing minimization, node placement and
// edge routing, then writes the result back onto g's nodes and edges and
// sets g.Size. progress, if non-nil, is invoked once per phase boundary.
func Layout(g *graph.Graph, progress ProgressFunc, opts ...Option) error {
	if g == nil {
		return ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	report := func(phase string, fraction float64) {
		if progress != nil {
			progress(phase, fraction)
		}
	}

	report("Importing", 0.0)
	spacing := lgraph.Spacing{
		NodeNode: o.NodeNodeSpacing,
		EdgeEdge: o.EdgeEdgeSpacing,
		EdgeNode: o.EdgeNodeSpacing,
		LayerMin: o.LayerSpacing,
	}
	lg, edgeHandles := importGraph(g, spacing, o.Seed)
	if lg.NumNodes() == 0 {
		report("Layout complete", 1.0)
		return nil
	}

	report("Breaking cycles", 0.15)
	if _, err := cyclebreak.BreakCycles(lg); err != nil {
		return err
	}

	report("Assigning layers", 0.30)
	if err := layering.AssignLayers(lg); err != nil {
		return err
	}

	report("Processing long edges", 0.45)
	if err := layering.InsertLongEdgeDummies(lg, dummySize); err != nil {
		return err
	}

	report("Minimizing crossings", 0.60)
	if err := crossing.Minimize(lg, crossing.WithStrategy(o.CrossingStrategy)); err != nil {
		return err
	}

	report("Placing nodes", 0.75)
	if err := placement.Place(lg); err != nil {
		return err
	}

	report("Routing edges", 0.90)
	if err := routing.RouteEdges(lg, routing.WithDirection(o.Direction)); err != nil {
		return err
	}

	if err := exportGraph(g, lg, edgeHandles, o.Direction); err != nil {
		return err
	}
	report("Layout complete", 1.0)
	return nil
}
