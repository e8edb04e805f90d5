// File: routing.go
// Role: RouteEdges, the phase P6 entry point orchestrating, per inter-layer
// gap: hyperedge segment construction (step 1), critical/regular dependency
// typing (step 2), critical-only and all-dependency cycle breaking with
// segment splitting (steps 3-4), topological slot numbering (step 5),
// band-width-aware placement of the next layer (step 7), bend-point
// emission (step 6) and junction marking — adapted from
// original_source/elk-cpp's OrthogonalRoutingGenerator::routeEdges.
package routing

import (
	"github.com/ortholayer/layered/lgraph"
)

// RouteEdges computes an orthogonal bend-point route for every edge in g.
// g must already have layers, order, and every node's Y position assigned
// (P3-P5); RouteEdges itself finishes each layer's X position, since the
// forward gap between two layers depends on how many routing slots the
// gap's hyperedges actually need.
func RouteEdges(g *lgraph.LGraph, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	bySegment, err := buildSegments(g)
	if err != nil {
		return err
	}

	for gap := 0; gap < len(g.Layers)-1; gap++ {
		if err := routeGap(g, bySegment[gap], gap, o.Direction); err != nil {
			return err
		}
	}

	if err := markJunctionPoints(g, o.Direction); err != nil {
		return err
	}
	return routeSelfLoops(g, o.Direction, g.Spacing.EdgeNode)
}

// routeGap resolves cycles and assigns slots for one inter-layer gap, grows
// the next layer's starting X by the resulting band width (spec §4.6 step
// 7), and emits every gap edge's bend points.
func routeGap(g *lgraph.LGraph, segs []*Segment, gap int, dir RoutingDirection) error {
	var straight, routed []*Segment
	for _, s := range segs {
		if s.isStraight() {
			straight = append(straight, s)
		} else {
			routed = append(routed, s)
		}
	}

	criticalConflictThreshold := criticalConflictThresholdFactor * minimumHorizontalSegmentDistance(routed)
	conflictThreshold := conflictThresholdFactor * g.Spacing.EdgeEdge
	buildDependencies(routed, criticalConflictThreshold, g.Spacing.EdgeEdge)

	rng := deriveRNG(g.RNG, uint64(gap))
	breakCriticalCycles(&routed, rng, criticalConflictThreshold, conflictThreshold)
	breakNonCriticalCycles(routed, rng)
	assignSlots(routed)

	gapStart, err := layerForwardExtent(g, gap)
	if err != nil {
		return err
	}
	width := bandWidth(slotCount(routed), g.Spacing)
	if err := setLayerForward(g, gap+1, gapStart+width); err != nil {
		return err
	}

	all := make([]*Segment, 0, len(straight)+len(routed))
	all = append(all, straight...)
	all = append(all, routed...)

	inOwner := make(map[lgraph.PortHandle]*Segment, len(all))
	for _, s := range all {
		for _, ph := range s.InPorts {
			inOwner[ph] = s
		}
	}

	for _, s := range all {
		for _, ph := range s.OutPorts {
			p, err := g.Port(ph)
			if err != nil {
				return err
			}
			for _, oh := range p.Outgoing {
				e, err := g.Edge(oh)
				if err != nil {
					return err
				}
				targetSeg, ok := inOwner[e.Target]
				if !ok {
					continue
				}
				if err := emitBendPoints(g, oh, s, targetSeg, dir, gapStart, g.Spacing.EdgeNode, g.Spacing.EdgeEdge); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// bandWidth is spec §4.6 step 7's formula: enough lanes for slotCount
// routing slots, each edgeEdgeSpacing apart and padded by edgeNodeSpacing
// on both sides, floored at the configured minimum layer spacing.
func bandWidth(slotCount int, sp lgraph.Spacing) float64 {
	width := sp.LayerMin
	if slotCount > 0 {
		computed := float64(slotCount-1)*sp.EdgeEdge + 2*sp.EdgeNode
		if computed > width {
			width = computed
		}
	}
	return width
}

// layerForwardExtent returns how far layer layerIndex's nodes extend along
// the forward axis: the rightmost edge of any node in the layer.
func layerForwardExtent(g *lgraph.LGraph, layerIndex int) (float64, error) {
	extent := 0.0
	for _, nh := range g.Layers[layerIndex].Nodes {
		n, err := g.Node(nh)
		if err != nil {
			return 0, err
		}
		right := n.Position.X + n.Size.Width
		if right > extent {
			extent = right
		}
	}
	return extent, nil
}

// setLayerForward assigns every node in layerIndex the same forward-axis
// position, a no-op if layerIndex is out of range (the last layer has no
// successor gap to grow it from).
func setLayerForward(g *lgraph.LGraph, layerIndex int, x float64) error {
	if layerIndex < 0 || layerIndex >= len(g.Layers) {
		return nil
	}
	for _, nh := range g.Layers[layerIndex].Nodes {
		n, err := g.Node(nh)
		if err != nil {
			return err
		}
		n.Position.X = x
	}
	return nil
}
