// File: bendpoints.go
// Role: emitBendPoints, turning a pair of slotted Segments (the same
// segment on both ends for a plain routed edge, or a split segment and its
// partner for an edge whose trunk was cut by the §4.6.1 splitter) into the
// orthogonal bend points connecting its source and target anchors —
// adapted from original_source/elk-cpp's
// west_to_east_routing_strategy.cpp's calculateBendPoints.
package routing

import (
	"github.com/ortholayer/layered/graph"
	"github.com/ortholayer/layered/lgraph"
)

// emitBendPoints writes the edge eh's orthogonal route into its LEdge,
// mapped into dir's final coordinate space. sourceSeg is the segment whose
// OutPorts contains eh's source port; targetSeg is the segment whose
// InPorts contains eh's target port — the same segment for a plain route,
// or two different halves of one original segment when a split routed
// eh's source through the new partner while its target stayed on the
// original half.
//
// Bend points are only emitted for a leg whose two ends differ by more
// than straightTolerance on the cross axis: a leg that runs exactly along
// the cross coordinate it starts from needs no jog.
func emitBendPoints(g *lgraph.LGraph, eh lgraph.EdgeHandle, sourceSeg, targetSeg *Segment, dir RoutingDirection, gapStartForward, edgeNodeSpacing, edgeEdgeSpacing float64) error {
	e, err := g.Edge(eh)
	if err != nil {
		return err
	}
	sp, err := g.Port(e.Source)
	if err != nil {
		return err
	}
	tp, err := g.Port(e.Target)
	if err != nil {
		return err
	}
	sn, err := g.Node(sp.Node)
	if err != nil {
		return err
	}
	tn, err := g.Node(tp.Node)
	if err != nil {
		return err
	}

	sourceAnchor := sp.AbsoluteAnchor(sn.Position)
	targetAnchor := tp.AbsoluteAnchor(tn.Position)

	sourceLane := laneForward(gapStartForward, sourceSeg.Slot, edgeNodeSpacing, edgeEdgeSpacing)
	targetLane := laneForward(gapStartForward, targetSeg.Slot, edgeNodeSpacing, edgeEdgeSpacing)

	var bends []graph.Point
	if sourceSeg == targetSeg {
		if absF(targetAnchor.Y-sourceAnchor.Y) > straightTolerance {
			bends = append(bends,
				dir.Point(sourceLane, sourceAnchor.Y),
				dir.Point(sourceLane, targetAnchor.Y),
			)
		}
	} else {
		// eh's source was moved into sourceSeg by splitAt; targetSeg kept
		// the single synthetic link coordinate the splitter introduced, so
		// the route must jog onto that coordinate before changing lanes.
		splitY := targetSeg.Outgoing[0]
		if absF(splitY-sourceAnchor.Y) > straightTolerance {
			bends = append(bends, dir.Point(sourceLane, sourceAnchor.Y))
		}
		bends = append(bends,
			dir.Point(sourceLane, splitY),
			dir.Point(targetLane, splitY),
		)
		if absF(targetAnchor.Y-splitY) > straightTolerance {
			bends = append(bends, dir.Point(targetLane, targetAnchor.Y))
		}
	}

	e.BendPoints = bends
	return nil
}

func laneForward(gapStartForward float64, slot int, edgeNodeSpacing, edgeEdgeSpacing float64) float64 {
	return gapStartForward + edgeNodeSpacing + float64(slot)*edgeEdgeSpacing
}

// markJunctionPoints gives every edge a junction point at any port it
// shares with another edge — a true fan-out (more than one outgoing edge
// at a source port) or fan-in (more than one incoming edge at a target
// port) — matching addJunctionPointIfNecessary's intent without needing a
// separate shared-coordinate search, since a port's own Incoming/Outgoing
// lists already name every edge that meets there.
func markJunctionPoints(g *lgraph.LGraph, dir RoutingDirection) error {
	for _, nh := range g.AllNodeHandles() {
		n, err := g.Node(nh)
		if err != nil {
			return err
		}
		for _, ph := range n.Ports {
			p, err := g.Port(ph)
			if err != nil {
				return err
			}
			if len(p.Outgoing) > 1 {
				if err := addJunctionPoint(g, p, n, p.Outgoing, dir); err != nil {
					return err
				}
			}
			if len(p.Incoming) > 1 {
				if err := addJunctionPoint(g, p, n, p.Incoming, dir); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func addJunctionPoint(g *lgraph.LGraph, p *lgraph.LPort, n *lgraph.LNode, edges []lgraph.EdgeHandle, dir RoutingDirection) error {
	anchor := p.AbsoluteAnchor(n.Position)
	pt := dir.Point(anchor.X, anchor.Y)
	for _, eh := range edges {
		e, err := g.Edge(eh)
		if err != nil {
			return err
		}
		e.JunctionPoints = append(e.JunctionPoints, pt)
	}
	return nil
}
