// File: selfloop.go
// Role: routeSelfLoops, a scoped-down adaptation of the original's
// self_loops.cpp: pick the node side carrying the fewest existing edges,
// then bend the loop out and back along that side's outward normal.
package routing

import (
	"github.com/ortholayer/layered/graph"
	"github.com/ortholayer/layered/lgraph"
)

// routeSelfLoops finds every edge whose source and target are the same
// node and gives it a simple rectangular detour: out from the source
// anchor along the chosen side's outward normal, across, and back in to
// the target anchor.
func routeSelfLoops(g *lgraph.LGraph, dir RoutingDirection, spacing float64) error {
	for _, eh := range g.AllEdgeHandles() {
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
		if sp.Node != tp.Node {
			continue
		}

		node, err := g.Node(sp.Node)
		if err != nil {
			return err
		}
		side := chooseBestSide(g, node)

		sAnchor := sp.AbsoluteAnchor(node.Position)
		tAnchor := tp.AbsoluteAnchor(node.Position)
		nx, ny := sideNormal(side)

		p1 := graph.Point{X: sAnchor.X + nx*spacing, Y: sAnchor.Y + ny*spacing}
		p2 := graph.Point{X: tAnchor.X + nx*spacing, Y: tAnchor.Y + ny*spacing}

		e.BendPoints = []graph.Point{
			dir.Point(p1.X, p1.Y),
			dir.Point(p2.X, p2.Y),
		}
	}
	return nil
}

// chooseBestSide returns the graph.Side among the node's four sides that
// currently carries the fewest port-incident edges, the same rule the
// original's determinePlacement/chooseBestSide uses.
func chooseBestSide(g *lgraph.LGraph, node *lgraph.LNode) graph.Side {
	counts := map[graph.Side]int{
		graph.SideNorth: 0,
		graph.SideEast:  0,
		graph.SideSouth: 0,
		graph.SideWest:  0,
	}
	for _, ph := range node.Ports {
		p, err := g.Port(ph)
		if err != nil {
			continue
		}
		counts[p.Side] += len(p.Incoming) + len(p.Outgoing)
	}

	best := graph.SideNorth
	bestCount := counts[graph.SideNorth]
	for _, side := range []graph.Side{graph.SideEast, graph.SideSouth, graph.SideWest} {
		if counts[side] < bestCount {
			best = side
			bestCount = counts[side]
		}
	}
	return best
}

// sideNormal returns the outward-pointing unit normal of side in canonical
// (forward=X, cross=Y) coordinates.
func sideNormal(side graph.Side) (float64, float64) {
	switch side {
	case graph.SideNorth:
		return 0, -1
	case graph.SideSouth:
		return 0, 1
	case graph.SideEast:
		return 1, 0
	case graph.SideWest:
		return -1, 0
	default:
		return 1, 0
	}
}
