// File: import.go
// Role: phase P1 — copying a graph.Graph into a fresh lgraph.LGraph.
package layout

import (
	"github.com/ortholayer/layered/graph"
	"github.com/ortholayer/layered/lgraph"
)

// importGraph builds an LGraph mirroring g's nodes, ports and edges.
// Malformed edges (a port whose node is not among g.Nodes, which
// graph.Graph.AddEdge does not check) are
// skipped rather than failing the whole import, the same tolerant
// posture the original's importGraph takes toward partially-built input.
func importGraph(g *graph.Graph, spacing lgraph.Spacing, seed int64) (*lgraph.LGraph, map[*graph.Edge]lgraph.EdgeHandle) {
	lg := lgraph.New(spacing, seed)
	portHandles := make(map[*graph.Port]lgraph.PortHandle)

	for _, n := range g.Nodes {
		nh := lg.AddNode(lgraph.NodeNormal, n, n.Size)
		if ln, err := lg.Node(nh); err == nil {
			ln.PortConstraint = resolvePortConstraint(n, g)
		}
		for _, p := range n.Ports {
			defaultPortPosition(p, n)
			ph := lg.AddPort(nh, p, p.Side, p.Type)
			if lp, err := lg.Port(ph); err == nil {
				lp.Position = p.Position
				lp.Anchor = p.Anchor
			}
			portHandles[p] = ph
		}
	}

	edgeHandles := make(map[*graph.Edge]lgraph.EdgeHandle, len(g.Edges))
	for _, e := range g.Edges {
		sh, sok := portHandles[e.Source]
		th, tok := portHandles[e.Target]
		if !sok || !tok {
			continue
		}
		eh, err := lg.AddEdge(sh, th, e)
		if err != nil {
			continue
		}
		edgeHandles[e] = eh
	}

	return lg, edgeHandles
}

// resolvePortConstraint reads the "portConstraints" property (spec §6),
// preferring a per-node override over the graph-wide default, falling back
// to lgraph.PortConstraintFree when neither is set.
func resolvePortConstraint(n *graph.Node, g *graph.Graph) lgraph.PortConstraint {
	if v, ok := n.Metadata["portConstraints"]; ok {
		return parsePortConstraint(v)
	}
	if v, ok := g.Metadata["portConstraints"]; ok {
		return parsePortConstraint(v)
	}
	return lgraph.PortConstraintFree
}

func parsePortConstraint(v string) lgraph.PortConstraint {
	switch v {
	case "FIXED_POS":
		return lgraph.PortConstraintFixedPos
	case "FIXED_ORDER":
		return lgraph.PortConstraintFixedOrder
	default:
		return lgraph.PortConstraintFree
	}
}

// defaultPortPosition assigns a sensible boundary point to a port whose
// caller never positioned it explicitly: centered along the node edge its
// Side faces.
func defaultPortPosition(p *graph.Port, n *graph.Node) {
	if p.Position != (graph.Point{}) {
		return
	}
	switch p.Side {
	case graph.SideNorth:
		p.Position = graph.Point{X: n.Size.Width / 2, Y: 0}
	case graph.SideSouth:
		p.Position = graph.Point{X: n.Size.Width / 2, Y: n.Size.Height}
	case graph.SideEast:
		p.Position = graph.Point{X: n.Size.Width, Y: n.Size.Height / 2}
	case graph.SideWest:
		p.Position = graph.Point{X: 0, Y: n.Size.Height / 2}
	}
}
