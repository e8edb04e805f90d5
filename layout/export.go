// File: export.go
// Role: phase P7 — writing computed positions and routes back onto the
// caller's graph.Graph, matching the original's applyLayout/
// calculateGraphSize pair.
package layout

import (
	"github.com/ortholayer/layered/graph"
	"github.com/ortholayer/layered/lgraph"
	"github.com/ortholayer/layered/routing"
)

// graphPadding is added on every side of the computed bounding box, so no
// node or bend point sits flush against the exported Graph.Size edge.
const graphPadding = 12

// minGraphDim is the smallest width/height ever reported, even for a
// single-node graph with no spread of its own.
const minGraphDim = 40

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// exportGraph writes lg's node positions and edge routes back onto g, in
// opts.Direction's final coordinate space, then sets g.Size from the
// resulting padded bounding box.
func exportGraph(g *graph.Graph, lg *lgraph.LGraph, edgeHandles map[*graph.Edge]lgraph.EdgeHandle, dir routing.RoutingDirection) error {
	minX, minY := 0.0, 0.0
	maxX, maxY := 0.0, 0.0
	first := true
	extend := func(p graph.Point) {
		if first {
			minX, maxX, minY, maxY, first = p.X, p.X, p.Y, p.Y, false
			return
		}
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	nodeHandles := make(map[*graph.Node]lgraph.NodeHandle, len(g.Nodes))
	for _, nh := range lg.AllNodeHandles() {
		n, err := lg.Node(nh)
		if err != nil {
			return err
		}
		if n.Original == nil {
			continue // dummy, has no exported counterpart
		}
		nodeHandles[n.Original] = nh
	}

	for _, node := range g.Nodes {
		nh, ok := nodeHandles[node]
		if !ok {
			continue
		}
		ln, err := lg.Node(nh)
		if err != nil {
			return err
		}
		// Map both canonical corners, not just the canonical top-left one:
		// LEFT and UP negate the forward axis, so the canonical min-forward
		// corner can land on the final box's max edge rather than its min
		// edge. Taking the component-wise min/max of both mapped corners
		// keeps node.Position the box's true top-left in final space.
		c0 := dir.Point(ln.Position.X, ln.Position.Y)
		c1 := dir.Point(ln.Position.X+node.Size.Width, ln.Position.Y+node.Size.Height)
		topLeft := graph.Point{X: minF(c0.X, c1.X), Y: minF(c0.Y, c1.Y)}
		node.Position = topLeft
		extend(c0)
		extend(c1)
	}

	for _, edge := range g.Edges {
		eh, ok := edgeHandles[edge]
		if !ok {
			continue
		}
		section, err := assembleSection(lg, eh, dir)
		if err != nil {
			return err
		}
		edge.Sections = []graph.EdgeSection{section}
		extend(section.StartPoint)
		extend(section.EndPoint)
		for _, bp := range section.BendPoints {
			extend(bp)
		}
	}

	width := maxX - minX + 2*graphPadding
	height := maxY - minY + 2*graphPadding
	if width < minGraphDim {
		width = minGraphDim
	}
	if height < minGraphDim {
		height = minGraphDim
	}
	g.Size = graph.Size{Width: width, Height: height}

	shiftX := graphPadding - minX
	shiftY := graphPadding - minY
	for _, node := range g.Nodes {
		node.Position.X += shiftX
		node.Position.Y += shiftY
	}
	for _, edge := range g.Edges {
		for i := range edge.Sections {
			s := &edge.Sections[i]
			s.StartPoint.X += shiftX
			s.StartPoint.Y += shiftY
			s.EndPoint.X += shiftX
			s.EndPoint.Y += shiftY
			for j := range s.BendPoints {
				s.BendPoints[j].X += shiftX
				s.BendPoints[j].Y += shiftY
			}
			for j := range s.JunctionPoints {
				s.JunctionPoints[j].X += shiftX
				s.JunctionPoints[j].Y += shiftY
			}
		}
	}

	return nil
}

// assembleSection walks every segment in eh's group, in layer order, and
// splices their bend and junction points into one EdgeSection spanning the
// original edge's true source and target ports (spec §4.3, §4.7).
func assembleSection(lg *lgraph.LGraph, eh lgraph.EdgeHandle, dir routing.RoutingDirection) (graph.EdgeSection, error) {
	members := lg.GroupMembers(eh)
	var section graph.EdgeSection

	first, err := lg.Edge(members[0])
	if err != nil {
		return section, err
	}
	firstSrc, err := lg.Port(first.Source)
	if err != nil {
		return section, err
	}
	firstSrcNode, err := lg.Node(firstSrc.Node)
	if err != nil {
		return section, err
	}
	startAnchor := firstSrc.AbsoluteAnchor(firstSrcNode.Position)
	section.StartPoint = dir.Point(startAnchor.X, startAnchor.Y)

	last, err := lg.Edge(members[len(members)-1])
	if err != nil {
		return section, err
	}
	lastTgt, err := lg.Port(last.Target)
	if err != nil {
		return section, err
	}
	lastTgtNode, err := lg.Node(lastTgt.Node)
	if err != nil {
		return section, err
	}
	endAnchor := lastTgt.AbsoluteAnchor(lastTgtNode.Position)
	section.EndPoint = dir.Point(endAnchor.X, endAnchor.Y)

	for _, mh := range members {
		m, err := lg.Edge(mh)
		if err != nil {
			return section, err
		}
		section.BendPoints = append(section.BendPoints, m.BendPoints...)
		section.JunctionPoints = append(section.JunctionPoints, m.JunctionPoints...)
	}

	return section, nil
}
