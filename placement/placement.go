// File: placement.go
// Role: Place, the phase P5 entry point, plus its two coordinate-computing
// passes.
package placement

import (
	"sort"

	"github.com/ortholayer/layered/graph"
	"github.com/ortholayer/layered/lgraph"
)

// Place computes every node's Position in the engine's canonical RIGHT
// orientation: X grows layer by layer, Y stacks nodes within a layer.
//
// Step 1: redistribute each node's ports along their side per its
// portConstraints setting (spec §6).
// Step 2: measure each layer's north/south port protrusion and record it on
// lgraph.Layer.
// Step 3: stack each layer's nodes along Y, widening gaps by protruding
// port extents.
// Step 4: seed layer 0 at X=0; every later layer's X is finished by
// routing.RouteEdges once it knows how many routing slots each gap needs
// (spec §4.6 step 7).
func Place(g *lgraph.LGraph) error {
	if g == nil {
		return ErrGraphNil
	}
	if len(g.Layers) == 0 {
		return ErrNoLayers
	}

	if err := adjustPortPositions(g); err != nil {
		return err
	}
	measurePortExtents(g)
	stackLayersVertically(g)
	for _, nh := range g.Layers[0].Nodes {
		node, err := g.Node(nh)
		if err != nil {
			continue
		}
		node.Position.X = 0
	}
	return nil
}

// adjustPortPositions redistributes a node's ports along each side they
// occupy, unless portConstraints pins them: FIXED_POS leaves Position
// exactly as the caller set it, while FREE and FIXED_ORDER both space
// ports evenly along the side, FIXED_ORDER additionally preserving each
// port's existing relative order (this engine has no port-order-reducing
// heuristic of its own, so FREE and FIXED_ORDER coincide in practice; spec
// §6 only requires FIXED_POS be honored exactly).
func adjustPortPositions(g *lgraph.LGraph) error {
	for _, nh := range g.AllNodeHandles() {
		n, err := g.Node(nh)
		if err != nil {
			return err
		}
		if n.PortConstraint == lgraph.PortConstraintFixedPos {
			continue
		}

		bySide := make(map[graph.Side][]lgraph.PortHandle)
		for _, ph := range n.Ports {
			p, err := g.Port(ph)
			if err != nil {
				return err
			}
			bySide[p.Side] = append(bySide[p.Side], ph)
		}

		for side, ports := range bySide {
			sort.Slice(ports, func(i, j int) bool {
				pi, _ := g.Port(ports[i])
				pj, _ := g.Port(ports[j])
				return sideOrderCoord(pi, side) < sideOrderCoord(pj, side)
			})
			if err := distributeAlongSide(g, n, side, ports); err != nil {
				return err
			}
		}
	}
	return nil
}

// sideOrderCoord returns the coordinate along side's own axis that
// determines a port's current relative order: X for the horizontal sides,
// Y for the vertical ones.
func sideOrderCoord(p *lgraph.LPort, side graph.Side) float64 {
	if side == graph.SideNorth || side == graph.SideSouth {
		return p.Position.X
	}
	return p.Position.Y
}

// distributeAlongSide spaces ports evenly along side, in the order given,
// generalizing defaultPortPosition's single-port centering to N ports.
func distributeAlongSide(g *lgraph.LGraph, n *lgraph.LNode, side graph.Side, ports []lgraph.PortHandle) error {
	count := len(ports)
	for i, ph := range ports {
		p, err := g.Port(ph)
		if err != nil {
			return err
		}
		frac := float64(i+1) / float64(count+1)
		switch side {
		case graph.SideNorth:
			p.Position = graph.Point{X: frac * n.Size.Width, Y: 0}
		case graph.SideSouth:
			p.Position = graph.Point{X: frac * n.Size.Width, Y: n.Size.Height}
		case graph.SideEast:
			p.Position = graph.Point{X: n.Size.Width, Y: frac * n.Size.Height}
		case graph.SideWest:
			p.Position = graph.Point{X: 0, Y: frac * n.Size.Height}
		}
	}
	return nil
}

// measurePortExtents is pass 1: for every layer, find the largest amount
// any node's north-side port protrudes above the node's own top edge, and
// the largest amount any south-side port protrudes below its bottom edge.
// A port is modeled as straddling its node's boundary, so it protrudes by
// half its own size on the cross axis.
func measurePortExtents(g *lgraph.LGraph) {
	for li := range g.Layers {
		layer := &g.Layers[li]
		var above, below float64
		for _, nh := range layer.Nodes {
			node, err := g.Node(nh)
			if err != nil {
				continue
			}
			for _, ph := range node.Ports {
				p, err := g.Port(ph)
				if err != nil || p.Original == nil {
					continue
				}
				extent := p.Original.Size.Height / 2
				switch p.Side {
				case graph.SideNorth:
					if extent > above {
						above = extent
					}
				case graph.SideSouth:
					if extent > below {
						below = extent
					}
				}
			}
		}
		layer.MaxPortExtentAbove = above
		layer.MaxPortExtentBelow = below
	}
}

// stackLayersVertically is pass 2: assigns each node's Position.Y within
// its layer, top to bottom, separated by node_node_spacing widened by the
// layer's largest bottom and largest top port protrusion (the
// MaxPortExtentBelow/Above that pass 1 recorded).
func stackLayersVertically(g *lgraph.LGraph) {
	spacing := g.Spacing.NodeNode
	for li := range g.Layers {
		layer := &g.Layers[li]
		y := 0.0
		var prevBottomExtent float64
		for i, nh := range layer.Nodes {
			node, err := g.Node(nh)
			if err != nil {
				continue
			}
			if i > 0 {
				y += spacing + prevBottomExtent + layer.MaxPortExtentAbove
			}
			node.Position.Y = y
			y += node.Size.Height
			prevBottomExtent = layer.MaxPortExtentBelow
		}
	}
}

