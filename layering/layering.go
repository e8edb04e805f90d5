// File: layering.go
// Role: AssignLayers and InsertLongEdgeDummies, the two operations phase P3
// performs in sequence.
package layering

import (
	"fmt"

	"github.com/ortholayer/layered/graph"
	"github.com/ortholayer/layered/lgraph"
)

// AssignLayers computes a longest-path layer index for every node in g and
// records it via lgraph.LGraph.SetLayer. g must already be acyclic — run
// cyclebreak.BreakCycles first; a cycle is reported as ErrCycleDetected
// rather than silently producing a bad layering.
func AssignLayers(g *lgraph.LGraph, opts ...Option) error {
	cfg := buildConfig(opts)

	n := g.NumNodes()
	state := make([]int, n+1)
	order := make([]lgraph.NodeHandle, 0, n)

	var visit func(id lgraph.NodeHandle) error
	visit = func(id lgraph.NodeHandle) error {
		if err := cfg.ctx.Err(); err != nil {
			return err
		}
		state[id] = gray
		for _, nbr := range g.Successors(id) {
			switch state[nbr] {
			case white:
				if err := visit(nbr); err != nil {
					return err
				}
			case gray:
				return ErrCycleDetected
			}
		}
		state[id] = black
		order = append(order, id) // post-order
		return nil
	}

	for _, h := range g.AllNodeHandles() {
		if state[h] == white {
			if err := visit(h); err != nil {
				return fmt.Errorf("layering: AssignLayers: %w", err)
			}
		}
	}

	// order is a post-order sequence; reversing it yields a topological
	// order (sources before sinks), so every predecessor's layer is
	// already final by the time we compute a node's own.
	layer := make(map[lgraph.NodeHandle]int, n)
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		max := -1
		for _, pred := range g.Predecessors(id) {
			if l := layer[pred]; l > max {
				max = l
			}
		}
		layer[id] = max + 1
	}

	for _, h := range g.AllNodeHandles() {
		g.SetLayer(h, layer[h])
	}
	return nil
}

// InsertLongEdgeDummies walks every edge whose endpoints span more than one
// layer and replaces it with a chain of NodeLongEdgeDummy nodes, one per
// intermediate layer, connected by new edges sharing the original edge's
// Group. dummySize is the (typically zero-area) size given to each dummy
// node; dummy ports are zero-sized point ports on the East/West sides
// matching the routing direction's forward axis.
func InsertLongEdgeDummies(g *lgraph.LGraph, dummySize graph.Size) error {
	for _, eh := range g.AllEdgeHandles() {
		e, err := g.Edge(eh)
		if err != nil {
			return err
		}
		if e.Original == nil {
			continue // already a dummy segment from an earlier split
		}

		sp, err := g.Port(e.Source)
		if err != nil {
			return err
		}
		tp, err := g.Port(e.Target)
		if err != nil {
			return err
		}
		sNode, err := g.Node(sp.Node)
		if err != nil {
			return err
		}
		tNode, err := g.Node(tp.Node)
		if err != nil {
			return err
		}

		span := tNode.LayerIndex - sNode.LayerIndex
		if span <= 1 {
			continue
		}

		prevOut := e.Source
		origTarget := e.Target
		for layerIdx := sNode.LayerIndex + 1; layerIdx < tNode.LayerIndex; layerIdx++ {
			dummy := g.AddNode(lgraph.NodeLongEdgeDummy, nil, dummySize)
			g.SetLayer(dummy, layerIdx)
			in := g.AddPort(dummy, nil, graph.SideWest, graph.PortInput)
			out := g.AddPort(dummy, nil, graph.SideEast, graph.PortOutput)

			if layerIdx == sNode.LayerIndex+1 {
				if err := g.Retarget(eh, in); err != nil {
					return err
				}
			} else {
				if _, err := g.AddEdgeInGroup(prevOut, in, e.Group); err != nil {
					return err
				}
			}
			prevOut = out
		}
		if _, err := g.AddEdgeInGroup(prevOut, origTarget, e.Group); err != nil {
			return err
		}
	}
	return nil
}
