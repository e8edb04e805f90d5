// File: methods_topology.go
// Role: traversal and mutation helpers cyclebreak and layering operate
// through — successor/predecessor enumeration and edge reversal — grounded
// on the teacher's dfs package operating over core.Graph's adjacency.
package lgraph

// Successors returns the node handles reachable from n via one outgoing
// edge, in port/edge insertion order. Reversed edges are traversed in their
// reversed direction, so callers never need to special-case them.
func (g *LGraph) Successors(n NodeHandle) []NodeHandle {
	node := &g.nodes[n-1]
	var out []NodeHandle
	for _, ph := range node.Ports {
		p := &g.ports[ph-1]
		for _, eh := range p.Outgoing {
			e := &g.edges[eh-1]
			if e.Reversed {
				continue
			}
			out = append(out, g.ports[e.Target-1].Node)
		}
		for _, eh := range p.Incoming {
			e := &g.edges[eh-1]
			if !e.Reversed {
				continue
			}
			out = append(out, g.ports[e.Source-1].Node)
		}
	}
	return out
}

// Predecessors returns the node handles with an edge into n, the mirror of
// Successors.
func (g *LGraph) Predecessors(n NodeHandle) []NodeHandle {
	node := &g.nodes[n-1]
	var out []NodeHandle
	for _, ph := range node.Ports {
		p := &g.ports[ph-1]
		for _, eh := range p.Incoming {
			e := &g.edges[eh-1]
			if e.Reversed {
				continue
			}
			out = append(out, g.ports[e.Source-1].Node)
		}
		for _, eh := range p.Outgoing {
			e := &g.edges[eh-1]
			if !e.Reversed {
				continue
			}
			out = append(out, g.ports[e.Target-1].Node)
		}
	}
	return out
}

// OutgoingEdges returns the edge handles leaving n, honoring Reversed the
// same way Successors does.
func (g *LGraph) OutgoingEdges(n NodeHandle) []EdgeHandle {
	node := &g.nodes[n-1]
	var out []EdgeHandle
	for _, ph := range node.Ports {
		p := &g.ports[ph-1]
		for _, eh := range p.Outgoing {
			if !g.edges[eh-1].Reversed {
				out = append(out, eh)
			}
		}
		for _, eh := range p.Incoming {
			if g.edges[eh-1].Reversed {
				out = append(out, eh)
			}
		}
	}
	return out
}

// ReverseEdge toggles an edge's Reversed flag, leaving its Source, Target
// and the underlying incidence lists untouched — Successors and
// OutgoingEdges interpret Reversed rather than requiring the incidence
// lists themselves to be rewritten. This matches cyclebreak's need to undo
// a reversal cheaply when computing the final export direction (spec §4.2:
// reversed edges are drawn with an arrowhead indicating the original
// direction, not the DAG direction used internally).
func (g *LGraph) ReverseEdge(h EdgeHandle) {
	e := &g.edges[h-1]
	e.Reversed = !e.Reversed
}

// SetLayer assigns n to layer index idx, appending it to that layer's node
// list and growing g.Layers as necessary. Callers (layering) are expected
// to call this exactly once per node, in an order that leaves each layer's
// Nodes slice already in a reasonable initial order for crossing
// minimization to permute.
func (g *LGraph) SetLayer(n NodeHandle, idx int) {
	for len(g.Layers) <= idx {
		g.Layers = append(g.Layers, Layer{})
	}
	node := &g.nodes[n-1]
	node.LayerIndex = idx
	node.OrderInLayer = len(g.Layers[idx].Nodes)
	g.Layers[idx].Nodes = append(g.Layers[idx].Nodes, n)
}

// SetOrder overwrites layer idx's node ordering wholesale — the operation
// crossing's layer sweep performs once per pass — and refreshes each
// node's OrderInLayer to match.
func (g *LGraph) SetOrder(idx int, order []NodeHandle) {
	g.Layers[idx].Nodes = order
	for i, n := range order {
		g.nodes[n-1].OrderInLayer = i
	}
}
