// File: api.go
// Role: arena constructors and handle-checked accessors for LGraph, mirroring
// the teacher's core.Graph api.go split between mutation and lookup.
package lgraph

import "github.com/ortholayer/layered/graph"

// AddNode appends a new LNode to the arena and returns its handle.
func (g *LGraph) AddNode(kind NodeKind, original *graph.Node, size graph.Size) NodeHandle {
	g.nodes = append(g.nodes, LNode{
		Original: original,
		Kind:     kind,
		Size:     size,
	})
	return NodeHandle(len(g.nodes))
}

// AddPort appends a new LPort owned by node and returns its handle. It
// panics if node is out of bounds, the same contract core.Graph's internal
// helpers use for handles obtained from the package's own arenas rather than
// from caller input.
func (g *LGraph) AddPort(node NodeHandle, original *graph.Port, side graph.Side, typ graph.PortType) PortHandle {
	n := g.mustNode(node)
	g.ports = append(g.ports, LPort{
		Original: original,
		Node:     node,
		Side:     side,
		Type:     typ,
	})
	h := PortHandle(len(g.ports))
	n.Ports = append(n.Ports, h)
	return h
}

// AddEdge appends a new LEdge from source to target and links it into both
// ports' incidence lists. Returns ErrPortHandleOOB if either handle is
// invalid.
func (g *LGraph) AddEdge(source, target PortHandle, original *graph.Edge) (EdgeHandle, error) {
	sp, err := g.Port(source)
	if err != nil {
		return 0, err
	}
	tp, err := g.Port(target)
	if err != nil {
		return 0, err
	}
	g.edges = append(g.edges, LEdge{
		Original: original,
		Source:   source,
		Target:   target,
	})
	h := EdgeHandle(len(g.edges))
	g.edges[h-1].Group = h
	sp.Outgoing = append(sp.Outgoing, h)
	tp.Incoming = append(tp.Incoming, h)
	return h, nil
}

// AddEdgeInGroup is AddEdge plus assigning the new edge to an existing
// segment family, for use when layering splits a long edge into a chain of
// dummy-bridging segments.
func (g *LGraph) AddEdgeInGroup(source, target PortHandle, group EdgeHandle) (EdgeHandle, error) {
	h, err := g.AddEdge(source, target, nil)
	if err != nil {
		return 0, err
	}
	g.edges[h-1].Group = group
	return h, nil
}

// GroupMembers returns every edge handle sharing eh's Group, in arena
// order (which, since segments are always created after the edge they
// split, is also layer order from source to target).
func (g *LGraph) GroupMembers(eh EdgeHandle) []EdgeHandle {
	group := g.edges[eh-1].Group
	var out []EdgeHandle
	for i := range g.edges {
		if g.edges[i].Group == group {
			out = append(out, EdgeHandle(i+1))
		}
	}
	return out
}

// RemoveEdgeIncidence detaches edge h from its source and target ports'
// incidence lists without compacting the arena, so the handle remains
// valid (and its Group/BendPoints intact) but the edge no longer
// participates in Successors/Predecessors/OutgoingEdges traversal. No
// pipeline phase calls it: layering rewires a long edge to its first dummy
// through Retarget instead.
func (g *LGraph) RemoveEdgeIncidence(h EdgeHandle) {
	e := &g.edges[h-1]
	sp := &g.ports[e.Source-1]
	sp.Outgoing = removeHandle(sp.Outgoing, h)
	tp := &g.ports[e.Target-1]
	tp.Incoming = removeHandle(tp.Incoming, h)
}

// Retarget repoints edge h at a new target port, relinking incidence
// lists.
func (g *LGraph) Retarget(h EdgeHandle, newTarget PortHandle) error {
	np, err := g.Port(newTarget)
	if err != nil {
		return err
	}
	e := &g.edges[h-1]
	old := &g.ports[e.Target-1]
	old.Incoming = removeHandle(old.Incoming, h)
	e.Target = newTarget
	np.Incoming = append(np.Incoming, h)
	return nil
}

func removeHandle(list []EdgeHandle, h EdgeHandle) []EdgeHandle {
	for i, v := range list {
		if v == h {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// Node returns the LNode for handle h, or ErrNodeHandleOOB if out of range.
func (g *LGraph) Node(h NodeHandle) (*LNode, error) {
	if int(h) < 1 || int(h) > len(g.nodes) {
		return nil, ErrNodeHandleOOB
	}
	return &g.nodes[h-1], nil
}

// Port returns the LPort for handle h, or ErrPortHandleOOB if out of range.
func (g *LGraph) Port(h PortHandle) (*LPort, error) {
	if int(h) < 1 || int(h) > len(g.ports) {
		return nil, ErrPortHandleOOB
	}
	return &g.ports[h-1], nil
}

// Edge returns the LEdge for handle h, or an error if out of range.
func (g *LGraph) Edge(h EdgeHandle) (*LEdge, error) {
	if int(h) < 1 || int(h) > len(g.edges) {
		return nil, ErrNodeHandleOOB
	}
	return &g.edges[h-1], nil
}

// mustNode is the panic-on-OOB variant used internally when the handle is
// known by construction to be valid (it was just minted by AddNode).
func (g *LGraph) mustNode(h NodeHandle) *LNode {
	n, err := g.Node(h)
	if err != nil {
		panic(err)
	}
	return n
}

// NumNodes, NumPorts and NumEdges report arena sizes.
func (g *LGraph) NumNodes() int { return len(g.nodes) }
func (g *LGraph) NumPorts() int { return len(g.ports) }
func (g *LGraph) NumEdges() int { return len(g.edges) }

// AllNodeHandles returns handles for every node currently in the arena, in
// insertion order.
func (g *LGraph) AllNodeHandles() []NodeHandle {
	out := make([]NodeHandle, len(g.nodes))
	for i := range g.nodes {
		out[i] = NodeHandle(i + 1)
	}
	return out
}

// AllEdgeHandles returns handles for every edge currently in the arena, in
// insertion order.
func (g *LGraph) AllEdgeHandles() []EdgeHandle {
	out := make([]EdgeHandle, len(g.edges))
	for i := range g.edges {
		out[i] = EdgeHandle(i + 1)
	}
	return out
}
