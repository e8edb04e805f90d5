// File: api.go
// Role: Thin, deterministic public facade exposing constructors and mutators.
// Policy mirrors the teacher's core/api.go: no algorithms or hidden state
// here, every exported function documents its complexity, and construction
// order is stable so callers get reproducible IDs-to-pointers mappings.
package graph

// New returns an empty Graph ready to accept nodes and edges.
//
// Complexity: O(1).
func New() *Graph {
	return &Graph{
		nodeIndex: make(map[string]*Node),
		Metadata:  make(map[string]string),
	}
}

// AddNode creates a Node with the given ID and size, appends it to g, and
// returns it. Returns ErrEmptyNodeID or ErrDuplicateNodeID on invalid input.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string, size Size) (*Node, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	if _, exists := g.nodeIndex[id]; exists {
		return nil, ErrDuplicateNodeID
	}
	n := &Node{ID: id, Size: size, Metadata: make(map[string]string)}
	g.Nodes = append(g.Nodes, n)
	g.nodeIndex[id] = n
	return n, nil
}

// Node looks up a node by ID, returning ErrNodeNotFound if absent.
//
// Complexity: O(1).
func (g *Graph) Node(id string) (*Node, error) {
	n, ok := g.nodeIndex[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	return n, nil
}

// AddPort creates a Port on node n with the given side, type, and size, and
// returns it. The caller is responsible for setting Position/Anchor before
// layout if portConstraints is FIXED_POS (see layout package docs).
//
// Complexity: O(1) amortized.
func (n *Node) AddPort(id string, side Side, typ PortType, size Size) *Port {
	p := &Port{ID: id, Side: side, Type: typ, Size: size, node: n}
	n.Ports = append(n.Ports, p)
	return p
}

// Owner returns the Node this Port was created on.
//
// Complexity: O(1).
func (p *Port) Owner() *Node {
	return p.node
}

// AddEdge creates an Edge from source to target and appends it to g.
// Returns ErrNilPort if either port is nil.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(id string, source, target *Port) (*Edge, error) {
	if source == nil || target == nil {
		return nil, ErrNilPort
	}
	e := &Edge{ID: id, Source: source, Target: target, Metadata: make(map[string]string)}
	g.Edges = append(g.Edges, e)
	return e, nil
}
