// File: build.go
// Role: Small deterministic topology constructors for tests, examples, and
// quick experimentation — grounded on the teacher's builder package (which
// offers Path, Cycle, Star, etc. over core.Graph via functional options).
// This engine's public Graph has no generic builder subpackage of its own;
// spec.md §1 places "import/export of user graphs" out of scope, and a
// full topology-generator suite (hexagrams, platonic solids, OHLC charts)
// has no bearing on a layout engine, so only the handful of shapes the
// engine's own tests and examples exercise are kept here.
package graph

import "fmt"

// NodeSpec describes the size of each node Chain, Diamond and Star create;
// it has no port settings, since those constructors decide which ports each
// node gets.
type NodeSpec struct {
	Size Size
}

// DefaultNodeSpec is a NodeSpec suitable for most layout examples: a 30x25
// box. Ports are added by the constructor that uses it.
func DefaultNodeSpec() NodeSpec {
	return NodeSpec{Size: Size{Width: 30, Height: 25}}
}

// addDefaultPorts attaches a centered EAST output port and WEST input port
// to n, sized 0x0 (point ports), matching the teacher-adjacent fixtures used
// throughout spec.md §8's concrete scenarios.
func addDefaultPorts(n *Node) (out, in *Port) {
	cy := n.Size.Height / 2
	out = n.AddPort("out", SideEast, PortOutput, Size{})
	out.Position = Point{X: n.Size.Width, Y: cy}
	in = n.AddPort("in", SideWest, PortInput, Size{})
	in.Position = Point{X: 0, Y: cy}
	return out, in
}

// Chain builds a straight line of n nodes n0 -> n1 -> ... -> n(n-1), each
// with one default EAST output port and one default WEST input port, joined
// by n-1 edges. Panics if n < 1, mirroring the teacher's builder option
// constructors, which validate shape parameters up front rather than
// letting a degenerate graph fail deep inside an algorithm.
func Chain(n int, spec NodeSpec) *Graph {
	if n < 1 {
		panic("graph: Chain requires n >= 1")
	}
	g := New()
	var prevOut *Port
	for i := 0; i < n; i++ {
		node, err := g.AddNode(fmt.Sprintf("n%d", i), spec.Size)
		if err != nil {
			panic(err)
		}
		out, in := addDefaultPorts(node)
		if prevOut != nil {
			if _, err = g.AddEdge(fmt.Sprintf("e%d", i-1), prevOut, in); err != nil {
				panic(err)
			}
		}
		prevOut = out
	}
	return g
}

// Diamond builds the four-node graph n0 -> {n1, n2} -> n3 used by spec.md
// §8 scenario #3 (a simple two-branch merge).
func Diamond(spec NodeSpec) *Graph {
	g := New()
	n0, _ := g.AddNode("n0", spec.Size)
	n1, _ := g.AddNode("n1", spec.Size)
	n2, _ := g.AddNode("n2", spec.Size)
	n3, _ := g.AddNode("n3", spec.Size)

	out0, _ := addDefaultPorts(n0)
	out1, in1 := addDefaultPorts(n1)
	out2, in2 := addDefaultPorts(n2)
	_, in3a := addDefaultPorts(n3)
	in3b := n3.AddPort("in2", SideWest, PortInput, Size{})
	in3b.Position = in3a.Position

	_, _ = g.AddEdge("e0", out0, in1)
	_, _ = g.AddEdge("e1", out0, in2)
	_, _ = g.AddEdge("e2", out1, in3a)
	_, _ = g.AddEdge("e3", out2, in3b)
	return g
}

// Star builds one center node fed by n leaf nodes: each leaf's default EAST
// output port is joined to the center's single WEST input port, the
// hyperedge shape of spec.md §8 scenario #5 mirrored.
func Star(n int, spec NodeSpec) *Graph {
	if n < 1 {
		panic("graph: Star requires n >= 1")
	}
	g := New()
	center, _ := g.AddNode("center", spec.Size)
	in := center.AddPort("in", SideWest, PortInput, Size{})
	in.Position = Point{X: 0, Y: center.Size.Height / 2}

	for i := 0; i < n; i++ {
		leaf, err := g.AddNode(fmt.Sprintf("leaf%d", i), spec.Size)
		if err != nil {
			panic(err)
		}
		out, _ := addDefaultPorts(leaf)
		if _, err = g.AddEdge(fmt.Sprintf("e%d", i), out, in); err != nil {
			panic(err)
		}
	}
	return g
}
