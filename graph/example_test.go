package graph_test

import (
	"fmt"

	"github.com/ortholayer/layered/graph"
)

// Example demonstrates building a tiny chain graph by hand, the way a
// caller would before handing it to layout.Layout.
func Example() {
	g := graph.New()
	a, _ := g.AddNode("a", graph.Size{Width: 20, Height: 20})
	b, _ := g.AddNode("b", graph.Size{Width: 20, Height: 20})
	out := a.AddPort("out", graph.SideEast, graph.PortOutput, graph.Size{})
	in := b.AddPort("in", graph.SideWest, graph.PortInput, graph.Size{})
	_, _ = g.AddEdge("e0", out, in)

	fmt.Println(len(g.Nodes), len(g.Edges))
	// Output: 2 1
}
