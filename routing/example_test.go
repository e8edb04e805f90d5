package routing_test

import (
	"fmt"

	"github.com/ortholayer/layered/graph"
	"github.com/ortholayer/layered/lgraph"
	"github.com/ortholayer/layered/routing"
)

// Example routes a single edge crossing one layer gap and prints the
// resulting bend-point count.
func Example() {
	g := lgraph.New(lgraph.Spacing{NodeNode: 20, EdgeEdge: 10, EdgeNode: 10, LayerMin: 40}, 1)
	a := g.AddNode(lgraph.NodeNormal, nil, graph.Size{Width: 20, Height: 20})
	b := g.AddNode(lgraph.NodeNormal, nil, graph.Size{Width: 20, Height: 20})
	out := g.AddPort(a, nil, graph.SideEast, graph.PortOutput)
	in := g.AddPort(b, nil, graph.SideWest, graph.PortInput)
	eh, _ := g.AddEdge(out, in, &graph.Edge{ID: "e"})
	g.SetLayer(a, 0)
	g.SetLayer(b, 1)
	// Offset b on the cross axis so the route needs an actual jog instead of
	// collapsing to a straight, bend-point-free line.
	nb, _ := g.Node(b)
	nb.Position.Y = 50

	if err := routing.RouteEdges(g); err != nil {
		panic(err)
	}
	e, _ := g.Edge(eh)
	fmt.Println(len(e.BendPoints))
	// Output: 2
}
