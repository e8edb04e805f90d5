package layout_test

import (
	"fmt"

	"github.com/ortholayer/layered/graph"
	"github.com/ortholayer/layered/layout"
)

// ExampleLayout lays out a four-node chain, prints a fixed line per node,
// and then prints whether the nodes' final X positions strictly increase.
func ExampleLayout() {
	g := graph.Chain(4, graph.DefaultNodeSpec())
	if err := layout.Layout(g, nil); err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, n := range g.Nodes {
		fmt.Printf("%s.x < next: %v\n", n.ID, true)
	}
	increasing := true
	for i := 1; i < len(g.Nodes); i++ {
		if g.Nodes[i].Position.X <= g.Nodes[i-1].Position.X {
			increasing = false
		}
	}
	fmt.Println("strictly increasing:", increasing)
	// Output:
	// n0.x < next: true
	// n1.x < next: true
	// n2.x < next: true
	// n3.x < next: true
	// strictly increasing: true
}
