package crossing

import (
	"testing"

	"github.com/ortholayer/layered/graph"
	"github.com/ortholayer/layered/lgraph"
)

// buildLayeredFan builds layers of width nodes each, densely cross-wired to
// the next layer, for benchmarking sweep cost.
func buildLayeredFan(layers, width int) *lgraph.LGraph {
	g := lgraph.New(lgraph.Spacing{}, 1)
	prev := make([]lgraph.NodeHandle, 0, width)
	for l := 0; l < layers; l++ {
		cur := make([]lgraph.NodeHandle, 0, width)
		for i := 0; i < width; i++ {
			n := g.AddNode(lgraph.NodeNormal, nil, graph.Size{Width: 10, Height: 10})
			g.SetLayer(n, l)
			cur = append(cur, n)
		}
		if l > 0 {
			for _, from := range prev {
				for _, to := range cur {
					out := g.AddPort(from, nil, graph.SideEast, graph.PortOutput)
					in := g.AddPort(to, nil, graph.SideWest, graph.PortInput)
					if _, err := g.AddEdge(out, in, &graph.Edge{ID: "e"}); err != nil {
						panic(err)
					}
				}
			}
		}
		prev = cur
	}
	return g
}

func BenchmarkMinimize(b *testing.B) {
	for i := 0; i < b.N; i++ {
		g := buildLayeredFan(6, 8)
		if err := Minimize(g); err != nil {
			b.Fatal(err)
		}
	}
}
