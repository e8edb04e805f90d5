package crossing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ortholayer/layered/graph"
	"github.com/ortholayer/layered/lgraph"
)

// crossedLayout builds a 2-layer graph where the initial order creates one
// crossing: a0-b1, a1-b0 wired so the barycenter sweep uncrosses them.
func crossedLayout() *lgraph.LGraph {
	g := lgraph.New(lgraph.Spacing{}, 1)
	a0 := g.AddNode(lgraph.NodeNormal, nil, graph.Size{})
	a1 := g.AddNode(lgraph.NodeNormal, nil, graph.Size{})
	b0 := g.AddNode(lgraph.NodeNormal, nil, graph.Size{})
	b1 := g.AddNode(lgraph.NodeNormal, nil, graph.Size{})

	link := func(from, to lgraph.NodeHandle) {
		out := g.AddPort(from, nil, graph.SideEast, graph.PortOutput)
		in := g.AddPort(to, nil, graph.SideWest, graph.PortInput)
		_, err := g.AddEdge(out, in, &graph.Edge{ID: "e"})
		if err != nil {
			panic(err)
		}
	}
	link(a0, b1)
	link(a1, b0)

	g.SetLayer(a0, 0)
	g.SetLayer(a1, 0)
	g.SetLayer(b0, 1)
	g.SetLayer(b1, 1)
	// Force the crossed initial order explicitly (SetLayer alone already
	// appends in call order, but make the starting layout obvious).
	g.SetOrder(0, []lgraph.NodeHandle{a0, a1})
	g.SetOrder(1, []lgraph.NodeHandle{b0, b1})

	return g
}

func TestMinimizeNoneLeavesOrderUntouched(t *testing.T) {
	g := crossedLayout()
	before := append([]lgraph.NodeHandle(nil), g.Layers[1].Nodes...)
	require.NoError(t, Minimize(g, WithStrategy(None)))
	assert.Equal(t, before, g.Layers[1].Nodes)
}

func TestMinimizeReducesCrossing(t *testing.T) {
	g := crossedLayout()
	b0, b1 := g.Layers[1].Nodes[0], g.Layers[1].Nodes[1]
	require.NoError(t, Minimize(g))
	// a0 (order 0) connects to b1 and a1 (order 1) connects to b0, so the
	// barycenter sweep should reorder layer 1 to {b1, b0} to uncross them.
	assert.Equal(t, []lgraph.NodeHandle{b1, b0}, g.Layers[1].Nodes)
}

func TestMinimizeRespectsMinPasses(t *testing.T) {
	g := crossedLayout()
	calls := 0
	require.NoError(t, Minimize(g, WithMinPasses(7), WithOnSweep(func(pass int, changed bool) {
		calls++
	})))
	assert.GreaterOrEqual(t, calls, 7)
}

func TestWithMinPassesRejectsNegative(t *testing.T) {
	g := crossedLayout()
	err := Minimize(g, WithMinPasses(-1))
	assert.Error(t, err)
}
