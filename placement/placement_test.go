package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ortholayer/layered/graph"
	"github.com/ortholayer/layered/lgraph"
)

func TestPlaceRejectsNilAndEmpty(t *testing.T) {
	assert.ErrorIs(t, Place(nil), ErrGraphNil)

	g := lgraph.New(lgraph.Spacing{}, 1)
	assert.ErrorIs(t, Place(g), ErrNoLayers)
}

func TestPlaceStacksNodesAndLeavesLayerXToRouting(t *testing.T) {
	g := lgraph.New(lgraph.Spacing{NodeNode: 10, LayerMin: 30}, 1)
	a := g.AddNode(lgraph.NodeNormal, nil, graph.Size{Width: 20, Height: 20})
	b := g.AddNode(lgraph.NodeNormal, nil, graph.Size{Width: 20, Height: 20})
	c := g.AddNode(lgraph.NodeNormal, nil, graph.Size{Width: 40, Height: 20})
	g.SetLayer(a, 0)
	g.SetLayer(b, 0)
	g.SetLayer(c, 1)

	require.NoError(t, Place(g))

	na, _ := g.Node(a)
	nb, _ := g.Node(b)
	nc, _ := g.Node(c)

	assert.Equal(t, 0.0, na.Position.Y)
	assert.Equal(t, 30.0, nb.Position.Y) // 20 height + 10 spacing

	assert.Equal(t, 0.0, na.Position.X)
	assert.Equal(t, 0.0, nb.Position.X)
	// Layer 1's X is finished by routing.RouteEdges once it knows the gap's
	// routing-slot count (spec §4.6 step 7); Place only seeds layer 0.
	assert.Equal(t, 0.0, nc.Position.X)
}

func TestPlaceWidensGapForProtrudingPorts(t *testing.T) {
	g := lgraph.New(lgraph.Spacing{NodeNode: 10}, 1)
	a := g.AddNode(lgraph.NodeNormal, nil, graph.Size{Width: 20, Height: 20})
	b := g.AddNode(lgraph.NodeNormal, nil, graph.Size{Width: 20, Height: 20})
	g.SetLayer(a, 0)
	g.SetLayer(b, 0)

	// a has a south-protruding port 10 units tall (5 protrusion), b has a
	// north-protruding port 6 units tall (3 protrusion).
	g.AddPort(a, &graph.Port{Side: graph.SideSouth, Size: graph.Size{Height: 10}}, graph.SideSouth, graph.PortOutput)
	g.AddPort(b, &graph.Port{Side: graph.SideNorth, Size: graph.Size{Height: 6}}, graph.SideNorth, graph.PortInput)

	require.NoError(t, Place(g))
	nb, _ := g.Node(b)
	// 20 (a's height) + 10 (spacing) + 5 (a's south extent) + 3 (b's north extent)
	assert.Equal(t, 38.0, nb.Position.Y)
}
