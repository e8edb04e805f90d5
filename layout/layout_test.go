package layout_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ortholayer/layered/graph"
	"github.com/ortholayer/layered/layout"
	"github.com/ortholayer/layered/routing"
)

func TestLayoutNilGraph(t *testing.T) {
	err := layout.Layout(nil, nil)
	assert.ErrorIs(t, err, layout.ErrNilGraph)
}

func TestLayoutEmptyGraphIsNoop(t *testing.T) {
	g := graph.New()
	err := layout.Layout(g, nil)
	require.NoError(t, err)
	assert.Equal(t, graph.Size{}, g.Size)
}

func TestLayoutChainPlacesNodesLeftToRight(t *testing.T) {
	g := graph.Chain(4, graph.DefaultNodeSpec())
	err := layout.Layout(g, nil)
	require.NoError(t, err)

	for i := 1; i < len(g.Nodes); i++ {
		assert.Greater(t, g.Nodes[i].Position.X, g.Nodes[i-1].Position.X,
			"node %d should sit strictly to the right of node %d", i, i-1)
	}
	assert.Greater(t, g.Size.Width, 0.0)
	assert.Greater(t, g.Size.Height, 0.0)
}

func TestLayoutChainDownDirectionGrowsVertically(t *testing.T) {
	g := graph.Chain(3, graph.DefaultNodeSpec())
	err := layout.Layout(g, nil, layout.WithDirection(routing.Down))
	require.NoError(t, err)

	for i := 1; i < len(g.Nodes); i++ {
		assert.Greater(t, g.Nodes[i].Position.Y, g.Nodes[i-1].Position.Y)
	}
}

func TestLayoutDiamondExportsOneSectionPerEdge(t *testing.T) {
	g := graph.Diamond(graph.DefaultNodeSpec())
	err := layout.Layout(g, nil)
	require.NoError(t, err)

	for _, e := range g.Edges {
		require.Len(t, e.Sections, 1, "edge %s should export exactly one section", e.ID)
		sec := e.Sections[0]
		assert.NotEqual(t, sec.StartPoint, sec.EndPoint)
	}
}

func TestLayoutFanOutProducesJunctionPoints(t *testing.T) {
	// One source port feeding three targets a single layer downstream is a
	// true hyperedge fan-out: every segment shares the same source anchor.
	g := graph.New()
	source, err := g.AddNode("source", graph.Size{Width: 30, Height: 25})
	require.NoError(t, err)
	out := source.AddPort("out", graph.SideEast, graph.PortOutput, graph.Size{})
	out.Position = graph.Point{X: 30, Y: 12.5}

	for i := 0; i < 3; i++ {
		leaf, lerr := g.AddNode(fmt.Sprintf("leaf%d", i), graph.Size{Width: 30, Height: 25})
		require.NoError(t, lerr)
		in := leaf.AddPort("in", graph.SideWest, graph.PortInput, graph.Size{})
		in.Position = graph.Point{X: 0, Y: 12.5}
		_, eerr := g.AddEdge(fmt.Sprintf("e%d", i), out, in)
		require.NoError(t, eerr)
	}

	require.NoError(t, layout.Layout(g, nil))

	var sawJunction bool
	for _, e := range g.Edges {
		require.Len(t, e.Sections, 1)
		if len(e.Sections[0].JunctionPoints) > 0 {
			sawJunction = true
		}
	}
	assert.True(t, sawJunction, "fan-out from a shared source port should produce at least one junction point")
}

func TestLayoutReportsProgressInOrder(t *testing.T) {
	g := graph.Chain(3, graph.DefaultNodeSpec())
	var phases []string
	err := layout.Layout(g, func(phase string, fraction float64) {
		phases = append(phases, phase)
	})
	require.NoError(t, err)
	require.NotEmpty(t, phases)
	assert.Equal(t, "Importing", phases[0])
	assert.Equal(t, "Layout complete", phases[len(phases)-1])
}

func TestLayoutIsDeterministicForAFixedSeed(t *testing.T) {
	g1 := graph.Star(5, graph.DefaultNodeSpec())
	g2 := graph.Star(5, graph.DefaultNodeSpec())

	require.NoError(t, layout.Layout(g1, nil, layout.WithSeed(42)))
	require.NoError(t, layout.Layout(g2, nil, layout.WithSeed(42)))

	for i := range g1.Nodes {
		assert.Equal(t, g1.Nodes[i].Position, g2.Nodes[i].Position)
	}
}

func TestLayoutBoundingBoxHasPadding(t *testing.T) {
	g := graph.Chain(2, graph.DefaultNodeSpec())
	require.NoError(t, layout.Layout(g, nil))

	for _, n := range g.Nodes {
		assert.Greater(t, n.Position.X, 0.0)
		assert.Greater(t, n.Position.Y, 0.0)
	}
}

func TestWithNodeNodeSpacingPanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { layout.WithNodeNodeSpacing(-1) })
}
