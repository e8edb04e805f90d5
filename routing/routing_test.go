package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ortholayer/layered/graph"
	"github.com/ortholayer/layered/lgraph"
)

func twoLayerGraph() (*lgraph.LGraph, lgraph.EdgeHandle) {
	g := lgraph.New(lgraph.Spacing{NodeNode: 20, EdgeEdge: 10, EdgeNode: 10, LayerMin: 40}, 1)
	a := g.AddNode(lgraph.NodeNormal, nil, graph.Size{Width: 20, Height: 20})
	b := g.AddNode(lgraph.NodeNormal, nil, graph.Size{Width: 20, Height: 20})
	out := g.AddPort(a, nil, graph.SideEast, graph.PortOutput)
	in := g.AddPort(b, nil, graph.SideWest, graph.PortInput)
	eh, err := g.AddEdge(out, in, &graph.Edge{ID: "e"})
	if err != nil {
		panic(err)
	}
	g.SetLayer(a, 0)
	g.SetLayer(b, 1)

	// Offset b's port on the cross axis so the route needs an actual jog
	// rather than collapsing to a straight (and therefore bend-point-free)
	// line.
	nb, err := g.Node(b)
	if err != nil {
		panic(err)
	}
	nb.Position.Y = 50

	return g, eh
}

func TestRouteEdgesRejectsNilGraph(t *testing.T) {
	assert.ErrorIs(t, RouteEdges(nil), ErrGraphNil)
}

func TestRouteEdgesProducesTwoBendPoints(t *testing.T) {
	g, eh := twoLayerGraph()
	require.NoError(t, RouteEdges(g))

	e, err := g.Edge(eh)
	require.NoError(t, err)
	require.Len(t, e.BendPoints, 2)
	assert.Equal(t, e.BendPoints[0].X, e.BendPoints[1].X) // single vertical jog
}

func TestRouteEdgesHonorsDownDirection(t *testing.T) {
	g, eh := twoLayerGraph()
	require.NoError(t, RouteEdges(g, WithDirection(Down)))

	e, err := g.Edge(eh)
	require.NoError(t, err)
	require.Len(t, e.BendPoints, 2)
	// Down swaps axes, so the jog is now horizontal: Y must match.
	assert.Equal(t, e.BendPoints[0].Y, e.BendPoints[1].Y)
}

func TestRouteSelfLoopGetsTwoBendPoints(t *testing.T) {
	g := lgraph.New(lgraph.Spacing{EdgeNode: 10}, 1)
	a := g.AddNode(lgraph.NodeNormal, nil, graph.Size{Width: 20, Height: 20})
	out := g.AddPort(a, nil, graph.SideEast, graph.PortOutput)
	in := g.AddPort(a, nil, graph.SideEast, graph.PortInput)
	eh, err := g.AddEdge(out, in, &graph.Edge{ID: "self"})
	require.NoError(t, err)
	g.SetLayer(a, 0)

	require.NoError(t, RouteEdges(g))
	e, err := g.Edge(eh)
	require.NoError(t, err)
	assert.Len(t, e.BendPoints, 2)
}

func TestRouteEdgesMarksJunctionOnSharedTargetPort(t *testing.T) {
	// Three sources in layer 0, one sink in layer 1, all edges landing on
	// the sink's single input port: a fan-in hyperedge trunk.
	g := lgraph.New(lgraph.Spacing{NodeNode: 20, EdgeEdge: 10, EdgeNode: 10, LayerMin: 40}, 1)
	sink := g.AddNode(lgraph.NodeNormal, nil, graph.Size{Width: 20, Height: 20})
	in := g.AddPort(sink, nil, graph.SideWest, graph.PortInput)
	g.SetLayer(sink, 1)

	var edges []lgraph.EdgeHandle
	for i := 0; i < 3; i++ {
		src := g.AddNode(lgraph.NodeNormal, nil, graph.Size{Width: 20, Height: 20})
		out := g.AddPort(src, nil, graph.SideEast, graph.PortOutput)
		g.SetLayer(src, 0)
		eh, err := g.AddEdge(out, in, &graph.Edge{ID: "e"})
		require.NoError(t, err)
		edges = append(edges, eh)
	}

	require.NoError(t, RouteEdges(g))

	var junctions int
	for _, eh := range edges {
		e, err := g.Edge(eh)
		require.NoError(t, err)
		junctions += len(e.JunctionPoints)
	}
	assert.Positive(t, junctions, "fan-in onto a shared target port should produce junction points")
}

func TestAssignSlotsOrdersDependentSegments(t *testing.T) {
	a := &Segment{}
	b := &Segment{}
	newDependency(a, b, false, 5)

	assignSlots([]*Segment{a, b})
	assert.Less(t, a.Slot, b.Slot)
}

func TestAssignSlotsLeavesIndependentSegmentsAtSlotZero(t *testing.T) {
	a := &Segment{}
	b := &Segment{}

	assignSlots([]*Segment{a, b})
	assert.Equal(t, 0, a.Slot)
	assert.Equal(t, 0, b.Slot)
}

func TestDetectCyclesBreaksTwoCycle(t *testing.T) {
	// a <-> b: a mutual dependency, must still produce an acyclic order
	// with exactly one feedback arc.
	a := &Segment{}
	b := &Segment{}
	newDependency(a, b, false, 1)
	newDependency(b, a, false, 1)

	feedback := detectCycles([]*Segment{a, b}, false, nil)
	assert.Len(t, feedback, 1)
}
