package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ortholayer/layered/graph"
	"github.com/ortholayer/layered/lgraph"
)

// threeSourcesOneSink builds spec.md scenario 5: three layer-0 nodes each
// feeding a single port on one layer-1 sink.
func threeSourcesOneSink() *lgraph.LGraph {
	g := lgraph.New(lgraph.Spacing{NodeNode: 20, EdgeEdge: 10, EdgeNode: 10, LayerMin: 40}, 1)
	sink := g.AddNode(lgraph.NodeNormal, nil, graph.Size{Width: 20, Height: 20})
	in := g.AddPort(sink, nil, graph.SideWest, graph.PortInput)
	g.SetLayer(sink, 1)

	for i := 0; i < 3; i++ {
		src := g.AddNode(lgraph.NodeNormal, nil, graph.Size{Width: 20, Height: 20})
		out := g.AddPort(src, nil, graph.SideEast, graph.PortOutput)
		g.SetLayer(src, 0)
		_, err := g.AddEdge(out, in, &graph.Edge{ID: "e"})
		if err != nil {
			panic(err)
		}
	}
	return g
}

func TestBuildSegmentsMergesFanInIntoOneSharedSegment(t *testing.T) {
	g := threeSourcesOneSink()

	bySegment, err := buildSegments(g)
	require.NoError(t, err)

	segs := bySegment[0]
	require.Len(t, segs, 1, "three edges sharing one target port must merge into a single trunk segment")
	assert.Len(t, segs[0].OutPorts, 3)
	assert.Len(t, segs[0].InPorts, 1)
}

func TestBuildSegmentsExcludesSelfLoops(t *testing.T) {
	g := lgraph.New(lgraph.Spacing{}, 1)
	a := g.AddNode(lgraph.NodeNormal, nil, graph.Size{Width: 20, Height: 20})
	out := g.AddPort(a, nil, graph.SideEast, graph.PortOutput)
	in := g.AddPort(a, nil, graph.SideEast, graph.PortInput)
	_, err := g.AddEdge(out, in, &graph.Edge{ID: "self"})
	require.NoError(t, err)
	g.SetLayer(a, 0)

	bySegment, err := buildSegments(g)
	require.NoError(t, err)
	assert.Empty(t, bySegment)
}

func TestSegmentIsStraightWhenExtentCollapses(t *testing.T) {
	s := &Segment{}
	s.addIncoming(10)
	s.addOutgoing(10 + straightTolerance/2)
	s.recomputeExtent()
	assert.True(t, s.isStraight())

	s2 := &Segment{}
	s2.addIncoming(10)
	s2.addOutgoing(20)
	s2.recomputeExtent()
	assert.False(t, s2.isStraight())
}

func TestSegmentRepresentsHyperedge(t *testing.T) {
	plain := &Segment{}
	plain.addIncoming(0)
	plain.addOutgoing(10)
	assert.False(t, plain.representsHyperedge())

	hyper := &Segment{}
	hyper.addIncoming(0)
	hyper.addOutgoing(10)
	hyper.addOutgoing(20)
	assert.True(t, hyper.representsHyperedge())
}
