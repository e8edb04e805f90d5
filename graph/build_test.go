package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain(t *testing.T) {
	g := Chain(4, DefaultNodeSpec())
	require.Len(t, g.Nodes, 4)
	require.Len(t, g.Edges, 3)
	for i, e := range g.Edges {
		assert.Equal(t, g.Nodes[i], e.Source.Owner())
		assert.Equal(t, g.Nodes[i+1], e.Target.Owner())
	}
}

func TestChainPanicsOnInvalidSize(t *testing.T) {
	assert.Panics(t, func() { Chain(0, DefaultNodeSpec()) })
}

func TestDiamond(t *testing.T) {
	g := Diamond(DefaultNodeSpec())
	require.Len(t, g.Nodes, 4)
	require.Len(t, g.Edges, 4)
}

func TestStar(t *testing.T) {
	g := Star(3, DefaultNodeSpec())
	require.Len(t, g.Nodes, 4) // center + 3 leaves
	require.Len(t, g.Edges, 3)
	for _, e := range g.Edges {
		assert.Equal(t, g.Nodes[0], e.Target.Owner())
	}
}
