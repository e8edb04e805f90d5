// File: crossing.go
// Role: Minimize, the phase P4 entry point, and its barycenter sweep pass.
package crossing

import (
	"fmt"
	"sort"

	"github.com/soniakeys/bits"

	"github.com/ortholayer/layered/lgraph"
)

// Minimize reorders the nodes within each of g's layers to reduce edge
// crossings between adjacent layers, using repeated barycenter sweeps.
func Minimize(g *lgraph.LGraph, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	if o.Strategy == None || len(g.Layers) < 2 {
		return nil
	}

	changedBits := bits.New(len(g.Layers))
	pass := 0
	for ; pass < o.MaxPasses; pass++ {
		if err := o.Ctx.Err(); err != nil {
			return fmt.Errorf("crossing: Minimize: %w", err)
		}

		sweep(g, true, &changedBits)
		sweep(g, false, &changedBits)

		changed := false
		for i := 0; i < len(g.Layers); i++ {
			if changedBits.Bit(i) != 0 {
				changed = true
				changedBits.SetBit(i, 0) // consume for the next pass
			}
		}
		o.OnSweep(pass, changed)

		if pass+1 >= o.MinPasses && !changed {
			break
		}
	}
	return nil
}

// sweep performs one directional pass over every layer but the fixed end
// (layer 0 for a down pass, the last layer for an up pass), reordering each
// layer's nodes by the barycenter (mean OrderInLayer) of its neighbors in
// the adjacent, already-fixed layer, and sets changed's bit for every layer
// index whose order actually moved.
func sweep(g *lgraph.LGraph, down bool, changed *bits.Bits) {
	n := len(g.Layers)

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	if !down {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			indices[i], indices[j] = indices[j], indices[i]
		}
	}

	for _, idx := range indices[1:] {
		layer := &g.Layers[idx]
		type scored struct {
			node lgraph.NodeHandle
			bary float64
			orig int
		}
		entries := make([]scored, len(layer.Nodes))
		for i, nh := range layer.Nodes {
			var neighbors []lgraph.NodeHandle
			if down {
				neighbors = g.Predecessors(nh)
			} else {
				neighbors = g.Successors(nh)
			}
			entries[i] = scored{node: nh, bary: barycenter(g, neighbors), orig: i}
		}

		before := make([]lgraph.NodeHandle, len(layer.Nodes))
		copy(before, layer.Nodes)

		sort.SliceStable(entries, func(i, j int) bool {
			bi, bj := entries[i].bary, entries[j].bary
			if bi < 0 && bj < 0 {
				return entries[i].orig < entries[j].orig
			}
			if bi < 0 {
				return false
			}
			if bj < 0 {
				return true
			}
			return bi < bj
		})

		order := make([]lgraph.NodeHandle, len(entries))
		for i, e := range entries {
			order[i] = e.node
		}
		g.SetOrder(idx, order)

		for i := range order {
			if order[i] != before[i] {
				changed.SetBit(idx, 1)
				break
			}
		}
	}
}

// barycenter returns the mean OrderInLayer of neighbors, or -1 if there are
// none. sweep sorts every -1 node after all nodes that have neighbors,
// keeping their relative order among themselves; such a node does not keep
// its index in the layer.
func barycenter(g *lgraph.LGraph, neighbors []lgraph.NodeHandle) float64 {
	if len(neighbors) == 0 {
		return -1
	}
	sum := 0
	for _, nh := range neighbors {
		node, err := g.Node(nh)
		if err != nil {
			continue
		}
		sum += node.OrderInLayer
	}
	return float64(sum) / float64(len(neighbors))
}
