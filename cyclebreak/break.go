// File: break.go
// Role: BreakCycles, the phase P2 entry point.
package cyclebreak

import (
	"context"
	"fmt"

	"github.com/ortholayer/layered/lgraph"
)

// BreakCycles walks g depth-first from every node in handle order and
// reverses every back edge (an edge whose target is still Gray, i.e. on the
// current recursion stack) the instant it is found, so the search proceeds
// as though the edge had always pointed forward. It returns the handles of
// every edge it reversed, in the order reversal happened.
//
// Like the teacher's DetectCycles, traversal order over sibling edges is
// the L-graph's own port/edge insertion order, so two calls over the same
// (unmodified) L-graph always reverse the same edges in the same order.
func BreakCycles(g *lgraph.LGraph, opts ...Option) ([]lgraph.EdgeHandle, error) {
	cfg := buildConfig(opts)

	n := g.NumNodes()
	state := make([]int, n+1) // 1-indexed, state[0] unused
	var reversed []lgraph.EdgeHandle

	for _, h := range g.AllNodeHandles() {
		if state[h] != white {
			continue
		}
		if err := visit(cfg.ctx, g, h, state, &reversed); err != nil {
			return reversed, fmt.Errorf("cyclebreak: BreakCycles: %w", err)
		}
	}
	return reversed, nil
}

func visit(ctx context.Context, g *lgraph.LGraph, id lgraph.NodeHandle, state []int, reversed *[]lgraph.EdgeHandle) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	state[id] = gray

	for _, eh := range g.OutgoingEdges(id) {
		e, err := g.Edge(eh)
		if err != nil {
			return err
		}
		target := e.Target
		if e.Reversed {
			target = e.Source
		}
		tp, err := g.Port(target)
		if err != nil {
			return err
		}
		nbr := tp.Node

		switch state[nbr] {
		case white:
			if err := visit(ctx, g, nbr, state, reversed); err != nil {
				return err
			}
		case gray:
			g.ReverseEdge(eh)
			*reversed = append(*reversed, eh)
		case black:
			// Forward or cross edge; nothing to do.
		}
	}

	state[id] = black
	return nil
}
