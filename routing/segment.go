// File: segment.go
// Role: Segment, a hyperedge trunk spanning one inter-layer gap, and its
// construction by merging every transitively-connected port into one shared
// segment (spec §4.6 step 1), adapted from original_source/elk-cpp's
// HyperEdgeSegment and OrthogonalRoutingGenerator::createHyperEdgeSegments.
package routing

import (
	"sort"

	"github.com/ortholayer/layered/graph"
	"github.com/ortholayer/layered/lgraph"
)

// straightTolerance is the original's TOLERANCE: a segment whose start and
// end cross-axis coordinates differ by less than this is a straight line,
// takes no routing slot, and creates no dependencies.
const straightTolerance = 1e-3

// Segment is one hyperedge trunk crossing a single inter-layer gap: every
// port reachable from any other port in the segment via an edge, merged
// into one shared routing slot (spec §4.6 step 1). A plain one-to-one edge
// is the degenerate case of a segment with exactly one port on each side.
type Segment struct {
	Gap int // the gap between layer Gap and layer Gap+1

	Ports []lgraph.PortHandle

	// Incoming and Outgoing are the sorted, deduplicated cross-axis
	// coordinates of the segment's WEST-facing (incoming) and EAST-facing
	// (outgoing) ports, mirroring HyperEdgeSegment::addPortPositions.
	Incoming []float64
	Outgoing []float64

	// InPorts and OutPorts are the actual WEST-facing/EAST-facing port
	// handles backing Incoming/Outgoing, kept unsorted and undeduplicated
	// (several ports can share a coordinate). splitAt moves OutPorts to the
	// new partner exactly as it moves Outgoing, so after a split each port
	// handle is owned by exactly one half — the lookup bend-point emission
	// needs to find which physical lane a given port actually routes
	// through.
	InPorts  []lgraph.PortHandle
	OutPorts []lgraph.PortHandle

	// StartCoord and EndCoord are the cross-axis extent of the segment: the
	// min and max over Incoming and Outgoing combined.
	StartCoord, EndCoord float64

	Slot int // assigned by assignSlots; lower slots route closer to the gap's low side

	InDeps  []*dependency
	OutDeps []*dependency

	// SplitPartner is set on both halves of a segment split by the §4.6.1
	// splitter; SplitBy is set only on the original half and names the
	// segment whose dependency forced the split.
	SplitPartner *Segment
	SplitBy      *Segment

	// inWeight/outWeight/criticalInWeight/criticalOutWeight/mark are scratch
	// fields recomputed by each detectCycles call; they carry no meaning
	// between calls.
	inWeight, outWeight                 int
	criticalInWeight, criticalOutWeight int
	mark                                 int
}

// isStraight reports whether the segment's cross-axis extent collapses to a
// single point, meaning every port it merges sits at the same coordinate:
// it takes no routing slot and creates no dependencies (spec §4.6 step 1;
// review: straight segments must be excluded from slot assignment).
func (s *Segment) isStraight() bool {
	return s.EndCoord-s.StartCoord < straightTolerance
}

// isDummy reports whether s is the segment splitter's synthetic partner
// half (it has a SplitPartner but no SplitBy). The partner takes over the
// split segment's outgoing ports and is routed like any other segment;
// nothing in this package currently calls isDummy.
func (s *Segment) isDummy() bool {
	return s.SplitPartner != nil && s.SplitBy == nil
}

// representsHyperedge reports whether s merges more than the two ports a
// plain one-to-one edge would have — the splitter's preference for leaving
// true hyperedges intact and splitting simple edges instead.
func (s *Segment) representsHyperedge() bool {
	return len(s.Incoming)+len(s.Outgoing) > 2
}

func (s *Segment) addIncoming(v float64) {
	s.Incoming = insertSortedUnique(s.Incoming, v)
}

func (s *Segment) addOutgoing(v float64) {
	s.Outgoing = insertSortedUnique(s.Outgoing, v)
}

// recomputeExtent refreshes StartCoord/EndCoord from Incoming and Outgoing.
func (s *Segment) recomputeExtent() {
	s.StartCoord, s.EndCoord = extentOf(s.Incoming, s.Outgoing)
}

// insertSortedUnique inserts v into the sorted slice list, leaving it
// unchanged if a value within straightTolerance of v is already present.
func insertSortedUnique(list []float64, v float64) []float64 {
	i := sort.Search(len(list), func(i int) bool { return list[i] >= v })
	if i < len(list) && absF(list[i]-v) < straightTolerance {
		return list
	}
	if i > 0 && absF(list[i-1]-v) < straightTolerance {
		return list
	}
	list = append(list, 0)
	copy(list[i+1:], list[i:])
	list[i] = v
	return list
}

func extentOf(a, b []float64) (float64, float64) {
	first := true
	var lo, hi float64
	consider := func(v float64) {
		if first {
			lo, hi, first = v, v, false
			return
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	for _, v := range a {
		consider(v)
	}
	for _, v := range b {
		consider(v)
	}
	return lo, hi
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// buildSegments groups every edge's ports into one Segment per gap, merging
// transitively-connected ports (fan-out and fan-in hyperedges alike) into a
// single shared trunk rather than one Segment per edge. Self-loops (same
// source and target node) are excluded; they are routed by routeSelfLoops
// instead.
func buildSegments(g *lgraph.LGraph) (map[int][]*Segment, error) {
	bySegment := make(map[int][]*Segment)
	portSeg := make(map[lgraph.PortHandle]*Segment)

	for _, eh := range g.AllEdgeHandles() {
		e, err := g.Edge(eh)
		if err != nil {
			return nil, err
		}
		sp, err := g.Port(e.Source)
		if err != nil {
			return nil, err
		}
		tp, err := g.Port(e.Target)
		if err != nil {
			return nil, err
		}
		if sp.Node == tp.Node {
			continue // self-loop, handled separately
		}
		if _, done := portSeg[e.Source]; done {
			continue // already merged into a segment via an earlier edge
		}

		sNode, err := g.Node(sp.Node)
		if err != nil {
			return nil, err
		}

		seg := &Segment{Gap: sNode.LayerIndex}
		if err := floodFillSegment(g, seg, portSeg, e.Source); err != nil {
			return nil, err
		}
		seg.recomputeExtent()
		bySegment[seg.Gap] = append(bySegment[seg.Gap], seg)
	}
	return bySegment, nil
}

// floodFillSegment walks every port reachable from start via the edges that
// touch it, folding each one into seg exactly once. A port's side decides
// whether it contributes to Incoming or Outgoing: the canonical forward
// axis always runs source-layer-EAST to target-layer-WEST (spec §3's
// canonical RIGHT orientation), matching addPortPositions' sourcePortSide
// check.
func floodFillSegment(g *lgraph.LGraph, seg *Segment, portSeg map[lgraph.PortHandle]*Segment, start lgraph.PortHandle) error {
	queue := []lgraph.PortHandle{start}
	for len(queue) > 0 {
		ph := queue[0]
		queue = queue[1:]
		if _, done := portSeg[ph]; done {
			continue
		}

		p, err := g.Port(ph)
		if err != nil {
			return err
		}
		n, err := g.Node(p.Node)
		if err != nil {
			return err
		}

		portSeg[ph] = seg
		seg.Ports = append(seg.Ports, ph)

		anchor := p.AbsoluteAnchor(n.Position)
		if p.Side == graph.SideEast {
			seg.addOutgoing(anchor.Y)
			seg.OutPorts = append(seg.OutPorts, ph)
		} else {
			seg.addIncoming(anchor.Y)
			seg.InPorts = append(seg.InPorts, ph)
		}

		for _, oh := range p.Outgoing {
			oe, err := g.Edge(oh)
			if err != nil {
				return err
			}
			if _, done := portSeg[oe.Target]; !done {
				queue = append(queue, oe.Target)
			}
		}
		for _, ih := range p.Incoming {
			ie, err := g.Edge(ih)
			if err != nil {
				return err
			}
			if _, done := portSeg[ie.Source]; !done {
				queue = append(queue, ie.Source)
			}
		}
	}
	return nil
}
