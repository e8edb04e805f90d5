// File: dependency.go
// Role: dependency, the ordering edge between two segments in the same gap,
// and the conflict/crossing-penalty construction that decides its kind and
// weight — adapted from original_source/elk-cpp's
// HyperEdgeSegmentDependency and OrthogonalRoutingGenerator's
// createDependencyIfNecessary/countConflicts/countCrossings.
package routing

import "sort"

// Tuning constants ported verbatim from orthogonal_routing_generator.h.
const (
	conflictThresholdFactor         = 0.5
	criticalConflictThresholdFactor = 0.2
	conflictPenalty                 = 1
	crossingPenalty                 = 16
	criticalDependencyWeight        = 1
	criticalConflictsDetected       = -1
)

// maxFloat stands in for the original's numeric_limits<double>::max(): no
// pair of distinct coordinates exists yet, so nothing should be treated as
// a critical conflict.
const maxFloat = 1e308

// dependency is a directed ordering constraint: From must route in a slot
// no greater than To's. CRITICAL dependencies (weight fixed at
// criticalDependencyWeight) must never be reversed (invariant 6); REGULAR
// dependencies carry a heuristic weight and may be reversed or dropped when
// breaking non-critical cycles.
type dependency struct {
	From, To *Segment
	Critical bool
	Weight   int
}

func newDependency(from, to *Segment, critical bool, weight int) *dependency {
	d := &dependency{From: from, To: to, Critical: critical, Weight: weight}
	from.OutDeps = append(from.OutDeps, d)
	to.InDeps = append(to.InDeps, d)
	return d
}

// remove detaches d from both endpoints' dependency lists.
func (d *dependency) remove() {
	d.From.OutDeps = removeDependency(d.From.OutDeps, d)
	d.To.InDeps = removeDependency(d.To.InDeps, d)
}

// reverse flips d's direction in place, relinking both endpoints.
func (d *dependency) reverse() {
	d.From.OutDeps = removeDependency(d.From.OutDeps, d)
	d.To.InDeps = removeDependency(d.To.InDeps, d)
	d.From, d.To = d.To, d.From
	d.From.OutDeps = append(d.From.OutDeps, d)
	d.To.InDeps = append(d.To.InDeps, d)
}

func removeDependency(list []*dependency, d *dependency) []*dependency {
	for i, v := range list {
		if v == d {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// minimumHorizontalSegmentDistance computes the critical-conflict threshold
// base: the smallest gap between any two distinct connection coordinates
// across every segment in the gap (incoming and outgoing coordinate pools
// considered separately, then the smaller of the two minima taken), exactly
// as minimumHorizontalSegmentDistance/minimumDifference do.
func minimumHorizontalSegmentDistance(segs []*Segment) float64 {
	var incoming, outgoing []float64
	for _, s := range segs {
		incoming = append(incoming, s.Incoming...)
		outgoing = append(outgoing, s.Outgoing...)
	}
	mi := minimumDifference(incoming)
	mo := minimumDifference(outgoing)
	if mi < mo {
		return mi
	}
	return mo
}

func minimumDifference(values []float64) float64 {
	dedup := dedupSorted(values)
	min := -1.0
	for i := 1; i < len(dedup); i++ {
		d := dedup[i] - dedup[i-1]
		if min < 0 || d < min {
			min = d
		}
	}
	if min < 0 {
		return maxFloat
	}
	return min
}

// buildDependencies creates a dependency for every pair of segments in segs
// that needs one. criticalConflictThreshold is
// criticalConflictThresholdFactor times minimumHorizontalSegmentDistance;
// edgeEdgeSpacing feeds the (non-critical) conflict threshold.
func buildDependencies(segs []*Segment, criticalConflictThreshold, edgeEdgeSpacing float64) {
	conflictThreshold := conflictThresholdFactor * edgeEdgeSpacing
	for i := 0; i < len(segs); i++ {
		for j := i + 1; j < len(segs); j++ {
			createDependencyIfNecessary(segs[i], segs[j], criticalConflictThreshold, conflictThreshold)
		}
	}
}

// createDependencyIfNecessary decides the ordering relationship (if any)
// between he1 and he2, porting the original function of the same name.
func createDependencyIfNecessary(he1, he2 *Segment, criticalConflictThreshold, conflictThreshold float64) {
	if he1.isStraight() || he2.isStraight() {
		return
	}

	conflicts1 := countConflicts(he1.Outgoing, he2.Incoming, criticalConflictThreshold, conflictThreshold)
	conflicts2 := countConflicts(he2.Outgoing, he1.Incoming, criticalConflictThreshold, conflictThreshold)

	if conflicts1 == criticalConflictsDetected || conflicts2 == criticalConflictsDetected {
		if conflicts1 == criticalConflictsDetected {
			// he1 must not be left of he2: routing he1 first would force a
			// critical conflict.
			newDependency(he2, he1, true, criticalDependencyWeight)
		}
		if conflicts2 == criticalConflictsDetected {
			newDependency(he1, he2, true, criticalDependencyWeight)
		}
		return
	}

	crossings1 := countCrossings(he1.Outgoing, he2.StartCoord, he2.EndCoord) +
		countCrossings(he2.Incoming, he1.StartCoord, he1.EndCoord)
	crossings2 := countCrossings(he2.Outgoing, he1.StartCoord, he1.EndCoord) +
		countCrossings(he1.Incoming, he2.StartCoord, he2.EndCoord)

	depValue1 := conflictPenalty*conflicts1 + crossingPenalty*crossings1
	depValue2 := conflictPenalty*conflicts2 + crossingPenalty*crossings2

	switch {
	case depValue1 < depValue2:
		newDependency(he1, he2, false, depValue2-depValue1)
	case depValue1 > depValue2:
		newDependency(he2, he1, false, depValue1-depValue2)
	case depValue1 > 0 && depValue2 > 0:
		newDependency(he1, he2, false, 0)
		newDependency(he2, he1, false, 0)
	}
}

// countConflicts merges the two sorted coordinate lists, reporting
// criticalConflictsDetected the instant two coordinates fall within
// criticalConflictThreshold of each other, else counting how many fall
// within the wider conflictThreshold.
func countConflicts(posis1, posis2 []float64, criticalConflictThreshold, conflictThreshold float64) int {
	if len(posis1) == 0 || len(posis2) == 0 {
		return 0
	}
	conflicts := 0
	i, j := 0, 0
	pos1, pos2 := posis1[0], posis2[0]
	for {
		switch {
		case pos1 > pos2-criticalConflictThreshold && pos1 < pos2+criticalConflictThreshold:
			return criticalConflictsDetected
		case pos1 > pos2-conflictThreshold && pos1 < pos2+conflictThreshold:
			conflicts++
		}

		switch {
		case pos1 <= pos2 && i+1 < len(posis1):
			i++
			pos1 = posis1[i]
		case pos2 <= pos1 && j+1 < len(posis2):
			j++
			pos2 = posis2[j]
		default:
			return conflicts
		}
	}
}

// countCrossings counts how many of posis fall within [start, end].
func countCrossings(posis []float64, start, end float64) int {
	crossings := 0
	for _, pos := range posis {
		if pos > end {
			break
		} else if pos >= start {
			crossings++
		}
	}
	return crossings
}

func dedupSorted(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
