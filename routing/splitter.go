// File: splitter.go
// Role: the §4.6.1 segment splitter: resolving a critical feedback arc that
// cannot be reversed by cutting one of the two segments into a pair linked
// by a synthetic critical dependency chain — adapted from
// original_source/elk-cpp's hyper_edge_segment_splitter.cpp.
package routing

import "sort"

// freeArea is a gap between two adjacent connection coordinates wide enough
// (at least 2*criticalConflictThreshold) to host a new segment boundary
// without creating fresh conflicts.
type freeArea struct {
	start, end float64
}

func (a freeArea) size() float64   { return a.end - a.start }
func (a freeArea) center() float64 { return (a.start + a.end) / 2 }

// areaRating scores a candidate free area for a split: fewer dependencies
// and crossings is better, and among ties a larger area is preferred.
type areaRating struct {
	dependencies int
	crossings    int
}

func (s *Segment) length() float64 {
	return s.EndCoord - s.StartCoord
}

// splitAt cuts s at splitPosition: a new partner segment inherits all of
// s's outgoing connections, the two are linked by a single coordinate at
// splitPosition, and every existing dependency on s is dropped (they will
// be rebuilt by updateDependencies against the post-split world).
func (s *Segment) splitAt(splitPosition float64) *Segment {
	partner := &Segment{Gap: s.Gap}
	s.SplitPartner = partner
	partner.SplitPartner = s

	partner.Outgoing = s.Outgoing
	partner.OutPorts = s.OutPorts
	s.Outgoing = nil
	s.OutPorts = nil
	s.addOutgoing(splitPosition)
	partner.addIncoming(splitPosition)

	s.recomputeExtent()
	partner.recomputeExtent()

	for len(s.InDeps) > 0 {
		s.InDeps[0].remove()
	}
	for len(s.OutDeps) > 0 {
		s.OutDeps[0].remove()
	}

	return partner
}

// simulateSplit builds throwaway segments carrying s's incoming/outgoing
// coordinates (and, for the new "split" half, s's SplitBy), so a candidate
// free area can be rated without mutating s itself.
func simulateSplit(s *Segment) (split, partner *Segment) {
	split = &Segment{Gap: s.Gap, SplitBy: s.SplitBy, SplitPartner: nil}
	split.Incoming = append([]float64(nil), s.Incoming...)
	split.recomputeExtent()

	partner = &Segment{Gap: s.Gap}
	partner.Outgoing = append([]float64(nil), s.Outgoing...)
	partner.recomputeExtent()

	split.SplitPartner = partner
	partner.SplitPartner = split
	return split, partner
}

// findFreeAreas collects every gap between adjacent connection coordinates
// (across every segment in the set; routeGap passes only the non-straight
// segments) that is wide enough to host a split boundary.
func findFreeAreas(segs []*Segment, criticalConflictThreshold float64) []freeArea {
	var coords []float64
	for _, s := range segs {
		coords = append(coords, s.Incoming...)
		coords = append(coords, s.Outgoing...)
	}
	sort.Float64s(coords)

	var areas []freeArea
	for i := 1; i < len(coords); i++ {
		if coords[i]-coords[i-1] >= 2*criticalConflictThreshold {
			areas = append(areas, freeArea{
				start: coords[i-1] + criticalConflictThreshold,
				end:   coords[i] - criticalConflictThreshold,
			})
		}
	}
	return areas
}

// decideWhichSegmentsToSplit picks, for each unresolved critical
// dependency, which of its two segments will be the one physically split
// (preferring to split a plain edge over a true hyperedge), recording the
// other as SplitBy.
func decideWhichSegmentsToSplit(deps []*dependency) []*Segment {
	var toSplit []*Segment
	selected := make(map[*Segment]bool)

	for _, d := range deps {
		source, target := d.From, d.To
		if selected[source] || selected[target] {
			continue
		}

		segmentToSplit, causedBy := source, target
		if source.representsHyperedge() && !target.representsHyperedge() {
			segmentToSplit, causedBy = target, source
		}

		toSplit = append(toSplit, segmentToSplit)
		selected[segmentToSplit] = true
		segmentToSplit.SplitBy = causedBy
	}
	return toSplit
}

// splitSegments resolves every feedback dependency that detectCycles found
// among CRITICAL dependencies by splitting one segment per dependency,
// smallest first (a short segment has fewer places to put its link), and
// appends every new partner segment to *segs. criticalConflictThreshold and
// conflictThreshold are the same thresholds buildDependencies was called
// with, needed again here so updateDependencies can rebuild dependencies
// around the two new halves on equal footing with the original pass.
func splitSegments(dependenciesToResolve []*dependency, segs *[]*Segment, criticalConflictThreshold, conflictThreshold float64) {
	if len(dependenciesToResolve) == 0 {
		return
	}

	freeAreas := findFreeAreas(*segs, criticalConflictThreshold)
	toSplit := decideWhichSegmentsToSplit(dependenciesToResolve)

	sort.Slice(toSplit, func(i, j int) bool {
		return toSplit[i].length() < toSplit[j].length()
	})

	for _, segment := range toSplit {
		split(segment, segs, &freeAreas, criticalConflictThreshold, conflictThreshold)
	}
}

func split(segment *Segment, segs *[]*Segment, freeAreas *[]freeArea, criticalConflictThreshold, conflictThreshold float64) {
	splitPosition := computePositionToSplitAndUpdateFreeAreas(segment, freeAreas, criticalConflictThreshold)
	partner := segment.splitAt(splitPosition)
	*segs = append(*segs, partner)
	updateDependencies(segment, *segs, criticalConflictThreshold, conflictThreshold)
}

// updateDependencies rebuilds segment's dependency graph from scratch:
// first the mandatory CRITICAL chain segment -> splitBy -> partner that
// keeps the split-causing segment sandwiched between the two halves, then a
// fresh createDependencyIfNecessary pass between every other segment and
// each of the two halves.
func updateDependencies(segment *Segment, segs []*Segment, criticalConflictThreshold, conflictThreshold float64) {
	splitBy := segment.SplitBy
	partner := segment.SplitPartner

	newDependency(segment, splitBy, true, criticalDependencyWeight)
	newDependency(splitBy, partner, true, criticalDependencyWeight)

	for _, other := range segs {
		if other == splitBy || other == segment || other == partner {
			continue
		}
		createDependencyIfNecessary(other, segment, criticalConflictThreshold, conflictThreshold)
		createDependencyIfNecessary(other, partner, criticalConflictThreshold, conflictThreshold)
	}
}

func computePositionToSplitAndUpdateFreeAreas(segment *Segment, freeAreas *[]freeArea, criticalConflictThreshold float64) float64 {
	firstPossible, lastPossible := -1, -1
	areas := *freeAreas
	for i, area := range areas {
		if area.start > segment.EndCoord {
			break
		} else if area.end >= segment.StartCoord {
			if firstPossible < 0 {
				firstPossible = i
			}
			lastPossible = i
		}
	}

	splitPosition := (segment.StartCoord + segment.EndCoord) / 2
	if firstPossible >= 0 {
		best := chooseBestAreaIndex(segment, areas, firstPossible, lastPossible)
		splitPosition = areas[best].center()
		useArea(freeAreas, best, criticalConflictThreshold)
	}
	return splitPosition
}

func chooseBestAreaIndex(segment *Segment, areas []freeArea, from, to int) int {
	best := from
	if from >= to {
		return best
	}

	split, partner := simulateSplit(segment)
	bestRating := rateArea(segment, split, partner, areas[best])

	for i := from + 1; i <= to; i++ {
		rating := rateArea(segment, split, partner, areas[i])
		if isBetter(areas[i], rating, areas[best], bestRating) {
			bestRating = rating
			best = i
		}
	}
	return best
}

func rateArea(segment, splitSegment, splitPartner *Segment, area freeArea) areaRating {
	centre := area.center()
	splitSegment.Outgoing = []float64{centre}
	splitPartner.Incoming = []float64{centre}

	var rating areaRating
	for _, d := range segment.InDeps {
		other := d.From
		updateConsideringBothOrderings(&rating, splitSegment, other)
		updateConsideringBothOrderings(&rating, splitPartner, other)
	}
	for _, d := range segment.OutDeps {
		other := d.To
		updateConsideringBothOrderings(&rating, splitSegment, other)
		updateConsideringBothOrderings(&rating, splitPartner, other)
	}

	rating.dependencies += 2
	rating.crossings += countCrossingsForSingleOrdering(splitSegment, segment.SplitBy)
	rating.crossings += countCrossingsForSingleOrdering(segment.SplitBy, splitPartner)

	return rating
}

func updateConsideringBothOrderings(rating *areaRating, s1, s2 *Segment) {
	leftS1 := countCrossingsForSingleOrdering(s1, s2)
	leftS2 := countCrossingsForSingleOrdering(s2, s1)

	if leftS1 == leftS2 {
		if leftS1 > 0 {
			rating.dependencies += 2
			rating.crossings += leftS1
		}
		return
	}

	rating.dependencies++
	if leftS1 < leftS2 {
		rating.crossings += leftS1
	} else {
		rating.crossings += leftS2
	}
}

func countCrossingsForSingleOrdering(left, right *Segment) int {
	return countCrossings(left.Outgoing, right.StartCoord, right.EndCoord) +
		countCrossings(right.Incoming, left.StartCoord, left.EndCoord)
}

func isBetter(currArea freeArea, currRating areaRating, bestArea freeArea, bestRating areaRating) bool {
	if currRating.crossings != bestRating.crossings {
		return currRating.crossings < bestRating.crossings
	}
	if currRating.dependencies != bestRating.dependencies {
		return currRating.dependencies < bestRating.dependencies
	}
	return currArea.size() > bestArea.size()
}

func useArea(freeAreas *[]freeArea, usedIndex int, criticalConflictThreshold float64) {
	areas := *freeAreas
	old := areas[usedIndex]
	areas = append(areas[:usedIndex], areas[usedIndex+1:]...)

	if old.size()/2 >= criticalConflictThreshold {
		insertAt := usedIndex
		centre := old.center()

		newEnd1 := centre - criticalConflictThreshold
		if old.start <= newEnd1 {
			areas = insertFreeArea(areas, insertAt, freeArea{start: old.start, end: newEnd1})
			insertAt++
		}
		newStart2 := centre + criticalConflictThreshold
		if newStart2 <= old.end {
			areas = insertFreeArea(areas, insertAt, freeArea{start: newStart2, end: old.end})
		}
	}
	*freeAreas = areas
}

func insertFreeArea(areas []freeArea, idx int, a freeArea) []freeArea {
	areas = append(areas, freeArea{})
	copy(areas[idx+1:], areas[idx:])
	areas[idx] = a
	return areas
}
