// File: slots.go
// Role: assignSlots, the topological-numbering pass that turns an acyclic
// segment dependency graph into routing-slot indices, plus the
// rightward-push second pass for segments with no incoming connections —
// adapted from original_source/elk-cpp's
// OrthogonalRoutingGenerator::topologicalNumbering.
package routing

// assignSlots numbers every segment's routing slot by longest path through
// its (now acyclic, after cycle breaking) dependency graph: a segment's
// slot is always strictly greater than every segment it depends on. A
// second pass then pushes every segment with no incoming connections (pure
// sources feeding only rightward) as far right as its dependents allow, so
// a back-edge's dummy chain doesn't route needlessly close to the gap's
// low side. A source with a dependent that has incoming connections keeps
// its first-pass slot.
func assignSlots(segs []*Segment) {
	if len(segs) == 0 {
		return
	}

	inCount := make(map[*Segment]int, len(segs))
	var queue []*Segment
	var rightwardTargets []*Segment

	for _, s := range segs {
		s.Slot = 0
		inCount[s] = len(s.InDeps)
		if inCount[s] == 0 {
			queue = append(queue, s)
		}
		if len(s.OutDeps) == 0 && len(s.Incoming) == 0 {
			rightwardTargets = append(rightwardTargets, s)
		}
	}

	maxSlot := -1
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for _, d := range node.OutDeps {
			target := d.To
			if node.Slot+1 > target.Slot {
				target.Slot = node.Slot + 1
			}
			if target.Slot > maxSlot {
				maxSlot = target.Slot
			}
			inCount[target]--
			if inCount[target] == 0 {
				queue = append(queue, target)
			}
		}
	}

	if maxSlot <= -1 {
		return
	}

	outCount := make(map[*Segment]int, len(segs))
	for _, s := range segs {
		outCount[s] = len(s.OutDeps)
	}

	for _, s := range rightwardTargets {
		s.Slot = maxSlot
	}
	queue = append([]*Segment{}, rightwardTargets...)
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for _, d := range node.InDeps {
			source := d.From
			if len(source.Incoming) > 0 {
				continue
			}
			outCount[source]--
			if outCount[source] == 0 {
				slot := maxSlot
				for _, od := range source.OutDeps {
					if od.To.Slot-1 < slot {
						slot = od.To.Slot - 1
					}
				}
				source.Slot = slot
				queue = append(queue, source)
			}
		}
	}
}

// slotCount reports how many distinct routing slots segs actually uses (0
// if segs is empty), the quantity spec §4.6 step 7's band-width formula
// needs.
func slotCount(segs []*Segment) int {
	max := -1
	for _, s := range segs {
		if s.Slot > max {
			max = s.Slot
		}
	}
	if max < 0 {
		if len(segs) > 0 {
			return 1
		}
		return 0
	}
	return max + 1
}
