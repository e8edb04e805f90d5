// File: cycles.go
// Role: detectCycles, a weighted, mark-based feedback-arc-set heuristic
// over a gap's segment dependency graph, plus the critical-only and
// all-dependency break passes that use it — adapted from
// original_source/elk-cpp's hyper_edge_cycle_detector.cpp and
// OrthogonalRoutingGenerator::breakCriticalCycles/breakNonCriticalCycles.
package routing

import "math/rand"

// detectCycles assigns every segment in segs a linear-order mark, then
// returns every dependency that points "backwards" against that order (a
// feedback arc). When criticalOnly is true, only CRITICAL dependencies are
// considered at all — both for computing weights and for reporting
// feedback arcs — so a call with criticalOnly==true can only ever return
// CRITICAL dependencies, satisfying invariant 6 (a CRITICAL dependency is
// never reversed: breakNonCriticalCycles never sees one in its feedback
// set, since its own pass additionally gives priority to segments with an
// unresolved outgoing-critical dependency, keeping them pointed rightward).
func detectCycles(segs []*Segment, criticalOnly bool, rng *rand.Rand) []*dependency {
	if len(segs) == 0 {
		return nil
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	var sources, sinks []*Segment
	unprocessed := make(map[*Segment]bool, len(segs))

	for _, s := range segs {
		unprocessed[s] = true

		criticalIn, criticalOut := weightSum(s.InDeps, true), weightSum(s.OutDeps, true)
		inWeight, outWeight := criticalIn, criticalOut
		if !criticalOnly {
			inWeight, outWeight = weightSum(s.InDeps, false), weightSum(s.OutDeps, false)
		}

		s.inWeight, s.outWeight = inWeight, outWeight
		s.criticalInWeight, s.criticalOutWeight = criticalIn, criticalOut

		if outWeight == 0 {
			sinks = append(sinks, s)
		} else if inWeight == 0 {
			sources = append(sources, s)
		}
	}

	markBase := len(segs)
	nextSinkMark := markBase - 1
	nextSourceMark := markBase + 1

	updateNeighbors := func(node *Segment) {
		for _, d := range node.OutDeps {
			if criticalOnly && !d.Critical {
				continue
			}
			target := d.To
			if unprocessed[target] && d.Weight > 0 {
				target.inWeight -= d.Weight
				if d.Critical {
					target.criticalInWeight -= d.Weight
				}
				if target.inWeight <= 0 && target.outWeight > 0 {
					sources = append(sources, target)
				}
			}
		}
		for _, d := range node.InDeps {
			if criticalOnly && !d.Critical {
				continue
			}
			source := d.From
			if unprocessed[source] && d.Weight > 0 {
				source.outWeight -= d.Weight
				if d.Critical {
					source.criticalOutWeight -= d.Weight
				}
				if source.outWeight <= 0 && source.inWeight > 0 {
					sinks = append(sinks, source)
				}
			}
		}
	}

	for len(unprocessed) > 0 {
		for len(sinks) > 0 {
			s := sinks[0]
			sinks = sinks[1:]
			if !unprocessed[s] {
				continue
			}
			delete(unprocessed, s)
			s.mark = nextSinkMark
			nextSinkMark--
			updateNeighbors(s)
		}
		for len(sources) > 0 {
			s := sources[0]
			sources = sources[1:]
			if !unprocessed[s] {
				continue
			}
			delete(unprocessed, s)
			s.mark = nextSourceMark
			nextSourceMark++
			updateNeighbors(s)
		}
		if len(unprocessed) == 0 {
			break
		}

		// No sink or source remains among the unprocessed nodes: pick the
		// one(s) with maximal out flow (outWeight-inWeight). If any
		// unprocessed segment still has an outgoing critical dependency but
		// no incoming one, it is taken immediately instead — keeping
		// critical dependencies pointed rightward so breakNonCriticalCycles
		// never has to reverse one.
		var candidates []*Segment
		maxOutflow := minInt
		for _, s := range segs {
			if !unprocessed[s] {
				continue
			}
			if !criticalOnly && s.criticalOutWeight > 0 && s.criticalInWeight <= 0 {
				candidates = []*Segment{s}
				break
			}
			outflow := s.outWeight - s.inWeight
			if outflow > maxOutflow {
				maxOutflow = outflow
				candidates = []*Segment{s}
			} else if outflow == maxOutflow {
				candidates = append(candidates, s)
			}
		}

		chosen := candidates[0]
		if len(candidates) > 1 {
			chosen = candidates[rng.Intn(len(candidates))]
		}
		delete(unprocessed, chosen)
		chosen.mark = nextSourceMark
		nextSourceMark++
		updateNeighbors(chosen)
	}

	shiftBase := len(segs) + 1
	for _, s := range segs {
		if s.mark < markBase {
			s.mark += shiftBase
		}
	}

	var feedback []*dependency
	for _, s := range segs {
		for _, d := range s.OutDeps {
			if criticalOnly && !d.Critical {
				continue
			}
			if s.mark > d.To.mark {
				feedback = append(feedback, d)
			}
		}
	}
	return feedback
}

const minInt = -int(^uint(0)>>1) - 1

func weightSum(deps []*dependency, criticalOnly bool) int {
	sum := 0
	for _, d := range deps {
		if criticalOnly && !d.Critical {
			continue
		}
		sum += d.Weight
	}
	return sum
}

// breakCriticalCycles detects feedback among only CRITICAL dependencies and
// hands them to the segment splitter (spec §4.6.1): a critical cycle can
// never be resolved by reversal, only by splitting one of the offending
// segments into two.
func breakCriticalCycles(segs *[]*Segment, rng *rand.Rand, criticalConflictThreshold, conflictThreshold float64) {
	feedback := detectCycles(*segs, true, rng)
	if len(feedback) == 0 {
		return
	}
	splitSegments(feedback, segs, criticalConflictThreshold, conflictThreshold)
}

// breakNonCriticalCycles detects feedback among all dependencies and
// resolves each one directly: a zero-weight feedback arc (only ever
// created as one half of a true crossing, per createDependencyIfNecessary)
// is simply dropped, anything else is reversed.
func breakNonCriticalCycles(segs []*Segment, rng *rand.Rand) {
	feedback := detectCycles(segs, false, rng)
	for _, d := range feedback {
		if d.Weight == 0 {
			d.remove()
		} else {
			d.reverse()
		}
	}
}
