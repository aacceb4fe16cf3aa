package graph

import (
	"math"
	"sort"
)

// copyDepthErrorMargin bounds how far a proposed copy-depth assignment's
// source sum may stray (relatively) from its target before Propagate
// refuses to apply it.
const copyDepthErrorMargin = 1.0

// Propagate assigns copy-depth vectors to as many segments as it can,
// alternating single-copy seeding with merge and redistribution passes
// until a full round makes no further progress. Segments with ambiguous or
// insufficiently constrained connections are left without an assignment;
// CopyDepths reports which.
func (g *Graph) Propagate(minimumAutoSingle int) {
	for {
		assigned := g.assignSingleCopyDepth(minimumAutoSingle)
		g.propagateAssigned()
		if assigned == 0 {
			return
		}
	}
}

func (g *Graph) propagateAssigned() {
	for g.mergeCopyDepths() {
	}
	if g.redistributeCopyDepths() {
		g.propagateAssigned()
	}
	for g.resolveSimpleLoops() {
	}
}

// assignSingleCopyDepth gives a single copy to the longest
// still-unassigned segment that has no more than one link on either end,
// provided it meets the minimum length. Returns 1 if it made an
// assignment, 0 otherwise.
func (g *Graph) assignSingleCopyDepth(minimumAutoSingle int) int {
	segs := g.segmentsWithoutCopies()
	sort.Slice(segs, func(i, j int) bool {
		if segs[i].Length() != segs[j].Length() {
			return segs[i].Length() > segs[j].Length()
		}
		return segs[i].ID < segs[j].ID
	})
	for _, s := range segs {
		if s.Length() >= minimumAutoSingle && g.atMostOneLinkPerEnd(s.ID) {
			g.SetCopyDepths(s.ID, []float64{s.Depth})
			return 1
		}
	}
	return 0
}

// mergeCopyDepths looks for a still-unassigned segment whose exclusive
// inputs, or exclusive outputs, are all already assigned, and gives it the
// assignment -- scaled so the source depths sum to its own depth -- that
// comes out with the lowest relative error, provided that error is within
// margin. Returns whether it made an assignment.
func (g *Graph) mergeCopyDepths() bool {
	segments := g.segmentsWithoutCopies()
	if len(segments) == 0 {
		return false
	}

	var bestID int
	var bestDepths []float64
	lowestError := math.Inf(1)

	for _, s := range segments {
		id := s.ID
		exclusiveInputs := g.ExclusiveInputs(SignedID(id))
		exclusiveOutputs := g.ExclusiveOutputs(SignedID(id))
		inPossible := len(exclusiveInputs) > 0 && g.allHaveCopyDepths(exclusiveInputs)
		outPossible := len(exclusiveOutputs) > 0 && g.allHaveCopyDepths(exclusiveOutputs)
		if inPossible {
			depths, err := g.scaleCopyDepthsFromSources(id, exclusiveInputs)
			if err < lowestError {
				lowestError = err
				bestID = id
				bestDepths = depths
			}
		}
		if outPossible {
			depths, err := g.scaleCopyDepthsFromSources(id, exclusiveOutputs)
			if err < lowestError {
				lowestError = err
				bestID = id
				bestDepths = depths
			}
		}
	}

	if bestID != 0 && lowestError < copyDepthErrorMargin {
		g.SetCopyDepths(bestID, bestDepths)
		return true
	}
	return false
}

// redistributeCopyDepths looks for an already-multi-copy segment whose
// exclusive inputs (or, failing that, exclusive outputs) include at least
// one still-unassigned segment, and tries every way of splitting its copy
// depths among those neighbours. If some arrangement keeps every target within the
// error margin, it is applied. Returns whether it made an assignment.
func (g *Graph) redistributeCopyDepths() bool {
	segments := g.segmentsWithTwoOrMoreCopies()
	if len(segments) == 0 {
		return false
	}

	for _, s := range segments {
		id := s.ID
		connections := g.ExclusiveInputs(SignedID(id))
		if len(connections) == 0 || g.allHaveCopyDepths(connections) {
			connections = g.ExclusiveOutputs(SignedID(id))
		}
		if len(connections) == 0 || g.allHaveCopyDepths(connections) {
			continue
		}

		copyDepths, _ := g.CopyDepths(id)
		bins := make([][]float64, len(connections))
		targets := make([]*int, len(connections))
		for i, c := range connections {
			if cd, ok := g.CopyDepths(c); ok {
				n := len(cd)
				targets[i] = &n
			}
		}
		arrangements := shuffleIntoBins(copyDepths, bins, targets)
		if len(arrangements) == 0 {
			continue
		}

		lowestError := math.Inf(1)
		var bestArrangement [][]float64
		for _, arrangement := range arrangements {
			err := g.errorForMultipleSegmentsAndDepths(connections, arrangement)
			if err < lowestError {
				lowestError = err
				bestArrangement = arrangement
			}
		}
		if lowestError < copyDepthErrorMargin {
			if g.assignCopyDepthsWhereNeeded(connections, bestArrangement) {
				return true
			}
		}
	}
	return false
}

// resolveSimpleLoops would assign copy depths to single-repetition simple
// loop structures. Left unimplemented: distinguishing a once-around loop
// from a higher-repetition one needs a dedicated detector this port
// doesn't have yet, so it always reports no progress.
func (g *Graph) resolveSimpleLoops() bool {
	return false
}

func (g *Graph) atMostOneLinkPerEnd(id int) bool {
	s := SignedID(id)
	if len(g.links.Forward(s)) > 1 {
		return false
	}
	if len(g.links.Reverse(s)) > 1 {
		return false
	}
	return true
}

func (g *Graph) allHaveCopyDepths(ids []int) bool {
	for _, id := range ids {
		if _, ok := g.copyDepths[id]; !ok {
			return false
		}
	}
	return true
}

func (g *Graph) segmentsWithoutCopies() []*Segment {
	var out []*Segment
	for id, s := range g.segments {
		if _, ok := g.copyDepths[id]; !ok {
			out = append(out, s)
		}
	}
	return out
}

func (g *Graph) segmentsWithTwoOrMoreCopies() []*Segment {
	var out []*Segment
	for id, s := range g.segments {
		if d, ok := g.copyDepths[id]; ok && len(d) > 1 {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (g *Graph) scaleCopyDepthsFromSources(id int, sources []int) ([]float64, float64) {
	var sourceDepths []float64
	for _, num := range sources {
		sourceDepths = append(sourceDepths, g.copyDepths[num]...)
	}
	targetDepth := g.segments[id].Depth
	return scaleCopyDepths(targetDepth, sourceDepths)
}

// scaleCopyDepths scales sourceDepths so their sum matches targetDepth,
// returning the scaled (descending-sorted) depths and the relative error
// of the unscaled sum against the target.
func scaleCopyDepths(targetDepth float64, sourceDepths []float64) ([]float64, float64) {
	sum := 0.0
	for _, d := range sourceDepths {
		sum += d
	}
	scalingFactor := targetDepth / sum
	scaled := make([]float64, len(sourceDepths))
	for i, d := range sourceDepths {
		scaled[i] = scalingFactor * d
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(scaled)))
	return scaled, getError(sum, targetDepth)
}

// getError returns the relative error of assigning source to target: e.g.
// source 1.6 against target 2.0 gives an error of 0.2. Undefined (reported
// as +Inf) when target is not positive.
func getError(source, target float64) float64 {
	if target > 0.0 {
		return math.Abs(source-target) / target
	}
	return math.Inf(1)
}

func (g *Graph) errorForMultipleSegmentsAndDepths(ids []int, depths [][]float64) float64 {
	maxError := 0.0
	for i, num := range ids {
		segDepth := g.segments[num].Depth
		sum := 0.0
		for _, d := range depths[i] {
			sum += d
		}
		if e := getError(sum, segDepth); e > maxError {
			maxError = e
		}
	}
	return maxError
}

func (g *Graph) assignCopyDepthsWhereNeeded(ids []int, newDepths [][]float64) bool {
	success := false
	for i, num := range ids {
		if _, ok := g.copyDepths[num]; !ok {
			scaled, err := scaleCopyDepths(g.segments[num].Depth, newDepths[i])
			if err <= copyDepthErrorMargin {
				g.SetCopyDepths(num, scaled)
				success = true
			}
		}
	}
	return success
}

// shuffleIntoBins enumerates every way of distributing items across bins
// such that every bin ends up non-empty, and any bin with a target count
// (targets[i] non-nil) ends up with exactly that many items.
func shuffleIntoBins(items []float64, bins [][]float64, targets []*int) [][][]float64 {
	var arrangements [][][]float64

	if len(items) > 0 {
		for i := range bins {
			binsCopy := cloneBins(bins)
			binsCopy[i] = append(binsCopy[i], items[0])
			arrangements = append(arrangements, shuffleIntoBins(items[1:], binsCopy, targets)...)
		}
		return arrangements
	}

	for _, b := range bins {
		if len(b) == 0 {
			return arrangements
		}
	}
	for i, t := range targets {
		if t != nil && *t != len(bins[i]) {
			return arrangements
		}
	}
	return append(arrangements, bins)
}

func cloneBins(bins [][]float64) [][]float64 {
	out := make([][]float64, len(bins))
	for i, b := range bins {
		out[i] = append([]float64(nil), b...)
	}
	return out
}
