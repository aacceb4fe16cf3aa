package gfa

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jianzuoyi/Unicycler/graph"
	"github.com/jianzuoyi/Unicycler/seqio"
)

// Write renders a Graph as GFA 1: one S line per segment (always carrying
// LN and DP tags, plus LB and CL when copy depths are assigned), one L line
// per canonical link, and one P line per path.
func Write(w io.Writer, g *graph.Graph) error {
	if err := writeSegments(w, g); err != nil {
		return err
	}
	if err := writeLinks(w, g); err != nil {
		return err
	}
	return writePaths(w, g)
}

func writeSegments(w io.Writer, g *graph.Graph) error {
	ids := sortedIDs(g)
	for _, id := range ids {
		s, _ := g.Segment(id)
		line := fmt.Sprintf("S\t%d\t%s\tLN:i:%d\tDP:f:%v", s.ID, s.ForwardSequence, s.Length(), s.Depth)
		if depths, ok := g.CopyDepths(id); ok {
			line += fmt.Sprintf("\tLB:z:%s\tCL:z:%s", seqio.DepthString(depths), seqio.Colour(len(depths)))
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func writeLinks(w io.Writer, g *graph.Graph) error {
	ids := sortedIDs(g)
	for _, id := range ids {
		for _, from := range []graph.SignedID{graph.SignedID(id), -graph.SignedID(id)} {
			for _, to := range g.Links().Forward(from) {
				if !graph.IsCanonicalLink(from, to) {
					continue
				}
				line := fmt.Sprintf("L\t%d\t%c\t%d\t%c\t%dM",
					from.Abs(), graph.Sign(int(from)), to.Abs(), graph.Sign(int(to)), g.Overlap)
				if _, err := io.WriteString(w, line+"\n"); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func writePaths(w io.Writer, g *graph.Graph) error {
	paths := g.Paths()
	sort.Slice(paths, func(i, j int) bool { return paths[i].Name < paths[j].Name })
	for _, p := range paths {
		names := make([]string, len(p.Segments))
		for i, s := range p.Segments {
			names[i] = s.String()
		}
		cigar := fmt.Sprintf("%dM", g.Overlap)
		cigars := make([]string, 0, len(p.Segments)-1)
		for i := 0; i < len(p.Segments)-1; i++ {
			cigars = append(cigars, cigar)
		}
		line := fmt.Sprintf("P\t%s\t%s\t%s", p.Name, strings.Join(names, ","), strings.Join(cigars, ","))
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func sortedIDs(g *graph.Graph) []int {
	segs := g.Segments()
	ids := make([]int, len(segs))
	for i, s := range segs {
		ids[i] = s.ID
	}
	sort.Ints(ids)
	return ids
}
