package fastg

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jianzuoyi/Unicycler/graph"
)

// Write renders a Graph as FASTG: every segment is written twice, once per
// strand, each header listing that strand's outgoing neighbours.
func Write(w io.Writer, g *graph.Graph) error {
	ids := make([]int, 0, g.SegmentCount())
	for _, s := range g.Segments() {
		ids = append(ids, s.ID)
	}
	sort.Ints(ids)

	for _, id := range ids {
		s, _ := g.Segment(id)
		if err := writeRecord(w, g, s, true); err != nil {
			return err
		}
		if err := writeRecord(w, g, s, false); err != nil {
			return err
		}
	}
	return nil
}

func writeRecord(w io.Writer, g *graph.Graph, s *graph.Segment, positive bool) error {
	header := headerWithLinks(g, s, positive)
	seq := s.ForwardSequence
	if !positive {
		seq = s.ReverseSequence
	}
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	return writeString(w, graph.WrapLines(seq, 60))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func header(s *graph.Segment, positive bool) string {
	h := fmt.Sprintf("EDGE_%d_length_%d_cov_%v", s.ID, s.Length(), s.Depth)
	if !positive {
		h += "'"
	}
	return h
}

func headerWithLinks(g *graph.Graph, s *graph.Segment, positive bool) string {
	signed := graph.SignedID(s.ID)
	if !positive {
		signed = -signed
	}
	neighbours := g.Links().Forward(signed)

	var b strings.Builder
	b.WriteByte('>')
	b.WriteString(header(s, positive))
	if len(neighbours) > 0 {
		parts := make([]string, len(neighbours))
		for i, n := range neighbours {
			ns, ok := g.Segment(n.Abs())
			if !ok {
				continue
			}
			parts[i] = header(ns, n.Positive())
		}
		b.WriteByte(':')
		b.WriteString(strings.Join(parts, ","))
	}
	b.WriteString(";\n")
	return b.String()
}
