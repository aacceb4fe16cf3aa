package seqio

import (
	"fmt"
	"io"
	"sort"

	"github.com/biogo/biogo/util"

	"github.com/jianzuoyi/Unicycler/graph"
)

// WriteFasta writes every segment's forward sequence as a plain FASTA
// record, header ">id", wrapped at width bases per line. Line wrapping is
// done by biogo's own util.Wrapper, the same line-wrapping writer
// biogo-examples/contig's Format method wraps a FASTA body in, rather than
// a hand-rolled splitter.
func WriteFasta(w io.Writer, g *graph.Graph, width int) error {
	segs := g.Segments()
	ids := make([]int, len(segs))
	byID := make(map[int]*graph.Segment, len(segs))
	for i, s := range segs {
		ids[i] = s.ID
		byID[s.ID] = s
	}
	sort.Ints(ids)

	for _, id := range ids {
		s := byID[id]
		if _, err := fmt.Fprintf(w, ">%d\n", id); err != nil {
			return err
		}
		lw := util.NewWrapper(w, width, len(s.ForwardSequence))
		if _, err := lw.Write([]byte(s.ForwardSequence)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
