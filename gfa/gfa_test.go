package gfa

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jianzuoyi/Unicycler/graph"
)

func TestReadWriteRoundTrip(t *testing.T) {
	input := "S\t1\tACGTACGT\tLN:i:8\tDP:f:2.500000\n" +
		"S\t2\tGGGGCCCC\tLN:i:8\tDP:f:1.000000\n" +
		"L\t1\t+\t2\t+\t2M\n" +
		"P\tcontig_1\t1+,2+\t2M\n"

	g, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if g.Overlap != 2 {
		t.Fatalf("Overlap = %d, want 2", g.Overlap)
	}
	if g.SegmentCount() != 2 {
		t.Fatalf("SegmentCount = %d, want 2", g.SegmentCount())
	}
	s1, ok := g.Segment(1)
	if !ok || s1.Depth != 2.5 {
		t.Fatalf("segment 1 depth = %v, ok=%v", s1, ok)
	}
	if len(g.Links().Forward(1)) != 1 {
		t.Fatalf("segment 1 should link forward to 2")
	}
	paths := g.Paths()
	if len(paths) != 1 || len(paths[0].Segments) != 2 {
		t.Fatalf("unexpected paths: %v", paths)
	}

	var buf bytes.Buffer
	if err := Write(&buf, g); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "S\t1\tACGTACGT\tLN:i:8\tDP:f:2.5") {
		t.Errorf("missing expected S line, got:\n%s", out)
	}
	if !strings.Contains(out, "L\t1\t+\t2\t+\t2M") {
		t.Errorf("missing expected L line, got:\n%s", out)
	}
	if !strings.Contains(out, "P\tcontig_1\t1+,2+\t2M") {
		t.Errorf("missing expected P line, got:\n%s", out)
	}
}

func TestWriteIncludesCopyDepthTags(t *testing.T) {
	g := graph.New(0)
	s := graph.NewSegment(1, 4.0, "ACGT", true)
	s.Derive()
	g.AddSegment(s)
	g.SetCopyDepths(1, []float64{2.0, 2.0})

	var buf bytes.Buffer
	if err := Write(&buf, g); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "LB:z:2.000, 2.000") {
		t.Errorf("missing LB tag, got:\n%s", out)
	}
	if !strings.Contains(out, "CL:z:gold") {
		t.Errorf("missing CL tag, got:\n%s", out)
	}
}

func TestReadRejectsInconsistentOverlap(t *testing.T) {
	input := "S\t1\tACGT\n" +
		"S\t2\tACGT\n" +
		"S\t3\tACGT\n" +
		"L\t1\t+\t2\t+\t2M\n" +
		"L\t2\t+\t3\t+\t3M\n"
	if _, err := Read(strings.NewReader(input)); err == nil {
		t.Error("expected an error for inconsistent overlaps")
	}
}
