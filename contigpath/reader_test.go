package contigpath

import (
	"strings"
	"testing"

	"github.com/jianzuoyi/Unicycler/graph"
)

func TestReadAppliesForwardBlock(t *testing.T) {
	g := graph.New(2)
	input := "NODE_1_length_100_cov_5\n" +
		"1+,2+\n" +
		"NODE_1_length_100_cov_5'\n" +
		"2-,1-\n"

	if err := Read(strings.NewReader(input), g); err != nil {
		t.Fatalf("Read: %v", err)
	}
	paths := g.Paths()
	if len(paths) != 1 {
		t.Fatalf("got %d paths, want 1 (reverse-strand block skipped)", len(paths))
	}
	if len(paths[0].Segments) != 2 {
		t.Errorf("path has %d segments, want 2", len(paths[0].Segments))
	}
}

func TestReadDropsSingletons(t *testing.T) {
	g := graph.New(2)
	input := "NODE_2_length_50_cov_3\n" +
		"5+\n"

	if err := Read(strings.NewReader(input), g); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(g.Paths()) != 0 {
		t.Errorf("singleton subpath should have been dropped, got %v", g.Paths())
	}
}

func TestReadAccumulatesMultiLineBody(t *testing.T) {
	g := graph.New(2)
	// The body of a NODE block can be wrapped across several physical
	// lines before the next header; they must be concatenated into one
	// segment string, not just the single line right after the header.
	input := "NODE_4_length_200_cov_8\n" +
		"1+,2+,3+,4+,5+,6+,7+,8+,9+,10+,11+,12+,13+,14+,15+,\n" +
		"16+,17+,18+\n" +
		"NODE_5_length_90_cov_1\n" +
		"20+\n"

	if err := Read(strings.NewReader(input), g); err != nil {
		t.Fatalf("Read: %v", err)
	}
	paths := g.Paths()
	if len(paths) != 1 {
		t.Fatalf("got %d paths, want 1", len(paths))
	}
	if len(paths[0].Segments) != 18 {
		t.Errorf("path has %d segments, want 18 (body split across two lines)", len(paths[0].Segments))
	}
}

func TestReadSplitsMultipleSubpaths(t *testing.T) {
	g := graph.New(2)
	input := "NODE_3_length_80_cov_2\n" +
		"1+,2+;3+,4+\n"

	if err := Read(strings.NewReader(input), g); err != nil {
		t.Fatalf("Read: %v", err)
	}
	paths := g.Paths()
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2", len(paths))
	}
}
