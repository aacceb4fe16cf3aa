package seqio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jianzuoyi/Unicycler/graph"
)

func TestDepthString(t *testing.T) {
	got := DepthString([]float64{1.5, 2.25})
	want := "1.500, 2.250"
	if got != want {
		t.Errorf("DepthString = %q, want %q", got, want)
	}
}

func TestColour(t *testing.T) {
	cases := map[int]string{0: "black", 1: "forestgreen", 2: "gold", 3: "darkorange", 5: "red"}
	for n, want := range cases {
		if got := Colour(n); got != want {
			t.Errorf("Colour(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestWriteFasta(t *testing.T) {
	g := graph.New(0)
	s := graph.NewSegment(1, 3.0, "ACGTACGTAC", true)
	s.Derive()
	g.AddSegment(s)

	var buf bytes.Buffer
	if err := WriteFasta(&buf, g, 4); err != nil {
		t.Fatalf("WriteFasta: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, ">1\n") {
		t.Errorf("missing header, got:\n%s", out)
	}
	if !strings.Contains(out, "ACGT\nACGT\nAC\n") {
		t.Errorf("sequence not wrapped at width 4, got:\n%s", out)
	}
}
