package graph

import "testing"

func TestRevComp(t *testing.T) {
	cases := map[string]string{
		"":         "",
		"A":        "T",
		"ACGT":     "ACGT",
		"AACCGGTT": "AACCGGTT",
		"acgt":     "acgt",
		"AGCT.":    ".AGCT",
		"RYSWKM":   "KMWSRY",
	}
	for in, want := range cases {
		if got := RevComp(in); got != want {
			t.Errorf("RevComp(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRevCompUnknownBaseBecomesN(t *testing.T) {
	if got := RevComp("AXT"); got != "ANT" {
		t.Errorf("RevComp(\"AXT\") = %q, want %q", got, "ANT")
	}
}

func TestIsHomopolymer(t *testing.T) {
	cases := []struct {
		seq  string
		want bool
	}{
		{"", false},
		{"A", true},
		{"AAAA", true},
		{"aaaa", true},
		{"AaAa", true},
		{"AAAT", false},
	}
	for _, c := range cases {
		if got := IsHomopolymer(c.seq); got != c.want {
			t.Errorf("IsHomopolymer(%q) = %v, want %v", c.seq, got, c.want)
		}
	}
}

func TestWrapLines(t *testing.T) {
	if got := WrapLines("", 60); got != "" {
		t.Errorf("WrapLines empty = %q, want empty", got)
	}
	got := WrapLines("ACGTACGTAC", 4)
	want := "ACGT\nACGT\nAC\n"
	if got != want {
		t.Errorf("WrapLines = %q, want %q", got, want)
	}
	if got := WrapLines("ACGT", 60); got != "ACGT\n" {
		t.Errorf("WrapLines short = %q, want %q", got, "ACGT\n")
	}
}
