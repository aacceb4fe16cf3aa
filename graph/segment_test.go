package graph

import "testing"

func TestSegmentDerive(t *testing.T) {
	s := NewSegment(1, 10.0, "ACGT", true)
	s.Derive()
	if s.ReverseSequence != "ACGT" {
		t.Errorf("ReverseSequence = %q, want %q", s.ReverseSequence, "ACGT")
	}

	s2 := NewSegment(2, 5.0, "AAGG", false)
	s2.Derive()
	if s2.ForwardSequence != "CCTT" {
		t.Errorf("ForwardSequence = %q, want %q", s2.ForwardSequence, "CCTT")
	}
}

func TestSegmentLength(t *testing.T) {
	s := NewSegment(1, 1.0, "ACGTACGT", true)
	s.Derive()
	if s.Length() != 8 {
		t.Errorf("Length() = %d, want 8", s.Length())
	}
	if got := s.LengthNoOverlap(3); got != 5 {
		t.Errorf("LengthNoOverlap(3) = %d, want 5", got)
	}
}

func TestSegmentSequenceOnStrand(t *testing.T) {
	s := NewSegment(1, 1.0, "ACGT", true)
	s.Derive()
	if got := s.SequenceOnStrand(1); got != "ACGT" {
		t.Errorf("SequenceOnStrand(1) = %q, want %q", got, "ACGT")
	}
	if got := s.SequenceOnStrand(-1); got != "ACGT" {
		t.Errorf("SequenceOnStrand(-1) = %q, want %q", got, "ACGT")
	}
}

func TestSegmentScaleDepth(t *testing.T) {
	s := NewSegment(1, 10.0, "A", true)
	s.ScaleDepth(2.0)
	if s.Depth != 5.0 {
		t.Errorf("Depth = %v, want 5.0", s.Depth)
	}
}
