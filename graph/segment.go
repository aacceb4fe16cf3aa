package graph

import "fmt"

// Segment is one node of the assembly graph: a strictly positive ID, a
// depth (coverage proxy), and a forward/reverse sequence pair. Once
// normalised (via Derive), both sequences are present and each is the
// reverse complement of the other.
type Segment struct {
	ID              int
	Depth           float64
	ForwardSequence string
	ReverseSequence string
}

// NewSegment creates a Segment carrying sequence on the strand positive
// selects, leaving the other strand empty until Derive is called.
func NewSegment(id int, depth float64, sequence string, positive bool) *Segment {
	s := &Segment{ID: id, Depth: depth}
	s.AttachSequence(sequence, positive)
	return s
}

// AttachSequence sets the forward or reverse sequence, overwriting whatever
// was there before -- used by FASTG loading, where a segment's two strands
// arrive as separate header/sequence blocks.
func (s *Segment) AttachSequence(sequence string, positive bool) {
	if positive {
		s.ForwardSequence = sequence
	} else {
		s.ReverseSequence = sequence
	}
}

// Derive fills in whichever strand is missing as the reverse complement of
// the other. A no-op once both strands are present.
func (s *Segment) Derive() {
	if s.ForwardSequence == "" && s.ReverseSequence != "" {
		s.ForwardSequence = RevComp(s.ReverseSequence)
	}
	if s.ReverseSequence == "" && s.ForwardSequence != "" {
		s.ReverseSequence = RevComp(s.ForwardSequence)
	}
}

// ScaleDepth divides the segment's depth by divisor. divisor must be
// positive; callers (such as NormaliseDepth) are expected to
// guard against zero themselves, as there is no sane fallback depth here.
func (s *Segment) ScaleDepth(divisor float64) {
	s.Depth /= divisor
}

// Length is the length of the forward sequence.
func (s *Segment) Length() int { return len(s.ForwardSequence) }

// LengthNoOverlap is Length minus the graph-wide overlap k. It may be
// negative for very short segments; callers must tolerate that rather than
// clamp it, since clamping would distort length-weighted averages.
func (s *Segment) LengthNoOverlap(overlap int) int { return s.Length() - overlap }

// SequenceOnStrand returns the forward sequence for a positive SignedID or
// the reverse sequence for a negative one.
func (s *Segment) SequenceOnStrand(id SignedID) string {
	if id.Positive() {
		return s.ForwardSequence
	}
	return s.ReverseSequence
}

func (s *Segment) String() string {
	seq := s.ForwardSequence
	if len(seq) > 6 {
		seq = seq[:3] + "..." + seq[len(seq)-3:]
	}
	return fmt.Sprintf("%d (%s)", s.ID, seq)
}
