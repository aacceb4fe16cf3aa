package graph

import (
	"strconv"

	"github.com/pkg/errors"
)

// SignedID is a non-zero integer whose absolute value names a Segment and
// whose sign selects a strand: positive is the forward sequence, negative
// is the reverse. Zero is never a valid SignedID.
type SignedID int

// Sign returns '+' for n >= 0 and '-' otherwise, matching the source's
// get_sign_string (which treats zero as positive, even though zero is never
// a legal SignedID on its own).
func Sign(n int) byte {
	if n >= 0 {
		return '+'
	}
	return '-'
}

// Abs returns the positive segment ID this SignedID refers to.
func (id SignedID) Abs() int {
	if id < 0 {
		return int(-id)
	}
	return int(id)
}

// Positive reports whether id designates the forward strand.
func (id SignedID) Positive() bool { return id >= 0 }

// Flip returns the opposite strand of the same segment.
func (id SignedID) Flip() SignedID { return -id }

// String renders the int_to_signed_string form: absolute value followed by
// a trailing sign character, e.g. 5 -> "5+", -6 -> "6-".
func (id SignedID) String() string {
	return strconv.Itoa(id.Abs()) + string(Sign(int(id)))
}

// ParseSignedID parses the signed_string_to_int form produced by String.
func ParseSignedID(s string) (SignedID, error) {
	if len(s) < 2 {
		return 0, errors.Errorf("signed id %q: too short", s)
	}
	sign := s[len(s)-1]
	if sign != '+' && sign != '-' {
		return 0, errors.Errorf("signed id %q: missing +/- suffix", s)
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return 0, errors.Wrapf(err, "signed id %q", s)
	}
	if n == 0 {
		return 0, errors.Errorf("signed id %q: zero is not a valid segment id", s)
	}
	if sign == '-' {
		n = -n
	}
	return SignedID(n), nil
}

// IsCanonicalLink reports whether (u -> v) is the representative of its
// reverse-complement-twin pair for single-emission output: both positive is
// canonical; both negative is not (its twin, both positive, already is);
// a palindromic link (u == -v) is canonical; otherwise the link with the
// larger-magnitude start is canonical.
func IsCanonicalLink(u, v SignedID) bool {
	if u > 0 && v > 0 {
		return true
	}
	if u < 0 && v < 0 {
		return false
	}
	if u == -v {
		return true
	}
	return u.Abs() > v.Abs()
}
