package graph

import "testing"

func TestSignedIDString(t *testing.T) {
	cases := map[SignedID]string{
		5:  "5+",
		-6: "6-",
		1:  "1+",
	}
	for id, want := range cases {
		if got := id.String(); got != want {
			t.Errorf("SignedID(%d).String() = %q, want %q", id, got, want)
		}
	}
}

func TestParseSignedID(t *testing.T) {
	got, err := ParseSignedID("5+")
	if err != nil || got != 5 {
		t.Fatalf("ParseSignedID(\"5+\") = %v, %v, want 5, nil", got, err)
	}
	got, err = ParseSignedID("6-")
	if err != nil || got != -6 {
		t.Fatalf("ParseSignedID(\"6-\") = %v, %v, want -6, nil", got, err)
	}
	if _, err := ParseSignedID("0+"); err == nil {
		t.Error("ParseSignedID(\"0+\") expected error, got nil")
	}
	if _, err := ParseSignedID("5"); err == nil {
		t.Error("ParseSignedID(\"5\") expected error for missing sign, got nil")
	}
	if _, err := ParseSignedID("x+"); err == nil {
		t.Error("ParseSignedID(\"x+\") expected error, got nil")
	}
}

func TestSignedIDRoundTrip(t *testing.T) {
	for _, n := range []SignedID{1, -1, 42, -42} {
		got, err := ParseSignedID(n.String())
		if err != nil {
			t.Fatalf("round trip %d: %v", n, err)
		}
		if got != n {
			t.Errorf("round trip %d => %d", n, got)
		}
	}
}

func TestIsCanonicalLink(t *testing.T) {
	cases := []struct {
		u, v SignedID
		want bool
	}{
		{1, 2, true},
		{-1, -2, false},
		{2, -2, true},
		{3, -3, true},
		{3, 2, true},
		{2, 3, true},
		{-3, 2, true},
	}
	for _, c := range cases {
		if got := IsCanonicalLink(c.u, c.v); got != c.want {
			t.Errorf("IsCanonicalLink(%d, %d) = %v, want %v", c.u, c.v, got, c.want)
		}
	}
}
