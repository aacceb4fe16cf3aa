package graph

import "testing"

func TestAssignSingleCopyDepth(t *testing.T) {
	g := New(0)
	s := NewSegment(1, 12.5, "ACGTACGTAC", true)
	s.Derive()
	g.AddSegment(s)

	g.Propagate(0)

	depths, ok := g.CopyDepths(1)
	if !ok {
		t.Fatal("expected segment 1 to receive a copy-depth assignment")
	}
	if len(depths) != 1 || depths[0] != 12.5 {
		t.Errorf("CopyDepths(1) = %v, want [12.5]", depths)
	}
}

func TestPropagateMergesExclusiveInput(t *testing.T) {
	// 1 leads exclusively into 2; once 1 has a copy depth, 2 should get one
	// too, scaled to match 2's own depth.
	g := New(0)
	s1 := NewSegment(1, 5.0, "ACGTACGTAC", true)
	s1.Derive()
	s2 := NewSegment(2, 5.0, "GGGGGGGGGG", true)
	s2.Derive()
	g.AddSegment(s1)
	g.AddSegment(s2)
	g.Links().AddLink(1, 2)

	g.Propagate(0)

	d1, ok1 := g.CopyDepths(1)
	d2, ok2 := g.CopyDepths(2)
	if !ok1 || !ok2 {
		t.Fatalf("expected both segments assigned, got ok1=%v ok2=%v", ok1, ok2)
	}
	if len(d1) != 1 || len(d2) != 1 {
		t.Errorf("expected single-copy assignments, got %v and %v", d1, d2)
	}
}

func TestGetError(t *testing.T) {
	if got := getError(1.6, 2.0); got < 0.199999 || got > 0.200001 {
		t.Errorf("getError(1.6, 2.0) = %v, want ~0.2", got)
	}
	if got := getError(1.0, 0.0); got <= 0 {
		t.Errorf("getError against a non-positive target should be +Inf, got %v", got)
	}
}

func TestScaleCopyDepths(t *testing.T) {
	scaled, err := scaleCopyDepths(10.0, []float64{3.0, 2.0})
	if err != 0.5 {
		t.Errorf("error = %v, want 0.5 (source sum 5 against target 10)", err)
	}
	sum := scaled[0] + scaled[1]
	if sum < 9.999 || sum > 10.001 {
		t.Errorf("scaled sum = %v, want ~10.0", sum)
	}
	// Descending order.
	if scaled[0] < scaled[1] {
		t.Errorf("scaled depths not sorted descending: %v", scaled)
	}
}

func TestShuffleIntoBinsRespectsTargets(t *testing.T) {
	items := []float64{1.0, 2.0, 3.0}
	bins := make([][]float64, 2)
	one := 1
	targets := []*int{&one, nil}
	arrangements := shuffleIntoBins(items, bins, targets)
	for _, arr := range arrangements {
		if len(arr[0]) != 1 {
			t.Errorf("bin 0 should always have exactly 1 item, got %v", arr[0])
		}
		if len(arr[1]) == 0 {
			t.Errorf("bin 1 should never be empty, got %v", arr[1])
		}
	}
	if len(arrangements) == 0 {
		t.Error("expected at least one valid arrangement")
	}
}
