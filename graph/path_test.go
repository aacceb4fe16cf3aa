package graph

import (
	"reflect"
	"testing"
)

func sids(vals ...int) []SignedID {
	out := make([]SignedID, len(vals))
	for i, v := range vals {
		out[i] = SignedID(v)
	}
	return out
}

func TestFindReplace(t *testing.T) {
	list := sids(1, 2, 3, 1, 2, 5)
	got := findReplace(list, sids(1, 2), 9)
	want := sids(9, 3, 9, 5)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("findReplace = %v, want %v", got, want)
	}
}

func TestFindReplaceNoMatch(t *testing.T) {
	list := sids(1, 2, 3)
	got := findReplace(list, sids(4, 5), 9)
	if !reflect.DeepEqual(got, list) {
		t.Errorf("findReplace with no match changed the list: %v", got)
	}
}

func TestSplitOn(t *testing.T) {
	path := sids(1, 2, 3, 2, 4, 5, 2)
	got := splitOn(path, 2)
	// Fragments [1], [3], [4 5] and the empty tail: only [4 5] is long
	// enough to keep.
	want := [][]SignedID{sids(4, 5)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitOn = %v, want %v", got, want)
	}
}

func TestSplitOnDropsSingletonFragments(t *testing.T) {
	// "1" alone after the first split (len 1) should be dropped.
	path := sids(1, 2, 3, 4)
	got := splitOn(path, 2)
	want := [][]SignedID{sids(3, 4)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitOn = %v, want %v", got, want)
	}
}

func TestSplitOnMultiple(t *testing.T) {
	path := sids(1, 2, 3, 4, 5)
	got := splitOnMultiple(path, sids(2, 4))
	// Splitting on 2 keeps [3 4 5]; splitting that on 4 leaves [3] and [5],
	// both singletons, so nothing survives.
	var want [][]SignedID
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitOnMultiple = %v, want %v", got, want)
	}
}

func TestInsertBetween(t *testing.T) {
	list := sids(1, 2, 3, 1, 2)
	got := insertBetween(list, 1, 2, 9)
	want := sids(1, 9, 2, 3, 1, 9, 2)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("insertBetween = %v, want %v", got, want)
	}
}

func TestClonePathsIsIndependent(t *testing.T) {
	original := map[string]*Path{
		"p1": {Name: "p1", Segments: sids(1, 2, 3)},
	}
	clone := clonePaths(original)
	clone["p1"].Segments[0] = 99
	if original["p1"].Segments[0] == 99 {
		t.Error("clonePaths shared underlying segment slice with the original")
	}
}
