package graph

// Path is a named, ordered sequence of signed segment identifiers. Paths
// are advisory: mutators preserve, rewrite or split them, but they never
// constrain what a mutator is allowed to do to the graph's structure.
type Path struct {
	Name     string
	Segments []SignedID
}

// clonePaths returns a copy of a path map in which every Path and its
// Segments slice are copied too, used by mutators that
// need to rewrite paths without disturbing the original until the rewrite
// is known to succeed.
func clonePaths(paths map[string]*Path) map[string]*Path {
	out := make(map[string]*Path, len(paths))
	for name, p := range paths {
		segs := make([]SignedID, len(p.Segments))
		copy(segs, p.Segments)
		out[name] = &Path{Name: name, Segments: segs}
	}
	return out
}

// findReplace substitutes every non-overlapping occurrence of pattern
// (a contiguous subsequence) in list with replacement, repeating until no
// occurrence remains. Mirrors the source's find_replace_in_list.
func findReplace(list []SignedID, pattern []SignedID, replacement SignedID) []SignedID {
	if len(pattern) == 0 {
		return list
	}
	for {
		idx := indexOfSlice(list, pattern)
		if idx < 0 {
			return list
		}
		next := make([]SignedID, 0, len(list)-len(pattern)+1)
		next = append(next, list[:idx]...)
		next = append(next, replacement)
		next = append(next, list[idx+len(pattern):]...)
		list = next
	}
}

func indexOfSlice(list, pattern []SignedID) int {
	if len(pattern) == 0 || len(list) < len(pattern) {
		return -1
	}
	for i := 0; i+len(pattern) <= len(list); i++ {
		match := true
		for j, p := range pattern {
			if list[i+j] != p {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// splitOn splits path at every occurrence of seg, dropping seg itself and
// discarding any resulting fragment shorter than 2 elements. Mirrors the
// source's split_path.
func splitOn(path []SignedID, seg SignedID) [][]SignedID {
	var parts [][]SignedID
	cur := path
	for {
		idx := -1
		for i, v := range cur {
			if v == seg {
				idx = i
				break
			}
		}
		if idx < 0 {
			parts = append(parts, cur)
			break
		}
		parts = append(parts, cur[:idx])
		cur = cur[idx+1:]
	}
	out := make([][]SignedID, 0, len(parts))
	for _, p := range parts {
		if len(p) > 1 {
			out = append(out, p)
		}
	}
	return out
}

// splitOnMultiple applies splitOn for each element of forbidden in turn,
// cascading the split across every fragment produced so far. Mirrors the
// source's split_path_multiple.
func splitOnMultiple(path []SignedID, forbidden []SignedID) [][]SignedID {
	parts := [][]SignedID{path}
	for _, seg := range forbidden {
		var next [][]SignedID
		for _, part := range parts {
			next = append(next, splitOn(part, seg)...)
		}
		parts = next
	}
	return parts
}

// insertBetween returns a copy of list with insertVal spliced in after
// every occurrence of val1 immediately followed by val2.
func insertBetween(list []SignedID, val1, val2, insertVal SignedID) []SignedID {
	if len(list) < 2 {
		return list
	}
	out := make([]SignedID, 0, len(list)+1)
	for i := 0; i < len(list)-1; i++ {
		out = append(out, list[i])
		if list[i] == val1 && list[i+1] == val2 {
			out = append(out, insertVal)
		}
	}
	out = append(out, list[len(list)-1])
	return out
}
