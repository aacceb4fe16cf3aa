package graph

// LinkStore maintains the bidirectional adjacency between strands of
// segments. For every link (u -> v) it also holds the reverse-complement
// twin (-v -> -u); forward and reverse views are kept as transposes of one
// another. Adjacency lists are duplicate-free; their order carries no
// meaning but is stable within a run (insertion order) for reproducible
// output.
type LinkStore struct {
	forward map[SignedID][]SignedID
	reverse map[SignedID][]SignedID
}

// NewLinkStore returns an empty LinkStore.
func NewLinkStore() *LinkStore {
	return &LinkStore{
		forward: make(map[SignedID][]SignedID),
		reverse: make(map[SignedID][]SignedID),
	}
}

func appendUnique(list []SignedID, v SignedID) []SignedID {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}

// AddLink inserts (u -> v) and its reverse-complement twin (-v -> -u), plus
// both reverse-adjacency entries. Idempotent: calling it again with the
// same pair changes nothing.
func (ls *LinkStore) AddLink(u, v SignedID) {
	ls.forward[u] = appendUnique(ls.forward[u], v)
	ls.reverse[v] = appendUnique(ls.reverse[v], u)
	ls.reverse[u.Flip()] = appendUnique(ls.reverse[u.Flip()], v.Flip())
	ls.forward[v.Flip()] = appendUnique(ls.forward[v.Flip()], u.Flip())
}

// Forward returns the outgoing neighbours of u, or nil if u has none.
func (ls *LinkStore) Forward(u SignedID) []SignedID { return ls.forward[u] }

// Reverse returns the incoming neighbours of v, or nil if v has none.
func (ls *LinkStore) Reverse(v SignedID) []SignedID { return ls.reverse[v] }

// HasForward reports whether u has any outgoing neighbours.
func (ls *LinkStore) HasForward(u SignedID) bool { return len(ls.forward[u]) > 0 }

// HasReverse reports whether v has any incoming neighbours.
func (ls *LinkStore) HasReverse(v SignedID) bool { return len(ls.reverse[v]) > 0 }

// Count returns the number of distinct links, counting a link and its
// reverse-complement twin once: the same canonical-pair rule gfa.Write uses
// to decide which half of each twin pair to emit as an L line.
func (ls *LinkStore) Count() int {
	n := 0
	for u, vs := range ls.forward {
		for _, v := range vs {
			if IsCanonicalLink(u, v) {
				n++
			}
		}
	}
	return n
}

// RemoveSegments deletes every adjacency entry whose absolute key or
// absolute value names a segment in ids, and drops any resulting empty
// adjacency list.
func (ls *LinkStore) RemoveSegments(ids map[int]bool) {
	ls.forward = pruneLinks(ls.forward, ids)
	ls.reverse = pruneLinks(ls.reverse, ids)
}

func pruneLinks(links map[SignedID][]SignedID, ids map[int]bool) map[SignedID][]SignedID {
	out := make(map[SignedID][]SignedID, len(links))
	for from, tos := range links {
		if ids[from.Abs()] {
			continue
		}
		kept := make([]SignedID, 0, len(tos))
		for _, to := range tos {
			if !ids[to.Abs()] {
				kept = append(kept, to)
			}
		}
		if len(kept) > 0 {
			out[from] = kept
		}
	}
	return out
}

// setForward replaces the outgoing list for u wholesale, used by the
// four-way-junction repair which rewires adjacency directly rather than
// through AddLink.
func (ls *LinkStore) setForward(u SignedID, vs []SignedID) { ls.forward[u] = vs }
func (ls *LinkStore) setReverse(v SignedID, us []SignedID) { ls.reverse[v] = us }

func (ls *LinkStore) deleteForward(u SignedID) { delete(ls.forward, u) }
func (ls *LinkStore) deleteReverse(v SignedID) { delete(ls.reverse, v) }

// BuildFromForwardMap replaces the store's contents with one built from a
// codec-provided forward adjacency map: RC twins are added for every link,
// then the reverse view is derived. Both steps are idempotent and safe to
// run on a map that is already internally consistent (e.g. one that
// already contains every twin).
func (ls *LinkStore) BuildFromForwardMap(forward map[SignedID][]SignedID) {
	ls.forward = make(map[SignedID][]SignedID)
	ls.reverse = make(map[SignedID][]SignedID)
	for u, vs := range forward {
		for _, v := range vs {
			ls.AddLink(u, v)
		}
	}
}
