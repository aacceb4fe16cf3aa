// Package gfa reads and writes assembly graphs in GFA 1 format (the
// segment/link/path subset this module needs -- S, L and P record types).
package gfa

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/jianzuoyi/Unicycler/graph"
)

// Read parses a GFA stream into a Graph. The graph-wide overlap is taken
// from the L lines' cigar field (all must agree); a graph with no L lines
// gets overlap 0.
func Read(r io.Reader) (*graph.Graph, error) {
	lines, err := scanLines(r)
	if err != nil {
		return nil, errors.Wrap(err, "gfa: reading input")
	}

	overlap, err := scanOverlap(lines)
	if err != nil {
		return nil, err
	}
	g := graph.New(overlap)

	for _, fields := range lines {
		if fields[0] == "S" {
			if err := readSegmentLine(g, fields); err != nil {
				return nil, err
			}
		}
	}
	for _, fields := range lines {
		if fields[0] == "L" {
			if err := readLinkLine(g, fields); err != nil {
				return nil, err
			}
		}
	}
	for _, s := range g.Segments() {
		s.Derive()
	}
	for _, fields := range lines {
		if fields[0] == "P" {
			if err := readPathLine(g, fields); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

func scanLines(r io.Reader) ([][]string, error) {
	var out [][]string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		out = append(out, strings.Split(line, "\t"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanOverlap(lines [][]string) (int, error) {
	overlap := -1
	for _, fields := range lines {
		if fields[0] != "L" {
			continue
		}
		if len(fields) < 6 {
			return 0, errors.Errorf("gfa: malformed L line %v", fields)
		}
		k, err := parseCigarOverlap(fields[5])
		if err != nil {
			return 0, errors.Wrapf(err, "gfa: L line %v", fields)
		}
		if overlap == -1 {
			overlap = k
		} else if overlap != k {
			return 0, errors.Errorf("gfa: inconsistent overlap lengths: %d vs %d", overlap, k)
		}
	}
	if overlap == -1 {
		return 0, nil
	}
	return overlap, nil
}

func parseCigarOverlap(cigar string) (int, error) {
	if !strings.HasSuffix(cigar, "M") {
		return 0, errors.Errorf("cigar %q: only plain xM overlaps are supported", cigar)
	}
	return strconv.Atoi(strings.TrimSuffix(cigar, "M"))
}

func readSegmentLine(g *graph.Graph, fields []string) error {
	if len(fields) < 3 {
		return errors.Errorf("gfa: malformed S line %v", fields)
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return errors.Wrapf(err, "gfa: S line %v", fields)
	}
	depth := 1.0
	for _, tag := range fields[3:] {
		if strings.HasPrefix(tag, "DP:") {
			parts := strings.SplitN(tag, ":", 3)
			if len(parts) == 3 {
				d, err := strconv.ParseFloat(parts[2], 64)
				if err != nil {
					return errors.Wrapf(err, "gfa: DP tag %q", tag)
				}
				depth = d
			}
		}
	}
	s := graph.NewSegment(id, depth, fields[2], true)
	g.AddSegment(s)
	return nil
}

func readLinkLine(g *graph.Graph, fields []string) error {
	if len(fields) < 5 {
		return errors.Errorf("gfa: malformed L line %v", fields)
	}
	a, err := strconv.Atoi(fields[1])
	if err != nil {
		return errors.Wrapf(err, "gfa: L line %v", fields)
	}
	b, err := strconv.Atoi(fields[3])
	if err != nil {
		return errors.Wrapf(err, "gfa: L line %v", fields)
	}
	signedA := graph.SignedID(a)
	if fields[2] == "-" {
		signedA = -signedA
	}
	signedB := graph.SignedID(b)
	if fields[4] == "-" {
		signedB = -signedB
	}
	g.Links().AddLink(signedA, signedB)
	return nil
}

func readPathLine(g *graph.Graph, fields []string) error {
	if len(fields) < 3 {
		return errors.Errorf("gfa: malformed P line %v", fields)
	}
	name := fields[1]
	tokens := strings.Split(fields[2], ",")
	segs := make([]graph.SignedID, 0, len(tokens))
	for _, tok := range tokens {
		sid, err := graph.ParseSignedID(tok)
		if err != nil {
			return errors.Wrapf(err, "gfa: P line %v", fields)
		}
		segs = append(segs, sid)
	}
	g.SetPath(&graph.Path{Name: name, Segments: segs})
	return nil
}
