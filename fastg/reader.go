// Package fastg reads and writes assembly graphs in SPAdes-style FASTG
// format, where each strand of each segment is its own FASTA record and
// adjacency is encoded in the header line.
package fastg

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	fastaio "github.com/TuftsBCB/io/fasta"
	"github.com/pkg/errors"

	"github.com/jianzuoyi/Unicycler/graph"
)

type pendingLink struct {
	from        graph.SignedID
	neighbours  []string
}

// Read parses a FASTG stream into a Graph with the given graph-wide
// overlap (FASTG headers carry no overlap information of their own).
func Read(r io.Reader, overlap int) (*graph.Graph, error) {
	g := graph.New(overlap)
	reader := fastaio.NewReader(r)

	var pending []pendingLink
	for {
		seq, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "fastg: reading input")
		}

		header := strings.TrimSuffix(strings.TrimSpace(seq.Name), ";")
		id, positive, depth, neighbours, err := parseHeader(header)
		if err != nil {
			return nil, errors.Wrapf(err, "fastg: header %q", header)
		}

		s, ok := g.Segment(id)
		if !ok {
			s = graph.NewSegment(id, depth, string(seq.Bytes()), positive)
			g.AddSegment(s)
		} else {
			s.AttachSequence(string(seq.Bytes()), positive)
		}

		signed := graph.SignedID(id)
		if !positive {
			signed = -signed
		}
		if len(neighbours) > 0 {
			pending = append(pending, pendingLink{from: signed, neighbours: neighbours})
		}
	}

	for _, s := range g.Segments() {
		s.Derive()
	}

	for _, p := range pending {
		for _, tok := range p.neighbours {
			to, err := parseNeighbourID(tok)
			if err != nil {
				return nil, errors.Wrapf(err, "fastg: neighbour %q", tok)
			}
			g.Links().AddLink(p.from, to)
		}
	}
	return g, nil
}

// parseHeader splits a FASTG header of the form
// "EDGE_<id>_length_<len>_cov_<depth>[']:comma,sep,neighbours" (the
// trailing ";" already trimmed by the caller) into its id, strand, depth
// and neighbour tokens.
func parseHeader(header string) (id int, positive bool, depth float64, neighbours []string, err error) {
	body := header
	var linkPart string
	if idx := strings.Index(header, ":"); idx >= 0 {
		body = header[:idx]
		linkPart = header[idx+1:]
	}

	positive = !strings.HasSuffix(body, "'")
	body = strings.TrimSuffix(body, "'")

	fields := strings.Split(body, "_")
	if len(fields) < 6 || fields[0] != "EDGE" || fields[2] != "length" || fields[4] != "cov" {
		return 0, false, 0, nil, errors.Errorf("malformed FASTG header body %q", body)
	}
	id, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, false, 0, nil, errors.Wrapf(err, "segment id")
	}
	depth, err = strconv.ParseFloat(fields[5], 64)
	if err != nil {
		return 0, false, 0, nil, errors.Wrapf(err, "depth")
	}

	if linkPart != "" {
		neighbours = strings.Split(linkPart, ",")
	}
	return id, positive, depth, neighbours, nil
}

func parseNeighbourID(token string) (graph.SignedID, error) {
	positive := !strings.HasSuffix(token, "'")
	token = strings.TrimSuffix(token, "'")
	fields := strings.Split(token, "_")
	if len(fields) < 2 || fields[0] != "EDGE" {
		return 0, errors.Errorf("malformed FASTG neighbour token %q", token)
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, errors.Wrapf(err, fmt.Sprintf("neighbour id in %q", token))
	}
	if !positive {
		n = -n
	}
	return graph.SignedID(n), nil
}
