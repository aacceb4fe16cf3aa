// Package contigpath parses SPAdes-style contigs.paths files, applying the
// paths they describe onto an already-loaded Graph.
package contigpath

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/jianzuoyi/Unicycler/graph"
)

// Read scans r for NODE blocks and applies each one's forward-strand
// subpaths as named Paths on g. A block's body is every line between its
// "NODE..." header and the next header (or EOF), concatenated with no
// separator -- a body can span more than one physical line, matching
// load_spades_paths' segment_string += line accumulation. A block name
// ending in "'" names the reverse-strand copy of a path already captured via
// its forward block, so its body is discarded without being parsed. Within one block,
// subpaths separated by ";" each become their own path (suffixed _1, _2, ...
// when there is more than one); a subpath with fewer than two segments is a
// singleton and is dropped, as it carries no adjacency information worth
// keeping.
func Read(r io.Reader, g *graph.Graph) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var name, body string
	flush := func() error {
		if name == "" || body == "" || strings.HasSuffix(name, "'") {
			return nil
		}
		return applyBody(g, name, body)
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "NODE") {
			if err := flush(); err != nil {
				return errors.Wrapf(err, "contigpath: block %q", name)
			}
			name, body = line, ""
			continue
		}
		body += line
	}
	if err := flush(); err != nil {
		return errors.Wrapf(err, "contigpath: block %q", name)
	}
	return scanner.Err()
}

func applyBody(g *graph.Graph, name, body string) error {
	subpaths := strings.Split(body, ";")
	for i, sub := range subpaths {
		sub = strings.TrimSpace(sub)
		if sub == "" {
			continue
		}
		tokens := strings.Split(sub, ",")
		if len(tokens) < 2 {
			continue
		}
		segs := make([]graph.SignedID, 0, len(tokens))
		for _, tok := range tokens {
			sid, err := graph.ParseSignedID(strings.TrimSpace(tok))
			if err != nil {
				return err
			}
			segs = append(segs, sid)
		}
		pathName := name
		if len(subpaths) > 1 {
			pathName = fmt.Sprintf("%s_%d", name, i+1)
		}
		g.SetPath(&graph.Path{Name: pathName, Segments: segs})
	}
	return nil
}
