// Command unicycler-stats loads an assembly graph and prints summary
// statistics about it: segment and link counts, total length, N50 and
// median depth.
package main

import (
	"flag"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/jianzuoyi/Unicycler/asmlog"
	"github.com/jianzuoyi/Unicycler/fastg"
	"github.com/jianzuoyi/Unicycler/gfa"
	"github.com/jianzuoyi/Unicycler/graph"
)

var (
	flagOverlap = 0
	flagFormat  = ""
	flagQuiet   = false
)

func init() {
	flag.IntVar(&flagOverlap, "overlap", flagOverlap,
		"The graph-wide overlap length k, used when loading FASTG input.")
	flag.StringVar(&flagFormat, "format", flagFormat,
		"The input format: \"gfa\" or \"fastg\". Guessed from the input\n"+
			"\tfile's extension when left unset.")
	flag.BoolVar(&flagQuiet, "quiet", flagQuiet,
		"When set, the only outputs will be errors echoed to stderr.")
	flag.Usage = usage
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
	}
	if !flagQuiet {
		asmlog.Verbose = true
	}

	in := flag.Arg(0)
	g, err := loadGraph(in)
	if err != nil {
		fatalf("%s\n", err)
	}
	asmlog.VprintLoaded(in, g.SegmentCount(), g.Links().Count())

	printStats(g)
}

func loadGraph(name string) (*graph.Graph, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	format := flagFormat
	if format == "" {
		if strings.EqualFold(path.Ext(name), ".fastg") {
			format = "fastg"
		} else {
			format = "gfa"
		}
	}
	if format == "fastg" {
		return fastg.Read(f, flagOverlap)
	}
	return gfa.Read(f)
}

func printStats(g *graph.Graph) {
	fmt.Printf("segment count:        %d\n", g.SegmentCount())
	fmt.Printf("link count:           %d\n", g.Links().Count())
	fmt.Printf("total length:         %d\n", g.TotalLength())
	fmt.Printf("total length (no ovl): %d\n", g.TotalLengthNoOverlaps())
	fmt.Printf("N50:                  %d\n", g.NStatLength(50))
	fmt.Printf("median depth:         %.3f\n", g.MedianDepth(0))
	fmt.Printf("connected components: %d\n", len(g.ConnectedComponents()))
	fmt.Printf("path count:           %d\n", len(g.Paths()))
}

func fatalf(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, format, v...)
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr, "\nUsage: %s [flags] input-graph\n", path.Base(os.Args[0]))
	asmlog.PrintFlagDefaults()
	os.Exit(1)
}
