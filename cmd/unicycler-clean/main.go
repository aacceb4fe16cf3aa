// Command unicycler-clean loads an assembly graph, runs the cleaning and
// copy-depth-propagation passes over it, and writes the result back out.
package main

import (
	"flag"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/jianzuoyi/Unicycler/asmconfig"
	"github.com/jianzuoyi/Unicycler/asmlog"
	"github.com/jianzuoyi/Unicycler/contigpath"
	"github.com/jianzuoyi/Unicycler/fastg"
	"github.com/jianzuoyi/Unicycler/gfa"
	"github.com/jianzuoyi/Unicycler/graph"
)

var (
	cleanConf     = asmconfig.DefaultCleanConfig
	propagateConf = asmconfig.DefaultPropagateConfig

	flagQuiet      = false
	flagOverlap    = 0
	flagFormat     = ""
	flagPathsFile  = ""
	flagConfigFile = ""
)

func init() {
	flag.Float64Var(&cleanConf.RelativeDepthCutoff, "relative-depth-cutoff",
		cleanConf.RelativeDepthCutoff,
		"Segments below this fraction of their component's median depth\n"+
			"\tare candidates for removal during dead-end filtering.")
	flag.BoolVar(&cleanConf.FilterHomopolymers, "filter-homopolymers",
		cleanConf.FilterHomopolymers,
		"When set, whole connected components made up entirely of a single\n"+
			"\trepeated base are removed.")
	flag.Float64Var(&propagateConf.Epsilon, "epsilon",
		propagateConf.Epsilon,
		"Stored in the propagation settings but not passed to propagation,\n"+
			"\twhich accepts copy-depth assignments with a fixed relative\n"+
			"\terror tolerance of 1.0.")
	flag.IntVar(&propagateConf.MinSingleCopyLength, "min-single-copy-length",
		propagateConf.MinSingleCopyLength,
		"The minimum length for a segment to seed a single-copy\n"+
			"\tassignment.")

	flag.IntVar(&flagOverlap, "overlap", flagOverlap,
		"The graph-wide overlap length k, used when loading FASTG input\n"+
			"\t(GFA carries its own overlap in its L lines).")
	flag.StringVar(&flagFormat, "format", flagFormat,
		"The input format: \"gfa\" or \"fastg\". Guessed from the input\n"+
			"\tfile's extension when left unset.")
	flag.StringVar(&flagPathsFile, "paths", flagPathsFile,
		"An optional contigs.paths file to apply to the loaded graph\n"+
			"\tbefore cleaning.")
	flag.StringVar(&flagConfigFile, "config", flagConfigFile,
		"An optional configuration file overriding the cleaning defaults\n"+
			"\tabove. Only cleaning keys are read; propagation settings come\n"+
			"\tfrom flags alone.")
	flag.BoolVar(&flagQuiet, "quiet", flagQuiet,
		"When set, the only outputs will be errors echoed to stderr.")

	flag.Usage = usage
}

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
	}
	if !flagQuiet {
		asmlog.Verbose = true
	}

	if flagConfigFile != "" {
		loadConfigFile(flagConfigFile)
	}

	in, out := flag.Arg(0), flag.Arg(1)
	g, err := loadGraph(in)
	if err != nil {
		fatalf("%s\n", err)
	}
	asmlog.VprintLoaded(in, g.SegmentCount(), g.Links().Count())

	if flagPathsFile != "" {
		f, err := os.Open(flagPathsFile)
		if err != nil {
			fatalf("%s\n", err)
		}
		defer f.Close()
		if err := contigpath.Read(f, g); err != nil {
			fatalf("%s\n", err)
		}
	}

	g.RepairFourWayJunctions()
	g.FilterByReadDepth(cleanConf.RelativeDepthCutoff)
	if cleanConf.FilterHomopolymers {
		g.FilterHomopolymerIslands()
	}
	g.MergeAllPossible()
	g.NormaliseDepth()
	asmlog.Vprintf("%d segments remain after cleaning.\n", g.SegmentCount())

	g.Propagate(propagateConf.MinSingleCopyLength)
	asmlog.Vprintln("Copy-depth propagation complete.")

	if err := saveGraph(out, g); err != nil {
		fatalf("%s\n", err)
	}
	asmlog.Vprintf("Wrote %s.\n", out)
}

func loadConfigFile(name string) {
	f, err := os.Open(name)
	if err != nil {
		fatalf("%s\n", err)
	}
	defer f.Close()
	fileConf, err := asmconfig.LoadCleanConfig(f)
	if err != nil {
		fatalf("%s\n", err)
	}
	cleanConf.OverrideFrom(flag.CommandLine, fileConf)
}

func formatFor(name string) string {
	if flagFormat != "" {
		return flagFormat
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".gfa":
		return "gfa"
	case ".fastg":
		return "fastg"
	default:
		return "gfa"
	}
}

func loadGraph(name string) (*graph.Graph, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch formatFor(name) {
	case "fastg":
		return fastg.Read(f, flagOverlap)
	default:
		return gfa.Read(f)
	}
}

func saveGraph(name string, g *graph.Graph) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	switch formatFor(name) {
	case "fastg":
		return fastg.Write(f, g)
	default:
		return gfa.Write(f, g)
	}
}

func fatalf(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, format, v...)
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr,
		"\nUsage: %s [flags] input-graph output-graph\n",
		path.Base(os.Args[0]))
	asmlog.PrintFlagDefaults()
	os.Exit(1)
}
