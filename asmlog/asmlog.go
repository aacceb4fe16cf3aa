// Package asmlog provides the verbose-mode logging this module's command
// line tools share, plus a helper for printing flag defaults in --help text.
package asmlog

import (
	"flag"
	"fmt"
	"os"
)

// Verbose gates every Vprint call. Command drivers set it from a -v flag
// before doing any work.
var Verbose = false

// Vprint writes s to stderr if Verbose is set.
func Vprint(s string) {
	if !Verbose {
		return
	}
	fmt.Fprint(os.Stderr, s)
}

// Vprintf writes a formatted message to stderr if Verbose is set.
func Vprintf(format string, v ...interface{}) {
	if !Verbose {
		return
	}
	fmt.Fprintf(os.Stderr, format, v...)
}

// Vprintln writes s followed by a newline to stderr if Verbose is set.
func Vprintln(s string) {
	if !Verbose {
		return
	}
	fmt.Fprintln(os.Stderr, s)
}

// PrintFlagDefaults prints every registered flag and its default value, in
// the --name="value" form the command drivers' usage text expects.
func PrintFlagDefaults() {
	flag.VisitAll(func(fg *flag.Flag) {
		fmt.Printf("--%s=\"%s\"\n\t%s\n", fg.Name, fg.DefValue, fg.Usage)
	})
}

// VprintLoaded reports a just-loaded graph's segment and link count from
// source, the message every command driver prints right after loadGraph
// succeeds. segmentCount and linkCount are passed in rather than a *graph.Graph
// so this package doesn't need to import graph for one log line.
func VprintLoaded(source string, segmentCount, linkCount int) {
	Vprintf("Loaded %d segments and %d links from %s.\n", segmentCount, linkCount, source)
}
