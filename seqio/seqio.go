// Package seqio renders a graph's segments for human and downstream-tool
// consumption: colour strings for copy-number visualisation and depth
// strings for GFA tags, plus plain FASTA export of forward sequences.
package seqio

import (
	"fmt"
	"strings"
)

// DepthString formats a copy-depth vector the way GFA's LB tag expects:
// comma-separated, three decimal places, e.g. "12.340, 7.660".
func DepthString(depths []float64) string {
	parts := make([]string, len(depths))
	for i, d := range depths {
		parts[i] = fmt.Sprintf("%.3f", d)
	}
	return strings.Join(parts, ", ")
}

// Colour maps a copy number (the length of a segment's copy-depth vector,
// 0 if unassigned) to a visualisation colour.
func Colour(copyNumber int) string {
	switch {
	case copyNumber <= 0:
		return "black"
	case copyNumber == 1:
		return "forestgreen"
	case copyNumber == 2:
		return "gold"
	case copyNumber == 3:
		return "darkorange"
	default:
		return "red"
	}
}
