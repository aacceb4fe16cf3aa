// Package asmconfig loads and saves the tunables the cleaning and
// copy-depth-propagation commands expose, in the teacher's ':'-delimited
// CSV configuration format.
package asmconfig

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CleanConfig holds the parameters driving Graph.Clean.
type CleanConfig struct {
	RelativeDepthCutoff float64
	FilterHomopolymers  bool
}

// DefaultCleanConfig matches the source's own default cleaning thresholds.
var DefaultCleanConfig = &CleanConfig{
	RelativeDepthCutoff: 0.25,
	FilterHomopolymers:  true,
}

// PropagateConfig holds the copy-depth propagation settings.
// MinSingleCopyLength is the value passed to Graph.Propagate; Epsilon is
// not passed to it, and Propagate uses a fixed error tolerance of 1.0.
type PropagateConfig struct {
	Epsilon              float64
	MinSingleCopyLength  int
}

// DefaultPropagateConfig mirrors the source's copy-depth error margin and
// minimum length for a segment to seed a single-copy assignment.
var DefaultPropagateConfig = &PropagateConfig{
	Epsilon:             1.0,
	MinSingleCopyLength: 100,
}

// LoadCleanConfig reads a CleanConfig from r, starting from
// DefaultCleanConfig and overwriting whichever fields appear.
func LoadCleanConfig(r io.Reader) (conf *CleanConfig, err error) {
	defer func() {
		if perr := recover(); perr != nil {
			err = perr.(error)
		}
	}()
	c := *DefaultCleanConfig
	conf = &c

	for _, line := range mustReadRecords(r) {
		switch line[0] {
		case "RelativeDepthCutoff":
			conf.RelativeDepthCutoff = mustParseFloat(line[1])
		case "FilterHomopolymers":
			conf.FilterHomopolymers = strings.TrimSpace(line[1]) == "1"
		default:
			return nil, fmt.Errorf("asmconfig: invalid CleanConfig key: %s", line[0])
		}
	}
	return conf, nil
}

// Write serialises conf in the same ':'-delimited CSV format LoadCleanConfig
// reads.
func (conf CleanConfig) Write(w io.Writer) error {
	bs := func(b bool) string {
		if b {
			return "1"
		}
		return "0"
	}
	records := [][]string{
		{"RelativeDepthCutoff", fmt.Sprintf("%v", conf.RelativeDepthCutoff)},
		{"FilterHomopolymers", bs(conf.FilterHomopolymers)},
	}
	return writeRecords(w, records)
}

// OverrideFrom merges fileConf into conf for every flag the fs FlagSet did
// NOT explicitly set on the command line -- flag-set values always win.
func (conf *CleanConfig) OverrideFrom(fs *flag.FlagSet, fileConf *CleanConfig) {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["relative-depth-cutoff"] {
		conf.RelativeDepthCutoff = fileConf.RelativeDepthCutoff
	}
	if !set["filter-homopolymers"] {
		conf.FilterHomopolymers = fileConf.FilterHomopolymers
	}
}

// LoadPropagateConfig reads a PropagateConfig from r, starting from
// DefaultPropagateConfig and overwriting whichever fields appear.
func LoadPropagateConfig(r io.Reader) (conf *PropagateConfig, err error) {
	defer func() {
		if perr := recover(); perr != nil {
			err = perr.(error)
		}
	}()
	c := *DefaultPropagateConfig
	conf = &c

	for _, line := range mustReadRecords(r) {
		switch line[0] {
		case "Epsilon":
			conf.Epsilon = mustParseFloat(line[1])
		case "MinSingleCopyLength":
			conf.MinSingleCopyLength = int(mustParseFloat(line[1]))
		default:
			return nil, fmt.Errorf("asmconfig: invalid PropagateConfig key: %s", line[0])
		}
	}
	return conf, nil
}

// Write serialises conf in the same ':'-delimited CSV format
// LoadPropagateConfig reads.
func (conf PropagateConfig) Write(w io.Writer) error {
	records := [][]string{
		{"Epsilon", fmt.Sprintf("%v", conf.Epsilon)},
		{"MinSingleCopyLength", fmt.Sprintf("%d", conf.MinSingleCopyLength)},
	}
	return writeRecords(w, records)
}

func mustReadRecords(r io.Reader) [][]string {
	csvReader := csv.NewReader(r)
	csvReader.Comma = ':'
	csvReader.Comment = '#'
	csvReader.FieldsPerRecord = 2
	csvReader.TrimLeadingSpace = true

	lines, err := csvReader.ReadAll()
	if err != nil {
		panic(err)
	}
	return lines
}

func mustParseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		panic(err)
	}
	return f
}

func writeRecords(w io.Writer, records [][]string) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = ':'
	csvWriter.UseCRLF = false
	if err := csvWriter.WriteAll(records); err != nil {
		return err
	}
	return nil
}
