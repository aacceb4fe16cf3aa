package asmconfig

import (
	"bytes"
	"flag"
	"strings"
	"testing"
)

func TestLoadCleanConfigRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	conf := CleanConfig{RelativeDepthCutoff: 0.5, FilterHomopolymers: false}
	if err := conf.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}

	loaded, err := LoadCleanConfig(&buf)
	if err != nil {
		t.Fatalf("LoadCleanConfig: %v", err)
	}
	if loaded.RelativeDepthCutoff != 0.5 || loaded.FilterHomopolymers != false {
		t.Errorf("loaded = %+v, want %+v", loaded, conf)
	}
}

func TestLoadCleanConfigRejectsUnknownKey(t *testing.T) {
	r := strings.NewReader("NotAKey:5\n")
	if _, err := LoadCleanConfig(r); err == nil {
		t.Error("expected an error for an unknown config key")
	}
}

func TestOverrideFromRespectsExplicitFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cutoff := fs.Float64("relative-depth-cutoff", 0.25, "")
	if err := fs.Parse([]string{"-relative-depth-cutoff=0.9"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	conf := &CleanConfig{RelativeDepthCutoff: *cutoff, FilterHomopolymers: true}
	fileConf := &CleanConfig{RelativeDepthCutoff: 0.1, FilterHomopolymers: false}
	conf.OverrideFrom(fs, fileConf)

	if conf.RelativeDepthCutoff != 0.9 {
		t.Errorf("explicit flag should win, got %v", conf.RelativeDepthCutoff)
	}
	if conf.FilterHomopolymers != false {
		t.Errorf("unset flag should take file value, got %v", conf.FilterHomopolymers)
	}
}
