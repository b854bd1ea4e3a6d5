package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/ttree/entity"
	"github.com/signadot/ttree/format"
	"github.com/signadot/ttree/parse"
)

func TestOutFormat(t *testing.T) {
	y := format.YAMLFormat
	tests := []struct {
		cfg  MainConfig
		want format.Format
	}{
		{MainConfig{}, format.TreeFormat},
		{MainConfig{J: true}, format.JSONFormat},
		{MainConfig{Y: true}, format.YAMLFormat},
		{MainConfig{J: true, OutFormat: &y}, format.YAMLFormat},
	}
	for i, tt := range tests {
		if got := tt.cfg.outFormat(); got != tt.want {
			t.Errorf("%d: got %s, want %s", i, got, tt.want)
		}
	}
}

func TestParseOpts(t *testing.T) {
	cfg := &MainConfig{Indent: 2, KeySuffix: ":"}
	got, err := parse.ParseString("server\n  port: 80\n", cfg.parseOpts()...)
	if err != nil {
		t.Fatal(err)
	}
	want := entity.Sequence(entity.Sequence(entity.Leaf("server"), entity.KeyVal("port", "80")))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if len((&MainConfig{}).parseOpts()) != 0 {
		t.Errorf("default config has parse options")
	}
}

func TestFailReason(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.tt")
	if err := os.WriteFile(bad, []byte("a\n   b\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := parse.Parse(bad)
	if got := failReason(err); got != "indentation" {
		t.Errorf("got %q, want indentation", got)
	}
	_, err = parse.Parse(filepath.Join(dir, "missing.tt"))
	if got := failReason(err); got != "read" {
		t.Errorf("got %q, want read", got)
	}
	if got := failReason(fmt.Errorf("other")); got != "unknown" {
		t.Errorf("got %q, want unknown", got)
	}
}

func TestCount(t *testing.T) {
	if n := count(true, false, true); n != 2 {
		t.Errorf("got %d, want 2", n)
	}
	if n := count(); n != 0 {
		t.Errorf("got %d, want 0", n)
	}
}
