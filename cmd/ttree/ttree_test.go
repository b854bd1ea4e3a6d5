package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/ttree/entity"
	"github.com/signadot/ttree/parse"

	"github.com/scott-cotton/cli"
)

type buffer struct{ bytes.Buffer }

func (*buffer) Close() error { return nil }

// runTTree runs the ttree command with args and returns its output,
// error output and error.
func runTTree(stdin string, args ...string) (string, string, error) {
	out, errOut := &buffer{}, &buffer{}
	cc := &cli.Context{
		In:  io.NopCloser(strings.NewReader(stdin)),
		Out: out,
		Err: errOut,
		Go:  context.Background(),
	}
	err := MainCommand().Run(cc, args)
	return out.String(), errOut.String(), err
}

var fixtures = map[string]string{
	"one.tt":   "server\n port 80\n host h\n",
	"two.tt":   "server\n port 8080\n host h\n",
	"bad.tt":   "a\n   b\n",
	"unit2.tt": "a\n  b\n  c\n",
}

// writeFixtures writes the fixtures to a temporary directory and returns
// a replacer expanding $name to the path of fixture name.tt.
func writeFixtures(t *testing.T) *strings.Replacer {
	t.Helper()
	dir := t.TempDir()
	var olds []string
	for name, content := range fixtures {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		olds = append(olds, "$"+strings.TrimSuffix(name, ".tt"), p)
	}
	olds = append(olds, "$missing", filepath.Join(dir, "missing.tt"))
	return strings.NewReplacer(olds...)
}

func TestCommands(t *testing.T) {
	exit1 := cli.ExitCodeErr(1)
	tests := []struct {
		name    string
		stdin   string
		args    []string
		want    string
		wantErr error
		stderr  []string
	}{
		{
			name: "view",
			args: []string{"view", "$one"},
			want: "server\n port 80\n host h\n",
		},
		{
			name: "view separates inputs",
			args: []string{"view", "$one", "$two"},
			want: "server\n port 80\n host h\n---\nserver\n port 8080\n host h\n",
		},
		{
			name:  "view stdin",
			stdin: "x y\n  \nz\n",
			args:  []string{"view"},
			want:  "x y\nz\n",
		},
		{
			name:  "view dash is stdin",
			stdin: "p q r\n",
			args:  []string{"view", "-"},
			want:  "p q r\n",
		},
		{
			name: "indent unit",
			args: []string{"-indent", "2", "view", "$unit2"},
			want: "a\n  b\n  c\n",
		},
		{
			name: "get",
			args: []string{"get", "[0][1]", "$one"},
			want: "port 80\n",
		},
		{
			name: "check ok",
			args: []string{"check", "$one"},
			want: "$one: ok (4 entities)\n",
		},
		{
			name:    "check failures",
			args:    []string{"check", "$one", "$bad", "$missing"},
			want:    "$one: ok (4 entities)\n",
			wantErr: exit1,
			stderr:  []string{"reason=indentation", "reason=read", "level=ERROR"},
		},
		{
			name:    "check quiet",
			args:    []string{"check", "-q", "$one", "$bad"},
			want:    "",
			wantErr: exit1,
			stderr:  []string{"reason=indentation"},
		},
		{
			name: "diff same",
			args: []string{"diff", "$one", "$one"},
			want: "",
		},
		{
			name:    "diff different",
			args:    []string{"diff", "$one", "$two"},
			want:    "- [0][1] port=80\n+ [0][1] port=8080\n",
			wantErr: exit1,
		},
		{
			name:    "diff reversed",
			args:    []string{"diff", "-r", "$one", "$two"},
			want:    "- [0][1] port=8080\n+ [0][1] port=80\n",
			wantErr: exit1,
		},
		{
			name: "query",
			args: []string{"query", `key == "port"`, "$one"},
			want: "[0][1] port=80\n",
		},
		{
			name: "query paths of several files",
			args: []string{"query", "-p", `kind == "KeyVal"`, "$one", "$two"},
			want: "$one:[0][1]\n$one:[0][2]\n$two:[0][1]\n$two:[0][2]\n",
		},
		{
			name: "patch string",
			args: []string{"patch", "-s", `[{"op":"replace","path":"/elements/0/elements/1/value","value":"9090"}]`, "$one"},
			want: "server\n port 9090\n host h\n",
		},
		{
			name: "merge patch string",
			args: []string{"patch", "-merge", "-s", `{"elements":[{"kind":"Leaf","token":"only"}]}`, "$one"},
			want: "only\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := writeFixtures(t)
			args := make([]string, len(tt.args))
			for i, a := range tt.args {
				args[i] = r.Replace(a)
			}
			got, stderr, err := runTTree(tt.stdin, args...)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("got error %v, want %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(r.Replace(tt.want), got); diff != "" {
				t.Errorf("output (-want +got):\n%s", diff)
			}
			for _, s := range tt.stderr {
				if !strings.Contains(stderr, s) {
					t.Errorf("error output %q lacks %q", stderr, s)
				}
			}
		})
	}
}

func TestDump(t *testing.T) {
	r := writeFixtures(t)
	got, _, err := runTTree("", "dump", r.Replace("$one"))
	if err != nil {
		t.Fatal(err)
	}
	back, err := entity.FromJSON([]byte(got))
	if err != nil {
		t.Fatal(err)
	}
	want, err := parse.Parse(r.Replace("$one"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, back); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestOutputFile(t *testing.T) {
	r := writeFixtures(t)
	out := filepath.Join(t.TempDir(), "out.tt")
	got, _, err := runTTree("", "-o", out, "view", r.Replace("$one"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("stdout %q, want nothing", got)
	}
	d, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != fixtures["one.tt"] {
		t.Errorf("got %q, want %q", d, fixtures["one.tt"])
	}
}
