package encode_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/ttree/encode"
	"github.com/signadot/ttree/entity"
	"github.com/signadot/ttree/format"
	"github.com/signadot/ttree/parse"
)

var (
	L  = entity.Leaf
	KV = entity.KeyVal
	S  = entity.Sequence
)

func TestEncodeTree(t *testing.T) {
	tests := []struct {
		name string
		in   *entity.Entity
		want string
	}{
		{"empty", S(), ""},
		{"leaf", S(L("a")), "a\n"},
		{"keyval", S(KV("k", "v")), "k v\n"},
		{"inline", S(S(L("a"), L("b"), L("c"))), "a b c\n"},
		{"nested", S(S(L("parent"), L("child1"), KV("child", "2"))), "parent\n child1\n child 2\n"},
		{"inline head", S(S(S(L("a"), L("b"), L("c")), L("d"))), "a b c\n d\n"},
		{"deep", S(S(L("a"), S(L("b"), L("c"))), L("d")), "a\n b\n  c\nd\n"},
		{"non sequence root", KV("k", "v"), "k v\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(tt.in, buf); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeIndent(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	in := S(S(L("a"), S(L("b"), L("c"))))
	if err := encode.Encode(in, buf, encode.EncodeIndent(2)); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "a\n  b\n    c\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	back, err := parse.ParseBytes(buf.Bytes(), parse.IndentUnit(2))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, back); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"a\n",
		"a b\nc d e\n",
		"parent\n child1\n child2\n",
		"server\n host localhost\n tls on strict\n  cert a.pem\n  key b.pem\nclients\n alice\n bob\n  admin\n",
		"a b c\n d e f\n  g\n h\n",
		"x\n y\n  z\n   w\n",
	}
	for _, in := range inputs {
		first, err := parse.ParseString(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(first, buf); err != nil {
			t.Fatalf("encode %q: %v", in, err)
		}
		second, err := parse.ParseBytes(buf.Bytes())
		if err != nil {
			t.Fatalf("reparse %q: %v", buf.String(), err)
		}
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("round trip %q (-want +got):\n%s", in, diff)
		}
	}
}

func TestEncodeErrors(t *testing.T) {
	bad := []*entity.Entity{
		S(S(L("a"))),
		S(S()),
		S(S(S(L("a"), L("b")), L("c"))),
		S(L("")),
		S(L("a b")),
		S(KV("k", "")),
		S(S(L("a"), L("b"), L("c d"))),
		nil,
	}
	for i, e := range bad {
		err := encode.Encode(e, bytes.NewBuffer(nil))
		if !errors.Is(err, encode.ErrEncoding) {
			t.Errorf("%d: got %v, want ErrEncoding", i, err)
		}
	}
}

func TestEncodeJSON(t *testing.T) {
	in := S(L("a"), KV("k", "v"))
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(in, buf, encode.EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	back, err := entity.FromJSON(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, back); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncodeYAML(t *testing.T) {
	in := S(L("a"), KV("k", "v"))
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(in, buf, encode.EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"kind: Sequence", "elements:", "token: a", "key: k", "value: v"} {
		if !strings.Contains(out, want) {
			t.Errorf("yaml output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "kind: Sequence") > strings.Index(out, "elements:") {
		t.Errorf("kind not first:\n%s", out)
	}
}

func TestEncodeColors(t *testing.T) {
	colors := &encode.Colors{
		Default: func(s string, _ ...any) string { return s },
		Map: map[encode.Colorable]func(string, ...any) string{
			{Kind: entity.LeafKind, Attr: encode.TokenColor}: func(s string, _ ...any) string { return "<" + s + ">" },
			{Kind: entity.KeyValKind, Attr: encode.KeyColor}: func(s string, _ ...any) string { return "[" + s + "]" },
		},
	}
	buf := bytes.NewBuffer(nil)
	in := S(S(L("a"), KV("k", "v")))
	if err := encode.Encode(in, buf, encode.EncodeColors(colors)); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "<a>\n [k] v\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMustString(t *testing.T) {
	if got := encode.MustString(S(L("a"), KV("b", "c"))); got != "a\nb c" {
		t.Errorf("got %q", got)
	}
	if f := encode.FormatFromOpts(encode.EncodeFormat(format.YAMLFormat)); f != format.YAMLFormat {
		t.Errorf("FormatFromOpts = %s", f)
	}
}

func TestEncodeBadFormat(t *testing.T) {
	err := encode.Encode(S(L("a")), &bytes.Buffer{}, encode.EncodeFormat(format.Format(9)))
	if !errors.Is(err, encode.ErrEncoding) || !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("got %v, want ErrEncoding and ErrBadFormat", err)
	}
}
