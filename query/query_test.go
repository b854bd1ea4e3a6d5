package query

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/ttree/entity"
)

func sample() *entity.Entity {
	return entity.Sequence(
		entity.KeyVal("name", "ttree"),
		entity.Sequence(
			entity.Leaf("server"),
			entity.KeyVal("port", "80"),
			entity.Sequence(entity.Leaf("tls"), entity.Leaf("on"), entity.Leaf("strict")),
		),
		entity.Leaf("done"),
	)
}

func paths(ms []Match) []string {
	res := make([]string, len(ms))
	for i, m := range ms {
		res[i] = m.Path.String()
	}
	return res
}

func TestSelect(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{`kind == "KeyVal"`, []string{"[0]", "[1][1]"}},
		{`kind == "Leaf"`, []string{"[1][0]", "[1][2][0]", "[1][2][1]", "[1][2][2]", "[2]"}},
		{`key == "port" && value == "80"`, []string{"[1][1]"}},
		{`kind == "Sequence" && "tls" in tokens`, []string{"[1]", "[1][2]"}},
		{`depth == 1`, []string{"[0]", "[1]", "[2]"}},
		{`len >= 3`, []string{"[1]", "[1][2]"}},
		{`index == 2 && depth == 2`, []string{"[1][2]"}},
		{`path == "[2]"`, []string{"[2]"}},
		{`false`, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			ms, err := Select(sample(), tt.src)
			if err != nil {
				t.Fatal(err)
			}
			got := paths(ms)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestSelectEntities(t *testing.T) {
	root := sample()
	ms, err := Select(root, `kind == "KeyVal"`)
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range ms {
		got, err := root.Get(m.Path)
		if err != nil {
			t.Fatal(err)
		}
		if got != m.Entity {
			t.Errorf("match at %s is not the entity at that path", m.Path)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{`kind ==`, `1 + 2`, `nosuchvar == 1`} {
		if _, err := Compile(src); !errors.Is(err, ErrQuery) {
			t.Errorf("Compile(%q) = %v, want ErrQuery", src, err)
		}
	}
	q, err := Compile(`depth > 0`)
	if err != nil {
		t.Fatal(err)
	}
	if q.String() != `depth > 0` {
		t.Errorf("String() = %q", q.String())
	}
}
