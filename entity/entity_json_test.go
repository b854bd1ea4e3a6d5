package entity

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestJSON(t *testing.T) {
	e := sample()
	d, err := ToJSON(e)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromJSON(d)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(e, back); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestJSONShape(t *testing.T) {
	d, err := ToJSON(Sequence(Leaf("a"), KeyVal("k", "v"), Sequence()))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"kind":"Sequence","elements":[{"kind":"Leaf","token":"a"},{"kind":"KeyVal","key":"k","value":"v"},{"kind":"Sequence","elements":[]}]}`
	if string(d) != want {
		t.Errorf("got\n%s\nwant\n%s", d, want)
	}
}

func TestJSONErrors(t *testing.T) {
	for _, in := range []string{
		`{"token":"a"}`,
		`{"kind":"Map"}`,
		`{"kind":"Sequence","elements":[null]}`,
		`[1]`,
	} {
		if _, err := FromJSON([]byte(in)); err == nil {
			t.Errorf("FromJSON(%s): expected error", in)
		}
	}
}
