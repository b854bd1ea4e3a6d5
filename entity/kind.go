package entity

import "fmt"

type Kind int

const (
	LeafKind Kind = iota
	KeyValKind
	SequenceKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		LeafKind:     "Leaf",
		KeyValKind:   "KeyVal",
		SequenceKind: "Sequence",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case LeafKind, KeyValKind, SequenceKind:
		return []byte(k.String()), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrKind, int(k))
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Leaf":     LeafKind,
		"KeyVal":   KeyValKind,
		"Sequence": SequenceKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrKind, d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		LeafKind,
		KeyValKind,
		SequenceKind,
	}
}

// IsTerminal reports whether entities of kind k have no elements.
func (k Kind) IsTerminal() bool {
	return k != SequenceKind
}
