package entity

import (
	"fmt"
	"strings"
)

// Entity is one node of a token tree. Which fields are meaningful
// depends on Kind.
type Entity struct {
	Kind Kind

	// LeafKind
	Token string

	// KeyValKind
	Key   string
	Value string

	// SequenceKind
	Elements []*Entity
}

func Leaf(tok string) *Entity {
	return &Entity{Kind: LeafKind, Token: tok}
}

func KeyVal(key, val string) *Entity {
	return &Entity{Kind: KeyValKind, Key: key, Value: val}
}

func Sequence(elts ...*Entity) *Entity {
	if elts == nil {
		elts = []*Entity{}
	}
	return &Entity{Kind: SequenceKind, Elements: elts}
}

// FromTokens returns a Sequence with one Leaf per token.
func FromTokens(toks []string) *Entity {
	res := &Entity{Kind: SequenceKind, Elements: make([]*Entity, len(toks))}
	for i, tok := range toks {
		res.Elements[i] = Leaf(tok)
	}
	return res
}

// Append adds elements to a Sequence and returns it.
// It panics if e is not a Sequence.
func (e *Entity) Append(elts ...*Entity) *Entity {
	if e.Kind != SequenceKind {
		panic(fmt.Sprintf("entity: Append on %s", e.Kind))
	}
	e.Elements = append(e.Elements, elts...)
	return e
}

// Len returns the number of elements of a Sequence, 0 otherwise.
func (e *Entity) Len() int {
	if e == nil || e.Kind != SequenceKind {
		return 0
	}
	return len(e.Elements)
}

// Tokens returns the tokens an entity spans, in document order.
func (e *Entity) Tokens() []string {
	var res []string
	_ = Walk(e, func(_ Path, _ int, x *Entity) error {
		switch x.Kind {
		case LeafKind:
			res = append(res, x.Token)
		case KeyValKind:
			res = append(res, x.Key, x.Value)
		}
		return nil
	})
	return res
}

// AllLeaves reports whether e is a Sequence whose elements are all Leafs.
func (e *Entity) AllLeaves() bool {
	if e.Kind != SequenceKind {
		return false
	}
	for _, elt := range e.Elements {
		if elt.Kind != LeafKind {
			return false
		}
	}
	return true
}

func (e *Entity) Clone() *Entity {
	if e == nil {
		return nil
	}
	res := &Entity{
		Kind:  e.Kind,
		Token: e.Token,
		Key:   e.Key,
		Value: e.Value,
	}
	if e.Kind == SequenceKind {
		res.Elements = make([]*Entity, len(e.Elements))
		for i, elt := range e.Elements {
			res.Elements[i] = elt.Clone()
		}
	}
	return res
}

// String returns a compact one-line rendering, mostly for debugging.
func (e *Entity) String() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case LeafKind:
		return e.Token
	case KeyValKind:
		return e.Key + "=" + e.Value
	case SequenceKind:
		parts := make([]string, len(e.Elements))
		for i, elt := range e.Elements {
			parts[i] = elt.String()
		}
		return "(" + strings.Join(parts, " ") + ")"
	}
	return fmt.Sprintf("<%s>", e.Kind)
}
