package entity

import (
	"fmt"
	"strings"
	"unicode"
)

// Validate checks that e and its descendants are well formed: fields
// match the kind, tokens are non-empty and contain no whitespace, and
// no element is nil.
func Validate(e *Entity) error {
	if e == nil {
		return fmt.Errorf("%w: nil root", ErrInvalid)
	}
	return Walk(e, func(p Path, _ int, x *Entity) error {
		if err := validateOne(x); err != nil {
			return fmt.Errorf("%w at %q", err, p.String())
		}
		return nil
	})
}

func validateOne(e *Entity) error {
	switch e.Kind {
	case LeafKind:
		if e.Key != "" || e.Value != "" || e.Elements != nil {
			return fmt.Errorf("%w: Leaf with KeyVal or Sequence fields", ErrInvalid)
		}
		return checkToken("token", e.Token)
	case KeyValKind:
		if e.Token != "" || e.Elements != nil {
			return fmt.Errorf("%w: KeyVal with Leaf or Sequence fields", ErrInvalid)
		}
		if err := checkToken("key", e.Key); err != nil {
			return err
		}
		return checkToken("value", e.Value)
	case SequenceKind:
		if e.Token != "" || e.Key != "" || e.Value != "" {
			return fmt.Errorf("%w: Sequence with Leaf or KeyVal fields", ErrInvalid)
		}
		for i, elt := range e.Elements {
			if elt == nil {
				return fmt.Errorf("%w: nil element %d", ErrInvalid, i)
			}
		}
		return nil
	}
	return fmt.Errorf("%w: %w: %d", ErrInvalid, ErrKind, int(e.Kind))
}

func checkToken(what, tok string) error {
	if tok == "" {
		return fmt.Errorf("%w: empty %s", ErrInvalid, what)
	}
	if strings.IndexFunc(tok, unicode.IsSpace) != -1 {
		return fmt.Errorf("%w: %s %q contains whitespace", ErrInvalid, what, tok)
	}
	return nil
}
