package entity

import "errors"

// SkipChildren may be returned by a WalkFunc to skip the elements of
// the Sequence it was called on.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for every entity in document order. depth is 0 for
// the root.
type WalkFunc func(p Path, depth int, e *Entity) error

// Walk visits e and its descendants depth first, pre-order. The Path
// passed to fn is only valid for the duration of the call.
func Walk(e *Entity, fn WalkFunc) error {
	err := walk(e, nil, 0, fn)
	if err == SkipChildren {
		return nil
	}
	return err
}

func walk(e *Entity, p Path, depth int, fn WalkFunc) error {
	if err := fn(p, depth, e); err != nil {
		return err
	}
	if e.Kind != SequenceKind {
		return nil
	}
	for i, elt := range e.Elements {
		if err := walk(elt, append(p, i), depth+1, fn); err != nil {
			if err == SkipChildren {
				continue
			}
			return err
		}
	}
	return nil
}
