package entity

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two entities.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Kinds order Leaf < KeyVal < Sequence.
func Compare(a, b *Entity) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Kind != b.Kind {
		return cmp.Compare(a.Kind, b.Kind)
	}
	switch a.Kind {
	case LeafKind:
		return strings.Compare(a.Token, b.Token)
	case KeyValKind:
		if c := strings.Compare(a.Key, b.Key); c != 0 {
			return c
		}
		return strings.Compare(a.Value, b.Value)
	case SequenceKind:
		return compareSequences(a, b)
	}
	return 0
}

func compareSequences(a, b *Entity) int {
	lenA := len(a.Elements)
	lenB := len(b.Elements)
	for i := range min(lenA, lenB) {
		if c := Compare(a.Elements[i], b.Elements[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func Equal(a, b *Entity) bool {
	return Compare(a, b) == 0
}
