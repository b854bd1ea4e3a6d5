package entity

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Path addresses an entity by the element indices leading to it from
// the root.
type Path []int

// String returns the text form of p, e.g. "[0][2]". The root is "".
func (p Path) String() string {
	var b strings.Builder
	for _, i := range p {
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(i))
		b.WriteByte(']')
	}
	return b.String()
}

func (p Path) Clone() Path {
	return slices.Clone(p)
}

// ParsePath parses the text form of a path. Whitespace and an optional
// leading '$' are accepted.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	res := Path{}
	for len(s) > 0 {
		if s[0] != '[' {
			return nil, fmt.Errorf("%w: expected '[' in %q", ErrPath, s)
		}
		end := strings.IndexByte(s, ']')
		if end == -1 {
			return nil, fmt.Errorf("%w: unterminated index in %q", ErrPath, s)
		}
		i, err := strconv.Atoi(strings.TrimSpace(s[1:end]))
		if err != nil {
			return nil, fmt.Errorf("%w: index %q: %w", ErrPath, s[1:end], err)
		}
		if i < 0 {
			return nil, fmt.Errorf("%w: negative index %d", ErrPath, i)
		}
		res = append(res, i)
		s = s[end+1:]
	}
	return res, nil
}

func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Get returns the entity at p below e.
func (e *Entity) Get(p Path) (*Entity, error) {
	res := e
	for i, idx := range p {
		if res.Kind != SequenceKind {
			return nil, fmt.Errorf("%w: %s is a %s", ErrPath, p[:i], res.Kind)
		}
		if idx >= len(res.Elements) {
			return nil, fmt.Errorf("%w: index %d out of range at %s (len %d)",
				ErrPath, idx, p[:i], len(res.Elements))
		}
		res = res.Elements[idx]
	}
	return res, nil
}
