package parse

import (
	"strings"

	"github.com/signadot/ttree/debug"
	"github.com/signadot/ttree/entity"
	"github.com/signadot/ttree/token"
)

// frame is an entry of the open ancestor stack. Depths strictly increase
// from the bottom of the stack to the top.
type frame struct {
	depth int
	// the entity of the line opening this frame is parent.Elements[index]
	parent *entity.Entity
	index  int
	// seq is the Sequence nested lines attach to, nil until the first
	// one does.
	seq *entity.Entity
}

// open returns the Sequence owning lines nested under f, replacing the
// entity of f's line by Sequence(entity) on first use.
func (f *frame) open() *entity.Entity {
	if f.seq == nil {
		f.seq = entity.Sequence(f.parent.Elements[f.index])
		f.parent.Elements[f.index] = f.seq
	}
	return f.seq
}

type builder struct {
	opts  *parseOpts
	root  *entity.Entity
	stack []frame
}

func newBuilder(opts *parseOpts) *builder {
	root := entity.Sequence()
	return &builder{
		opts:  opts,
		root:  root,
		stack: []frame{{depth: -1, seq: root}},
	}
}

func (b *builder) add(ln *token.Line) error {
	if ln.IsBlank() {
		return nil
	}
	unit := b.opts.indentUnit
	if ln.Indent%unit != 0 {
		return &IndentErr{
			Err:    ErrMalformedIndentation,
			Pos:    *ln.Pos,
			Indent: ln.Indent,
			Depth:  -1,
			Max:    b.stack[len(b.stack)-1].depth + 1,
		}
	}
	depth := ln.Indent / unit
	for b.stack[len(b.stack)-1].depth >= depth {
		b.stack = b.stack[:len(b.stack)-1]
	}
	top := &b.stack[len(b.stack)-1]
	if depth > top.depth+1 {
		return &IndentErr{
			Err:    ErrMalformedIndentation,
			Pos:    *ln.Pos,
			Indent: ln.Indent,
			Depth:  depth,
			Max:    top.depth + 1,
		}
	}
	parent := top.open()
	e := b.lineEntity(ln.Tokens)
	parent.Append(e)
	if debug.Parse() {
		debug.Logf("parse: %s depth %d stack %d -> %s\n", ln.Pos, depth, len(b.stack), e)
	}
	b.stack = append(b.stack, frame{
		depth:  depth,
		parent: parent,
		index:  len(parent.Elements) - 1,
	})
	return nil
}

func (b *builder) lineEntity(toks []string) *entity.Entity {
	switch len(toks) {
	case 1:
		return entity.Leaf(toks[0])
	case 2:
		return entity.KeyVal(b.key(toks[0]), toks[1])
	default:
		return entity.FromTokens(toks)
	}
}

func (b *builder) key(k string) string {
	if b.opts.keySuffix == "" {
		return k
	}
	if trimmed := strings.TrimSuffix(k, b.opts.keySuffix); trimmed != "" {
		return trimmed
	}
	return k
}
