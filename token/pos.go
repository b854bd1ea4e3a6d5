package token

import "fmt"

// PosDoc identifies the document positions refer to.
type PosDoc struct {
	Filename string
}

func (p *PosDoc) Pos(line, col, off int) *Pos {
	return &Pos{D: p, Line: line, Col: col, I: off}
}

// Pos is a position in a document. Line and Col are zero based; String
// reports them one based.
type Pos struct {
	D    *PosDoc
	Line int
	Col  int
	I    int
}

func (p *Pos) Filename() string {
	if p == nil || p.D == nil {
		return ""
	}
	return p.D.Filename
}

func (p Pos) String() string {
	name := p.Filename()
	if name == "" {
		return fmt.Sprintf("line %d, col %d", p.Line+1, p.Col+1)
	}
	return fmt.Sprintf("%s:%d:%d", name, p.Line+1, p.Col+1)
}
