package token

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// Line is one line of input after indentation measurement and
// tokenization.
type Line struct {
	Pos    *Pos
	Indent int
	Tokens []string
}

// IsBlank reports whether the line carries no tokens.
func (l *Line) IsBlank() bool {
	return len(l.Tokens) == 0
}

// Payload returns the tokens of the line separated by single spaces.
func (l *Line) Payload() string {
	return strings.Join(l.Tokens, " ")
}

// Lines splits d on '\n' and tokenizes each line. A final empty line,
// as produced by input ending in a newline, is dropped.
func Lines(d []byte) []Line {
	return LinesIn("", d)
}

// LinesIn is Lines with positions naming filename.
func LinesIn(filename string, d []byte) []Line {
	doc := &PosDoc{Filename: filename}
	parts := bytes.Split(d, []byte{'\n'})
	if n := len(parts); n > 0 && len(parts[n-1]) == 0 {
		parts = parts[:n-1]
	}
	res := make([]Line, 0, len(parts))
	off := 0
	for i, part := range parts {
		res = append(res, tokenizeLine(doc, i, off, part))
		off += len(part) + 1
	}
	return res
}

// Scanner reads lines from an io.Reader one at a time.
type Scanner struct {
	sc   *bufio.Scanner
	doc  *PosDoc
	ln   int
	off  int
	line Line
	// bytes of input consumed by the last line, terminator included
	adv int
}

func NewScanner(r io.Reader) *Scanner {
	s := &Scanner{sc: bufio.NewScanner(r), doc: &PosDoc{}}
	s.sc.Buffer(make([]byte, 0, 64*1024), MaxLineLen)
	s.sc.Split(s.scanLines)
	return s
}

// scanLines is bufio.ScanLines recording how much input each line used,
// since the returned line has its "\r\n" or "\n" stripped.
func (s *Scanner) scanLines(data []byte, atEOF bool) (int, []byte, error) {
	adv, tok, err := bufio.ScanLines(data, atEOF)
	s.adv = adv
	return adv, tok, err
}

// MaxLineLen bounds the length of a single line read by a Scanner.
// Longer lines make Scan stop with bufio.ErrTooLong.
const MaxLineLen = 16 * 1024 * 1024

// WithFilename sets the filename reported by positions.
func (s *Scanner) WithFilename(name string) *Scanner {
	s.doc.Filename = name
	return s
}

// Scan advances to the next line. It returns false at end of input or on
// error; see Err.
func (s *Scanner) Scan() bool {
	if !s.sc.Scan() {
		return false
	}
	d := s.sc.Bytes()
	s.line = tokenizeLine(s.doc, s.ln, s.off, d)
	s.ln++
	s.off += s.adv
	return true
}

func (s *Scanner) Line() Line {
	return s.line
}

func (s *Scanner) Err() error {
	return s.sc.Err()
}

func tokenizeLine(doc *PosDoc, ln, off int, d []byte) Line {
	indent := ReadIndent(d)
	return Line{
		Pos:    doc.Pos(ln, indent, off+indent),
		Indent: indent,
		Tokens: Fields(d[indent:]),
	}
}

// ReadIndent returns the number of leading ' ' bytes of d.
func ReadIndent(d []byte) int {
	i := 0
	for i < len(d) && d[i] == ' ' {
		i++
	}
	return i
}

// Fields splits a payload on runs of whitespace, dropping empty tokens.
func Fields(d []byte) []string {
	fs := bytes.Fields(d)
	res := make([]string, len(fs))
	for i, f := range fs {
		res[i] = string(f)
	}
	return res
}
