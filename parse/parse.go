package parse

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/ttree/entity"
	"github.com/signadot/ttree/token"
)

// Parse reads the file at path and returns its root Sequence.
func Parse(path string, opts ...ParseOption) (*entity.Entity, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	return ParseBytes(d, append([]ParseOption{Filename(path)}, opts...)...)
}

// ParseBytes parses d and returns its root Sequence.
func ParseBytes(d []byte, opts ...ParseOption) (*entity.Entity, error) {
	pOpts := newParseOpts(opts)
	b := newBuilder(pOpts)
	lns := token.LinesIn(pOpts.filename, d)
	for i := range lns {
		if err := b.add(&lns[i]); err != nil {
			return nil, err
		}
	}
	return b.root, nil
}

// ParseString parses s and returns its root Sequence.
func ParseString(s string, opts ...ParseOption) (*entity.Entity, error) {
	return ParseBytes([]byte(s), opts...)
}

// ParseReader parses lines from r as they are read and returns the root
// Sequence once r is exhausted. Lines may be at most token.MaxLineLen
// bytes long; a longer line, like any other read error, is reported as
// ErrFileNotFound wrapping the cause (bufio.ErrTooLong).
func ParseReader(r io.Reader, opts ...ParseOption) (*entity.Entity, error) {
	pOpts := newParseOpts(opts)
	b := newBuilder(pOpts)
	sc := token.NewScanner(r).WithFilename(pOpts.filename)
	for sc.Scan() {
		ln := sc.Line()
		if err := b.add(&ln); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	return b.root, nil
}
