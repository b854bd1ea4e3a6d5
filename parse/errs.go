package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/ttree/token"
)

var (
	// ErrFileNotFound is returned when the input cannot be opened or read.
	ErrFileNotFound = errors.New("file not found")
	// ErrMalformedIndentation is returned when a line is indented more
	// than one level deeper than the line it would nest under.
	ErrMalformedIndentation = errors.New("malformed indentation")
)

// IndentErr locates an indentation error.
type IndentErr struct {
	Err    error
	Pos    token.Pos
	Indent int // leading spaces of the offending line
	Depth  int // depth of the offending line, -1 if Indent is not a whole number of units
	Max    int // deepest depth allowed at Pos
}

func (e *IndentErr) Unwrap() error {
	return e.Err
}

func (e *IndentErr) Error() string {
	if e.Depth < 0 {
		return fmt.Sprintf("%s: indent of %d spaces is not a whole number of levels at %s",
			e.Err.Error(), e.Indent, e.Pos.String())
	}
	return fmt.Sprintf("%s: depth %d exceeds %d at %s",
		e.Err.Error(), e.Depth, e.Max, e.Pos.String())
}
