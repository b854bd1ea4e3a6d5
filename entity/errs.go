package entity

import "errors"

var (
	ErrKind    = errors.New("unknown entity kind")
	ErrPath    = errors.New("bad path")
	ErrInvalid = errors.New("invalid entity")
)
