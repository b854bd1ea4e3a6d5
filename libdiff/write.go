package libdiff

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Colors renders the two sides of a change.
type Colors struct {
	From func(a ...any) string
	To   func(a ...any) string
}

func NewColors() *Colors {
	return &Colors{
		From: color.New(color.FgRed).SprintFunc(),
		To:   color.New(color.FgGreen).SprintFunc(),
	}
}

// Write prints changes one line per side: "- path entity" for the old
// side and "+ path entity" for the new one. colors may be nil.
func Write(w io.Writer, changes []Change, colors *Colors) error {
	for _, c := range changes {
		if c.From != nil {
			ln := fmt.Sprintf("- %s %s", pathString(c.FromPath), c.From)
			if colors != nil {
				ln = colors.From(ln)
			}
			if _, err := fmt.Fprintln(w, ln); err != nil {
				return err
			}
		}
		if c.To != nil {
			ln := fmt.Sprintf("+ %s %s", pathString(c.ToPath), c.To)
			if colors != nil {
				ln = colors.To(ln)
			}
			if _, err := fmt.Fprintln(w, ln); err != nil {
				return err
			}
		}
	}
	return nil
}

func pathString(p fmt.Stringer) string {
	s := p.String()
	if s == "" {
		return "$"
	}
	return s
}
