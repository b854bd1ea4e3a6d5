package libdiff

import "github.com/signadot/ttree/entity"

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	}
	return "<unknown op>"
}

// Change is one difference between two trees. FromPath locates From in
// the old tree and ToPath locates To in the new tree; both are nil on
// the side where the change has no entity.
type Change struct {
	Op       Op
	FromPath entity.Path
	ToPath   entity.Path
	From     *entity.Entity
	To       *entity.Entity
}

// Reverse returns the changes turning the new tree back into the old.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		r := Change{
			Op:       c.Op,
			FromPath: c.ToPath,
			ToPath:   c.FromPath,
			From:     c.To,
			To:       c.From,
		}
		switch c.Op {
		case Insert:
			r.Op = Delete
		case Delete:
			r.Op = Insert
		}
		res[i] = r
	}
	return res
}
