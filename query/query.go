package query

import (
	"errors"
	"fmt"

	"github.com/signadot/ttree/debug"
	"github.com/signadot/ttree/entity"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrQuery = errors.New("query error")

// Env is the environment an expression is evaluated in.
type Env struct {
	Kind   string   `expr:"kind"`
	Token  string   `expr:"token"`
	Key    string   `expr:"key"`
	Value  string   `expr:"value"`
	Tokens []string `expr:"tokens"`
	Depth  int      `expr:"depth"`
	Index  int      `expr:"index"`
	Len    int      `expr:"len"`
	Path   string   `expr:"path"`
}

type Match struct {
	Path   entity.Path
	Entity *entity.Entity
}

// Query is a compiled selection expression.
type Query struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func (q *Query) String() string {
	return q.src
}

// Select returns the entities below root, root excluded, for which q
// holds, in document order.
func (q *Query) Select(root *entity.Entity) ([]Match, error) {
	var res []Match
	err := entity.Walk(root, func(p entity.Path, depth int, e *entity.Entity) error {
		if depth == 0 {
			return nil
		}
		env := newEnv(p, depth, e)
		out, err := expr.Run(q.prg, env)
		if err != nil {
			return fmt.Errorf("%w: at %s: %w", ErrQuery, env.Path, err)
		}
		if ok, _ := out.(bool); ok {
			if debug.Query() {
				debug.Logf("query %q matched %s\n", q.src, env.Path)
			}
			res = append(res, Match{Path: p.Clone(), Entity: e})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Select compiles src and runs it against root.
func Select(root *entity.Entity, src string) ([]Match, error) {
	q, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return q.Select(root)
}

func newEnv(p entity.Path, depth int, e *entity.Entity) Env {
	tokens := e.Tokens()
	if tokens == nil {
		tokens = []string{}
	}
	return Env{
		Kind:   e.Kind.String(),
		Token:  e.Token,
		Key:    e.Key,
		Value:  e.Value,
		Tokens: tokens,
		Depth:  depth,
		Index:  p[len(p)-1],
		Len:    e.Len(),
		Path:   p.String(),
	}
}
