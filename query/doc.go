// Package query selects entities of a tree with boolean expressions.
//
// Expressions use the expr language (github.com/expr-lang/expr) and see
// the following variables for the entity being tested:
//
//	kind    "Leaf", "KeyVal" or "Sequence"
//	token   the token of a Leaf
//	key     the key of a KeyVal
//	value   the value of a KeyVal
//	tokens  all tokens the entity spans, in order
//	depth   1 for elements of the root, 2 below them, ...
//	index   position in the parent Sequence
//	len     number of elements of a Sequence
//	path    path of the entity, e.g. "[0][2]"
//
// # Usage
//
//	matches, err := query.Select(root, `kind == "KeyVal" && key == "port"`)
//	for _, m := range matches {
//	    fmt.Println(m.Path, m.Entity)
//	}
//
//	// Sequences whose tokens include "tls"
//	matches, err = query.Select(root, `kind == "Sequence" && "tls" in tokens`)
package query
