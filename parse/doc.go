// Package parse parses token tree text into entity trees.
//
// # Format
//
// Token tree text is line oriented. Each line's leading spaces give its
// indentation; the rest is split on whitespace into tokens. A line
// becomes:
//
//   - nothing, if it has no tokens
//   - a Leaf, if it has one token
//   - a KeyVal, if it has two tokens
//   - a Sequence of Leafs, one per token, if it has more
//
// A line indented one level deeper than the line before it nests beneath
// that line: the entity of the earlier line is replaced by a Sequence
// holding it first, followed by the entities of the nested lines.
//
//	parent
//	 child1
//	 child2
//
// parses to a root Sequence holding Sequence(parent child1 child2).
//
// # Usage
//
//	root, err := parse.Parse("config.tt")
//	if errors.Is(err, parse.ErrFileNotFound) {
//	    // ...
//	}
//
//	// Parse bytes with a two space indentation unit
//	root, err := parse.ParseBytes(data, parse.IndentUnit(2))
//
// # Related Packages
//
//   - github.com/signadot/ttree/entity - the tree representation
//   - github.com/signadot/ttree/encode - encode trees back to text
//   - github.com/signadot/ttree/token - line tokenization
package parse
