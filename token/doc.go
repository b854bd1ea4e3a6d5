// Package token splits token tree text into lines and tokens.
//
// Each line of input is measured for its indentation (the number of
// leading ' ' bytes) and the remainder, the payload, is split on runs of
// whitespace into tokens. Tabs and carriage returns separate tokens but
// never count as indentation.
//
// # Usage
//
//	lines := token.Lines(data)
//	for _, ln := range lines {
//	    fmt.Println(ln.Pos, ln.Indent, ln.Tokens)
//	}
//
// # Related Packages
//
//   - github.com/signadot/ttree/parse - builds entity trees from lines
package token
