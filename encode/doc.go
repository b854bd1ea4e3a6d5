// Package encode encodes entity trees to token tree text, JSON or YAML.
//
// # Usage
//
//	// Encode to token tree text
//	err := encode.Encode(root, os.Stdout)
//
//	// Encode with a two space indentation unit and colours
//	err := encode.Encode(root, w, encode.EncodeIndent(2), encode.EncodeColors(encode.NewColors()))
//
//	// Encode to JSON
//	err := encode.Encode(root, w, encode.EncodeFormat(format.JSONFormat))
//
// Token tree output is the inverse of parsing: for any tree produced by
// the parser, parsing the encoded text yields an equal tree. Trees the
// parser cannot produce, such as a nested Sequence of one element, fail
// with ErrEncoding.
//
// # Related Packages
//
//   - github.com/signadot/ttree/entity - the tree representation
//   - github.com/signadot/ttree/parse - Parse text to trees
package encode
