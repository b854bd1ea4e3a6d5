// Package format names the output formats a token tree can be encoded
// in.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	err = encode.Encode(root, w, encode.EncodeFormat(f))
//
// # Related Packages
//
//   - github.com/signadot/ttree/encode - Encode entity trees to text
package format
