// Package libdiff computes structural differences between entity trees.
//
// # Usage
//
//	changes := libdiff.Diff(oldRoot, newRoot)
//	if len(changes) != 0 {
//	    err := libdiff.Write(os.Stdout, changes, nil)
//	}
//
//	// Swap the direction of a diff
//	back := libdiff.Reverse(changes)
//
// Sequences are diffed element-wise: each element is mapped to a symbol
// by its structural hash and the symbol strings are diffed. A run of
// deletions directly followed by a run of insertions is paired element
// by element; paired Sequences are diffed recursively, other pairs are
// reported as replacements.
//
// # Related Packages
//
//   - github.com/signadot/ttree/entity - the tree representation
package libdiff
