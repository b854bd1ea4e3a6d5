// Package entity provides the tree representation produced by the token
// tree parser.
//
// # Overview
//
// A parsed document is a tree of entities. Entity is a closed sum type
// with three kinds:
//
//   - LeafKind: a single terminal token, stored in Token
//   - KeyValKind: a token pair found on one line, stored in Key and Value
//   - SequenceKind: an ordered list of owned children, stored in Elements
//
// The root of a parsed document is always a Sequence. Element order is
// document order and is significant.
//
// A Sequence exclusively owns its elements. Entities carry no parent
// reference: navigation goes downward from the root, by Walk or by Path.
//
// # Creating Entities
//
//	root := entity.Sequence(
//	    entity.Leaf("a"),
//	    entity.KeyVal("port", "8080"),
//	    entity.Sequence(entity.Leaf("server"), entity.Leaf("up")),
//	)
//
// # Traversal
//
// Consumers switch on Kind:
//
//	err := entity.Walk(root, func(p entity.Path, depth int, e *entity.Entity) error {
//	    switch e.Kind {
//	    case entity.LeafKind:
//	    case entity.KeyValKind:
//	    case entity.SequenceKind:
//	    }
//	    return nil
//	})
//
// # Paths
//
// A Path is a list of element indices from the root, written "[0][2]".
// The root has the empty path "".
//
//	e, err := root.Get(entity.MustParsePath("[2][1]"))
//
// # Comparison and Hashing
//
//	equal := entity.Compare(a, b) == 0
//	h := a.Hash()
//
// # JSON
//
// Entities marshal to a self-describing form:
//
//	{"kind":"Sequence","elements":[{"kind":"Leaf","token":"a"},{"kind":"KeyVal","key":"k","value":"v"}]}
//
// # Thread Safety
//
// Entities are not safe for concurrent mutation. A tree that is no longer
// modified may be read from multiple goroutines.
package entity
