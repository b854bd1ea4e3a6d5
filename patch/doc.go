// Package patch applies JSON patches to entity trees.
//
// A tree is patched in its JSON form (see [entity.Entity.MarshalJSON]),
// so patch paths address the tagged structure:
//
//	{"kind":"Sequence","elements":[{"kind":"KeyVal","key":"port","value":"80"}]}
//
// is changed with
//
//	[{"op":"replace","path":"/elements/0/value","value":"8080"}]
//
// [Pointer] converts an [entity.Path] to such a JSON pointer. Both RFC 6902
// patches ([Apply]) and RFC 7396 merge patches ([Merge]) are supported.
// The patched tree must be a valid tree with a Sequence root.
package patch
