package entity

import (
	"encoding/binary"
	"hash/maphash"
)

var seed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of the entity. Equal entities
// hash equal within a process.
// It panics if e is nil.
func (e *Entity) Hash() uint64 {
	if e == nil {
		panic("entity: Hash called on nil entity")
	}
	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteByte(byte(e.Kind))
	switch e.Kind {
	case LeafKind:
		h.WriteString(e.Token)
	case KeyValKind:
		// length prefix keeps ("ab","c") apart from ("a","bc")
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(len(e.Key)))
		h.Write(b[:])
		h.WriteString(e.Key)
		h.WriteString(e.Value)
	case SequenceKind:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(len(e.Elements)))
		h.Write(b[:])
		for _, elt := range e.Elements {
			binary.LittleEndian.PutUint64(b[:], elt.Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
