package libdiff

import (
	"github.com/signadot/ttree/debug"
	"github.com/signadot/ttree/entity"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the changes turning from into to, in document order. It
// returns nil if the trees are equal.
func Diff(from, to *entity.Entity) []Change {
	if from.Kind == entity.SequenceKind && to.Kind == entity.SequenceKind {
		return diffSequence(from, to, entity.Path{}, entity.Path{}, nil)
	}
	if entity.Equal(from, to) {
		return nil
	}
	return []Change{{Op: Replace, FromPath: entity.Path{}, ToPath: entity.Path{}, From: from, To: to}}
}

type symbols struct {
	byHash map[uint64]rune
}

// symbol maps e to a rune shared by all structurally equal entities.
// Surrogate code points are skipped since go-diff converts diffed runes
// through strings.
func (s *symbols) symbol(e *entity.Entity) rune {
	h := e.Hash()
	r, ok := s.byHash[h]
	if !ok {
		r = rune(len(s.byHash))
		if r >= 0xD800 {
			r += 0x800
		}
		s.byHash[h] = r
	}
	return r
}

func diffSequence(from, to *entity.Entity, fp, tp entity.Path, res []Change) []Change {
	syms := &symbols{byHash: map[uint64]rune{}}
	fromRunes := make([]rune, len(from.Elements))
	for i, elt := range from.Elements {
		fromRunes[i] = syms.symbol(elt)
	}
	toRunes := make([]rune, len(to.Elements))
	for i, elt := range to.Elements {
		toRunes[i] = syms.symbol(elt)
	}
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	if debug.Diff() {
		debug.Logf("diff %s: %d ops over %d/%d elements\n", fp, len(diffs), len(fromRunes), len(toRunes))
	}
	var dels, ins []int
	fi, ti := 0, 0
	for i := range diffs {
		d := &diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffDelete:
			for range n {
				dels = append(dels, fi)
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				ins = append(ins, ti)
				ti++
			}
		case diffpatch.DiffEqual:
			res = flush(from, to, fp, tp, dels, ins, res)
			dels, ins = dels[:0], ins[:0]
			fi += n
			ti += n
		}
	}
	return flush(from, to, fp, tp, dels, ins, res)
}

func flush(from, to *entity.Entity, fp, tp entity.Path, dels, ins []int, res []Change) []Change {
	n := min(len(dels), len(ins))
	for k := range n {
		f, t := from.Elements[dels[k]], to.Elements[ins[k]]
		fPath, tPath := childPath(fp, dels[k]), childPath(tp, ins[k])
		if f.Kind == entity.SequenceKind && t.Kind == entity.SequenceKind {
			res = diffSequence(f, t, fPath, tPath, res)
			continue
		}
		res = append(res, Change{Op: Replace, FromPath: fPath, ToPath: tPath, From: f, To: t})
	}
	for _, i := range dels[n:] {
		res = append(res, Change{Op: Delete, FromPath: childPath(fp, i), From: from.Elements[i]})
	}
	for _, i := range ins[n:] {
		res = append(res, Change{Op: Insert, ToPath: childPath(tp, i), To: to.Elements[i]})
	}
	return res
}

func childPath(p entity.Path, i int) entity.Path {
	res := make(entity.Path, len(p)+1)
	copy(res, p)
	res[len(p)] = i
	return res
}
