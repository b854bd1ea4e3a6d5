package patch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/ttree/debug"
	"github.com/signadot/ttree/entity"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch error")

// Apply applies the RFC 6902 patch p to a copy of root.
func Apply(root *entity.Entity, p []byte) (*entity.Entity, error) {
	ops, err := jsonpatch.DecodePatch(p)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("json patch with %d ops on %s\n", len(ops), root)
	}
	return apply(root, func(d []byte) ([]byte, error) {
		return ops.Apply(d)
	})
}

// Merge applies the RFC 7396 merge patch p to a copy of root.
func Merge(root *entity.Entity, p []byte) (*entity.Entity, error) {
	if debug.Patch() {
		debug.Logf("merge patch %s on %s\n", p, root)
	}
	return apply(root, func(d []byte) ([]byte, error) {
		return jsonpatch.MergePatch(d, p)
	})
}

func apply(root *entity.Entity, f func([]byte) ([]byte, error)) (*entity.Entity, error) {
	d, err := entity.ToJSON(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	out, err := f(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res, err := entity.FromJSON(out)
	if err != nil {
		return nil, fmt.Errorf("%w: result: %w", ErrPatch, err)
	}
	if err := entity.Validate(res); err != nil {
		return nil, fmt.Errorf("%w: result: %w", ErrPatch, err)
	}
	if res.Kind != entity.SequenceKind {
		return nil, fmt.Errorf("%w: result root is a %s", ErrPatch, res.Kind)
	}
	if debug.Patch() {
		debug.Logf("patched:\n%s", debug.Tree{Entity: res})
	}
	return res, nil
}

// Pointer returns the JSON pointer of the entity at p.
func Pointer(p entity.Path) string {
	buf := &strings.Builder{}
	for _, i := range p {
		buf.WriteString("/elements/")
		buf.WriteString(strconv.Itoa(i))
	}
	return buf.String()
}
