package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/signadot/ttree/entity"
	"github.com/signadot/ttree/format"

	"github.com/goccy/go-yaml"
)

type EncState struct {
	depth, indent int

	format format.Format
	Color  func(entity.Kind, ColorAttr, string) string
}

// Encode writes e to w. A Sequence is encoded as a document, one line
// per element; any other entity is encoded as a single element.
func Encode(e *entity.Entity, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 1,
	}
	for _, opt := range opts {
		opt(es)
	}
	if e == nil {
		return fmt.Errorf("%w: nil entity", ErrEncoding)
	}
	switch {
	case es.format.IsJSON():
		return encodeJSON(e, w)
	case es.format.IsYAML():
		return encodeYAML(e, w)
	case !es.format.IsTree():
		return fmt.Errorf("%w: %w: %d", ErrEncoding, format.ErrBadFormat, int(es.format))
	}
	if e.Kind != entity.SequenceKind {
		return encodeElement(e, w, es)
	}
	for _, elt := range e.Elements {
		if err := encodeElement(elt, w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeElement(e *entity.Entity, w io.Writer, es *EncState) error {
	if e == nil {
		return fmt.Errorf("%w: nil element", ErrEncoding)
	}
	if e.Kind != entity.SequenceKind || isInline(e) {
		return writeLine(e, w, es)
	}
	if len(e.Elements) < 2 {
		return fmt.Errorf("%w: nested sequence of %d elements has no token tree form",
			ErrEncoding, len(e.Elements))
	}
	head := e.Elements[0]
	if head == nil || (head.Kind == entity.SequenceKind && !isInline(head)) {
		return fmt.Errorf("%w: sequence headed by %s has no token tree form",
			ErrEncoding, head)
	}
	if err := writeLine(head, w, es); err != nil {
		return err
	}
	es.depth++
	defer func() { es.depth-- }()
	for _, elt := range e.Elements[1:] {
		if err := encodeElement(elt, w, es); err != nil {
			return err
		}
	}
	return nil
}

// isInline reports whether e is written as the tokens of a single line.
func isInline(e *entity.Entity) bool {
	return len(e.Elements) >= 3 && e.AllLeaves()
}

func writeLine(e *entity.Entity, w io.Writer, es *EncState) error {
	var parts []string
	switch e.Kind {
	case entity.LeafKind:
		if err := checkToken(e.Token); err != nil {
			return err
		}
		parts = []string{es.color(e.Kind, TokenColor, e.Token)}
	case entity.KeyValKind:
		if err := checkToken(e.Key); err != nil {
			return err
		}
		if err := checkToken(e.Value); err != nil {
			return err
		}
		parts = []string{
			es.color(e.Kind, KeyColor, e.Key),
			es.color(e.Kind, ValueColor, e.Value),
		}
	case entity.SequenceKind:
		parts = make([]string, len(e.Elements))
		for i, elt := range e.Elements {
			if err := checkToken(elt.Token); err != nil {
				return err
			}
			parts[i] = es.color(e.Kind, TokenColor, elt.Token)
		}
	default:
		return fmt.Errorf("%w: %w: %d", ErrEncoding, entity.ErrKind, int(e.Kind))
	}
	ln := strings.Repeat(" ", es.depth*es.indent) + strings.Join(parts, " ") + "\n"
	return writeString(w, ln)
}

func (es *EncState) color(k entity.Kind, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}

func checkToken(tok string) error {
	if tok == "" {
		return fmt.Errorf("%w: empty token", ErrEncoding)
	}
	if strings.IndexFunc(tok, unicode.IsSpace) != -1 {
		return fmt.Errorf("%w: token %q contains whitespace", ErrEncoding, tok)
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func encodeJSON(e *entity.Entity, w io.Writer) error {
	d, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return writeString(w, string(d)+"\n")
}

func encodeYAML(e *entity.Entity, w io.Writer) error {
	v, err := toYAML(e)
	if err != nil {
		return err
	}
	d, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return writeString(w, string(d))
}

// toYAML builds the ordered YAML counterpart of the entity JSON form.
func toYAML(e *entity.Entity) (yaml.MapSlice, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: nil element", ErrEncoding)
	}
	kind, err := e.Kind.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	res := yaml.MapSlice{{Key: "kind", Value: string(kind)}}
	switch e.Kind {
	case entity.LeafKind:
		res = append(res, yaml.MapItem{Key: "token", Value: e.Token})
	case entity.KeyValKind:
		res = append(res,
			yaml.MapItem{Key: "key", Value: e.Key},
			yaml.MapItem{Key: "value", Value: e.Value})
	case entity.SequenceKind:
		elts := make([]any, len(e.Elements))
		for i, elt := range e.Elements {
			y, err := toYAML(elt)
			if err != nil {
				return nil, err
			}
			elts[i] = y
		}
		res = append(res, yaml.MapItem{Key: "elements", Value: elts})
	}
	return res, nil
}
