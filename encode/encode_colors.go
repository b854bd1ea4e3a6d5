package encode

import (
	"strings"

	"github.com/signadot/ttree/entity"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind entity.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	TokenColor ColorAttr = iota
	KeyColor
	ValueColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	colors.Map[Colorable{Kind: entity.LeafKind, Attr: TokenColor}] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[Colorable{Kind: entity.KeyValKind, Attr: KeyColor}] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[Colorable{Kind: entity.KeyValKind, Attr: ValueColor}] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[Colorable{Kind: entity.SequenceKind, Attr: TokenColor}] = color.RGB(198, 198, 46).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k entity.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k entity.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
