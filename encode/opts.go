package encode

import "github.com/signadot/ttree/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// EncodeIndent sets the number of spaces per level in token tree
// output. The default is 1. Values below 1 are treated as 1.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = max(n, 1) }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
