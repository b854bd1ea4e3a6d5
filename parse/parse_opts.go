package parse

type parseOpts struct {
	filename   string
	indentUnit int
	keySuffix  string
}

type ParseOption func(*parseOpts)

// IndentUnit sets the number of spaces making up one level of
// indentation. The default is 1. Values below 1 are treated as 1.
func IndentUnit(n int) ParseOption {
	return func(o *parseOpts) { o.indentUnit = max(n, 1) }
}

// KeySuffix strips s from the end of KeyVal keys, so that with
// KeySuffix(":") the line "port: 80" has key "port".
func KeySuffix(s string) ParseOption {
	return func(o *parseOpts) { o.keySuffix = s }
}

// Filename names the input in error positions.
func Filename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

func newParseOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{indentUnit: 1}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}
