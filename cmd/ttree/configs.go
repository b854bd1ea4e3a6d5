package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/ttree/encode"
	"github.com/signadot/ttree/format"
	"github.com/signadot/ttree/parse"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color     bool   `cli:"name=color desc='output with color'"`
	Indent    int    `cli:"name=indent desc='number of spaces per input indentation level'"`
	KeySuffix string `cli:"name=key-suffix desc='suffix to strip from keys, such as :'"`

	T bool `cli:"name=t aliases=tree desc='output token trees'"`
	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{}
	if cfg.Indent > 0 {
		res = append(res, parse.IndentUnit(cfg.Indent))
	}
	if cfg.KeySuffix != "" {
		res = append(res, parse.KeySuffix(cfg.KeySuffix))
	}
	return res
}

func (cfg *MainConfig) outFormat() format.Format {
	var fmat format.Format
	switch {
	case cfg.T:
		fmat = format.TreeFormat
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor reports whether output to w is colored: always with -color,
// never with -color=false, and otherwise when w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		color.NoColor = false
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only report failures'"`

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Paths bool `cli:"name=p desc='only print paths of matches'"`

	Query *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=merge desc='patch is a json merge patch'"`
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}
