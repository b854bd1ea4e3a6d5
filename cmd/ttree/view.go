package main

import (
	"fmt"
	"io"

	"github.com/signadot/ttree/encode"
	"github.com/signadot/ttree/entity"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	return eachTree(cc, args, cfg.parseOpts(), func(i int, file string, t *entity.Entity) error {
		if err := sep(cc.Out, i); err != nil {
			return err
		}
		if err := encode.Encode(t, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		return nil
	})
}

// sep separates the output for consecutive inputs.
func sep(w io.Writer, i int) error {
	if i == 0 {
		return nil
	}
	_, err := w.Write([]byte("---\n"))
	return err
}
