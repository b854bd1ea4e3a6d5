package main

import (
	"fmt"

	"github.com/signadot/ttree/encode"
	"github.com/signadot/ttree/entity"
	"github.com/signadot/ttree/format"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	fmat := cfg.outFormat()
	if fmat.IsTree() {
		fmat = format.JSONFormat
	}
	return eachTree(cc, args, cfg.parseOpts(), func(i int, file string, t *entity.Entity) error {
		if err := sep(cc.Out, i); err != nil {
			return err
		}
		if err := encode.Encode(t, cc.Out, encode.EncodeFormat(fmat)); err != nil {
			return fmt.Errorf("error dumping %s: %w", file, err)
		}
		return nil
	})
}
