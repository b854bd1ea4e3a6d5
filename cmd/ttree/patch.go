package main

import (
	"fmt"
	"os"

	"github.com/signadot/ttree/encode"
	"github.com/signadot/ttree/entity"
	ttpatch "github.com/signadot/ttree/patch"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	p, err := getPatch(cfg, args[0])
	if err != nil {
		return err
	}
	apply := ttpatch.Apply
	if cfg.Merge {
		apply = ttpatch.Merge
	}
	opts := cfg.encOpts(cc.Out)
	return eachTree(cc, args[1:], cfg.parseOpts(), func(i int, file string, t *entity.Entity) error {
		res, err := apply(t, p)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if err := sep(cc.Out, i); err != nil {
			return err
		}
		if err := encode.Encode(res, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	})
}

func getPatch(cfg *PatchConfig, arg string) ([]byte, error) {
	if cfg.String {
		return []byte(arg), nil
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return d, nil
}
