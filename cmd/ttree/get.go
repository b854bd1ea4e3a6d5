package main

import (
	"fmt"

	"github.com/signadot/ttree/encode"
	"github.com/signadot/ttree/entity"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an entity path", cli.ErrUsage)
	}
	path, err := entity.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	opts := cfg.encOpts(cc.Out)
	return eachTree(cc, args[1:], cfg.parseOpts(), func(i int, file string, t *entity.Entity) error {
		e, err := t.Get(path)
		if err != nil {
			return fmt.Errorf("error getting %s from %s: %w", args[0], file, err)
		}
		if err := sep(cc.Out, i); err != nil {
			return err
		}
		return encode.Encode(e, cc.Out, opts...)
	})
}
