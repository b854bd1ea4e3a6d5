package main

import (
	"fmt"

	"github.com/signadot/ttree/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	t1, err := getTreeFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	t2, err := getTreeFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	changes := libdiff.Diff(t1, t2)
	if len(changes) == 0 {
		return nil
	}
	if cfg.Reverse {
		changes = libdiff.Reverse(changes)
	}
	var colors *libdiff.Colors
	if cfg.useColor(cc.Out) {
		colors = libdiff.NewColors()
	}
	if err := libdiff.Write(cc.Out, changes, colors); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
