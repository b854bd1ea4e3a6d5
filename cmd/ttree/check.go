package main

import (
	"errors"
	"fmt"

	"github.com/signadot/ttree/entity"
	"github.com/signadot/ttree/parse"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := 0
	for _, file := range args {
		t, err := getTreeFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			ccLog(cc).Error("check failed", "file", file, "reason", failReason(err), "error", err)
			failed++
			continue
		}
		if cfg.Quiet {
			continue
		}
		if _, err := fmt.Fprintf(cc.Out, "%s: ok (%d entities)\n", file, countEntities(t)); err != nil {
			return err
		}
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// countEntities counts the entities below the root of t.
func countEntities(t *entity.Entity) int {
	n := 0
	entity.Walk(t, func(_ entity.Path, depth int, _ *entity.Entity) error {
		if depth > 0 {
			n++
		}
		return nil
	})
	return n
}

func failReason(err error) string {
	switch {
	case errors.Is(err, parse.ErrMalformedIndentation):
		return "indentation"
	case errors.Is(err, parse.ErrFileNotFound):
		return "read"
	}
	return "unknown"
}
