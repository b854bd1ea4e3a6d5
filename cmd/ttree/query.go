package main

import (
	"fmt"

	"github.com/signadot/ttree/entity"
	ttquery "github.com/signadot/ttree/query"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	q, err := ttquery.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	files := args[1:]
	return eachTree(cc, files, cfg.parseOpts(), func(_ int, file string, t *entity.Entity) error {
		ms, err := q.Select(t)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", file, err)
		}
		for _, m := range ms {
			var err error
			switch {
			case cfg.Paths && len(files) > 1:
				_, err = fmt.Fprintf(cc.Out, "%s:%s\n", file, m.Path)
			case cfg.Paths:
				_, err = fmt.Fprintf(cc.Out, "%s\n", m.Path)
			case len(files) > 1:
				_, err = fmt.Fprintf(cc.Out, "%s:%s %s\n", file, m.Path, m.Entity)
			default:
				_, err = fmt.Fprintf(cc.Out, "%s %s\n", m.Path, m.Entity)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}
