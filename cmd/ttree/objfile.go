package main

import (
	"github.com/signadot/ttree/entity"
	"github.com/signadot/ttree/parse"

	"github.com/scott-cotton/cli"
)

// getTreeFile parses the file at path, or the command input if path is
// "-".
func getTreeFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*entity.Entity, error) {
	if path != "-" {
		return parse.Parse(path, opts...)
	}
	return parse.ParseReader(cc.In, append([]parse.ParseOption{parse.Filename("<stdin>")}, opts...)...)
}

// eachTree calls fn with the tree of each file in files, or of the
// command input if there are none.
func eachTree(cc *cli.Context, files []string, opts []parse.ParseOption, fn func(i int, file string, t *entity.Entity) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		t, err := getTreeFile(cc, file, opts...)
		if err != nil {
			return err
		}
		if err := fn(i, file, t); err != nil {
			return err
		}
	}
	return nil
}
