package main

import (
	"io"
	"log/slog"

	"github.com/scott-cotton/cli"
)

// ccLog returns a logger writing to the error output of cc.
func ccLog(cc *cli.Context) *slog.Logger {
	return newLog(cc.Err)
}

func newLog(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey {
				if a.Value.String() == "INFO" {
					return slog.Attr{}
				}
			}
			return a
		},
	}))
}
