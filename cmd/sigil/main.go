// Package main provides the entry point for the sigil CLI.
package main

import (
	"context"
	"os"

	"github.com/mrz1836/sigil/internal/cli"
	"github.com/mrz1836/sigil/internal/signal"
)

// Set via -ldflags at release time.
//
//nolint:gochecknoglobals // build metadata
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	h := signal.NewHandler(context.Background())

	err := cli.Execute(h.Context(), cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})
	h.Stop()

	os.Exit(cli.ExitCodeForError(err))
}
