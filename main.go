package main

import (
	"os"

	"github.com/uv-create/uvcreate/internal/cli"
	"github.com/uv-create/uvcreate/internal/errdefs"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		os.Exit(errdefs.ExitCode(err))
	}
}
