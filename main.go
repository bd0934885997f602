package main

import (
	"os"

	"github.com/movekit-dev/movekit/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(cli.Run(version, commit, date))
}
