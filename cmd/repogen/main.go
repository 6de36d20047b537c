package main

import (
	"os"

	"github.com/danieljhkim/repogen/internal/cli"
	"github.com/danieljhkim/repogen/internal/errors"
)

var version = "dev"

func main() {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		cli.ReportError(err)
		os.Exit(errors.ExitCode(err))
	}
}
