package main

import (
	"os"

	"github.com/aussiebroadwan/pandda/internal/panel/cli"
)

func main() {
	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
