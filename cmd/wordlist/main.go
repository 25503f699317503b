// Package main provides the CLI for the Tali Forth 2 documentation tools.
package main

import (
	"os"

	"github.com/MassiveBattlebotsFan/TaliForth2/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
