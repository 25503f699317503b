// Package cli provides the command-line interface for the Tali Forth 2
// documentation tools.
package cli

import (
	"github.com/spf13/cobra"
)

// Execute creates and runs the root command.
func Execute() error {
	rootCmd := &cobra.Command{
		Use:   "wordlist",
		Short: "Tali Forth 2 documentation tools",
	}

	rootCmd.AddCommand(newGenerateCommand())

	return rootCmd.Execute()
}
