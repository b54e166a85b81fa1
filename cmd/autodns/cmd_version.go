package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCmdVersion returns a command that prints the application version.
func newCmdVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		// No config needed.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "autodns version %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
