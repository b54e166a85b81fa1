// Command autodns generates BIND9 forward and reverse zones for a single host
// and optionally installs them, verifies them and restarts the nameserver.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:     "autodns",
		Short:   "BIND9 zone generator",
		Long:    "Generate forward and reverse BIND9 zones plus the named.conf.local stanzas for one host.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Path to YAML configuration file (or set AUTODNS_CONFIG)")
	pf.StringVar(&a.logLevel, "log-level", "", "Override log level (DEBUG|INFO|WARN|ERROR)")
	pf.BoolVar(&a.jsonLogs, "json-logs", false, "Enable JSON structured logging")
	pf.StringVar(&a.locale, "locale", "", "Message language (en|fr)")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		return a.load(c)
	}

	cmd.AddCommand(newCmdVersion())
	cmd.AddCommand(newCmdGenerate(a))
	cmd.AddCommand(newCmdDerive(a))
	cmd.AddCommand(newCmdApply(a))
	cmd.AddCommand(newCmdServe(a))
	return cmd
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	if err := root.Execute(); err != nil {
		var rep reportedError
		if !errors.As(err, &rep) {
			fmt.Fprintf(os.Stderr, "autodns: %v\n", err)
		}
		os.Exit(1)
	}
}
