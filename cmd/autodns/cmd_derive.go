package main

import (
	"fmt"
	"io"

	"github.com/jroosing/autodns/internal/zonegen"
	"github.com/spf13/cobra"
)

func newCmdDerive(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "derive [ip]",
		Short: "Show the reverse zone names derived from an IPv4 address",
		Long:  "Show the reverse zone names derived from an IPv4 address. Without an argument the configured address is used.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ip := a.cfg.Zone.IPAddress
			if len(args) == 1 {
				ip = args[0]
			}
			if err := zonegen.ValidateIP(ip); err != nil {
				return a.reportValidation(cmd.ErrOrStderr(), err)
			}

			parts := zonegen.Derive(ip)
			return writeOutput(cmd.OutOrStdout(), output, parts, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "reverse_prefix: %s\nptr_owner:      %s\nreverse_zone:   %s\nnetwork_prefix: %s\n",
					parts.ReversePrefix, parts.PTROwner, parts.ReverseZone, parts.NetworkPrefix)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format (text|json|yaml)")
	return cmd
}
