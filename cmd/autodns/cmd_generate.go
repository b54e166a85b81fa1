package main

import (
	"fmt"
	"io"

	"github.com/jroosing/autodns/internal/zonegen"
	"github.com/spf13/cobra"
)

func newCmdGenerate(a *app) *cobra.Command {
	var (
		in     inputFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print the zone files and named.conf.local stanzas without writing them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in.apply(a.cfg)
			art, err := a.cfg.Generator().Generate(a.cfg.Input())
			if err != nil {
				return a.reportValidation(cmd.ErrOrStderr(), err)
			}
			a.logger.Debug("rendered zones", "domain", art.ForwardZoneName(), "reverse_zone", art.ReverseZoneName())
			return writeOutput(cmd.OutOrStdout(), output, art, func(w io.Writer) error {
				return writeArtifactsText(w, art)
			})
		},
	}

	in.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format (text|json|yaml)")
	return cmd
}

func writeArtifactsText(w io.Writer, art *zonegen.Artifacts) error {
	_, err := fmt.Fprintf(w, "; ===== %s =====\n%s\n; ===== %s =====\n%s\n; ===== %s (appended) =====\n%s",
		art.Paths.ForwardZone, art.ForwardZone,
		art.Paths.ReverseZone, art.ReverseZone,
		art.Paths.NamedConfLocal, art.ConfSnippet,
	)
	return err
}
