package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jroosing/autodns/internal/bind"
	"github.com/jroosing/autodns/internal/config"
	"github.com/jroosing/autodns/internal/messages"
	"github.com/jroosing/autodns/internal/zonegen"
	"github.com/spf13/cobra"
)

type artifactApplier interface {
	Apply(ctx context.Context, art *zonegen.Artifacts) (*bind.ApplyReport, error)
}

// Swapped in tests.
var (
	newApplier = func(cfg *config.Config, logger *slog.Logger) artifactApplier {
		return bind.NewApplier(cfg, logger)
	}
	requireRoot = bind.RequireRoot
)

func newCmdApply(a *app) *cobra.Command {
	var (
		in            inputFlags
		skipRootCheck bool
		noBackup      bool
		noRestart     bool
		verify        string
		watch         bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Write the zones into the BIND directory, verify them and restart BIND",
		Long: `Write the forward and reverse zones into the BIND directory, register them
in named.conf.local, verify the result and restart BIND.

Existing files are copied to .bak first unless --no-backup is given. The zone
stanzas are only appended when named.conf.local does not already hold them.
Verification failures are reported but do not stop the run. If the restart
fails, the testing instructions are still printed but the completion message
is not, and the command exits with a non-zero status.

With --watch the command keeps running and applies again whenever the config
file settles on new zone settings or paths.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := func(cfg *config.Config) error {
				in.apply(cfg)
				if noBackup {
					cfg.Options.CreateBackups = false
				}
				if noRestart {
					cfg.Options.RestartService = false
				}
				if verify != "" {
					cfg.Verify.Mode = config.VerifyMode(verify)
					return cfg.Validate()
				}
				return nil
			}
			if err := overrides(a.cfg); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !skipRootCheck {
				if err := requireRoot(); err != nil {
					a.printer.Fprintln(cmd.ErrOrStderr(), messages.NotRoot)
					return reportedError{err}
				}
			}

			err := runApply(cmd.Context(), a, out)
			if !watch {
				return err
			}
			if a.configPath == "" {
				return errors.New("--watch needs a config file (--config or AUTODNS_CONFIG)")
			}
			if err != nil {
				a.logger.Error("initial apply failed", "err", err)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watchAndApply(ctx, a, out, overrides)
		},
	}

	in.register(cmd)
	f := cmd.Flags()
	f.BoolVar(&skipRootCheck, "skip-root-check", false, "Do not require root privileges")
	f.BoolVar(&noBackup, "no-backup", false, "Do not create .bak copies of existing files")
	f.BoolVar(&noRestart, "no-restart", false, "Do not restart BIND after writing")
	f.StringVar(&verify, "verify", "", "Verification mode (named|builtin|none)")
	f.BoolVar(&watch, "watch", false, "Re-apply whenever the config file changes")
	return cmd
}

// runApply performs one full run and prints the progress the way the
// interactive tool always has.
func runApply(ctx context.Context, a *app, out io.Writer) error {
	p := a.printer
	in := a.cfg.Input()

	p.Banner(out, in.Domain, in.IPAddress)

	art, err := a.cfg.Generator().Generate(in)
	if err != nil {
		return a.reportValidation(out, err)
	}

	report, applyErr := newApplier(a.cfg, a.logger).Apply(ctx, art)
	if report != nil {
		printReport(out, p, art, report)
	}

	var svcErr *bind.ServiceError
	switch {
	case errors.As(applyErr, &svcErr):
		p.Fprintln(out, messages.RestartFailed)
		p.TestingInstructions(out, in.Domain, in.IPAddress)
		return reportedError{applyErr}
	case applyErr != nil:
		return applyErr
	}

	p.TestingInstructions(out, in.Domain, in.IPAddress)
	fmt.Fprintln(out)
	p.Fprintln(out, messages.Completed)
	return nil
}

func printReport(out io.Writer, p *messages.Printer, art *zonegen.Artifacts, report *bind.ApplyReport) {
	for _, b := range report.Backups {
		p.Fprintln(out, messages.CreatedBackup, b)
	}
	for _, path := range report.Written {
		switch path {
		case art.Paths.ForwardZone:
			p.Fprintln(out, messages.CreatedForward, path)
		case art.Paths.ReverseZone:
			p.Fprintln(out, messages.CreatedReverse, path)
		case art.Paths.NamedConfLocal:
			p.Fprintln(out, messages.UpdatedConf, path)
		}
	}

	if len(report.Checks) > 0 {
		fmt.Fprintln(out)
		p.Fprintln(out, messages.Verifying)
		for _, c := range report.Checks {
			name := c.Zone
			if name == "" {
				name = c.Path
			}
			if c.OK {
				p.Fprintln(out, messages.CheckOK, name)
			} else {
				p.Fprintln(out, messages.CheckFailed, name, c.Error)
			}
		}
	}

	if art.Input.Options.RestartService {
		p.Fprintln(out, messages.Restarting)
		if report.Restarted {
			p.Fprintln(out, messages.RestartOK)
		}
	}
}

// applyState is what a watched reload must change before a successful apply
// runs again.
type applyState struct {
	input zonegen.Input
	paths config.PathsConfig
}

func stateOf(cfg *config.Config) applyState {
	return applyState{input: cfg.Input(), paths: cfg.Paths}
}

// watchAndApply re-runs apply each time the config file settles on new zone
// settings or paths, until ctx is done.
func watchAndApply(ctx context.Context, a *app, out io.Writer, overrides func(*config.Config) error) error {
	a.printer.Fprintln(out, messages.Watching, a.configPath)
	last := stateOf(a.cfg)
	return config.Watch(ctx, a.configPath, a.logger, func(cfg *config.Config) {
		a.apply(cfg)
		if err := overrides(cfg); err != nil {
			a.logger.Error("invalid override", "err", err)
			return
		}
		next := stateOf(cfg)
		if next == last {
			a.logger.Info("config unchanged, skipping apply", "path", a.configPath)
			return
		}
		if err := runApply(ctx, a, out); err != nil {
			a.logger.Error("apply failed", "err", err)
			return
		}
		last = next
	})
}
