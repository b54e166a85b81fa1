package main

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/jroosing/autodns/internal/config"
	"github.com/jroosing/autodns/internal/logging"
	"github.com/jroosing/autodns/internal/messages"
	"github.com/jroosing/autodns/internal/zonegen"
	"github.com/spf13/cobra"
)

// app is the state shared by all subcommands once the root flags are parsed.
type app struct {
	configPath string
	logLevel   string
	jsonLogs   bool
	locale     string

	cfg     *config.Config
	logger  *slog.Logger
	printer *messages.Printer
	stderr  io.Writer
}

// load reads the configuration, applies the global flag overrides and
// configures logging.
func (a *app) load(cmd *cobra.Command) error {
	path := config.ResolveConfigPath(a.configPath)
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	a.configPath = path
	a.stderr = cmd.ErrOrStderr()
	a.apply(cfg)
	return nil
}

// apply installs cfg after layering the global flags over it.
func (a *app) apply(cfg *config.Config) {
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.jsonLogs {
		cfg.Logging.Structured = true
		cfg.Logging.StructuredFormat = "json"
	}
	if a.locale != "" {
		cfg.Locale = a.locale
	}

	lc := logging.FromConfig(cfg.Logging)
	lc.Output = a.stderr
	a.logger = logging.Configure(lc)
	a.printer = messages.NewPrinter(cfg.Locale)
	a.cfg = cfg
}

// reportValidation prints the localized diagnostic for rejected input.
func (a *app) reportValidation(w io.Writer, err error) error {
	var verr *zonegen.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	key := messages.InvalidDomain
	if errors.Is(err, zonegen.ErrInvalidAddress) {
		key = messages.InvalidAddress
	}
	a.printer.Fprintln(w, key, verr.Value)
	return reportedError{err}
}

// reportedError marks errors whose message was already shown to the user.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

// inputFlags override the zone and path settings for one run.
type inputFlags struct {
	ip        string
	domain    string
	bindDir   string
	noSamples bool
}

func (f *inputFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.ip, "ip", "", "IPv4 address of the host (overrides zone.ip_address)")
	fl.StringVar(&f.domain, "domain", "", "Domain name (overrides zone.domain)")
	fl.StringVar(&f.bindDir, "bind-dir", "", "BIND configuration directory (overrides paths.bind_dir)")
	fl.BoolVar(&f.noSamples, "no-samples", false, "Omit the sample www/mail/webmail records")
}

func (f *inputFlags) apply(cfg *config.Config) {
	if f.ip != "" {
		cfg.Zone.IPAddress = f.ip
	}
	if f.domain != "" {
		cfg.Zone.Domain = f.domain
	}
	if f.bindDir != "" {
		// An explicit named_conf_local stays; a derived one follows the directory.
		if cfg.Paths.NamedConfLocal == "" || cfg.Paths.NamedConfLocal == filepath.Join(cfg.Paths.BindDir, "named.conf.local") {
			cfg.Paths.NamedConfLocal = filepath.Join(f.bindDir, "named.conf.local")
		}
		cfg.Paths.BindDir = f.bindDir
	}
	if f.noSamples {
		cfg.Options.IncludeSamples = false
	}
}
