package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jroosing/autodns/internal/api"
	"github.com/jroosing/autodns/internal/config"
	"github.com/jroosing/autodns/internal/database"
	"github.com/spf13/cobra"
)

func newCmdServe(a *app) *cobra.Command {
	var (
		host        string
		port        int
		dbPath      string
		enableApply bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the management REST API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if host != "" {
				cfg.API.Host = host
			}
			if port != 0 {
				cfg.API.Port = port
			}
			if dbPath != "" {
				cfg.Database.Path = dbPath
			}
			cfg.API.Enabled = true
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return serve(ctx, a, enableApply)
		},
	}

	f := cmd.Flags()
	f.StringVar(&host, "host", "", "Override API bind host")
	f.IntVar(&port, "port", 0, "Override API bind port")
	f.StringVar(&dbPath, "db", "", "Override SQLite database path")
	f.BoolVar(&enableApply, "enable-apply", false, "Allow POST /zones/apply to write into the BIND directory")
	return cmd
}

// serve blocks until ctx is canceled or the HTTP server fails.
func serve(ctx context.Context, a *app, enableApply bool) error {
	cfg, logger := a.cfg, a.logger

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.SeedZoneSettings(cfg.Input()); err != nil {
		return err
	}

	srv := api.New(cfg, db, logger)
	if enableApply {
		if err := requireRoot(); err != nil {
			logger.Warn("zone apply enabled without root privileges; writes may fail", "err", err)
		}
		srv.Handler().SetApplier(newApplier(cfg, logger))
	}

	if a.configPath != "" {
		go func() {
			err := config.Watch(ctx, a.configPath, logger, func(next *config.Config) {
				srv.Handler().SetConfig(next)
				if enableApply {
					srv.Handler().SetApplier(newApplier(next, logger))
				}
				logger.Info("configuration reloaded", "path", a.configPath)
			})
			if err != nil {
				logger.Warn("config watch stopped", "err", err)
			}
		}()
	}

	logger.Info("AutoDNS API starting",
		"addr", srv.Addr(),
		"database", cfg.Database.Path,
		"apply", enableApply,
		"version", version,
	)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("AutoDNS API stopped")
	return nil
}
