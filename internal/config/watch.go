package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchDebounce is how long Watch waits after the last event on the file
// before reloading it. A single save usually produces several events.
var WatchDebounce = 200 * time.Millisecond

// Watch reloads path once its writes have settled and passes the new config
// to onChange. Invalid or empty configs are logged and skipped. Watch blocks
// until ctx is done.
//
// The parent directory is watched rather than the file so that editors which
// save via rename are still picked up.
func Watch(ctx context.Context, path string, logger *slog.Logger, onChange func(*Config)) error {
	if logger == nil {
		logger = slog.Default()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	timer := time.NewTimer(WatchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(WatchDebounce)
		case <-timer.C:
			if cfg := reload(abs, logger); cfg != nil {
				onChange(cfg)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher error", "error", err)
		}
	}
}

// reload loads path after a change, or returns nil if it should be skipped.
// An empty file is a save still in progress, not a request for defaults.
func reload(path string, logger *slog.Logger) *Config {
	info, err := os.Stat(path)
	if err != nil {
		logger.Warn("ignoring config change", "path", path, "error", err)
		return nil
	}
	if info.Size() == 0 {
		logger.Debug("ignoring empty config", "path", path)
		return nil
	}
	cfg, err := Load(path)
	if err != nil {
		logger.Warn("ignoring invalid config change", "path", path, "error", err)
		return nil
	}
	logger.Info("config changed", "path", path)
	return cfg
}
