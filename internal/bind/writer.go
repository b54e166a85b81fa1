package bind

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jroosing/autodns/internal/zonegen"
	"github.com/spf13/afero"
)

// BackupSuffix is appended to a file's path to name its backup.
const BackupSuffix = ".bak"

// Writer persists artifacts to a filesystem.
type Writer struct {
	Fs     afero.Fs
	Logger *slog.Logger
}

// NewWriter returns a Writer on the real filesystem.
func NewWriter(logger *slog.Logger) *Writer {
	return &Writer{Fs: afero.NewOsFs(), Logger: logger}
}

func (w *Writer) logger() *slog.Logger {
	if w.Logger == nil {
		return slog.Default()
	}
	return w.Logger
}

// Backup copies each existing path to path+".bak", overwriting older
// backups. Missing paths are skipped. It returns the backups created.
func (w *Writer) Backup(paths []string) ([]string, error) {
	created := make([]string, 0, len(paths))
	for _, p := range paths {
		info, err := w.Fs.Stat(p)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return created, fmt.Errorf("failed to stat %s: %w", p, err)
		}

		data, err := afero.ReadFile(w.Fs, p)
		if err != nil {
			return created, fmt.Errorf("failed to read %s: %w", p, err)
		}
		dst := p + BackupSuffix
		if err := afero.WriteFile(w.Fs, dst, data, info.Mode().Perm()); err != nil {
			return created, fmt.Errorf("failed to write backup %s: %w", dst, err)
		}
		w.logger().Info("created backup", "path", dst)
		created = append(created, dst)
	}
	return created, nil
}

// Write replaces both zone files and appends the stanzas to named.conf.local
// unless that file already holds them. It returns the paths it changed.
func (w *Writer) Write(a *zonegen.Artifacts) ([]string, error) {
	written := make([]string, 0, 3)

	for _, f := range []struct{ path, content string }{
		{a.Paths.ForwardZone, a.ForwardZone},
		{a.Paths.ReverseZone, a.ReverseZone},
	} {
		if err := w.Fs.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
			return written, fmt.Errorf("failed to create %s: %w", filepath.Dir(f.path), err)
		}
		if err := afero.WriteFile(w.Fs, f.path, []byte(f.content), 0o644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", f.path, err)
		}
		w.logger().Info("wrote zone file", "path", f.path, "bytes", len(f.content))
		written = append(written, f.path)
	}

	appended, err := w.appendFile(a.Paths.NamedConfLocal, a.ConfSnippet)
	if err != nil {
		return written, err
	}
	if !appended {
		w.logger().Info("zone stanzas already registered", "path", a.Paths.NamedConfLocal)
		return written, nil
	}
	w.logger().Info("updated named configuration", "path", a.Paths.NamedConfLocal)
	written = append(written, a.Paths.NamedConfLocal)
	return written, nil
}

// appendFile appends content to path unless path already contains it.
func (w *Writer) appendFile(path, content string) (bool, error) {
	existing, err := afero.ReadFile(w.Fs, path)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if content != "" && strings.Contains(string(existing), content) {
		return false, nil
	}

	if err := w.Fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	f, err := w.Fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", path, err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return false, fmt.Errorf("failed to append to %s: %w", path, err)
	}
	return true, f.Close()
}
