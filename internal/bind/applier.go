package bind

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/jroosing/autodns/internal/config"
	"github.com/jroosing/autodns/internal/zonegen"
)

// CheckResult is the outcome of one verification step.
type CheckResult struct {
	Zone  string `json:"zone,omitempty"`
	Path  string `json:"path"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// ApplyReport describes everything Apply did.
type ApplyReport struct {
	Backups   []string      `json:"backups"`
	Written   []string      `json:"written"`
	Checks    []CheckResult `json:"checks"`
	Restarted bool          `json:"restarted"`
}

// ChecksPassed reports whether every verification step succeeded.
func (r *ApplyReport) ChecksPassed() bool {
	for _, c := range r.Checks {
		if !c.OK {
			return false
		}
	}
	return true
}

// Applier runs backup, write, verify and restart in that order.
// Concurrent calls to Apply are serialized.
type Applier struct {
	Writer  *Writer
	Checker Checker
	Service Service
	Logger  *slog.Logger

	mu sync.Mutex
}

// NewApplier wires the collaborators described by cfg on the real filesystem.
func NewApplier(cfg *config.Config, logger *slog.Logger) *Applier {
	w := NewWriter(logger)
	runner := ExecRunner{}

	var checker Checker
	switch cfg.Verify.Mode {
	case config.VerifyBuiltin:
		checker = &BuiltinChecker{Fs: w.Fs, NamedConfLocal: cfg.Paths.NamedConfLocal}
	case config.VerifyNone:
		checker = NoopChecker{}
	default:
		checker = &NamedChecker{
			CheckZoneCommand: cfg.Commands.CheckZone,
			CheckConfCommand: cfg.Commands.CheckConf,
			Runner:           runner,
		}
	}

	return &Applier{
		Writer:  w,
		Checker: checker,
		Service: &SystemdService{Command: cfg.Commands.Restart, Runner: runner, Logger: logger},
		Logger:  logger,
	}
}

// Apply persists a and, depending on its options, backs up existing files
// and restarts the nameserver. Verification failures are recorded in the
// report but do not stop the run; a failed restart returns a *ServiceError
// alongside the report.
func (a *Applier) Apply(ctx context.Context, art *zonegen.Artifacts) (*ApplyReport, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	logger := a.Logger
	if logger == nil {
		logger = slog.Default()
	}
	opts := art.Input.Options
	report := &ApplyReport{Backups: []string{}, Written: []string{}, Checks: []CheckResult{}}

	if opts.CreateBackups {
		backups, err := a.Writer.Backup(art.Paths.All())
		report.Backups = append(report.Backups, backups...)
		if err != nil {
			return report, err
		}
	}

	written, err := a.Writer.Write(art)
	report.Written = append(report.Written, written...)
	if err != nil {
		return report, err
	}

	if a.Checker != nil {
		report.Checks = append(report.Checks,
			a.check(ctx, logger, art.ForwardZoneName(), art.Paths.ForwardZone),
			a.check(ctx, logger, art.ReverseZoneName(), art.Paths.ReverseZone),
			a.checkConf(ctx, logger, art.Paths.NamedConfLocal),
		)
	}

	if opts.RestartService && a.Service != nil {
		if err := a.Service.Restart(ctx); err != nil {
			logger.Error("nameserver restart failed", "error", err)
			return report, err
		}
		report.Restarted = true
		logger.Info("nameserver restarted")
	}

	return report, nil
}

func (a *Applier) check(ctx context.Context, logger *slog.Logger, zoneName, path string) CheckResult {
	res := CheckResult{Zone: zoneName, Path: path, OK: true}
	if err := a.Checker.CheckZone(ctx, zoneName, path); err != nil {
		res.OK = false
		res.Error = describeCheckErr(err)
		logger.Warn("zone check failed", "zone", zoneName, "path", path, "error", res.Error)
	}
	return res
}

func (a *Applier) checkConf(ctx context.Context, logger *slog.Logger, path string) CheckResult {
	res := CheckResult{Path: path, OK: true}
	if err := a.Checker.CheckConf(ctx); err != nil {
		res.OK = false
		res.Error = describeCheckErr(err)
		logger.Warn("configuration check failed", "error", res.Error)
	}
	return res
}

func describeCheckErr(err error) string {
	var cerr *CheckError
	if errors.As(err, &cerr) && cerr.Output != "" {
		return cerr.Error() + ": " + cerr.Output
	}
	return err.Error()
}
