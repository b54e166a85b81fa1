package bind

import (
	"context"
	"log/slog"
	"strings"
)

// Service controls the running nameserver.
type Service interface {
	Restart(ctx context.Context) error
}

// SystemdService restarts BIND with a configurable command,
// "systemctl restart bind9" by default.
type SystemdService struct {
	Command string
	Runner  Runner
	Logger  *slog.Logger
}

func (s *SystemdService) Restart(ctx context.Context) error {
	runner := s.Runner
	if runner == nil {
		runner = ExecRunner{}
	}
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger.Debug("restarting nameserver", "command", s.Command)
	out, err := runner.Run(ctx, s.Command)
	if err != nil {
		return &ServiceError{Command: s.Command, Output: strings.TrimSpace(out), Err: err}
	}
	return nil
}
