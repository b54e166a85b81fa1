// Package bind applies generated zone artifacts to a BIND9 installation:
// backups, file writes, verification and service restarts. It is the only
// part of AutoDNS that touches the filesystem or runs external programs.
package bind

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// Runner executes a command line with extra arguments and returns its
// combined output.
type Runner interface {
	Run(ctx context.Context, cmdline string, args ...string) (string, error)
}

// ExecRunner runs commands through os/exec. The command line is split with
// POSIX shell quoting rules; no shell is involved.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, cmdline string, args ...string) (string, error) {
	argv, err := SplitCommand(cmdline)
	if err != nil {
		return "", err
	}
	argv = append(argv, args...)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err = cmd.Run()
	return out.String(), err
}

// SplitCommand splits cmdline into argv.
func SplitCommand(cmdline string) ([]string, error) {
	argv, err := shellquote.Split(cmdline)
	if err != nil {
		return nil, fmt.Errorf("invalid command %q: %w", cmdline, err)
	}
	if len(argv) == 0 {
		return nil, errors.New("empty command")
	}
	return argv, nil
}
