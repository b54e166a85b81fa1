package bind

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotRoot is returned by RequireRoot for unprivileged processes.
var ErrNotRoot = errors.New("must be run as root")

// ServiceError reports a failed service restart.
type ServiceError struct {
	Command string
	Output  string
	Err     error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("service restart %q failed: %v", e.Command, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// CheckError reports that a checker rejected a zone or the configuration.
// Zone is empty for whole-configuration checks.
type CheckError struct {
	Zone   string
	Path   string
	Output string
	Err    error
}

func (e *CheckError) Error() string {
	var b strings.Builder
	if e.Zone == "" {
		b.WriteString("configuration check failed")
	} else {
		fmt.Fprintf(&b, "zone %s (%s) check failed", e.Zone, e.Path)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *CheckError) Unwrap() error { return e.Err }
