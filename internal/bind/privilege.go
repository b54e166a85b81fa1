package bind

import "golang.org/x/sys/unix"

// euid is swapped in tests.
var euid = unix.Geteuid

// RequireRoot returns ErrNotRoot unless the effective uid is 0.
func RequireRoot() error {
	if euid() != 0 {
		return ErrNotRoot
	}
	return nil
}
