//go:build unix

package daemon

import (
	"errors"

	"golang.org/x/sys/unix"
)

// unixProber probes liveness with a null signal: a zero-cost existence
// check, not a handshake.
type unixProber struct{}

func newProber() Prober {
	return unixProber{}
}

func (unixProber) Alive(pid int) bool {
	err := unix.Kill(pid, 0)
	if err == nil {
		return true
	}
	// EPERM means the process exists but belongs to someone else.
	return !errors.Is(err, unix.ESRCH)
}
