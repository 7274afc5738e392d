//go:build !darwin && !linux

package daemon

import "github.com/tmoura/strata/pkg/store"

// No service manager integration on this platform; EnsureRunning still
// spawns the daemon directly.
func installAutostart(paths *store.Paths) error {
	return nil
}
