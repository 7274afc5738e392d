package daemon

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/tmoura/strata/pkg/config"
	"github.com/tmoura/strata/pkg/store"
)

// EnsureRunning makes sure a watcher is alive for the data root, spawning
// a detached one when needed. Interactive commands call this on startup.
//
// The check is best-effort: a stale pid marker is cleaned up, a live one
// means no new process is started.
func EnsureRunning(paths *store.Paths, cfg config.Config) error {
	if cfg.DisableDaemon {
		return nil
	}

	if err := installAutostart(paths); err != nil {
		return err
	}

	guard := NewGuard(paths.DaemonPID)
	if guard.Running() {
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to resolve current executable: %w", err)
	}

	cmd := exec.Command(exe, "daemon")
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	if home := os.Getenv(store.EnvHome); home != "" {
		cmd.Env = append(os.Environ(), store.EnvHome+"="+home)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start strata daemon: %w", err)
	}
	// Detach: the daemon outlives this command.
	return cmd.Process.Release()
}
