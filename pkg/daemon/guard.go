// Package daemon implements the background watcher that keeps version
// history synchronized with out-of-band edits, and the singleton guard
// that keeps at most one watcher alive per data root.
package daemon

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Prober answers whether a process id belongs to a live process.
// Abstracted so the guard stays platform-independent and testable with a
// fake process table.
type Prober interface {
	Alive(pid int) bool
}

// Guard implements advisory single-writer exclusion through a pid marker
// file. It does not close the narrow race where two processes both
// observe "no marker" before either writes one.
type Guard struct {
	pidPath string
	prober  Prober
}

// NewGuard creates a guard over the given marker file using the platform
// prober.
func NewGuard(pidPath string) *Guard {
	return &Guard{pidPath: pidPath, prober: newProber()}
}

// NewGuardWithProber creates a guard with an injected prober.
func NewGuardWithProber(pidPath string, prober Prober) *Guard {
	return &Guard{pidPath: pidPath, prober: prober}
}

// Running reports whether a watcher recorded in the marker file is still
// alive. A marker pointing at a dead process is stale: it is removed and
// treated identically to no marker at all.
func (g *Guard) Running() bool {
	data, err := os.ReadFile(g.pidPath)
	if err != nil {
		return false
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return false
	}

	if g.prober.Alive(pid) {
		return true
	}

	// Stale marker cleanup is a normal outcome, not an error.
	_ = os.Remove(g.pidPath)
	return false
}

// WritePID records the current process id in the marker file. The watcher
// calls this unconditionally on startup.
func (g *Guard) WritePID() error {
	pid := os.Getpid()
	if err := os.WriteFile(g.pidPath, []byte(strconv.Itoa(pid)), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", g.pidPath, err)
	}
	return nil
}
