//go:build linux

package daemon

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/tmoura/strata/pkg/store"
)

const systemdUnit = "strata-daemon.service"

// installAutostart writes a systemd user unit and enables it so the
// daemon survives reboots. Skipped entirely if the unit already exists; a
// failed systemctl call is not fatal since EnsureRunning spawns the
// daemon directly anyway.
func installAutostart(paths *store.Paths) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("unable to determine home directory: %w", err)
	}

	unitDir := filepath.Join(home, ".config", "systemd", "user")
	if err := os.MkdirAll(unitDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", unitDir, err)
	}

	unitPath := filepath.Join(unitDir, systemdUnit)
	if _, err := os.Stat(unitPath); err == nil {
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to resolve current executable: %w", err)
	}

	envLine := ""
	if dataHome := os.Getenv(store.EnvHome); dataHome != "" {
		envLine = fmt.Sprintf("Environment=%s=%s\n", store.EnvHome, dataHome)
	}

	unit := fmt.Sprintf(`[Unit]
Description=Strata notes daemon

[Service]
ExecStart=%s daemon
Restart=on-failure
%s
[Install]
WantedBy=default.target
`, exe, envLine)

	if err := os.WriteFile(unitPath, []byte(unit), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", unitPath, err)
	}

	_ = exec.Command("systemctl", "--user", "daemon-reload").Run()
	_ = exec.Command("systemctl", "--user", "enable", "--now", systemdUnit).Run()
	return nil
}
