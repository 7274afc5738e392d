//go:build darwin

package daemon

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/tmoura/strata/pkg/store"
)

const launchdLabel = "com.strata.daemon"

// installAutostart writes a LaunchAgent plist and bootstraps it so the
// daemon survives reboots. Skipped entirely if the plist already exists;
// a failed launchctl call is not fatal since EnsureRunning spawns the
// daemon directly anyway.
func installAutostart(paths *store.Paths) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("unable to determine home directory: %w", err)
	}

	agentsDir := filepath.Join(home, "Library", "LaunchAgents")
	if err := os.MkdirAll(agentsDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", agentsDir, err)
	}

	plistPath := filepath.Join(agentsDir, launchdLabel+".plist")
	if _, err := os.Stat(plistPath); err == nil {
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to resolve current executable: %w", err)
	}

	envBlock := ""
	if dataHome := os.Getenv(store.EnvHome); dataHome != "" {
		envBlock = fmt.Sprintf(`    <key>EnvironmentVariables</key>
    <dict>
      <key>%s</key>
      <string>%s</string>
    </dict>
`, store.EnvHome, dataHome)
	}

	plist := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
  <dict>
    <key>Label</key>
    <string>%s</string>
    <key>ProgramArguments</key>
    <array>
      <string>%s</string>
      <string>daemon</string>
    </array>
    <key>RunAtLoad</key>
    <true/>
    <key>KeepAlive</key>
    <true/>
    <key>StandardOutPath</key>
    <string>%s</string>
    <key>StandardErrorPath</key>
    <string>%s</string>
%s  </dict>
</plist>
`, launchdLabel, exe, paths.DaemonLog, paths.DaemonLog, envBlock)

	if err := os.WriteFile(plistPath, []byte(plist), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", plistPath, err)
	}

	target := fmt.Sprintf("gui/%d", os.Getuid())
	_ = exec.Command("launchctl", "bootstrap", target, plistPath).Run()
	return nil
}
