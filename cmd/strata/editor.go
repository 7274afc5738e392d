package main

import (
	"os/exec"

	"github.com/tmoura/strata/pkg/config"
)

// launchEditor opens the working copy with the configured editor when it
// is installed, detached so the CLI exits immediately. Best-effort: the
// path is always printed regardless.
func launchEditor(cfg config.Config, path string) {
	editor := cfg.EditorCommand()
	if _, err := exec.LookPath(editor); err != nil {
		return
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		return
	}
	_ = cmd.Process.Release()
}
