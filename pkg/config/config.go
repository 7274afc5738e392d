// Package config loads the optional config.yaml from the data root and
// applies environment overrides on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvNoDaemon disables automatic daemon startup when set, for tooling and
// test contexts.
const EnvNoDaemon = "STRATA_NO_DAEMON"

// DefaultCooldown is the quiet period the daemon waits after the last
// relevant filesystem event before promoting snapshots.
const DefaultCooldown = 30 * time.Second

// Config holds user-tunable settings. All fields are optional.
type Config struct {
	// Editor is the command used to open working copies, launched
	// detached when present on PATH.
	Editor string `yaml:"editor"`

	// CooldownSeconds overrides the daemon's debounce window.
	CooldownSeconds int `yaml:"cooldown_seconds"`

	// DisableDaemon prevents interactive commands from spawning the
	// background watcher.
	DisableDaemon bool `yaml:"disable_daemon"`
}

// Load reads config.yaml from the data root. A missing file yields the
// zero config; a malformed one is an error so typos do not fail silently.
func Load(root string) (Config, error) {
	var cfg Config

	path := filepath.Join(root, "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg.withEnv(), nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg.withEnv(), nil
}

func (c Config) withEnv() Config {
	if _, ok := os.LookupEnv(EnvNoDaemon); ok {
		c.DisableDaemon = true
	}
	return c
}

// Cooldown returns the configured debounce window, or the default.
func (c Config) Cooldown() time.Duration {
	if c.CooldownSeconds > 0 {
		return time.Duration(c.CooldownSeconds) * time.Second
	}
	return DefaultCooldown
}

// EditorCommand returns the configured editor, defaulting to subl.
func (c Config) EditorCommand() string {
	if c.Editor != "" {
		return c.Editor
	}
	return "subl"
}
