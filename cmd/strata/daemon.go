package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tmoura/strata/pkg/config"
	"github.com/tmoura/strata/pkg/daemon"
	"github.com/tmoura/strata/pkg/store"
)

// daemonCmd represents the daemon command
var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the background daemon that syncs versions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		paths, err := store.NewPaths()
		if err != nil {
			fatal("Failed to resolve data root", err)
		}
		if err := paths.EnsureDirs(); err != nil {
			fatal("Failed to prepare data root", err)
		}

		cfg, err := config.Load(paths.Root)
		if err != nil {
			fatal("Failed to load config", err)
		}

		logger, closeLog, err := daemon.OpenLog(paths.DaemonLog)
		if err != nil {
			// The daemon runs detached: stderr is not observable, so a
			// broken log file falls back to the default logger.
			logger = slog.Default()
			closeLog = func() error { return nil }
		}
		defer closeLog()

		w := daemon.NewWatcher(paths,
			daemon.WithCooldown(cfg.Cooldown()),
			daemon.WithLogger(logger),
		)
		if err := w.Run(context.Background()); err != nil {
			fatal("Daemon failed", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(daemonCmd)
}
