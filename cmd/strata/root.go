package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tmoura/strata/pkg/config"
	"github.com/tmoura/strata/pkg/daemon"
	"github.com/tmoura/strata/pkg/store"
)

var (
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "strata",
	Short: "Local notes with file-backed version history",
	Long: `Strata keeps a lightweight version history for plain-text notes you edit
with your own editor. A background daemon watches the working copies and
promotes changed ones into immutable, hash-identified versions.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Opportunistic: a missing .env is fine.
		_ = godotenv.Load()

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// openStore resolves the data layout, loads the config and index, and
// optionally makes sure the background daemon is alive.
func openStore(ensureDaemon bool) (*store.Store, config.Config) {
	paths, err := store.NewPaths()
	if err != nil {
		fatal("Failed to resolve data root", err)
	}

	s, err := store.Open(paths, store.WithLogger(slog.Default()))
	if err != nil {
		fatal("Failed to load notes", err)
	}

	cfg, err := config.Load(paths.Root)
	if err != nil {
		fatal("Failed to load config", err)
	}

	if ensureDaemon {
		if err := daemon.EnsureRunning(paths, cfg); err != nil {
			fatal("Failed to ensure daemon", err)
		}
	}

	return s, cfg
}
