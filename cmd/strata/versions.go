package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// versionsCmd represents the versions command
var versionsCmd = &cobra.Command{
	Use:   "versions <identifier>",
	Short: "List all versions for a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, _ := openStore(true)

		if _, err := s.SnapshotAll(); err != nil {
			fatal("Failed to sync notes", err)
		}

		slug, ok := s.Resolve(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Note not found: %s\n", args[0])
			os.Exit(1)
		}
		n, _ := s.Get(slug)

		fmt.Printf("Versions for %s:\n", n.Title)
		for _, v := range n.Versions {
			fmt.Printf("  v%d @ %s (%s)\n", v.Version, v.CreatedAt.Format(time.RFC3339), v.Path)
		}

		if err := s.Save(); err != nil {
			fatal("Failed to save index", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionsCmd)
}
