package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes and their latest versions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s, _ := openStore(true)

		// Promote pending edits first so the listing reflects reality.
		if _, err := s.SnapshotAll(); err != nil {
			fatal("Failed to sync notes", err)
		}

		notes := s.Notes()
		if len(notes) == 0 {
			fmt.Println("No notes yet. Run `strata new` to create one.")
		}
		for _, n := range notes {
			fmt.Printf("- %s (id: %s) versions: %d current: %d path: %s\n",
				n.Title, n.Slug, len(n.Versions), n.CurrentVersion, s.Paths().WorkingFile(n.Slug))
		}

		if err := s.Save(); err != nil {
			fatal("Failed to save index", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
