package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search notes by text in the latest version",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, _ := openStore(true)

		if _, err := s.SnapshotAll(); err != nil {
			fatal("Failed to sync notes", err)
		}

		matched := s.Search(args[0])
		if len(matched) == 0 {
			fmt.Println("No matches found.")
		}
		for _, n := range matched {
			fmt.Printf("- %s (id: %s)\n", n.Title, n.Slug)
		}

		if err := s.Save(); err != nil {
			fatal("Failed to save index", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
