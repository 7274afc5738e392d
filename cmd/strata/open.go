package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// openCmd represents the open command
var openCmd = &cobra.Command{
	Use:   "open <identifier>",
	Short: "Open an existing note by title or id",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, cfg := openStore(true)

		path, err := s.OpenNote(args[0])
		if err != nil {
			fatal("Failed to open note", err)
		}
		if err := s.Save(); err != nil {
			fatal("Failed to save index", err)
		}

		launchEditor(cfg, path)
		fmt.Println(path)
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
