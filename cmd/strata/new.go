package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new [title]",
	Short: "Create a new note",
	Args:  cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s, cfg := openStore(true)

		title := strings.Join(args, " ")
		path, err := s.Create(title)
		if err != nil {
			fatal("Failed to create note", err)
		}
		if err := s.Save(); err != nil {
			fatal("Failed to save index", err)
		}

		launchEditor(cfg, path)
		fmt.Println(path)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
