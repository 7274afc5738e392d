package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// idsCmd lists note ids for shell completion scripts. Hidden: it is
// plumbing, not part of the user-facing surface, and must not trigger a
// daemon spawn.
var idsCmd = &cobra.Command{
	Use:    "ids",
	Hidden: true,
	Args:   cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s, _ := openStore(false)
		for _, slug := range s.Slugs() {
			fmt.Println(slug)
		}
	},
}

func init() {
	rootCmd.AddCommand(idsCmd)
}
