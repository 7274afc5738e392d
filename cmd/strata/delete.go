package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <slug>",
	Short: "Delete a note by unique slug",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, _ := openStore(true)

		slug, err := s.Delete(args[0])
		if err != nil {
			fatal("Failed to delete note", err)
		}
		if err := s.Save(); err != nil {
			fatal("Failed to save index", err)
		}

		fmt.Printf("Deleted note: %s\n", slug)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
