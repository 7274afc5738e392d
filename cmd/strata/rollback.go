package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rollbackVersion int

// rollbackCmd represents the rollback command
var rollbackCmd = &cobra.Command{
	Use:   "rollback <identifier>",
	Short: "Roll back to a specific (or previous) version",
	Long: `Rollback restores an earlier version's content as a brand-new latest
version. History stays append-only: nothing is rewound or discarded, and
pending working-copy edits are snapshotted before the restore.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, _ := openStore(true)

		path, err := s.Rollback(args[0], rollbackVersion)
		if err != nil {
			fatal("Failed to roll back", err)
		}
		if err := s.Save(); err != nil {
			fatal("Failed to save index", err)
		}

		fmt.Println(path)
	},
}

func init() {
	rootCmd.AddCommand(rollbackCmd)
	rollbackCmd.Flags().IntVarP(&rollbackVersion, "version", "V", 0, "Target version (default: previous)")
}
