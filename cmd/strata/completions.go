package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// completionsCmd represents the completions command
var completionsCmd = &cobra.Command{
	Use:       "completions <bash|zsh|fish>",
	Short:     "Generate shell completions",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"bash", "zsh", "fish"},
	Run: func(cmd *cobra.Command, args []string) {
		var err error
		switch args[0] {
		case "bash":
			err = rootCmd.GenBashCompletionV2(os.Stdout, true)
		case "zsh":
			err = rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			err = rootCmd.GenFishCompletion(os.Stdout, true)
		default:
			err = fmt.Errorf("unsupported shell: %s", args[0])
		}
		if err != nil {
			fatal("Failed to generate completions", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionsCmd)
}
