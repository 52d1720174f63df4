package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the history of all branches",
	Long:  `Hands the terminal to git log over all branches, one line per commit.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		git := workingCopy().Command(ctx, "log", "--oneline", "--graph", "--all", "--decorate")
		git.Stdin = os.Stdin
		git.Stdout = os.Stdout
		git.Stderr = os.Stderr
		if err := git.Run(); err != nil {
			wrapFatalln("git log", err)
			return
		}
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
}
