package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thesisops/scrivener/pkg/model"
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Publish the current branch to the shared remote",
	Long: `Pushes the current branch to the shared remote repository, after
the permission gate allows it for your role and branch.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		repo := workingCopy()
		if !authorize(ctx, repo, model.OpPush) {
			return
		}
		current, err := repo.CurrentBranch(ctx)
		if err != nil {
			wrapFatalln("determining current branch", err)
			return
		}
		if err := repo.Push(ctx, defaultRemote, current); err != nil {
			wrapFatalln("push", err)
			return
		}
		infoLogger.Printf("pushed %s to %s", current, defaultRemote)
	},
}

func init() {
	rootCmd.AddCommand(pushCmd)
}
