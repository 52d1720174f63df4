package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thesisops/scrivener/pkg/model"
)

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Record all pending changes on the current branch",
	Long: `Records every pending change in the working copy on the current
branch. The permission gate runs first: the advisor commits on master,
the owner of the student branch commits there, nobody commits anywhere
else.`,
	Example: `% scrivener commit -m "results: add noise analysis"`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		repo := workingCopy()
		if !authorize(ctx, repo, model.OpCommit) {
			return
		}
		if err := repo.Commit(ctx, scrivenerFlags.commit.message); err != nil {
			wrapFatalln("commit", err)
			return
		}
	},
}

func init() {
	requiredFlags := []string{addCommitMessageFlag(commitCmd)}
	for _, flag := range requiredFlags {
		if err := commitCmd.MarkFlagRequired(flag); err != nil {
			wrapFatalln("mark required flag", err)
		}
	}
	rootCmd.AddCommand(commitCmd)
}
