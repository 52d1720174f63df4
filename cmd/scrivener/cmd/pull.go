package cmd

import (
	"context"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/thesisops/scrivener/pkg/gitsync"
)

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Pull every local branch from the shared remote",
	Long: `Pulls each local branch from the shared remote in turn and restores
the branch you started on. A branch that fails to pull does not stop
the others; failures are reported per branch, with merge conflicts
called out separately from transport problems.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		repo := workingCopy()
		mustConfig()

		synchronizer := gitsync.New(repo, defaultRemote, mustLogger())
		results, err := synchronizer.SyncAll(ctx)
		if err != nil {
			wrapFatalln("branch sync", err)
			return
		}

		table := uitable.New()
		table.AddRow("BRANCH", "RESULT")
		for _, result := range results {
			switch {
			case result.OK():
				table.AddRow(result.Branch.String(), "ok")
			case result.Conflict:
				table.AddRow(result.Branch.String(), "merge conflict")
				diags.Warnf("branch %s has a merge conflict to resolve by hand", result.Branch)
			default:
				table.AddRow(result.Branch.String(), "error")
				diags.Errorf("pulling %s: %v", result.Branch, result.Err)
			}
		}
		infoLogger.Println(table)
	},
}

func init() {
	rootCmd.AddCommand(pullCmd)
}
