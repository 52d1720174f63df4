package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thesisops/scrivener/pkg/model"
)

var branchCmd = &cobra.Command{
	Use:   "branch <name>",
	Short: "Create a branch and switch to it",
	Long: `Creates a local branch and checks it out. Typically used once by
the student after cloning, to create the branch named in the
configuration.`,
	Example: `% scrivener branch alice`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		cfg := mustConfig()

		name, err := model.NewBranch(args[0])
		if err != nil {
			wrapFatalln("branch name", err)
			return
		}
		if name != cfg.studentBranch && name != model.Master {
			diags.Warnf("branch %s is neither master nor the student branch %s: commits there will be refused",
				name, cfg.studentBranch)
		}
		if err := workingCopy().CheckoutNew(ctx, name); err != nil {
			wrapFatalln("create branch", err)
			return
		}
		infoLogger.Printf("switched to new branch %s", name)
	},
}

func init() {
	rootCmd.AddCommand(branchCmd)
}
