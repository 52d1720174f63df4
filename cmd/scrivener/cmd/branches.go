package cmd

import (
	"context"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/thesisops/scrivener/pkg/model"
)

var branchesCmd = &cobra.Command{
	Use:   "branches",
	Short: "List local branches",
	Long: `Lists the local branches and marks the one the working copy is on,
plus which role owns each branch under the collaboration rules.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		cfg := mustConfig()

		branches, current, err := workingCopy().Branches(ctx)
		if err != nil {
			wrapFatalln("listing branches", err)
			return
		}

		table := uitable.New()
		table.AddRow("BRANCH", "CURRENT", "OWNER")
		for _, branch := range branches {
			marker := ""
			if branch == current {
				marker = "*"
			}
			owner := ""
			switch branch {
			case model.Master:
				owner = cfg.Advisor
			case cfg.studentBranch:
				owner = cfg.Student
			}
			table.AddRow(branch.String(), marker, owner)
		}
		infoLogger.Println(table)
	},
}

func init() {
	rootCmd.AddCommand(branchesCmd)
}
