package cmd

import (
	"context"
	"path"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thesisops/scrivener/pkg/vcs"
)

var cloneCmd = &cobra.Command{
	Use:   "clone",
	Short: "Clone the shared repository",
	Long: `Clones the configured remote repository into a local directory.
This is a plain clone; run "scrivener config set" inside the result to
declare your role.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		cfg := mustConfig()

		url := cfg.endpoint.String() + ":" + cfg.remotePath.String()
		dir := scrivenerFlags.clone.dir
		if dir == "" {
			dir = strings.TrimSuffix(path.Base(cfg.remotePath.String()), ".git")
		}
		if err := vcs.Clone(ctx, url, dir); err != nil {
			wrapFatalln("clone", err)
			return
		}
		infoLogger.Printf("cloned %s into %s", url, dir)
	},
}

func init() {
	addCloneDirFlag(cloneCmd)
	rootCmd.AddCommand(cloneCmd)
}
