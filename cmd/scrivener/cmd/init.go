package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thesisops/scrivener/pkg/bootstrap"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the shared bare repository on the remote host",
	Long: `Ensures the configured remote repository path exists, creating the
directory and initializing a bare repository inside it when absent.
The operation is idempotent: an existing path is reported and left
untouched, never re-initialized.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		cfg := mustConfig()

		result, err := bootstrap.Bootstrap(ctx, newTransport(), cfg.endpoint, cfg.remotePath)
		if err != nil {
			wrapFatalln("remote bootstrap", err)
			return
		}
		infoLogger.Printf("remote repository %s:%s: %s", cfg.endpoint, cfg.remotePath, result)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
