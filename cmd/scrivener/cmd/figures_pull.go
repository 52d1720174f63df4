package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"
)

var figuresPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Download figures from the remote store",
	Long: `Downloads every file from the remote asset store into the local
figures directory, creating the directory when needed. Existing local
files with the same names are overwritten.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		cfg := mustConfig()

		localDir := filepath.Join(scrivenerFlags.root.dir, scrivenerFlags.figures.dir)
		if err := os.MkdirAll(localDir, 0o755); err != nil {
			wrapFatalln("creating local figures directory", err)
			return
		}

		remoteGlob := cfg.figuresPath.String() + "/*"
		if err := newTransport().CopyFrom(ctx, cfg.endpoint, remoteGlob, localDir); err != nil {
			wrapFatalln("downloading figures", err)
			return
		}

		files, total, err := listFigures(localDir)
		if err != nil {
			wrapFatalln("listing downloaded figures", err)
			return
		}
		infoLogger.Printf("figures directory %s now holds %d files (%s)",
			localDir, len(files), units.HumanSize(float64(total)))
	},
}
