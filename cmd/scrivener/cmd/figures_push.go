package cmd

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"

	"github.com/thesisops/scrivener/pkg/bootstrap"
)

var figuresPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload local figures to the remote store",
	Long: `Uploads every file in the local figures directory to the remote
asset store, bootstrapping the store directory first if it does not
exist yet.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		cfg := mustConfig()

		files, total, err := listFigures(filepath.Join(scrivenerFlags.root.dir, scrivenerFlags.figures.dir))
		if err != nil {
			wrapFatalln("listing local figures", err)
			return
		}
		if len(files) == 0 {
			diags.Warnf("no figures to push in %s", scrivenerFlags.figures.dir)
			return
		}

		remote := newTransport()
		if _, err := bootstrap.Bootstrap(ctx, remote, cfg.endpoint, cfg.figuresPath); err != nil {
			wrapFatalln("remote bootstrap", err)
			return
		}
		if err := remote.CopyTo(ctx, files, cfg.endpoint, cfg.figuresPath.String()); err != nil {
			wrapFatalln("uploading figures", err)
			return
		}
		infoLogger.Printf("pushed %d figures (%s) to %s:%s",
			len(files), units.HumanSize(float64(total)), cfg.endpoint, cfg.figuresPath)
	},
}

// listFigures enumerates the regular files in dir and their total
// size. Order is stable so uploads and reports are reproducible.
func listFigures(dir string) ([]string, int64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, nil
		}
		return nil, 0, err
	}
	var (
		files []string
		total int64
	)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, 0, err
		}
		files = append(files, filepath.Join(dir, entry.Name()))
		total += info.Size()
	}
	sort.Strings(files)
	return files, total, nil
}
