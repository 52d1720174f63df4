package cmd

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thesisops/scrivener/pkg/model"
)

const defaultDiffTool = "vimdiff"

var compareCmd = &cobra.Command{
	Use:   "compare <file>",
	Short: "Compare a file against another revision",
	Long: `Opens the configured difftool on a file from the working tree and
the same file as of another revision (master by default). With a file
that only exists at the given revision, the configured editor opens the
historical content read-only.`,
	Example: `% scrivener compare results.tex
% scrivener compare intro.tex --revision alice`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		repo := workingCopy()
		if !authorize(ctx, repo, model.OpCompare) {
			return
		}
		cfg := mustConfig()
		file := args[0]
		revision := scrivenerFlags.compare.revision

		content, err := repo.Show(ctx, revision, file)
		if err != nil {
			wrapFatalln("reading "+file+" at "+revision, err)
			return
		}
		snapshot, err := writeSnapshot(file, revision, content)
		if err != nil {
			wrapFatalln("staging revision snapshot", err)
			return
		}
		defer func() { _ = os.Remove(snapshot) }()

		local := filepath.Join(repo.Dir(), file)
		var view *exec.Cmd
		if _, statErr := os.Stat(local); statErr == nil {
			tool := cfg.DiffTool
			if tool == "" {
				tool = defaultDiffTool
			}
			view = exec.CommandContext(ctx, tool, local, snapshot)
		} else {
			editor := cfg.Editor
			if editor == "" {
				editor = os.Getenv("EDITOR")
			}
			if editor == "" {
				editor = "vi"
			}
			view = exec.CommandContext(ctx, editor, snapshot)
		}
		view.Stdin = os.Stdin
		view.Stdout = os.Stdout
		view.Stderr = os.Stderr
		if err := view.Run(); err != nil {
			wrapFatalln("running comparison viewer", err)
			return
		}
	},
}

// writeSnapshot stores revision content in a temp file whose name
// keeps the original base name visible in the viewer.
func writeSnapshot(file, revision string, content []byte) (string, error) {
	f, err := os.CreateTemp("", revision+"-*-"+filepath.Base(file))
	if err != nil {
		return "", err
	}
	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return "", err
	}
	return f.Name(), f.Close()
}

func init() {
	addCompareRevisionFlag(compareCmd)
	rootCmd.AddCommand(compareCmd)
}
