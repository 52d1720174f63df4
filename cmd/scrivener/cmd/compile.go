package cmd

import (
	"context"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/thesisops/scrivener/pkg/build"
)

var compileCmd = &cobra.Command{
	Use:   "compile [unit ...]",
	Short: "Compile the document units",
	Long: `Compiles the document units through the fixed multi-pass typeset
and reference-resolution sequence. Without arguments, units are
discovered as the top-level .tex files that declare a document class.

When the reserved supporting-information unit is present it compiles
first and again last, so cross-references between it and the other
units resolve in one run. The first typeset failure stops the build
and names the failing unit and pass.`,
	Example: `% scrivener compile
% scrivener compile intro results`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		logger := mustLogger()
		dir := scrivenerFlags.root.dir
		fs := afero.NewOsFs()

		units := args
		if len(units) == 0 {
			var err error
			units, err = build.DiscoverUnits(fs, dir)
			if err != nil {
				wrapFatalln("discovering document units", err)
				return
			}
		}
		if len(units) == 0 {
			diags.Warnf("nothing to compile: no unit declares a document class in %s", dir)
			return
		}

		orchestrator := build.New(build.NewLaTeX(dir, logger), fs, dir, logger)
		if err := orchestrator.Build(ctx, units); err != nil {
			wrapFatalln("compile", err)
			return
		}
		infoLogger.Printf("compiled %d units", len(units))
	},
}

func init() {
	rootCmd.AddCommand(compileCmd)
}
