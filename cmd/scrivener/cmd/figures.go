package cmd

import (
	"github.com/spf13/cobra"
)

var figuresCmd = &cobra.Command{
	Use:   "figures",
	Short: "Synchronize binary figure files with the remote store",
	Long: `Commands to move figure files between the local figures directory
and the plain-directory asset store on the remote host. Figures stay
out of the repository history; the store is just files on disk.`,
}

func init() {
	addFiguresDirFlag(figuresPushCmd)
	addFiguresDirFlag(figuresPullCmd)
	figuresCmd.AddCommand(figuresPushCmd)
	figuresCmd.AddCommand(figuresPullCmd)
	rootCmd.AddCommand(figuresCmd)
}
