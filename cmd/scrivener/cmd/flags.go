package cmd

import (
	"github.com/spf13/cobra"
)

type flagsT struct {
	root struct {
		logLevel string
		dir      string
	}
	commit struct {
		message string
	}
	compare struct {
		revision string
	}
	figures struct {
		dir string
	}
	clone struct {
		dir string
	}
}

var scrivenerFlags flagsT

func addLogLevelFlag(cmd *cobra.Command) string {
	const name = "loglevel"
	cmd.PersistentFlags().StringVar(&scrivenerFlags.root.logLevel, name, "none",
		"log level for subprocess tracing (none, info, debug)")
	return name
}

func addDirFlag(cmd *cobra.Command) string {
	const name = "dir"
	cmd.PersistentFlags().StringVar(&scrivenerFlags.root.dir, name, ".",
		"path to the working copy")
	return name
}

func addCommitMessageFlag(cmd *cobra.Command) string {
	const name = "message"
	cmd.Flags().StringVarP(&scrivenerFlags.commit.message, name, "m", "",
		"commit message")
	return name
}

func addCompareRevisionFlag(cmd *cobra.Command) string {
	const name = "revision"
	cmd.Flags().StringVarP(&scrivenerFlags.compare.revision, name, "r", "master",
		"revision to compare the file against")
	return name
}

func addFiguresDirFlag(cmd *cobra.Command) string {
	const name = "figures-dir"
	cmd.Flags().StringVar(&scrivenerFlags.figures.dir, name, "figures",
		"local directory holding the figure files")
	return name
}

func addCloneDirFlag(cmd *cobra.Command) string {
	const name = "into"
	cmd.Flags().StringVar(&scrivenerFlags.clone.dir, name, "",
		"directory to clone into (defaults to the repository name)")
	return name
}
