package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thesisops/scrivener/pkg/diag"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scrivener",
	Short: "Scrivener coordinates advisor and student work on a thesis",
	Long: `Scrivener is a thin workflow layer over git for a two-person
collaboration on a document tree: an advisor who owns the master branch
and a student who owns a personal branch.

It gates commit, push and compare by role and branch, bootstraps the
shared bare repository and the figure store on a remote host over ssh,
keeps large binary figures out of history by syncing them with scp, and
drives the multi-pass LaTeX build of the document units.
`,
}

var (
	config *Config

	// diags collects this invocation's warnings and errors; they are
	// printed in one block when the command finishes.
	diags = diag.New()
)

// envConfigLocation overrides where the working-copy config is read from.
const envConfigLocation = "SCRIVENER_CONFIG"

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	hadErrors := diags.HasErrors()
	diags.Flush(os.Stderr)
	if err != nil || hadErrors {
		osExit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)
	addLogLevelFlag(rootCmd)
	addDirFlag(rootCmd)
}

// initConfig reads in the working-copy config file and ENV variables if set.
// A missing file is not fatal here: verbs that need configuration call
// mustConfig and fail before mutating anything.
func initConfig() {
	if cfgFile := os.Getenv(envConfigLocation); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(configBaseName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(scrivenerFlags.root.dir)
	}
	viper.SetEnvPrefix("scrivener")
	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		if _, missing := err.(viper.ConfigFileNotFoundError); !missing {
			wrapFatalln("reading config file", err)
		}
		return
	}
	var err error
	config, err = newConfig()
	if err != nil {
		wrapFatalln("invalid configuration in "+viper.ConfigFileUsed(), err)
	}
}

// mustConfig returns the loaded configuration or aborts the command
// with a configuration error before any mutation has happened.
func mustConfig() *Config {
	if config == nil {
		wrapFatalln("no configuration found: run \"scrivener config set\" in the working copy first", nil)
		return nil
	}
	return config
}
