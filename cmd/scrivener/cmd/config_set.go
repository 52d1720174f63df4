package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Commands to manage the working-copy configuration",
}

var configSet = &cobra.Command{
	Aliases: []string{"create"},
	Use:     "set",
	Short:   "Create the working-copy config file",
	Long: `Creates the per-working-copy config file holding the collaboration
settings: your role, the two participants, the student branch, and the
remote host and paths. The file lives at the working-copy root as
` + configBaseName + `.yaml; set the ` + envConfigLocation + ` environment
variable to place it elsewhere.`,
	Example: `% scrivener config set --role student --advisor "R. Hooke" --student "A. Student" \
    --student-branch alice --remote alice@lab.example.edu --remote-path /srv/theses/alice.git
config file created in .scrivener.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		localConfig := Config{
			Role:          configSetFlags.role,
			Advisor:       configSetFlags.advisor,
			Student:       configSetFlags.student,
			StudentBranch: configSetFlags.studentBranch,
			Remote:        configSetFlags.remote,
			RemotePath:    configSetFlags.remotePath,
			FiguresPath:   configSetFlags.figuresPath,
			DiffTool:      configSetFlags.diffTool,
			Editor:        configSetFlags.editor,
		}
		if err := localConfig.validate(); err != nil {
			wrapFatalln("invalid configuration", err)
			return
		}

		file := configFileLocation()
		content, err := yaml.Marshal(localConfig)
		if err != nil {
			wrapFatalln("marshal config", err)
			return
		}
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			wrapFatalln("create config directory", err)
			return
		}
		if err := os.WriteFile(file, content, 0o600); err != nil {
			wrapFatalln("write config file", err)
			return
		}
		infoLogger.Printf("config file created in %s", file)
	},
}

var configSetFlags struct {
	role          string
	advisor       string
	student       string
	studentBranch string
	remote        string
	remotePath    string
	figuresPath   string
	diffTool      string
	editor        string
}

// configFileLocation is where config set writes, honoring the same
// environment override the loader uses.
func configFileLocation() string {
	if cfgFile := os.Getenv(envConfigLocation); cfgFile != "" {
		return cfgFile
	}
	return filepath.Join(scrivenerFlags.root.dir, configBaseName+".yaml")
}

func init() {
	flags := configSet.Flags()
	flags.StringVar(&configSetFlags.role, "role", "", "your role: advisor or student")
	flags.StringVar(&configSetFlags.advisor, "advisor", "", "display name of the advisor")
	flags.StringVar(&configSetFlags.student, "student", "", "display name of the student")
	flags.StringVar(&configSetFlags.studentBranch, "student-branch", "", "name of the student's branch")
	flags.StringVar(&configSetFlags.remote, "remote", "", "remote host, user@host")
	flags.StringVar(&configSetFlags.remotePath, "remote-path", "", "absolute path of the bare repository on the remote host")
	flags.StringVar(&configSetFlags.figuresPath, "figures-path", "", "absolute path of the figure store (default: figures directory next to the repository)")
	flags.StringVar(&configSetFlags.diffTool, "difftool", "", "interactive comparison viewer")
	flags.StringVar(&configSetFlags.editor, "editor", "", "editor for viewing a single revision")

	for _, required := range []string{"role", "student-branch", "remote", "remote-path"} {
		if err := configSet.MarkFlagRequired(required); err != nil {
			wrapFatalln("mark required flag", err)
		}
	}

	configCmd.AddCommand(configSet)
	rootCmd.AddCommand(configCmd)
}
