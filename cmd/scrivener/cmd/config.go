package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/thesisops/scrivener/pkg/model"
	"github.com/thesisops/scrivener/pkg/transport"
)

// configBaseName is the per-working-copy config file, .scrivener.yaml.
const configBaseName = ".scrivener"

// defaultRemote is the git remote name the workflow pushes to and
// pulls from.
const defaultRemote = "origin"

// Config is the per-working-copy configuration. Raw fields mirror the
// yaml file; the typed fields are populated by validate() so the rest
// of the program never re-parses strings.
type Config struct {
	// Role is "advisor" or "student"
	Role string `json:"role" yaml:"role"`
	// Advisor is the advisor's display name
	Advisor string `json:"advisor" yaml:"advisor"`
	// Student is the student's display name
	Student string `json:"student" yaml:"student"`
	// StudentBranch is the student's personal branch
	StudentBranch string `json:"student_branch" yaml:"student_branch" mapstructure:"student_branch"`
	// Remote is the shared host, in ssh user@host form
	Remote string `json:"remote" yaml:"remote"`
	// RemotePath is the absolute path of the bare repository on the remote host
	RemotePath string `json:"remote_path" yaml:"remote_path" mapstructure:"remote_path"`
	// FiguresPath is the absolute path of the figure store on the remote
	// host; defaults to a "figures" directory next to the repository
	FiguresPath string `json:"figures_path,omitempty" yaml:"figures_path,omitempty" mapstructure:"figures_path"`
	// DiffTool is the interactive comparison viewer
	DiffTool string `json:"difftool,omitempty" yaml:"difftool,omitempty"`
	// Editor is the editor used to view a single revision
	Editor string `json:"editor,omitempty" yaml:"editor,omitempty"`
	// LogLevel is the zap level for subprocess tracing
	LogLevel string `json:"loglevel,omitempty" yaml:"loglevel,omitempty"`

	role          model.Role
	studentBranch model.Branch
	endpoint      transport.Endpoint
	remotePath    model.RemotePath
	figuresPath   model.RemotePath
}

// newConfig builds and validates a Config from viper's state.
func newConfig() (*Config, error) {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	var err error
	if c.role, err = model.ParseRole(c.Role); err != nil {
		return fmt.Errorf("role: %w", err)
	}
	if c.studentBranch, err = model.NewBranch(c.StudentBranch); err != nil {
		return fmt.Errorf("student_branch: %w", err)
	}
	if c.studentBranch == model.Master {
		return fmt.Errorf("student_branch: %q is reserved for the advisor", model.Master)
	}
	if c.endpoint, err = transport.ParseEndpoint(c.Remote); err != nil {
		return fmt.Errorf("remote: %w", err)
	}
	if c.remotePath, err = model.ParseRemotePath(c.RemotePath); err != nil {
		return fmt.Errorf("remote_path: %w", err)
	}
	if c.FiguresPath == "" {
		parent, err := c.remotePath.Dir()
		if err != nil {
			return fmt.Errorf("remote_path: %w", err)
		}
		if c.figuresPath, err = parent.Join(model.FiguresDir); err != nil {
			return fmt.Errorf("remote_path: %w", err)
		}
		c.FiguresPath = c.figuresPath.String()
	} else {
		if c.figuresPath, err = model.ParseRemotePath(c.FiguresPath); err != nil {
			return fmt.Errorf("figures_path: %w", err)
		}
	}
	return nil
}
