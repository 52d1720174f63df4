// Package vcs provides typed access to the git CLI for the working
// copy. All commands target a specific repository directory via the -C
// flag, which every Repository method injects; there is no default
// directory. Commands run synchronously and stderr is folded into the
// returned error on failure.
package vcs

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/thesisops/scrivener/pkg/model"
)

// Runner executes one external command and returns its stdout. The
// default runner shells out; tests substitute a recording fake.
type Runner func(ctx context.Context, name string, args ...string) (string, error)

func execRunner(ctx context.Context, name string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	command := exec.CommandContext(ctx, name, args...)
	command.Stdout = &stdout
	command.Stderr = &stderr
	if err := command.Run(); err != nil {
		return "", fmt.Errorf("%s %s: %w (stderr: %s)",
			name, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// Repository represents the git repository at a specific directory.
type Repository struct {
	dir string
	run Runner
	log *zap.Logger
}

// Option customizes a Repository.
type Option func(*Repository)

// WithRunner substitutes the subprocess runner.
func WithRunner(run Runner) Option {
	return func(r *Repository) {
		r.run = run
	}
}

// WithLogger sets the logger used for debug traces of git invocations.
func WithLogger(log *zap.Logger) Option {
	return func(r *Repository) {
		r.log = log
	}
}

// NewRepository returns a Repository targeting the given directory.
func NewRepository(dir string, opts ...Option) *Repository {
	r := &Repository{dir: dir, run: execRunner, log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Dir returns the repository directory.
func (r *Repository) Dir() string {
	return r.dir
}

// Run executes a git command targeting this repository and returns
// stdout.
func (r *Repository) Run(ctx context.Context, args ...string) (string, error) {
	fullArgs := append([]string{"-C", r.dir}, args...)
	r.log.Debug("git", zap.Strings("args", args))
	return r.run(ctx, "git", fullArgs...)
}

// Command returns an *exec.Cmd for a git command without running it,
// for verbs that hand the terminal to git (log, interactive diff). The
// -C flag targeting this repository is prepended.
func (r *Repository) Command(ctx context.Context, args ...string) *exec.Cmd {
	fullArgs := append([]string{"-C", r.dir}, args...)
	return exec.CommandContext(ctx, "git", fullArgs...)
}

// Commit records all pending changes with the given message.
func (r *Repository) Commit(ctx context.Context, message string) error {
	if _, err := r.Run(ctx, "add", "--all"); err != nil {
		return err
	}
	_, err := r.Run(ctx, "commit", "-m", message)
	return err
}

// Push publishes a branch to the named remote.
func (r *Repository) Push(ctx context.Context, remote string, branch model.Branch) error {
	_, err := r.Run(ctx, "push", remote, branch.String())
	return err
}

// Pull fetches and merges a branch from the named remote.
func (r *Repository) Pull(ctx context.Context, remote string, branch model.Branch) error {
	_, err := r.Run(ctx, "pull", remote, branch.String())
	return err
}

// Checkout switches the working copy to an existing branch.
func (r *Repository) Checkout(ctx context.Context, branch model.Branch) error {
	_, err := r.Run(ctx, "checkout", branch.String())
	return err
}

// CheckoutNew creates a branch and switches to it.
func (r *Repository) CheckoutNew(ctx context.Context, branch model.Branch) error {
	_, err := r.Run(ctx, "checkout", "-b", branch.String())
	return err
}

// CurrentBranch returns the branch the working copy is on.
func (r *Repository) CurrentBranch(ctx context.Context) (model.Branch, error) {
	out, err := r.Run(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return model.NewBranch(out)
}

// Branches lists local branches in git's listing order and identifies
// the current one from its marker.
func (r *Repository) Branches(ctx context.Context) ([]model.Branch, model.Branch, error) {
	out, err := r.Run(ctx, "branch", "--no-color")
	if err != nil {
		return nil, "", err
	}
	var (
		branches []model.Branch
		current  model.Branch
	)
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		marked := strings.HasPrefix(line, "* ")
		branch, err := model.NewBranch(strings.TrimPrefix(line, "* "))
		if err != nil {
			return nil, "", fmt.Errorf("parsing branch listing: %w", err)
		}
		branches = append(branches, branch)
		if marked {
			current = branch
		}
	}
	if current == "" {
		return nil, "", fmt.Errorf("no current branch in listing %q", strings.TrimSpace(out))
	}
	return branches, current, nil
}

// Show returns the content of path as of the given revision.
func (r *Repository) Show(ctx context.Context, revision, path string) ([]byte, error) {
	out, err := r.Run(ctx, "show", fmt.Sprintf("%s:%s", revision, path))
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// Clone clones url into dir. This is a package function: there is no
// repository to target until the clone exists.
func Clone(ctx context.Context, url, dir string) error {
	_, err := execRunner(ctx, "git", "clone", url, dir)
	return err
}

// IsMergeConflict reports whether a pull failed on a merge conflict
// rather than on transport. Git does not give a machine-readable
// verdict, so this sniffs the diagnostic text it prints.
func IsMergeConflict(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "CONFLICT") ||
		strings.Contains(msg, "Automatic merge failed") ||
		strings.Contains(msg, "fix conflicts")
}
