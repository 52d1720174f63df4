package build

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/thesisops/scrivener/pkg/errors"
)

// ErrToolFailure is the sentinel cause for nonzero toolchain exits.
var ErrToolFailure = errors.New("typesetting toolchain failure")

// Runner executes one external command in a working directory. Tests
// substitute a recording fake.
type Runner func(ctx context.Context, dir, name string, args ...string) error

func execRunner(ctx context.Context, dir, name string, args ...string) error {
	var output bytes.Buffer
	command := exec.CommandContext(ctx, name, args...)
	command.Dir = dir
	// LaTeX writes diagnostics to stdout; keep the tail for the error.
	command.Stdout = &output
	command.Stderr = &output
	if err := command.Run(); err != nil {
		return fmt.Errorf("%s %s: %w\n%s", name, strings.Join(args, " "), err, tail(output.String(), 20))
	}
	return nil
}

func tail(s string, lines int) string {
	all := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(all) > lines {
		all = all[len(all)-lines:]
	}
	return strings.Join(all, "\n")
}

// LaTeX drives pdflatex and bibtex in a document directory.
type LaTeX struct {
	dir string
	run Runner
	log *zap.Logger
}

// LaTeXOption customizes the toolchain.
type LaTeXOption func(*LaTeX)

// WithRunner substitutes the subprocess runner.
func WithRunner(run Runner) LaTeXOption {
	return func(l *LaTeX) {
		l.run = run
	}
}

// NewLaTeX returns a LaTeX toolchain operating in dir.
func NewLaTeX(dir string, log *zap.Logger, opts ...LaTeXOption) *LaTeX {
	if log == nil {
		log = zap.NewNop()
	}
	l := &LaTeX{dir: dir, run: execRunner, log: log}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Typeset runs pdflatex over the unit's main source file.
func (l *LaTeX) Typeset(ctx context.Context, unit string) error {
	l.log.Debug("typeset", zap.String("unit", unit))
	err := l.run(ctx, l.dir, "pdflatex", "-interaction=nonstopmode", "-halt-on-error", unit+".tex")
	if err != nil {
		return errors.New(fmt.Sprintf("typeset %s: %v", unit, err)).Wrap(ErrToolFailure)
	}
	return nil
}

// ResolveReferences runs bibtex over the unit's aux file.
func (l *LaTeX) ResolveReferences(ctx context.Context, unit string) error {
	l.log.Debug("resolve references", zap.String("unit", unit))
	err := l.run(ctx, l.dir, "bibtex", unit)
	if err != nil {
		return errors.New(fmt.Sprintf("resolve references for %s: %v", unit, err)).Wrap(ErrToolFailure)
	}
	return nil
}
