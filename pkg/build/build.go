// Package build compiles the document units. Each unit runs a fixed
// alternation of typeset and reference-resolution passes; the set of
// units may be wrapped by the shared supporting-information annex,
// which compiles first and last so its second run picks up forward
// cross-references resolved in between.
package build

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/thesisops/scrivener/pkg/model"
)

// Pass is one kind of toolchain invocation.
type Pass int

const (
	// PassTypeset runs the typesetter over a unit.
	PassTypeset Pass = iota

	// PassResolve runs the cross-reference/bibliography resolver.
	PassResolve
)

func (p Pass) String() string {
	switch p {
	case PassTypeset:
		return "typeset"
	case PassResolve:
		return "resolve-references"
	}
	return "unknown"
}

// passSequence is the per-unit compile sequence. The count and order
// are tuned to the bibliography toolchain, not derived from a
// convergence criterion: it always runs all passes, stabilized output
// or not. Only typeset exit status aborts a unit; resolver failures
// are logged and the sequence continues.
var passSequence = []Pass{
	PassTypeset,
	PassResolve,
	PassResolve,
	PassTypeset,
	PassTypeset,
	PassResolve,
	PassTypeset,
}

// staleExtensions are auxiliary artifacts removed before an unwrapped
// build, so resolver state from prior runs cannot leak in.
var staleExtensions = map[string]bool{
	".aux": true,
	".bbl": true,
	".blg": true,
	".toc": true,
	".lof": true,
	".lot": true,
	".out": true,
}

// Toolchain is the typesetting surface the orchestrator drives.
type Toolchain interface {
	Typeset(ctx context.Context, unit string) error
	ResolveReferences(ctx context.Context, unit string) error
}

// Error identifies the first failing unit and pass of a build.
type Error struct {
	Unit string
	Step int // 1-based position in the pass sequence
	Pass Pass
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("building %s: %s (pass %d) failed: %v", e.Unit, e.Pass, e.Step, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Orchestrator runs builds in a document directory.
type Orchestrator struct {
	tc  Toolchain
	fs  afero.Fs
	dir string
	log *zap.Logger
}

// New returns an Orchestrator compiling units in dir with tc.
func New(tc Toolchain, fs afero.Fs, dir string, log *zap.Logger) *Orchestrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{tc: tc, fs: fs, dir: dir, log: log}
}

// order computes the compile schedule: supporting-information, when
// present, is pulled out of the unit list and re-inserted at both
// ends; the remaining units keep their discovery order.
func order(units []string) (schedule []string, wrapped bool) {
	rest := make([]string, 0, len(units))
	for _, unit := range units {
		if unit == model.SupportingInformation {
			wrapped = true
			continue
		}
		rest = append(rest, unit)
	}
	if !wrapped {
		return rest, false
	}
	schedule = make([]string, 0, len(rest)+2)
	schedule = append(schedule, model.SupportingInformation)
	schedule = append(schedule, rest...)
	schedule = append(schedule, model.SupportingInformation)
	return schedule, true
}

// Build compiles the given units. The first typeset failure aborts the
// failing unit and the whole build; remaining units are not attempted.
func (o *Orchestrator) Build(ctx context.Context, units []string) error {
	schedule, wrapped := order(units)
	if !wrapped {
		if err := o.cleanStale(); err != nil {
			return err
		}
	}
	for _, unit := range schedule {
		if err := o.compileUnit(ctx, unit); err != nil {
			return err
		}
	}
	return nil
}

func (o *Orchestrator) compileUnit(ctx context.Context, unit string) error {
	o.log.Info("compiling unit", zap.String("unit", unit))
	for i, pass := range passSequence {
		switch pass {
		case PassTypeset:
			if err := o.tc.Typeset(ctx, unit); err != nil {
				return &Error{Unit: unit, Step: i + 1, Pass: pass, Err: err}
			}
		case PassResolve:
			if err := o.tc.ResolveReferences(ctx, unit); err != nil {
				// The resolver exits nonzero on missing citations even
				// when output is usable; the next typeset pass decides.
				o.log.Debug("resolver pass failed",
					zap.String("unit", unit), zap.Int("pass", i+1), zap.Error(err))
			}
		}
	}
	return nil
}

// cleanStale removes auxiliary artifacts left by earlier runs.
func (o *Orchestrator) cleanStale() error {
	entries, err := afero.ReadDir(o.fs, o.dir)
	if err != nil {
		return fmt.Errorf("scanning %s for stale artifacts: %w", o.dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if staleExtensions[filepath.Ext(name)] {
			if err := o.fs.Remove(filepath.Join(o.dir, name)); err != nil {
				return fmt.Errorf("removing stale artifact %s: %w", name, err)
			}
			o.log.Debug("removed stale artifact", zap.String("file", name))
		}
	}
	return nil
}
