// Package diag accumulates the warnings and errors of one command
// invocation and prints them as a single block at the end, so the user
// sees every problem from a run together instead of interleaved with
// operation output. A Diagnostics value is threaded through the
// command explicitly; it is not a process-wide singleton.
package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Level classifies a diagnostic.
type Level int

const (
	// Warning diagnostics do not affect the exit status.
	Warning Level = iota

	// Error diagnostics make the command exit nonzero.
	Error
)

type entry struct {
	level Level
	msg   string
}

// Diagnostics collects the messages of one run.
type Diagnostics struct {
	entries []entry
}

// New returns an empty Diagnostics.
func New() *Diagnostics {
	return &Diagnostics{}
}

// Warnf records a warning.
func (d *Diagnostics) Warnf(format string, args ...interface{}) {
	d.entries = append(d.entries, entry{level: Warning, msg: fmt.Sprintf(format, args...)})
}

// Errorf records an error.
func (d *Diagnostics) Errorf(format string, args ...interface{}) {
	d.entries = append(d.entries, entry{level: Error, msg: fmt.Sprintf(format, args...)})
}

// Denied records a permission denial as an error.
func (d *Diagnostics) Denied(err error) {
	d.Errorf("permission denied: %v", err)
}

// HasErrors reports whether any error-level diagnostic was recorded.
func (d *Diagnostics) HasErrors() bool {
	for _, e := range d.entries {
		if e.level == Error {
			return true
		}
	}
	return false
}

// Len returns the number of recorded diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.entries)
}

var (
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed, color.Bold)
)

// Flush prints all recorded diagnostics to w in recording order and
// clears the accumulator.
func (d *Diagnostics) Flush(w io.Writer) {
	for _, e := range d.entries {
		switch e.level {
		case Warning:
			_, _ = warnColor.Fprintf(w, "WARNING: %s\n", e.msg)
		case Error:
			_, _ = errorColor.Fprintf(w, "ERROR: %s\n", e.msg)
		}
	}
	d.entries = nil
}
