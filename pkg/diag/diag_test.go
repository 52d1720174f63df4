package diag

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/thesisops/scrivener/pkg/errors"
)

func TestDiagnosticsAccumulateAndFlush(t *testing.T) {
	color.NoColor = true

	d := New()
	assert.False(t, d.HasErrors())

	d.Warnf("figure %s is large", "plot1.pdf")
	d.Errorf("push failed: %v", errors.New("remote hung up"))
	d.Denied(errors.New("commit: a student may not commit on branch \"master\""))

	assert.Equal(t, 3, d.Len())
	assert.True(t, d.HasErrors())

	var buf bytes.Buffer
	d.Flush(&buf)
	out := buf.String()

	assert.Contains(t, out, "WARNING: figure plot1.pdf is large\n")
	assert.Contains(t, out, "ERROR: push failed: remote hung up\n")
	assert.Contains(t, out, "ERROR: permission denied: commit")

	// Flushed means cleared.
	assert.Equal(t, 0, d.Len())
	assert.False(t, d.HasErrors())
}

func TestWarningsAloneAreNotErrors(t *testing.T) {
	d := New()
	d.Warnf("just a warning")
	assert.False(t, d.HasErrors())
}
