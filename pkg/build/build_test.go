package build

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesisops/scrivener/pkg/errors"
)

// fakeToolchain records the order of toolchain invocations and fails
// selected passes.
type fakeToolchain struct {
	calls       []string
	typesetErr  map[string]error
	resolveErr  map[string]error
	typesetSeen map[string]int
}

func newFakeToolchain() *fakeToolchain {
	return &fakeToolchain{
		typesetErr:  map[string]error{},
		resolveErr:  map[string]error{},
		typesetSeen: map[string]int{},
	}
}

func (f *fakeToolchain) Typeset(_ context.Context, unit string) error {
	f.calls = append(f.calls, "typeset:"+unit)
	f.typesetSeen[unit]++
	return f.typesetErr[unit]
}

func (f *fakeToolchain) ResolveReferences(_ context.Context, unit string) error {
	f.calls = append(f.calls, "resolve:"+unit)
	return f.resolveErr[unit]
}

// unitsCompiled extracts the distinct sequence of units, collapsing
// consecutive passes for the same unit into one entry.
func unitsCompiled(calls []string) []string {
	var out []string
	for _, c := range calls {
		unit := strings.SplitN(c, ":", 2)[1]
		if len(out) == 0 || out[len(out)-1] != unit {
			out = append(out, unit)
		}
	}
	return out
}

func TestBuildWrapsSupportingInformation(t *testing.T) {
	tc := newFakeToolchain()
	o := New(tc, afero.NewMemMapFs(), ".", nil)

	err := o.Build(context.Background(), []string{"intro", "supporting-information", "results"})
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"supporting-information", "intro", "results", "supporting-information"},
		unitsCompiled(tc.calls))
	assert.Equal(t, 8, tc.typesetSeen["supporting-information"], "annex compiles twice, 4 typesets each")
}

func TestBuildWithoutSupportingInformation(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, name := range []string{"intro.aux", "intro.bbl", "thesis.toc", "notes.txt", "intro.tex"} {
		require.NoError(t, afero.WriteFile(fs, name, []byte("x"), 0o644))
	}

	tc := newFakeToolchain()
	o := New(tc, fs, ".", nil)

	err := o.Build(context.Background(), []string{"intro", "results"})
	require.NoError(t, err)
	assert.Equal(t, []string{"intro", "results"}, unitsCompiled(tc.calls))

	// Stale aux artifacts are gone, sources and unrelated files stay.
	for _, gone := range []string{"intro.aux", "intro.bbl", "thesis.toc"} {
		exists, _ := afero.Exists(fs, gone)
		assert.False(t, exists, gone)
	}
	for _, kept := range []string{"notes.txt", "intro.tex"} {
		exists, _ := afero.Exists(fs, kept)
		assert.True(t, exists, kept)
	}
}

func TestBuildPassSequence(t *testing.T) {
	tc := newFakeToolchain()
	o := New(tc, afero.NewMemMapFs(), ".", nil)

	require.NoError(t, o.Build(context.Background(), []string{"intro"}))
	assert.Equal(t, []string{
		"typeset:intro",
		"resolve:intro",
		"resolve:intro",
		"typeset:intro",
		"typeset:intro",
		"resolve:intro",
		"typeset:intro",
	}, tc.calls)
}

func TestBuildFailFast(t *testing.T) {
	tc := newFakeToolchain()
	tc.typesetErr["intro"] = fmt.Errorf("undefined control sequence")
	o := New(tc, afero.NewMemMapFs(), ".", nil)

	err := o.Build(context.Background(), []string{"intro", "results"})
	require.Error(t, err)

	var buildErr *Error
	require.True(t, errors.As(err, &buildErr))
	assert.Equal(t, "intro", buildErr.Unit)
	assert.Equal(t, 1, buildErr.Step)
	assert.Equal(t, PassTypeset, buildErr.Pass)

	// The failing unit stops immediately and no later unit runs.
	assert.Equal(t, []string{"typeset:intro"}, tc.calls)
}

func TestBuildResolverFailureDoesNotAbort(t *testing.T) {
	tc := newFakeToolchain()
	tc.resolveErr["intro"] = fmt.Errorf("I found no \\citation commands")
	o := New(tc, afero.NewMemMapFs(), ".", nil)

	require.NoError(t, o.Build(context.Background(), []string{"intro"}))
	assert.Len(t, tc.calls, len(passSequence))
}

func TestBuildFailureInsideWrappedSchedule(t *testing.T) {
	tc := newFakeToolchain()
	tc.typesetErr["results"] = fmt.Errorf("missing figure")
	o := New(tc, afero.NewMemMapFs(), ".", nil)

	err := o.Build(context.Background(), []string{"intro", "supporting-information", "results"})
	require.Error(t, err)

	var buildErr *Error
	require.True(t, errors.As(err, &buildErr))
	assert.Equal(t, "results", buildErr.Unit)

	// The closing supporting-information pass never ran.
	compiled := unitsCompiled(tc.calls)
	assert.Equal(t, []string{"supporting-information", "intro", "results"}, compiled)
}

func TestDiscoverUnits(t *testing.T) {
	fs := afero.NewMemMapFs()
	write := func(name, content string) {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	write("thesis.tex", `\documentclass{book}\begin{document}\end{document}`)
	write("supporting-information.tex", `\documentclass{article}`)
	write("preamble.tex", `\usepackage{graphicx}`)
	write("notes.md", "not tex")
	require.NoError(t, fs.Mkdir("figures", 0o755))

	units, err := DiscoverUnits(fs, ".")
	require.NoError(t, err)
	assert.Equal(t, []string{"supporting-information", "thesis"}, units)
}

func TestLaTeXToolchainArgs(t *testing.T) {
	var got []string
	runner := func(_ context.Context, dir, name string, args ...string) error {
		got = append([]string{dir, name}, args...)
		return nil
	}
	l := NewLaTeX("/work/thesis", nil, WithRunner(runner))

	require.NoError(t, l.Typeset(context.Background(), "intro"))
	assert.Equal(t, []string{"/work/thesis", "pdflatex", "-interaction=nonstopmode", "-halt-on-error", "intro.tex"}, got)

	require.NoError(t, l.ResolveReferences(context.Background(), "intro"))
	assert.Equal(t, []string{"/work/thesis", "bibtex", "intro"}, got)
}

func TestLaTeXToolchainFailure(t *testing.T) {
	runner := func(_ context.Context, _, _ string, _ ...string) error {
		return fmt.Errorf("exit status 1")
	}
	l := NewLaTeX(".", nil, WithRunner(runner))

	err := l.Typeset(context.Background(), "intro")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrToolFailure))
}
