package transport

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesisops/scrivener/pkg/errors"
)

type recorded struct {
	name string
	args []string
}

func recordingRunner(record *[]recorded, out string, fail error) Runner {
	return func(_ context.Context, name string, args ...string) (string, error) {
		*record = append(*record, recorded{name: name, args: args})
		if fail != nil {
			return "", fail
		}
		return out, nil
	}
}

func TestParseEndpoint(t *testing.T) {
	ep, err := ParseEndpoint("alice@lab.example.edu")
	require.NoError(t, err)
	assert.Equal(t, "alice@lab.example.edu", ep.String())

	_, err = ParseEndpoint("")
	assert.Error(t, err)
	_, err = ParseEndpoint("alice@host extra")
	assert.Error(t, err)
}

func TestExec(t *testing.T) {
	var calls []recorded
	s := New(WithRunner(recordingRunner(&calls, "created\n", nil)))

	out, err := s.Exec(context.Background(), "alice@host", "echo created")
	require.NoError(t, err)
	assert.Equal(t, "created\n", out)
	require.Len(t, calls, 1)
	assert.Equal(t, "ssh", calls[0].name)
	assert.Equal(t, []string{"alice@host", "echo created"}, calls[0].args)
}

func TestExecTransportError(t *testing.T) {
	var calls []recorded
	s := New(WithRunner(recordingRunner(&calls, "", fmt.Errorf("connection refused"))))

	_, err := s.Exec(context.Background(), "alice@host", "true")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))
}

func TestCopyTo(t *testing.T) {
	var calls []recorded
	s := New(WithRunner(recordingRunner(&calls, "", nil)))

	err := s.CopyTo(context.Background(),
		[]string{"figures/plot1.pdf", "figures/plot2.pdf"},
		"alice@host", "/srv/theses/figures")
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, "scp", calls[0].name)
	assert.Equal(t, []string{
		"-p", "figures/plot1.pdf", "figures/plot2.pdf",
		"alice@host:/srv/theses/figures",
	}, calls[0].args)
}

func TestCopyToNothing(t *testing.T) {
	var calls []recorded
	s := New(WithRunner(recordingRunner(&calls, "", nil)))

	require.NoError(t, s.CopyTo(context.Background(), nil, "alice@host", "/srv/theses/figures"))
	assert.Empty(t, calls)
}

func TestCopyFrom(t *testing.T) {
	var calls []recorded
	s := New(WithRunner(recordingRunner(&calls, "", nil)))

	err := s.CopyFrom(context.Background(), "alice@host", "/srv/theses/figures/*", "figures")
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"-p", "alice@host:/srv/theses/figures/*", "figures"}, calls[0].args)
}

func TestCopyFromTransportError(t *testing.T) {
	var calls []recorded
	s := New(WithRunner(recordingRunner(&calls, "", fmt.Errorf("no route to host"))))

	err := s.CopyFrom(context.Background(), "alice@host", "/srv/theses/figures/*", "figures")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))
}
