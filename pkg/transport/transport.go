// Package transport runs commands on the remote host over ssh and
// copies files to and from it over scp. Both directions are blocking
// subprocess invocations; there is no retry layer here.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/thesisops/scrivener/pkg/errors"
)

// ErrTransport is the sentinel cause for remote-shell and remote-copy
// failures. Bootstrap treats it as fatal; the branch synchronizer
// records it per branch.
var ErrTransport = errors.New("remote transport failure")

// Endpoint identifies the remote host, in ssh's user@host form.
type Endpoint string

// ParseEndpoint validates an endpoint string.
func ParseEndpoint(s string) (Endpoint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty remote endpoint")
	}
	if strings.ContainsAny(s, " \t") {
		return "", fmt.Errorf("invalid remote endpoint %q", s)
	}
	return Endpoint(s), nil
}

func (e Endpoint) String() string {
	return string(e)
}

// Runner executes one external command and returns its stdout. Tests
// substitute a recording fake for the default subprocess runner.
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

// SSH is the ssh/scp-backed transport.
type SSH struct {
	run Runner
	log *zap.Logger
}

// Option customizes the transport.
type Option func(*SSH)

// WithRunner substitutes the subprocess runner.
func WithRunner(run Runner) Option {
	return func(s *SSH) {
		s.run = run
	}
}

// WithLogger sets the logger used for debug traces.
func WithLogger(log *zap.Logger) Option {
	return func(s *SSH) {
		s.log = log
	}
}

// New returns an SSH transport.
func New(opts ...Option) *SSH {
	s := &SSH{run: execRunner, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Exec runs a shell script on the remote host and returns its stdout.
// The script travels as a single argument to the remote shell, so it
// must be self-contained (no stdin).
func (s *SSH) Exec(ctx context.Context, endpoint Endpoint, script string) (string, error) {
	s.log.Debug("ssh exec", zap.String("endpoint", endpoint.String()))
	out, err := s.run(ctx, "ssh", endpoint.String(), script)
	if err != nil {
		return "", errors.New(fmt.Sprintf("remote execution on %s failed: %v", endpoint, err)).Wrap(ErrTransport)
	}
	return out, nil
}

// CopyTo copies local files to a directory on the remote host.
func (s *SSH) CopyTo(ctx context.Context, files []string, endpoint Endpoint, remoteDir string) error {
	if len(files) == 0 {
		return nil
	}
	args := append([]string{"-p"}, files...)
	args = append(args, fmt.Sprintf("%s:%s", endpoint, remoteDir))
	s.log.Debug("scp to remote", zap.Int("files", len(files)), zap.String("dest", remoteDir))
	if _, err := s.run(ctx, "scp", args...); err != nil {
		return errors.New(fmt.Sprintf("copy to %s:%s failed: %v", endpoint, remoteDir, err)).Wrap(ErrTransport)
	}
	return nil
}

// CopyFrom copies remote files matching remoteGlob into localDir.
func (s *SSH) CopyFrom(ctx context.Context, endpoint Endpoint, remoteGlob, localDir string) error {
	source := fmt.Sprintf("%s:%s", endpoint, remoteGlob)
	s.log.Debug("scp from remote", zap.String("source", source), zap.String("dest", localDir))
	if _, err := s.run(ctx, "scp", "-p", source, localDir); err != nil {
		return errors.New(fmt.Sprintf("copy from %s failed: %v", source, err)).Wrap(ErrTransport)
	}
	return nil
}
