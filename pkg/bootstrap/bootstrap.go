// Package bootstrap idempotently creates the remote storage locations:
// a bare repository for the document tree, or a plain directory for
// the figure asset store. The decision logic runs on the remote host
// as a fixed shell script shipped over the remote-exec transport; the
// caller only interprets a one-word answer.
package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/thesisops/scrivener/pkg/model"
	"github.com/thesisops/scrivener/pkg/transport"
)

// Result reports what the bootstrap found or did at the remote path.
type Result int

const (
	// Created means the path did not exist and was initialized.
	Created Result = iota

	// AlreadyExists means the path was present and left untouched.
	// Note: an existing path is never validated as a repository — an
	// existing non-repository directory is indistinguishable from an
	// initialized one here.
	AlreadyExists
)

func (r Result) String() string {
	switch r {
	case Created:
		return "created"
	case AlreadyExists:
		return "already exists"
	}
	return "unknown"
}

// Executor is the remote-exec capability bootstrap needs, satisfied by
// *transport.SSH.
type Executor interface {
	Exec(ctx context.Context, endpoint transport.Endpoint, script string) (string, error)
}

const (
	answerExists  = "exists"
	answerCreated = "created"
)

// script builds the fixed remote bootstrap routine. An existing path
// short-circuits before anything destructive can happen; a missing
// path is created, and initialized as a bare repository unless it is
// the figure store.
func script(remote model.RemotePath) string {
	var b strings.Builder
	fmt.Fprintf(&b, "if [ -e %q ]; then echo %s; exit 0; fi\n", remote, answerExists)
	fmt.Fprintf(&b, "mkdir -p %q || exit 1\n", remote)
	if !remote.IsFigures() {
		fmt.Fprintf(&b, "cd %q && git init --bare --quiet || exit 1\n", remote)
	}
	fmt.Fprintf(&b, "echo %s\n", answerCreated)
	return b.String()
}

// Bootstrap ensures the remote path exists, creating and initializing
// it when absent. Transport failures surface to the caller unretried;
// an unexpected answer from the remote script is an error as well.
func Bootstrap(ctx context.Context, x Executor, endpoint transport.Endpoint, remote model.RemotePath) (Result, error) {
	out, err := x.Exec(ctx, endpoint, script(remote))
	if err != nil {
		return 0, err
	}
	switch strings.TrimSpace(out) {
	case answerExists:
		return AlreadyExists, nil
	case answerCreated:
		return Created, nil
	}
	return 0, fmt.Errorf("unexpected bootstrap answer %q from %s", strings.TrimSpace(out), endpoint)
}
