package cmd

import (
	"context"

	"go.uber.org/zap"

	"github.com/thesisops/scrivener/pkg/gate"
	"github.com/thesisops/scrivener/pkg/model"
	"github.com/thesisops/scrivener/pkg/slogger"
	"github.com/thesisops/scrivener/pkg/transport"
	"github.com/thesisops/scrivener/pkg/vcs"
)

// mustLogger builds the zap logger from the --loglevel flag, falling
// back to the configured level when the flag keeps its default.
func mustLogger() *zap.Logger {
	level := scrivenerFlags.root.logLevel
	if level == slogger.LogLevelNone && config != nil && config.LogLevel != "" {
		level = config.LogLevel
	}
	logger, err := slogger.GetLogger(level)
	if err != nil {
		wrapFatalln("setting up logger", err)
		return nil
	}
	return logger
}

// workingCopy returns the repository at --dir.
func workingCopy() *vcs.Repository {
	return vcs.NewRepository(scrivenerFlags.root.dir, vcs.WithLogger(mustLogger()))
}

// newTransport returns the ssh/scp transport.
func newTransport() *transport.SSH {
	return transport.New(transport.WithLogger(mustLogger()))
}

// authorize consults the permission gate for op on the current branch.
// On denial the verdict is recorded in the diagnostics block and false
// is returned; the caller must not touch the repository.
func authorize(ctx context.Context, repo *vcs.Repository, op model.Operation) bool {
	cfg := mustConfig()
	current, err := repo.CurrentBranch(ctx)
	if err != nil {
		wrapFatalln("determining current branch", err)
		return false
	}
	if err := gate.Authorize(cfg.role, current, cfg.studentBranch, op); err != nil {
		diags.Denied(err)
		return false
	}
	return true
}
