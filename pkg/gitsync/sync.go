// Package gitsync pulls every local branch from the remote in one
// pass. The pass is best-effort: a branch that fails to pull is
// recorded and the loop moves on, and the originally checked-out
// branch is restored no matter what happened in between.
package gitsync

import (
	"context"

	"go.uber.org/zap"

	"github.com/thesisops/scrivener/pkg/model"
	"github.com/thesisops/scrivener/pkg/vcs"
)

// Workspace is the slice of the VCS surface the synchronizer needs,
// satisfied by *vcs.Repository.
type Workspace interface {
	Branches(ctx context.Context) ([]model.Branch, model.Branch, error)
	Checkout(ctx context.Context, branch model.Branch) error
	Pull(ctx context.Context, remote string, branch model.Branch) error
}

// Synchronizer pulls all local branches from one named remote.
type Synchronizer struct {
	ws     Workspace
	remote string
	log    *zap.Logger
}

// New returns a Synchronizer pulling from the named remote.
func New(ws Workspace, remote string, log *zap.Logger) *Synchronizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Synchronizer{ws: ws, remote: remote, log: log}
}

// SyncAll pulls each local branch in listing order and reports one
// result per branch. The returned error covers only the setup steps
// (finding the current branch, listing branches, restoring the
// original checkout); per-branch pull failures live in the results.
func (s *Synchronizer) SyncAll(ctx context.Context) (results []model.SyncResult, err error) {
	branches, original, err := s.ws.Branches(ctx)
	if err != nil {
		return nil, err
	}

	defer func() {
		// Restore unconditionally: the working copy must never end up
		// on a foreign branch because one pull went wrong.
		if restoreErr := s.ws.Checkout(ctx, original); restoreErr != nil && err == nil {
			err = restoreErr
		}
	}()

	results = make([]model.SyncResult, 0, len(branches))
	for _, branch := range branches {
		result := model.SyncResult{Branch: branch}
		if err := s.ws.Checkout(ctx, branch); err != nil {
			result.Err = err
		} else if err := s.ws.Pull(ctx, s.remote, branch); err != nil {
			result.Err = err
			result.Conflict = vcs.IsMergeConflict(err)
		}
		if result.Err != nil {
			s.log.Info("branch sync failed",
				zap.String("branch", branch.String()),
				zap.Bool("conflict", result.Conflict),
				zap.Error(result.Err))
		}
		results = append(results, result)
	}
	return results, nil
}
