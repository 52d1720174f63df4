// Package gate implements the branch permission policy: who may
// commit, push or compare on which branch. The gate is a pure
// predicate; callers act on the verdict and must not run the gated
// operation when authorization fails.
package gate

import (
	"fmt"

	"github.com/thesisops/scrivener/pkg/errors"
	"github.com/thesisops/scrivener/pkg/model"
)

// ErrDenied is the sentinel cause carried by every denial.
var ErrDenied = errors.New("operation not permitted on this branch")

// Authorize decides whether role may perform op on the current branch.
// The policy is two clauses, identical for every operation: the
// advisor may act on master, and anyone may act on the configured
// student branch. The second clause is deliberately role-blind — your
// own branch is yours, whichever checkout you sit in. Unrecognized
// branches fall through to denial.
func Authorize(role model.Role, current, student model.Branch, op model.Operation) error {
	if role == model.RoleAdvisor && current == model.Master {
		return nil
	}
	if current == student {
		return nil
	}
	return errors.New(fmt.Sprintf("%s: a %s may not %s on branch %q",
		op, role, op, current)).Wrap(ErrDenied)
}
