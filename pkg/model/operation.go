package model

// Operation identifies a branch-gated action on the working copy.
type Operation int

const (
	// OpCommit records staged changes on the current branch.
	OpCommit Operation = iota

	// OpPush publishes the current branch to the shared remote.
	OpPush

	// OpCompare opens a comparison of a file against another revision.
	OpCompare
)

func (o Operation) String() string {
	switch o {
	case OpCommit:
		return "commit"
	case OpPush:
		return "push"
	case OpCompare:
		return "compare"
	}
	return "unknown"
}
