package model

// SyncResult is the outcome of pulling one local branch from the
// remote. Err is nil on success; Conflict marks a merge conflict as
// distinct from a transport failure (neither is resolved
// automatically).
type SyncResult struct {
	Branch   Branch
	Err      error
	Conflict bool
}

// OK reports whether the branch pulled cleanly.
func (r SyncResult) OK() bool {
	return r.Err == nil
}
