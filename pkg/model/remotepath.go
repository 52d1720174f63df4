package model

import (
	"fmt"
	"path"
	"strings"
)

// FiguresDir is the reserved final path segment that marks a remote
// location as a plain asset store rather than a bare repository.
const FiguresDir = "figures"

// RemotePath is a parsed absolute path on the remote host. Parsing
// happens once at the boundary; consumers ask structured questions
// (Leaf, IsFigures) instead of re-splitting strings.
type RemotePath struct {
	raw      string
	segments []string
}

// ParseRemotePath validates and splits a remote path. The path must be
// absolute: scrivener never guesses the remote user's home layout.
func ParseRemotePath(s string) (RemotePath, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RemotePath{}, fmt.Errorf("empty remote path")
	}
	if !strings.HasPrefix(s, "/") {
		return RemotePath{}, fmt.Errorf("remote path %q is not absolute", s)
	}
	clean := path.Clean(s)
	segments := strings.Split(strings.TrimPrefix(clean, "/"), "/")
	return RemotePath{raw: clean, segments: segments}, nil
}

// Leaf returns the final path segment.
func (p RemotePath) Leaf() string {
	if len(p.segments) == 0 {
		return ""
	}
	return p.segments[len(p.segments)-1]
}

// IsFigures reports whether this path names the figure asset store.
func (p RemotePath) IsFigures() bool {
	return p.Leaf() == FiguresDir
}

// Dir returns the parent of this path.
func (p RemotePath) Dir() (RemotePath, error) {
	return ParseRemotePath(path.Dir(p.raw))
}

// Join returns a new RemotePath with elem appended.
func (p RemotePath) Join(elem string) (RemotePath, error) {
	return ParseRemotePath(path.Join(p.raw, elem))
}

func (p RemotePath) String() string {
	return p.raw
}
