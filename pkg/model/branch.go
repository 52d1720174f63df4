package model

import (
	"fmt"
	"strings"
)

// Branch is a validated branch name. Equality is defined on the raw
// string, so branches parse once and compare everywhere else.
type Branch string

// Master is the advisor's integration branch. The name is reserved by
// the collaboration model, not configurable.
const Master Branch = "master"

// NewBranch validates a branch name. Git has a richer ref grammar; we
// only reject what would break our own parsing of branch listings.
func NewBranch(name string) (Branch, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("empty branch name")
	}
	if strings.ContainsAny(name, " \t\n*") {
		return "", fmt.Errorf("invalid branch name %q", name)
	}
	return Branch(name), nil
}

func (b Branch) String() string {
	return string(b)
}
