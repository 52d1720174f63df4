// Package model holds the value types shared across scrivener: roles,
// operations, branches, remote paths and sync outcomes. Everything here
// is a plain value with no behavior beyond parsing and validation.
package model

import (
	"fmt"
	"strings"
)

// Role is the permission class declared for the current working copy.
// Exactly one role label is active per clone; several clones may carry
// the student role for the same collaboration.
type Role string

const (
	// RoleAdvisor owns the master integration branch.
	RoleAdvisor Role = "advisor"

	// RoleStudent owns the configured student branch.
	RoleStudent Role = "student"
)

// ParseRole maps a configuration string to a Role. Comparison is
// case-insensitive; anything other than the two known labels is an
// error.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdvisor:
		return RoleAdvisor, nil
	case RoleStudent:
		return RoleStudent, nil
	}
	return "", fmt.Errorf("unknown role %q: must be %q or %q", s, RoleAdvisor, RoleStudent)
}

func (r Role) String() string {
	return string(r)
}
