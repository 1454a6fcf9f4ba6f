package domain

import (
	"errors"
	"strings"
)

// Role is the operator role. Roles are fixed, there is no role table.
type Role string

const (
	RoleMaster Role = "master"
	RoleComum  Role = "comum"
)

// Permission scopes carried on session tokens.
const (
	ScopeRead   = "records:read"
	ScopeWrite  = "records:write"
	ScopeDelete = "records:delete"
)

var ErrUnknownRole = errors.New("domain: unknown role")

// ParseRole accepts "master" or "comum" in any case.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleMaster, RoleComum:
		return r, nil
	default:
		return "", ErrUnknownRole
	}
}

// CanDelete reports whether the role may delete records.
func (r Role) CanDelete() bool { return r == RoleMaster }

// Scopes returns the permission scopes granted to the role.
func (r Role) Scopes() []string {
	switch r {
	case RoleMaster:
		return []string{ScopeRead, ScopeWrite, ScopeDelete}
	case RoleComum:
		return []string{ScopeRead, ScopeWrite}
	default:
		return nil
	}
}

func (r Role) String() string { return string(r) }
