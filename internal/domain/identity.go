package domain

import "strings"

// Role is the closed set of caller roles. Anything else fails ParseRole,
// so ownership checks never see a free-form string.
type Role string

const (
	RoleUser     Role = "user"
	RoleOperator Role = "operator"
)

func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleUser:
		return RoleUser, true
	case RoleOperator:
		return RoleOperator, true
	}
	return "", false
}

// Identity is the authenticated (userId, role) pair attached to a request.
type Identity struct {
	UserID int64
	Role   Role
}

func (id Identity) IsOperator() bool {
	return id.Role == RoleOperator
}
