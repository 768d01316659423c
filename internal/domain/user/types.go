package user

import "github.com/Evidive-blue/evidive/internal/pkg/errs"

// Role is the profile role stored alongside the identity provider's user.
type Role string

const (
	RoleDiver      Role = "diver"
	RoleInstructor Role = "instructor"
	RoleCenter     Role = "center"
	RoleAdmin      Role = "admin_diver"
)

var ErrInvalidRole = errs.Sentinel("invalid role", errs.ErrValidation)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleDiver, RoleInstructor, RoleCenter, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
