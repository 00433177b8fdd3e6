package user

import "github.com/google/uuid"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleStaff, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role is allowed to perform staff-gated
// lifecycle operations (confirm, payment approval, discounts, cancel).
func (r Role) IsStaff() bool {
	return r == RoleStaff || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Actor is the acting identity supplied by the session layer for every
// lifecycle call. The engine treats it as opaque input.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func (a Actor) IsStaff() bool {
	return a.Role.IsStaff()
}
