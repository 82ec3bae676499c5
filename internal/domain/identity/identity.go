package identity

import "errors"

// Role is the organizational role attached to the authenticated user by the
// identity provider. The approval chain is gated on these values.
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleHR             Role = "hr"
	RoleDirector       Role = "director"
	RoleGeneralManager Role = "general_manager"
	RoleManager        Role = "manager"
	RoleEmployee       Role = "employee"
)

// Actor identifies who is performing an operation. Handlers build it from the
// verified token; services never reach into ambient session state.
type Actor struct {
	UserID     string
	EmployeeID string
	Role       Role
}

var ErrUnknownRole = errors.New("unknown role")

// ParseRole converts a claim string into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleHR, RoleDirector, RoleGeneralManager, RoleManager, RoleEmployee:
		return Role(s), nil
	}
	return "", ErrUnknownRole
}

// Valid reports whether r is one of the closed set of roles.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}
