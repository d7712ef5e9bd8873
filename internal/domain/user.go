package domain

import "strings"

// Role is the authorization level stored on a user document.
//
// The platform writes "instructor" and "admin"; older documents may carry
// other values or no role at all. Anything that is not "admin" is treated
// as eligible for elevation.
type Role string

const (
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

func (r Role) String() string { return string(r) }

// IsAdmin reports whether the role grants admin access.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// IsKnown reports whether the role is one of the values the platform writes.
func (r Role) IsKnown() bool {
	switch r {
	case RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// OrDefault returns the role, or RoleInstructor when the field is absent.
// Instructor is the implicit default for accounts created by signup.
func (r Role) OrDefault() Role {
	if r == "" {
		return RoleInstructor
	}
	return r
}

// User is an account document from the users collection. Only the fields
// this tooling reads are modeled; the collection schema is owned by the
// platform, not by this repository.
type User struct {
	Email     string
	FirstName string
	LastName  string
	Role      Role
}

// DisplayName joins the optional name fields for console output.
func (u *User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
