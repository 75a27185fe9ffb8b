package types

import "fmt"

// Role is the closed set of user roles in the system.
type Role string

const (
	RoleDriver  Role = "driver"
	RoleStudent Role = "student"
)

func (r Role) String() string {
	return string(r)
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleDriver, RoleStudent:
		return true
	}
	return false
}

// ParseRole converts a stored string into a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}
