// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleBuyer indicates a regular buying customer.
	RoleBuyer Role = "buyer"
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
	// RoleSeller indicates a seller who owns products in the catalog.
	RoleSeller Role = "seller"
	// RoleStaff indicates operational staff who process orders.
	RoleStaff Role = "staff"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleAdmin, RoleSeller, RoleStaff:
		return true
	default:
		return false
	}
}

// In checks whether the role is one of the given roles.
func (r Role) In(roles ...Role) bool {
	return slices.Contains(roles, r)
}

// RoleFromString converts a string to a Role, returning false for unknown values.
func RoleFromString(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
