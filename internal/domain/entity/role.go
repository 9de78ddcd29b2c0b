package entity

// Role represents the privilege level of an account.
type Role string

const (
	// RoleAdmin grants full access to content management and account creation.
	RoleAdmin Role = "admin"
	// RoleEditor grants content access without account management. It is the
	// default for new accounts registered without an explicit role.
	RoleEditor Role = "editor"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEditor:
		return true
	default:
		return false
	}
}
