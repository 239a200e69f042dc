package entity

type Role string

const (
	RoleEmployee Role = "Employee"
	RoleManager  Role = "Manager"
	RoleHR       Role = "HR Administrator"
)

// Roles lists roles in the order the login picker offers them.
var Roles = []Role{RoleEmployee, RoleManager, RoleHR}

func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleHR:
		return true
	default:
		return false
	}
}

// ParseRole accepts only the exact role names.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", NewValidationError("Unknown role", "role")
	}

	return r, nil
}
