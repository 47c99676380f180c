package kernel

import "strings"

// Role is the role name the user directory reports for a user.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleOwner    Role = "OWNER"
	RoleEmployee Role = "EMPLOYEE"
	RoleClient   Role = "CLIENT"
)

// ParseRole normalizes a role name. Unknown names are returned upper-cased and
// never match one of the constants above.
func ParseRole(s string) Role {
	return Role(strings.ToUpper(strings.TrimSpace(s)))
}

func (r Role) String() string {
	return string(r)
}
