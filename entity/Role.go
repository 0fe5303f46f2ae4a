package entity

// Role is the closed set of account roles. Every role-gated route declares
// which of these it admits; comparing typed constants instead of raw
// strings keeps typos out of the allow-lists.
type Role string

const (
	RoleUser       Role = "user"
	RoleWaiter     Role = "waiter"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// ParseRole maps a stored string onto the closed set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleWaiter, RoleAdmin, RoleSuperAdmin:
		return Role(s), true
	}
	return "", false
}

func (r Role) In(allowed []Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}
