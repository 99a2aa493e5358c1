package user

type Role string

const (
	RoleHomeowner      Role = "homeowner"
	RoleCleaner        Role = "cleaner"
	RoleOwner          Role = "owner"
	RoleHumanResources Role = "human_resources"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleHomeowner, RoleCleaner, RoleOwner, RoleHumanResources:
		return true
	default:
		return false
	}
}

// HasEscalationAuthority reports whether the role may issue the final,
// binding decision on a disputed adjustment request. Granting another
// role the same authority only touches this predicate.
func (r Role) HasEscalationAuthority() bool {
	switch r {
	case RoleOwner, RoleHumanResources:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
