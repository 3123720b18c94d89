package user

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleSeller Role = "seller"
	RoleRenter Role = "renter"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSeller, RoleRenter:
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

// NewRegisterableRole parses a role that self-registration may claim.
// Admin accounts are provisioned out of band, never through the public API.
func NewRegisterableRole(s string) (Role, error) {
	role, err := NewRole(s)
	if err != nil {
		return "", err
	}
	if role == RoleAdmin {
		return "", ErrRoleNotRegisterable
	}
	return role, nil
}
