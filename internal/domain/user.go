package domain

import "time"

// Role is the privilege tier assigned to a user.
type Role string

const (
	RoleCustomer  Role = "customer"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// UserStatus tracks the role review lifecycle.
type UserStatus string

const (
	UserStatusNone      UserStatus = ""
	UserStatusRequested UserStatus = "Requested"
	UserStatusVerified  UserStatus = "Verified"
)

// User is a registered marketplace account keyed by email.
type User struct {
	Email     string
	Name      string
	Image     string
	Role      Role
	Status    UserStatus
	CreatedAt time.Time
}
