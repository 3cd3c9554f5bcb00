package model

// UserRole gates administrative operations (upload, delete, roster changes).
type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleMember UserRole = "MEMBER"
	RoleGuest  UserRole = "GUEST"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleMember, RoleGuest:
		return true
	}
	return false
}

// User is a roster entry. Password is stored for schema completeness only;
// no login flow ever verifies it.
type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password,omitempty"`
	Role     UserRole `json:"role"`
	Avatar   string   `json:"avatar,omitempty"`
}
