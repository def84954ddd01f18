package models

import "strings"

// Role is the platform-wide access level assigned to a user.
type Role string

const (
	RoleColaborador Role = "colaborador"
	RoleDiretoria   Role = "diretoria"
	RoleAdmin       Role = "admin"
)

// Roles lists every role the backend recognises, in ascending privilege order.
func Roles() []Role {
	return []Role{RoleColaborador, RoleDiretoria, RoleAdmin}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleColaborador, RoleDiretoria, RoleAdmin:
		return true
	}
	return false
}

// User is the backend's user record. The client treats it as read-only
// except through the explicit profile update operations.
type User struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Role       Role   `json:"role"`
	Department string `json:"department,omitempty"`
	Team       string `json:"team,omitempty"`
	Photo      string `json:"photo,omitempty"`
	IsConnecta bool   `json:"is_connecta"`
}

// FullName returns the display name, falling back to the username when
// no name fields are set.
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}
