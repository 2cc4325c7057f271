package types

import "github.com/golang-jwt/jwt/v5"

// Role is the closed set of account roles. Authorization decisions are made
// by exhaustive matching on this type, never by comparing raw strings.
type Role string

const (
	RoleCitizen     Role = "Citizen"
	RoleCoordinator Role = "Coordinator"
	RoleAdmin       Role = "Admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCitizen, RoleCoordinator, RoleAdmin:
		return true
	}
	return false
}

// Claims is the verified identity attached to a request after JWT
// validation. It is set once by the JWT middleware and read by handlers.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	jwt.RegisteredClaims
}
