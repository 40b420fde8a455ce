// Package model defines domain entities for the application.
package model

import "time"

// Role enumerates the user roles known to the system.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// IsValid checks if the role is a known value.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User represents a prompt owner. Users are created by the seed script, not
// through the API; the API only ever exposes the public projection.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // opaque credential hash, never serialized
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// PublicUser is the safe projection of a user joined onto prompt responses.
type PublicUser struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Public returns the publicly safe projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		Email: u.Email,
		Role:  u.Role,
	}
}
