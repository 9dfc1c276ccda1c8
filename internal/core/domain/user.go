package domain

import (
	"errors"
	"time"
)

const (
	RoleOwner        = "owner"
	RoleViewer       = "viewer"
	RoleCollaborator = "collaborator"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("a user with this email already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidInput = errors.New("invalid input")

// ValidRole reports whether role is one of the three enumerated roles.
func ValidRole(role string) bool {
	return role == RoleOwner || role == RoleViewer || role == RoleCollaborator
}

// User models an account on the portfolio site. PasswordHash is never
// serialized; responses carry the user sans password by construction.
type User struct {
	ID                     string    `json:"_id"`
	Name                   string    `json:"name"`
	Email                  string    `json:"email"`
	PasswordHash           string    `json:"-"`
	Role                   string    `json:"role"`
	CanCollaborate         bool      `json:"canCollaborate"`
	RequestedToCollaborate bool      `json:"requestedToCollaborate"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}
