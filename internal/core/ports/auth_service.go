package ports

import (
	"context"

	"github.com/devport/portfolio-api/internal/core/domain"
)

type AuthService interface {
	// Signup creates an account with the default viewer role and returns a
	// signed auth token for the new user.
	Signup(ctx context.Context, name, email, password string) (string, error)
	// Login verifies credentials and returns a freshly issued token. Unknown
	// email and wrong password fail identically with ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	// UpdateUserAdmin patches role and collaboration flags on any user.
	UpdateUserAdmin(ctx context.Context, id string, patch AdminUpdate) (*domain.User, error)
}
