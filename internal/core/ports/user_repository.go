package ports

import (
	"context"

	"github.com/devport/portfolio-api/internal/core/domain"
)

// AdminUpdate is the patch applied by the administrative user update.
// Nil pointers mean "leave unchanged" (absent in the request body).
type AdminUpdate struct {
	Role                   *string
	CanCollaborate         *bool
	RequestedToCollaborate *bool
}

// UserRepository defines the persistence interface for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	UpdateAdminFields(ctx context.Context, id string, patch AdminUpdate) (*domain.User, error)
}
