package ports

import (
	"context"

	"github.com/devport/portfolio-api/internal/core/domain"
)

// ExperienceRepository defines the persistence interface for experiences.
type ExperienceRepository interface {
	Create(ctx context.Context, e *domain.Experience) (*domain.Experience, error)
	FindByID(ctx context.Context, id string) (*domain.Experience, error)
	FindAll(ctx context.Context) ([]domain.Experience, error)
	Update(ctx context.Context, e *domain.Experience) (*domain.Experience, error)
	Delete(ctx context.Context, id string) error
}
