package ports

import (
	"context"

	"github.com/devport/portfolio-api/internal/core/domain"
)

// ExperienceInput carries the fields of an experience create/update request.
// On update, empty fields leave the stored values unchanged (falsy-skip).
type ExperienceInput struct {
	Company      string
	Role         string
	WorkTimeline string
	Description  string
}

type ExperienceService interface {
	Create(ctx context.Context, in ExperienceInput) (*domain.Experience, error)
	Update(ctx context.Context, id string, in ExperienceInput) (*domain.Experience, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Experience, error)
}
