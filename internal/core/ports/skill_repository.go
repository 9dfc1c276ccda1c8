package ports

import (
	"context"

	"github.com/devport/portfolio-api/internal/core/domain"
)

// SkillRepository defines the persistence interface for skills.
type SkillRepository interface {
	Create(ctx context.Context, s *domain.Skill) (*domain.Skill, error)
	FindByID(ctx context.Context, id string) (*domain.Skill, error)
	FindAll(ctx context.Context) ([]domain.Skill, error)
	Update(ctx context.Context, s *domain.Skill) (*domain.Skill, error)
	Delete(ctx context.Context, id string) error
}
