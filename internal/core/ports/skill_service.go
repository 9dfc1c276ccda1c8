package ports

import (
	"context"

	"github.com/devport/portfolio-api/internal/core/domain"
)

// SkillPatch carries the partial fields of a skill update. Star is a pointer
// so an absent value can be told apart from zero; string fields follow the
// falsy-skip policy (empty means unchanged).
type SkillPatch struct {
	Icon  string
	Title string
	Star  *int
}

type SkillService interface {
	Create(ctx context.Context, icon, title string, star int) (*domain.Skill, error)
	Update(ctx context.Context, id string, patch SkillPatch) (*domain.Skill, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Skill, error)
}
