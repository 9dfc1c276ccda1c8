package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/devport/portfolio-api/internal/core/domain"
	"github.com/devport/portfolio-api/internal/core/ports"
)

type skillService struct {
	repo ports.SkillRepository
	log  zerolog.Logger
}

// NewSkillService returns a SkillService backed by the given repository.
func NewSkillService(repo ports.SkillRepository, log zerolog.Logger) ports.SkillService {
	return &skillService{repo: repo, log: log}
}

func (s *skillService) Create(ctx context.Context, icon, title string, star int) (*domain.Skill, error) {
	if icon == "" || title == "" || !domain.ValidStars(star) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	skill := &domain.Skill{
		Icon:      icon,
		Title:     title,
		Star:      star,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, skill)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("skill_id", created.ID).Str("title", created.Title).Msg("skill created")
	return created, nil
}

func (s *skillService) Update(ctx context.Context, id string, patch ports.SkillPatch) (*domain.Skill, error) {
	if patch.Star != nil && !domain.ValidStars(*patch.Star) {
		return nil, domain.ErrInvalidInput
	}

	skill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Icon != "" {
		skill.Icon = patch.Icon
	}
	if patch.Title != "" {
		skill.Title = patch.Title
	}
	if patch.Star != nil {
		skill.Star = *patch.Star
	}
	skill.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, skill)
}

func (s *skillService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("skill_id", id).Msg("skill deleted")
	return nil
}

func (s *skillService) List(ctx context.Context) ([]domain.Skill, error) {
	return s.repo.FindAll(ctx)
}
