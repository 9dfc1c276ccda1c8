package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/devport/portfolio-api/internal/core/domain"
	"github.com/devport/portfolio-api/internal/core/ports"
)

type experienceService struct {
	repo ports.ExperienceRepository
	log  zerolog.Logger
}

// NewExperienceService returns an ExperienceService backed by the given repository.
func NewExperienceService(repo ports.ExperienceRepository, log zerolog.Logger) ports.ExperienceService {
	return &experienceService{repo: repo, log: log}
}

func (s *experienceService) Create(ctx context.Context, in ports.ExperienceInput) (*domain.Experience, error) {
	if in.Company == "" || in.Role == "" || in.WorkTimeline == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	exp := &domain.Experience{
		Company:      in.Company,
		Role:         in.Role,
		WorkTimeline: in.WorkTimeline,
		Description:  in.Description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, exp)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("experience_id", created.ID).Str("company", created.Company).Msg("experience created")
	return created, nil
}

func (s *experienceService) Update(ctx context.Context, id string, in ports.ExperienceInput) (*domain.Experience, error) {
	exp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Falsy-skip patch: empty fields keep the stored values.
	if in.Company != "" {
		exp.Company = in.Company
	}
	if in.Role != "" {
		exp.Role = in.Role
	}
	if in.WorkTimeline != "" {
		exp.WorkTimeline = in.WorkTimeline
	}
	if in.Description != "" {
		exp.Description = in.Description
	}
	exp.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, exp)
}

func (s *experienceService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("experience_id", id).Msg("experience deleted")
	return nil
}

func (s *experienceService) List(ctx context.Context) ([]domain.Experience, error) {
	return s.repo.FindAll(ctx)
}
