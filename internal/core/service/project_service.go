package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/devport/portfolio-api/internal/core/domain"
	"github.com/devport/portfolio-api/internal/core/ports"
)

type projectService struct {
	repo   ports.ProjectRepository
	images ports.ImageHost
	log    zerolog.Logger
}

// NewProjectService returns a ProjectService backed by the given repository
// and image host.
func NewProjectService(repo ports.ProjectRepository, images ports.ImageHost, log zerolog.Logger) ports.ProjectService {
	return &projectService{repo: repo, images: images, log: log}
}

func (s *projectService) Create(ctx context.Context, in ports.ProjectInput) (*domain.Project, error) {
	if in.Title == "" || in.Description == "" || in.Technologies == "" {
		return nil, domain.ErrInvalidInput
	}

	thumbnailURL, screenshotURLs, err := s.relayImages(ctx, in)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	project := &domain.Project{
		Title:        in.Title,
		Description:  in.Description,
		Technologies: splitTechnologies(in.Technologies),
		DemoLink:     in.DemoLink,
		SourceLink:   in.SourceLink,
		ThumbnailImg: thumbnailURL,
		Screenshots:  screenshotURLs,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, project)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("project_id", created.ID).Str("title", created.Title).Msg("project created")
	return created, nil
}

func (s *projectService) Update(ctx context.Context, id string, in ports.ProjectInput) (*domain.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	thumbnailURL, screenshotURLs, err := s.relayImages(ctx, in)
	if err != nil {
		return nil, err
	}

	// Falsy-skip patch: an empty field keeps the stored value. A field can
	// therefore never be cleared through update, only replaced.
	if in.Title != "" {
		project.Title = in.Title
	}
	if in.Description != "" {
		project.Description = in.Description
	}
	if in.Technologies != "" {
		project.Technologies = splitTechnologies(in.Technologies)
	}
	if in.DemoLink != "" {
		project.DemoLink = in.DemoLink
	}
	if in.SourceLink != "" {
		project.SourceLink = in.SourceLink
	}
	if thumbnailURL != "" {
		project.ThumbnailImg = thumbnailURL
	}
	if len(screenshotURLs) > 0 {
		project.Screenshots = screenshotURLs
	}
	project.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, project)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("project_id", id).Msg("project updated")
	return updated, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("project_id", id).Msg("project deleted")
	return nil
}

func (s *projectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.repo.FindAll(ctx)
}

func (s *projectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.FindByID(ctx, id)
}

// relayImages forwards staged files to the image host one by one. Failures
// propagate without rolling back already-hosted images; the handler owns
// cleanup of the local staging copies.
func (s *projectService) relayImages(ctx context.Context, in ports.ProjectInput) (string, []string, error) {
	var thumbnailURL string
	if in.ThumbnailPath != "" {
		url, err := s.images.UploadImage(ctx, in.ThumbnailPath)
		if err != nil {
			return "", nil, fmt.Errorf("relay thumbnail: %w", err)
		}
		thumbnailURL = url
	}

	var screenshotURLs []string
	for _, path := range in.ScreenshotPaths {
		url, err := s.images.UploadImage(ctx, path)
		if err != nil {
			return "", nil, fmt.Errorf("relay screenshot: %w", err)
		}
		screenshotURLs = append(screenshotURLs, url)
	}

	return thumbnailURL, screenshotURLs, nil
}

// splitTechnologies splits the comma-separated form value as-is; entries are
// not trimmed or de-duplicated, matching what the dashboard submits.
func splitTechnologies(raw string) []string {
	return strings.Split(raw, ",")
}
