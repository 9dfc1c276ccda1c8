package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/devport/portfolio-api/internal/core/domain"
	"github.com/devport/portfolio-api/internal/core/ports"
)

type stubExperienceRepo struct {
	experiences map[string]*domain.Experience
	nextID      int
}

func newStubExperienceRepo() *stubExperienceRepo {
	return &stubExperienceRepo{experiences: make(map[string]*domain.Experience)}
}

func (r *stubExperienceRepo) Create(_ context.Context, e *domain.Experience) (*domain.Experience, error) {
	r.nextID++
	copied := *e
	copied.ID = fmt.Sprintf("exp-%d", r.nextID)
	r.experiences[copied.ID] = &copied
	return &copied, nil
}

func (r *stubExperienceRepo) FindByID(_ context.Context, id string) (*domain.Experience, error) {
	e, ok := r.experiences[id]
	if !ok {
		return nil, domain.ErrExperienceNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *stubExperienceRepo) FindAll(_ context.Context) ([]domain.Experience, error) {
	out := make([]domain.Experience, 0, len(r.experiences))
	for _, e := range r.experiences {
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubExperienceRepo) Update(_ context.Context, e *domain.Experience) (*domain.Experience, error) {
	if _, ok := r.experiences[e.ID]; !ok {
		return nil, domain.ErrExperienceNotFound
	}
	copied := *e
	r.experiences[e.ID] = &copied
	return e, nil
}

func (r *stubExperienceRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.experiences[id]; !ok {
		return domain.ErrExperienceNotFound
	}
	delete(r.experiences, id)
	return nil
}

func TestExperienceCreateRequiresFields(t *testing.T) {
	svc := NewExperienceService(newStubExperienceRepo(), zerolog.Nop())
	ctx := context.Background()

	tests := []struct {
		name string
		in   ports.ExperienceInput
	}{
		{"missing company", ports.ExperienceInput{Role: "Engineer", WorkTimeline: "2020-2022"}},
		{"missing role", ports.ExperienceInput{Company: "Acme", WorkTimeline: "2020-2022"}},
		{"missing timeline", ports.ExperienceInput{Company: "Acme", Role: "Engineer"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tt.in); !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("Create() error = %v, want ErrInvalidInput", err)
			}
		})
	}

	// Description is optional.
	exp, err := svc.Create(ctx, ports.ExperienceInput{Company: "Acme", Role: "Engineer", WorkTimeline: "2020-2022"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if exp.ID == "" {
		t.Error("created experience has no id")
	}
}

func TestExperienceUpdateFalsySkip(t *testing.T) {
	repo := newStubExperienceRepo()
	svc := NewExperienceService(repo, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, ports.ExperienceInput{
		Company:      "Acme",
		Role:         "Engineer",
		WorkTimeline: "2020-2022",
		Description:  "Built things",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// An empty company in the patch keeps the stored company.
	updated, err := svc.Update(ctx, created.ID, ports.ExperienceInput{Role: "Senior Engineer"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Company != "Acme" {
		t.Errorf("company = %q, want unchanged %q", updated.Company, "Acme")
	}
	if updated.Role != "Senior Engineer" {
		t.Errorf("role = %q, want %q", updated.Role, "Senior Engineer")
	}
	if updated.WorkTimeline != "2020-2022" || updated.Description != "Built things" {
		t.Errorf("untouched fields changed: %+v", updated)
	}
}

func TestExperienceUpdateMissing(t *testing.T) {
	svc := NewExperienceService(newStubExperienceRepo(), zerolog.Nop())

	if _, err := svc.Update(context.Background(), "missing", ports.ExperienceInput{Company: "Acme"}); !errors.Is(err, domain.ErrExperienceNotFound) {
		t.Errorf("Update(missing) error = %v, want ErrExperienceNotFound", err)
	}
}
