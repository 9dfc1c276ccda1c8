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

type stubSkillRepo struct {
	skills  map[string]*domain.Skill
	nextID  int
	deleted []string
}

func newStubSkillRepo() *stubSkillRepo {
	return &stubSkillRepo{skills: make(map[string]*domain.Skill)}
}

func (r *stubSkillRepo) Create(_ context.Context, s *domain.Skill) (*domain.Skill, error) {
	r.nextID++
	copied := *s
	copied.ID = fmt.Sprintf("skill-%d", r.nextID)
	r.skills[copied.ID] = &copied
	return &copied, nil
}

func (r *stubSkillRepo) FindByID(_ context.Context, id string) (*domain.Skill, error) {
	s, ok := r.skills[id]
	if !ok {
		return nil, domain.ErrSkillNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *stubSkillRepo) FindAll(_ context.Context) ([]domain.Skill, error) {
	out := make([]domain.Skill, 0, len(r.skills))
	for _, s := range r.skills {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSkillRepo) Update(_ context.Context, s *domain.Skill) (*domain.Skill, error) {
	if _, ok := r.skills[s.ID]; !ok {
		return nil, domain.ErrSkillNotFound
	}
	copied := *s
	r.skills[s.ID] = &copied
	return s, nil
}

func (r *stubSkillRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.skills[id]; !ok {
		return domain.ErrSkillNotFound
	}
	delete(r.skills, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func TestSkillCreateStarBounds(t *testing.T) {
	svc := NewSkillService(newStubSkillRepo(), zerolog.Nop())
	ctx := context.Background()

	for _, star := range []int{0, -1, 6, 100} {
		if _, err := svc.Create(ctx, "go-icon", "Go", star); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("Create(star=%d) error = %v, want ErrInvalidInput", star, err)
		}
	}

	for star := domain.MinStars; star <= domain.MaxStars; star++ {
		skill, err := svc.Create(ctx, "go-icon", "Go", star)
		if err != nil {
			t.Fatalf("Create(star=%d) error = %v", star, err)
		}
		if skill.Star != star {
			t.Errorf("created star = %d, want %d", skill.Star, star)
		}
	}
}

func TestSkillCreateRequiresFields(t *testing.T) {
	svc := NewSkillService(newStubSkillRepo(), zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Create(ctx, "", "Go", 3); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("Create(empty icon) error = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Create(ctx, "go-icon", "", 3); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("Create(empty title) error = %v, want ErrInvalidInput", err)
	}
}

func TestSkillUpdatePatchSemantics(t *testing.T) {
	repo := newStubSkillRepo()
	svc := NewSkillService(repo, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, "go-icon", "Go", 4)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Empty strings and a nil star leave the stored values alone.
	updated, err := svc.Update(ctx, created.ID, ports.SkillPatch{})
	if err != nil {
		t.Fatalf("Update(empty patch) error = %v", err)
	}
	if updated.Icon != "go-icon" || updated.Title != "Go" || updated.Star != 4 {
		t.Errorf("empty patch changed skill: %+v", updated)
	}

	bad := 9
	if _, err := svc.Update(ctx, created.ID, ports.SkillPatch{Star: &bad}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("Update(star=9) error = %v, want ErrInvalidInput", err)
	}

	five := 5
	updated, err = svc.Update(ctx, created.ID, ports.SkillPatch{Title: "Golang", Star: &five})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Title != "Golang" || updated.Star != 5 || updated.Icon != "go-icon" {
		t.Errorf("patched skill = %+v", updated)
	}
}

func TestSkillUpdateMissing(t *testing.T) {
	svc := NewSkillService(newStubSkillRepo(), zerolog.Nop())

	if _, err := svc.Update(context.Background(), "missing", ports.SkillPatch{Title: "x"}); !errors.Is(err, domain.ErrSkillNotFound) {
		t.Errorf("Update(missing) error = %v, want ErrSkillNotFound", err)
	}
}

func TestSkillDelete(t *testing.T) {
	repo := newStubSkillRepo()
	svc := NewSkillService(repo, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, "go-icon", "Go", 3)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, domain.ErrSkillNotFound) {
		t.Errorf("second Delete() error = %v, want ErrSkillNotFound", err)
	}
}
