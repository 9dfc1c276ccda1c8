package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/devport/portfolio-api/internal/core/domain"
	"github.com/devport/portfolio-api/internal/core/ports"
)

// stubSkillService backs the handler with an in-memory map so the full
// add, list, update, delete flow can run through the HTTP layer.
type stubSkillService struct {
	skills map[string]*domain.Skill
	nextID int
}

func newStubSkillService() *stubSkillService {
	return &stubSkillService{skills: make(map[string]*domain.Skill)}
}

func (s *stubSkillService) Create(_ context.Context, icon, title string, star int) (*domain.Skill, error) {
	if icon == "" || title == "" || !domain.ValidStars(star) {
		return nil, domain.ErrInvalidInput
	}
	s.nextID++
	skill := &domain.Skill{ID: fmt.Sprintf("skill-%d", s.nextID), Icon: icon, Title: title, Star: star}
	s.skills[skill.ID] = skill
	return skill, nil
}

func (s *stubSkillService) Update(_ context.Context, id string, patch ports.SkillPatch) (*domain.Skill, error) {
	skill, ok := s.skills[id]
	if !ok {
		return nil, domain.ErrSkillNotFound
	}
	if patch.Title != "" {
		skill.Title = patch.Title
	}
	if patch.Star != nil {
		skill.Star = *patch.Star
	}
	return skill, nil
}

func (s *stubSkillService) Delete(_ context.Context, id string) error {
	if _, ok := s.skills[id]; !ok {
		return domain.ErrSkillNotFound
	}
	delete(s.skills, id)
	return nil
}

func (s *stubSkillService) List(context.Context) ([]domain.Skill, error) {
	out := make([]domain.Skill, 0, len(s.skills))
	for _, skill := range s.skills {
		out = append(out, *skill)
	}
	return out, nil
}

func TestSkillAddListDeleteFlow(t *testing.T) {
	svc := newStubSkillService()
	h := NewSkillHandler(svc)

	// Add.
	c, rec := newJSONContext(t, http.MethodPost, "/api/skills/add",
		`{"icon":"go-icon","title":"Go","star":4}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", rec.Code)
	}
	var created domain.Skill
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created skill: %v", err)
	}
	if created.ID == "" || created.Star != 4 {
		t.Fatalf("created skill = %+v", created)
	}

	// List shows it.
	c, rec = newJSONContext(t, http.MethodGet, "/api/skills", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	var listed []domain.Skill
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("list = %+v, want the created skill", listed)
	}

	// Delete removes it.
	c, rec = newJSONContext(t, http.MethodDelete, "/api/skills/delete/"+created.ID, "")
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", rec.Code)
	}
	var msg map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &msg); err != nil {
		t.Fatalf("decode delete response: %v", err)
	}
	if msg["message"] != "Skill deleted successfully" {
		t.Errorf("delete message = %q", msg["message"])
	}

	c, rec = newJSONContext(t, http.MethodGet, "/api/skills", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	listed = nil
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("list after delete = %+v, want empty", listed)
	}
}

func TestSkillCreateRejectsOutOfRangeStar(t *testing.T) {
	h := NewSkillHandler(newStubSkillService())

	for _, body := range []string{
		`{"icon":"go-icon","title":"Go","star":0}`,
		`{"icon":"go-icon","title":"Go","star":6}`,
	} {
		c, _ := newJSONContext(t, http.MethodPost, "/api/skills/add", body)
		err := h.Create(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Errorf("Create(%s) error = %v, want 400", body, err)
		}
	}
}

func TestSkillUpdateNotFound(t *testing.T) {
	h := NewSkillHandler(newStubSkillService())

	c, _ := newJSONContext(t, http.MethodPut, "/api/skills/update/missing", `{"title":"Go"}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Update(c); !errors.Is(err, domain.ErrSkillNotFound) {
		t.Errorf("Update(missing) error = %v, want ErrSkillNotFound", err)
	}
}

func TestSkillDeleteNotFound(t *testing.T) {
	h := NewSkillHandler(newStubSkillService())

	c, _ := newJSONContext(t, http.MethodDelete, "/api/skills/delete/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Delete(c); !errors.Is(err, domain.ErrSkillNotFound) {
		t.Errorf("Delete(missing) error = %v, want ErrSkillNotFound", err)
	}
}
