package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/devport/portfolio-api/internal/core/domain"
	"github.com/devport/portfolio-api/internal/core/ports"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) Create(context.Context, *domain.User) (*domain.User, error) {
	panic("not used")
}

func (r *stubUserRepo) FindByEmail(context.Context, string) (*domain.User, error) {
	panic("not used")
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindAll(context.Context) ([]domain.User, error) {
	panic("not used")
}

func (r *stubUserRepo) UpdateAdminFields(context.Context, string, ports.AdminUpdate) (*domain.User, error) {
	panic("not used")
}

func invokeRequireRole(t *testing.T, repo ports.UserRepository, userID string, allowed ...string) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set("user_id", userID)
	}

	handler := RequireRole(repo, allowed...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(c)
}

func TestRequireRoleAllowsListedRoles(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{
		"owner-1":  {ID: "owner-1", Role: domain.RoleOwner},
		"collab-1": {ID: "collab-1", Role: domain.RoleCollaborator},
	}}

	for _, id := range []string{"owner-1", "collab-1"} {
		if err := invokeRequireRole(t, repo, id, domain.RoleOwner, domain.RoleCollaborator); err != nil {
			t.Errorf("RequireRole(%s) error = %v, want nil", id, err)
		}
	}
}

func TestRequireRoleForbidsViewer(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{
		"viewer-1": {ID: "viewer-1", Role: domain.RoleViewer},
	}}

	err := invokeRequireRole(t, repo, "viewer-1", domain.RoleOwner, domain.RoleCollaborator)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("error = %v, want *echo.HTTPError", err)
	}
	if he.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", he.Code)
	}
}

func TestRequireRoleChecksPersistedRole(t *testing.T) {
	// The token stays valid but the stored role decides: a demoted user is
	// rejected on the very next request.
	repo := &stubUserRepo{users: map[string]*domain.User{
		"user-1": {ID: "user-1", Role: domain.RoleCollaborator},
	}}

	if err := invokeRequireRole(t, repo, "user-1", domain.RoleCollaborator); err != nil {
		t.Fatalf("before demotion: error = %v", err)
	}

	repo.users["user-1"].Role = domain.RoleViewer

	err := invokeRequireRole(t, repo, "user-1", domain.RoleCollaborator)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Errorf("after demotion: error = %v, want 403", err)
	}
}

func TestRequireRoleUnknownUser(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{}}

	// Deleted account and missing user_id both read as unauthenticated.
	for _, userID := range []string{"ghost", ""} {
		err := invokeRequireRole(t, repo, userID, domain.RoleOwner)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnauthorized {
			t.Errorf("userID=%q: error = %v, want 401", userID, err)
		}
	}
}
