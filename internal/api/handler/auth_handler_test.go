package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/devport/portfolio-api/internal/core/domain"
	"github.com/devport/portfolio-api/internal/core/ports"
)

type stubAuthService struct {
	signupToken string
	signupErr   error
	loginToken  string
	loginErr    error
	user        *domain.User
	users       []domain.User
}

func (s *stubAuthService) Signup(context.Context, string, string, string) (string, error) {
	return s.signupToken, s.signupErr
}

func (s *stubAuthService) Login(context.Context, string, string) (string, error) {
	return s.loginToken, s.loginErr
}

func (s *stubAuthService) GetUser(_ context.Context, id string) (*domain.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, domain.ErrUserNotFound
	}
	return s.user, nil
}

func (s *stubAuthService) ListUsers(context.Context) ([]domain.User, error) {
	return s.users, nil
}

func (s *stubAuthService) UpdateUserAdmin(_ context.Context, id string, patch ports.AdminUpdate) (*domain.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, domain.ErrUserNotFound
	}
	updated := *s.user
	if patch.Role != nil {
		updated.Role = *patch.Role
	}
	if patch.CanCollaborate != nil {
		updated.CanCollaborate = *patch.CanCollaborate
	}
	return &updated, nil
}

func newJSONContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateUserSuccess(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{signupToken: "tok-123"})
	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/createuser",
		`{"name":"Alice","email":"alice@example.com","password":"s3cretpass"}`)

	if err := h.CreateUser(c); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.AuthToken != "tok-123" {
		t.Errorf("response = %+v, want success with token", resp)
	}
	if !strings.Contains(rec.Body.String(), `"authtoken"`) {
		t.Errorf("body %s missing authtoken key", rec.Body.String())
	}
}

func TestCreateUserValidationErrors(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{signupToken: "tok-123"})
	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/createuser",
		`{"name":"Al","email":"not-an-email","password":"short"}`)

	if err := h.CreateUser(c); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp authFailureResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success {
		t.Error("success = true on validation failure")
	}
	if len(resp.Errors) != 3 {
		t.Errorf("errors = %v, want one per failing field", resp.Errors)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{signupErr: domain.ErrEmailTaken})
	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/createuser",
		`{"name":"Alice","email":"alice@example.com","password":"s3cretpass"}`)

	if err := h.CreateUser(c); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), emailTakenMessage) {
		t.Errorf("body %s missing duplicate-email message", rec.Body.String())
	}
}

func TestLoginBadCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})
	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"wrongpass"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), badCredentialsMessage) {
		t.Errorf("body %s missing credentials message", rec.Body.String())
	}
}

func TestGetUserReturnsCaller(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		user: &domain.User{ID: "user-1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleOwner},
	})
	c, rec := newJSONContext(t, http.MethodGet, "/api/auth/getuser", "")
	c.Set("user_id", "user-1")

	if err := h.GetUser(c); err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var user domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if user.ID != "user-1" || user.Email != "alice@example.com" {
		t.Errorf("user = %+v", user)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Error("response leaks password field")
	}
}

func TestUpdateUserRejectsBadRole(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{user: &domain.User{ID: "user-1"}})
	c, _ := newJSONContext(t, http.MethodPut, "/api/auth/updateuser/user-1", `{"role":"superadmin"}`)
	c.SetParamNames("id")
	c.SetParamValues("user-1")

	err := h.UpdateUser(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("UpdateUser() error = %v, want 400", err)
	}
}

func TestUpdateUserAppliesPatch(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		user: &domain.User{ID: "user-1", Role: domain.RoleViewer},
	})
	c, rec := newJSONContext(t, http.MethodPut, "/api/auth/updateuser/user-1",
		`{"role":"collaborator","canCollaborate":true}`)
	c.SetParamNames("id")
	c.SetParamValues("user-1")

	if err := h.UpdateUser(c); err != nil {
		t.Fatalf("UpdateUser() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var user domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if user.Role != domain.RoleCollaborator || !user.CanCollaborate {
		t.Errorf("patched user = %+v", user)
	}
}
