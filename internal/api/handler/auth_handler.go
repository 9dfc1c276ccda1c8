package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/devport/portfolio-api/internal/api/metrics"
	"github.com/devport/portfolio-api/internal/core/domain"
	"github.com/devport/portfolio-api/internal/core/ports"
)

const emailTakenMessage = "Sorry, a user with this email already exists"
const badCredentialsMessage = "Please try to login with correct credentials"

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// CreateUser registers a new account and returns an auth token.
//
// @Summary      Create a new user account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "Signup details"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  authFailureResponse
// @Failure      500   {object}  authFailureResponse
// @Router       /api/auth/createuser [post]
func (h *AuthHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, authFailureResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, authFailureResponse{Errors: strings.Split(err.Error(), "; ")})
	}

	token, err := h.authService.Signup(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			return c.JSON(http.StatusBadRequest, authFailureResponse{Error: emailTakenMessage})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, authFailureResponse{Error: "invalid signup details"})
		default:
			return err
		}
	}

	metrics.MutationsTotal.WithLabelValues("user", "create").Inc()
	return c.JSON(http.StatusOK, tokenResponse{Success: true, AuthToken: token})
}

// Login authenticates a user and returns a freshly issued token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  authFailureResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, authFailureResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, authFailureResponse{Errors: strings.Split(err.Error(), "; ")})
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password share one message so the response
		// leaks nothing about which part was wrong.
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusBadRequest, authFailureResponse{Error: badCredentialsMessage})
		}
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{Success: true, AuthToken: token})
}

// GetUser returns the authenticated caller's own record, sans password.
//
// @Summary      Get the logged-in user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /api/auth/getuser [get]
func (h *AuthHandler) GetUser(c echo.Context) error {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Please authenticate using a valid token")
	}

	user, err := h.authService.GetUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// GetAllUsers lists every registered user, sans passwords.
//
// @Summary      List all users
// @Tags         auth
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /api/auth/getAllUsers [get]
func (h *AuthHandler) GetAllUsers(c echo.Context) error {
	users, err := h.authService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateUser patches role and collaboration flags on any user. Restricted to
// owners at the routing layer.
//
// @Summary      Update a user's role and collaboration flags
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  domain.User
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/auth/updateuser/{id} [put]
func (h *AuthHandler) UpdateUser(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.UpdateUserAdmin(c.Request().Context(), c.Param("id"), ports.AdminUpdate{
		Role:                   req.Role,
		CanCollaborate:         req.CanCollaborate,
		RequestedToCollaborate: req.RequestedToCollaborate,
	})
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("user", "update").Inc()
	return c.JSON(http.StatusOK, user)
}
