package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devport/portfolio-api/internal/api/metrics"
	"github.com/devport/portfolio-api/internal/core/ports"
)

type addExperienceRequest struct {
	Company      string `json:"company"      validate:"required"`
	Role         string `json:"role"         validate:"required"`
	WorkTimeline string `json:"workTimeline" validate:"required"`
	Description  string `json:"description"`
}

type updateExperienceRequest struct {
	Company      string `json:"company"`
	Role         string `json:"role"`
	WorkTimeline string `json:"workTimeline"`
	Description  string `json:"description"`
}

type ExperienceHandler struct {
	service ports.ExperienceService
}

func NewExperienceHandler(service ports.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{service: service}
}

// List handles GET /api/experiences.
//
// @Summary      List all experiences
// @Tags         experiences
// @Produce      json
// @Success      200  {array}  domain.Experience
// @Router       /api/experiences [get]
func (h *ExperienceHandler) List(c echo.Context) error {
	experiences, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, experiences)
}

// Create handles POST /api/experiences/add.
//
// @Summary      Add an experience
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addExperienceRequest  true  "Experience fields"
// @Success      201   {object}  domain.Experience
// @Failure      400   {object}  errorResponse
// @Router       /api/experiences/add [post]
func (h *ExperienceHandler) Create(c echo.Context) error {
	var req addExperienceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	exp, err := h.service.Create(c.Request().Context(), ports.ExperienceInput{
		Company:      req.Company,
		Role:         req.Role,
		WorkTimeline: req.WorkTimeline,
		Description:  req.Description,
	})
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("experience", "create").Inc()
	return c.JSON(http.StatusCreated, exp)
}

// Update handles PUT /api/experiences/update/:id with falsy-skip patch
// semantics: empty fields keep the stored values.
//
// @Summary      Update an experience
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Experience id"
// @Param        body  body      updateExperienceRequest  true  "Fields to update"
// @Success      200   {object}  domain.Experience
// @Failure      404   {object}  errorResponse
// @Router       /api/experiences/update/{id} [put]
func (h *ExperienceHandler) Update(c echo.Context) error {
	var req updateExperienceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	exp, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.ExperienceInput{
		Company:      req.Company,
		Role:         req.Role,
		WorkTimeline: req.WorkTimeline,
		Description:  req.Description,
	})
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("experience", "update").Inc()
	return c.JSON(http.StatusOK, exp)
}

// Delete handles DELETE /api/experiences/delete/:id.
//
// @Summary      Delete an experience
// @Tags         experiences
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Experience id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  errorResponse
// @Router       /api/experiences/delete/{id} [delete]
func (h *ExperienceHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.MutationsTotal.WithLabelValues("experience", "delete").Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "Experience deleted successfully"})
}
