package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devport/portfolio-api/internal/api/metrics"
	"github.com/devport/portfolio-api/internal/core/ports"
)

type addSkillRequest struct {
	Icon  string `json:"icon"  validate:"required"`
	Title string `json:"title" validate:"required"`
	Star  int    `json:"star"  validate:"required,gte=1,lte=5"`
}

type updateSkillRequest struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Star  *int   `json:"star" validate:"omitempty,gte=1,lte=5"`
}

type SkillHandler struct {
	service ports.SkillService
}

func NewSkillHandler(service ports.SkillService) *SkillHandler {
	return &SkillHandler{service: service}
}

// List handles GET /api/skills.
//
// @Summary      List all skills
// @Tags         skills
// @Produce      json
// @Success      200  {array}  domain.Skill
// @Router       /api/skills [get]
func (h *SkillHandler) List(c echo.Context) error {
	skills, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skills)
}

// Create handles POST /api/skills/add.
//
// @Summary      Add a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addSkillRequest  true  "Skill fields; star is 1-5"
// @Success      201   {object}  domain.Skill
// @Failure      400   {object}  errorResponse
// @Router       /api/skills/add [post]
func (h *SkillHandler) Create(c echo.Context) error {
	var req addSkillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	skill, err := h.service.Create(c.Request().Context(), req.Icon, req.Title, req.Star)
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("skill", "create").Inc()
	return c.JSON(http.StatusCreated, skill)
}

// Update handles PUT /api/skills/update/:id. Empty fields keep the stored
// values; star is validated when present.
//
// @Summary      Update a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Skill id"
// @Param        body  body      updateSkillRequest  true  "Fields to update"
// @Success      200   {object}  domain.Skill
// @Failure      404   {object}  errorResponse
// @Router       /api/skills/update/{id} [put]
func (h *SkillHandler) Update(c echo.Context) error {
	var req updateSkillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	skill, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.SkillPatch{
		Icon:  req.Icon,
		Title: req.Title,
		Star:  req.Star,
	})
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("skill", "update").Inc()
	return c.JSON(http.StatusOK, skill)
}

// Delete handles DELETE /api/skills/delete/:id.
//
// @Summary      Delete a skill
// @Tags         skills
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Skill id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  errorResponse
// @Router       /api/skills/delete/{id} [delete]
func (h *SkillHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.MutationsTotal.WithLabelValues("skill", "delete").Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "Skill deleted successfully"})
}
