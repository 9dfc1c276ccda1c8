package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devport/portfolio-api/internal/api/metrics"
	"github.com/devport/portfolio-api/internal/core/domain"
	"github.com/devport/portfolio-api/internal/core/ports"
	"github.com/devport/portfolio-api/internal/infrastructure/upload"
)

// ProjectHandler handles project CRUD. Create and update accept
// multipart/form-data: text fields plus an optional thumbnail file and up to
// thirty screenshot files.
type ProjectHandler struct {
	service ports.ProjectService
	stager  *upload.Stager
}

func NewProjectHandler(service ports.ProjectService, stager *upload.Stager) *ProjectHandler {
	return &ProjectHandler{service: service, stager: stager}
}

// List handles GET /api/projects.
//
// @Summary      List all projects
// @Tags         projects
// @Produce      json
// @Success      200  {array}  domain.Project
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Get handles GET /api/projects/:projectId.
//
// @Summary      Get a project by id
// @Tags         projects
// @Produce      json
// @Param        projectId  path      string  true  "Project id"
// @Success      200        {object}  domain.Project
// @Failure      404        {object}  errorResponse
// @Router       /api/projects/{projectId} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.service.Get(c.Request().Context(), c.Param("projectId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Create handles POST /api/projects/add.
//
// @Summary      Add a project
// @Tags         projects
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title         formData  string  true   "Title"
// @Param        description   formData  string  true   "Description"
// @Param        technologies  formData  string  true   "Comma-separated technologies"
// @Param        demoLink      formData  string  false  "Demo URL"
// @Param        sourceLink    formData  string  false  "Source URL"
// @Param        thumbnailImg  formData  file    false  "Thumbnail image"
// @Param        screenshots   formData  file    false  "Screenshot images (up to 30)"
// @Success      201  {object}  domain.Project
// @Failure      400  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/projects/add [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	in, batch, err := h.stageInput(c)
	if err != nil {
		return err
	}
	// Staging copies are removed once the batch is relayed, whether the
	// request succeeds or fails.
	defer batch.Cleanup()

	project, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		countUploadError(err)
		return err
	}

	countRelayed(batch)
	metrics.MutationsTotal.WithLabelValues("project", "create").Inc()
	return c.JSON(http.StatusCreated, project)
}

// Update handles PUT /api/projects/update/:id. Empty form fields and absent
// files leave the stored values unchanged.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Project id"
// @Success      200  {object}  domain.Project
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/projects/update/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	in, batch, err := h.stageInput(c)
	if err != nil {
		return err
	}
	defer batch.Cleanup()

	project, err := h.service.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		countUploadError(err)
		return err
	}

	countRelayed(batch)
	metrics.MutationsTotal.WithLabelValues("project", "update").Inc()
	return c.JSON(http.StatusOK, project)
}

// Delete handles DELETE /api/projects/delete/:id.
//
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Project id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  errorResponse
// @Router       /api/projects/delete/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.MutationsTotal.WithLabelValues("project", "delete").Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}

// stageInput parses the multipart body and stages any uploaded files.
func (h *ProjectHandler) stageInput(c echo.Context) (ports.ProjectInput, *upload.Batch, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// Form-only submissions without any file part are still valid.
		form = &multipart.Form{File: map[string][]*multipart.FileHeader{}}
	}

	batch, err := h.stager.StageBatch(form)
	if err != nil {
		return ports.ProjectInput{}, nil, err
	}

	return ports.ProjectInput{
		Title:           c.FormValue("title"),
		Description:     c.FormValue("description"),
		Technologies:    c.FormValue("technologies"),
		DemoLink:        c.FormValue("demoLink"),
		SourceLink:      c.FormValue("sourceLink"),
		ThumbnailPath:   batch.ThumbnailPath,
		ScreenshotPaths: batch.ScreenshotPaths,
	}, batch, nil
}

func countRelayed(batch *upload.Batch) {
	if batch.ThumbnailPath != "" {
		metrics.ImagesRelayedTotal.WithLabelValues("thumbnail").Inc()
	}
	if n := len(batch.ScreenshotPaths); n > 0 {
		metrics.ImagesRelayedTotal.WithLabelValues("screenshot").Add(float64(n))
	}
}

func countUploadError(err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidFile):
		metrics.UploadErrorsTotal.WithLabelValues("invalid_file").Inc()
	case errors.Is(err, domain.ErrUploadFailed):
		metrics.UploadErrorsTotal.WithLabelValues("host_rejected").Inc()
	}
}
