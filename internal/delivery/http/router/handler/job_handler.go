package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"recruitcms/internal/delivery/http/response"
	domainerrors "recruitcms/internal/domain/errors"
	"recruitcms/internal/usecase"
)

// JobHandler holds dependencies for the job posting handlers.
type JobHandler struct {
	uc     usecase.JobUsecase
	logger *slog.Logger
}

// NewJobHandler is the constructor for JobHandler, injected by Fx.
func NewJobHandler(uc usecase.JobUsecase, logger *slog.Logger) *JobHandler {
	return &JobHandler{uc: uc, logger: logger}
}

type jobRequest struct {
	Title          string `json:"title" validate:"required"`
	TitleJa        string `json:"titleJa"`
	Department     string `json:"department"`
	Location       string `json:"location"`
	EmploymentType string `json:"employmentType"`
	Description    string `json:"description"`
	Open           bool   `json:"open"`
}

func (r *jobRequest) toInput() *usecase.JobInput {
	return &usecase.JobInput{
		Title:          r.Title,
		TitleJa:        r.TitleJa,
		Department:     r.Department,
		Location:       r.Location,
		EmploymentType: r.EmploymentType,
		Description:    r.Description,
		Open:           r.Open,
	}
}

// List handles GET /api/jobs and returns open postings only.
func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.uc.List(c.Request().Context(), false)
	if err != nil {
		return errors.WithStack(err)
	}
	return response.Success(c, http.StatusOK, jobs, "")
}

// ListAll handles GET /api/admin/jobs and includes closed postings.
func (h *JobHandler) ListAll(c echo.Context) error {
	jobs, err := h.uc.List(c.Request().Context(), true)
	if err != nil {
		return errors.WithStack(err)
	}
	return response.Success(c, http.StatusOK, jobs, "")
}

// GetBySlug handles GET /api/jobs/:slug.
func (h *JobHandler) GetBySlug(c echo.Context) error {
	job, err := h.uc.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}
	return response.Success(c, http.StatusOK, job, "")
}

// Create handles POST /api/jobs.
func (h *JobHandler) Create(c echo.Context) error {
	var req jobRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid job posting input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	job, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}
	return response.Success(c, http.StatusCreated, job, "Job posting created")
}

// Update handles PUT /api/jobs/:id.
func (h *JobHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrNotFound)
	}

	var req jobRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid job posting input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	job, err := h.uc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}
	return response.Success(c, http.StatusOK, job, "")
}

// Delete handles DELETE /api/jobs/:id.
func (h *JobHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrNotFound)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}
	return response.Success(c, http.StatusOK, nil, "Deleted")
}
