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

// NewsHandler holds dependencies for the news post handlers.
type NewsHandler struct {
	uc     usecase.NewsUsecase
	logger *slog.Logger
}

// NewNewsHandler is the constructor for NewsHandler, injected by Fx.
func NewNewsHandler(uc usecase.NewsUsecase, logger *slog.Logger) *NewsHandler {
	return &NewsHandler{uc: uc, logger: logger}
}

type newsRequest struct {
	Title     string `json:"title" validate:"required"`
	TitleJa   string `json:"titleJa"`
	Summary   string `json:"summary"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
}

func (r *newsRequest) toInput() *usecase.NewsInput {
	return &usecase.NewsInput{
		Title:     r.Title,
		TitleJa:   r.TitleJa,
		Summary:   r.Summary,
		Body:      r.Body,
		Published: r.Published,
	}
}

// List handles GET /api/news and returns published posts only.
func (h *NewsHandler) List(c echo.Context) error {
	posts, err := h.uc.List(c.Request().Context(), false)
	if err != nil {
		return errors.WithStack(err)
	}
	return response.Success(c, http.StatusOK, posts, "")
}

// ListAll handles GET /api/admin/news and includes drafts.
func (h *NewsHandler) ListAll(c echo.Context) error {
	posts, err := h.uc.List(c.Request().Context(), true)
	if err != nil {
		return errors.WithStack(err)
	}
	return response.Success(c, http.StatusOK, posts, "")
}

// GetBySlug handles GET /api/news/:slug. Either the romaji or the Japanese
// slug resolves the same post.
func (h *NewsHandler) GetBySlug(c echo.Context) error {
	post, err := h.uc.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}
	return response.Success(c, http.StatusOK, post, "")
}

// Create handles POST /api/news.
func (h *NewsHandler) Create(c echo.Context) error {
	var req newsRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid news post input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}
	return response.Success(c, http.StatusCreated, post, "News post created")
}

// Update handles PUT /api/news/:id.
func (h *NewsHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrNotFound)
	}

	var req newsRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid news post input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.uc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}
	return response.Success(c, http.StatusOK, post, "")
}

// Delete handles DELETE /api/news/:id.
func (h *NewsHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrNotFound)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}
	return response.Success(c, http.StatusOK, nil, "Deleted")
}
