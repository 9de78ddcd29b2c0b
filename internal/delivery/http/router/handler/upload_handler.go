package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"recruitcms/internal/delivery/http/response"
	"recruitcms/internal/usecase"
)

// UploadHandler holds dependencies for the media upload handler.
type UploadHandler struct {
	uc     usecase.MediaUsecase
	logger *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(uc usecase.MediaUsecase, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{uc: uc, logger: logger}
}

// Upload handles POST /api/uploads. It expects a multipart form with a
// single "file" part and stores it in the configured bucket.
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "A file is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer src.Close()

	output, err := h.uc.Upload(c.Request().Context(), &usecase.UploadInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     src,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "File uploaded")
}
