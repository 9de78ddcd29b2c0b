package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"recruitcms/internal/delivery/http/response"
	"recruitcms/internal/domain/service"
)

// StatusHandler reports service liveness and the readiness of slow-starting
// subsystems.
type StatusHandler struct {
	slugger service.SlugService
}

// NewStatusHandler is the constructor for StatusHandler, injected by Fx.
func NewStatusHandler(slugger service.SlugService) *StatusHandler {
	return &StatusHandler{slugger: slugger}
}

// Health handles GET /health. The transliteration engine loads its
// dictionary in the background, so its readiness is reported separately;
// the service is healthy either way because slug generation degrades to
// a fallback, it never blocks.
func (h *StatusHandler) Health(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"status":        "ok",
		"translitReady": h.slugger.Ready(),
	}, "Service is healthy")
}
