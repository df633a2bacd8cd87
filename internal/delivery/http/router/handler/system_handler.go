package handler

import (
	"net/http"
	"time"

	"hvacops/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SystemHandlerParams holds dependencies for SystemHandler.
type SystemHandlerParams struct {
	fx.In

	SettingsUC usecase.SettingsUsecase
}

// SystemHandler serves the health check, the resource index, and the
// read-only business settings.
type SystemHandler struct {
	settingsUC usecase.SettingsUsecase
}

// NewSystemHandler is the constructor for SystemHandler.
func NewSystemHandler(params SystemHandlerParams) *SystemHandler {
	return &SystemHandler{settingsUC: params.SettingsUC}
}

func (h *SystemHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Index lists the top-level resource paths.
func (h *SystemHandler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"resources": []string{
			"/customers",
			"/service-offerings",
			"/maintenance-plans",
			"/quote-requests",
			"/appointments",
			"/inspections",
			"/final-quotes",
			"/invoices",
			"/payments",
			"/parts-orders",
			"/business-settings",
		},
	})
}

func (h *SystemHandler) BusinessSettings(c echo.Context) error {
	settings, err := h.settingsUC.Get(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, settings)
}
