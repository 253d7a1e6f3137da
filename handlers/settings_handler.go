package handlers

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/onurcolak/direct-message-service/internal/domain"
	"github.com/onurcolak/direct-message-service/internal/metrics"
	"github.com/onurcolak/direct-message-service/pkg/logger"
	"github.com/onurcolak/direct-message-service/pkg/response"
	"github.com/onurcolak/direct-message-service/pkg/validator"
)

type settingsStore interface {
	Load(ctx context.Context) domain.Settings
	SaveDarkMode(ctx context.Context, enabled bool) (domain.Settings, error)
}

type SettingsHandler struct {
	store settingsStore
}

func NewSettingsHandler(store settingsStore) *SettingsHandler {
	return &SettingsHandler{store: store}
}

type UpdateSettingsRequest struct {
	DarkMode *bool `json:"darkMode" validate:"required"`
}

// GetSettings godoc
// @Summary Get user settings
// @Tags settings
// @Produce json
// @Param x-api-key header string true "API key"
// @Success 200 {object} response.SuccessResponse{data=domain.Settings}
// @Router /api/v1/settings [get]
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	return response.Ok(c, h.store.Load(c.Request().Context()))
}

// UpdateSettings godoc
// @Summary Update user settings
// @Tags settings
// @Accept json
// @Produce json
// @Param x-api-key header string true "API key"
// @Param request body UpdateSettingsRequest true "New settings"
// @Success 200 {object} response.SuccessResponse{data=domain.Settings}
// @Failure 422 {object} response.ErrorResponse
// @Router /api/v1/settings [put]
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return validator.HandleValidationError(c, err)
	}

	settings, err := h.store.SaveDarkMode(c.Request().Context(), *req.DarkMode)
	if err != nil {
		metrics.StorageFailuresTotal.WithLabelValues("settings").Inc()
		logger.Warnf("Settings kept in memory only: %v", err)
		return response.OkWithMessage(c, "Settings applied, but they could not be saved", settings)
	}

	return response.Ok(c, settings)
}
