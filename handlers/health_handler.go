package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health checks.
type HealthHandler struct {
	storageBackend string
	storage        pinger
	opener         pinger
	checkTimeout   time.Duration
}

func NewHealthHandler(storageBackend string, storage pinger, opener pinger) *HealthHandler {
	return &HealthHandler{
		storageBackend: storageBackend,
		storage:        storage,
		opener:         opener,
		checkTimeout:   2 * time.Second,
	}
}

// Health returns overall status and basic component statuses (storage and device bridge).
// @Summary Health check
// @Description Returns overall status with storage and URL-opener connectivity results
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.checkTimeout)
	defer cancel()

	overallStatus := "ok"

	// Without a bridge nothing can be opened.
	openerStatus := "up"
	if h.opener == nil {
		openerStatus = "down"
		overallStatus = "down"
	} else if err := h.opener.Ping(ctx); err != nil {
		openerStatus = "down"
		overallStatus = "down"
	}

	// History still works in memory when storage is gone.
	storageStatus := "up"
	if h.storage == nil {
		storageStatus = "down"
	} else if err := h.storage.Ping(ctx); err != nil {
		storageStatus = "down"
	}
	if storageStatus == "down" && overallStatus == "ok" {
		overallStatus = "degraded"
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":    overallStatus,
		"timestamp": time.Now().Format(time.RFC3339),
		"components": map[string]any{
			"storage": map[string]any{
				"backend": h.storageBackend,
				"status":  storageStatus,
			},
			"opener": map[string]any{
				"status": openerStatus,
			},
		},
	})
}
