package handlers

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/onurcolak/direct-message-service/internal/domain"
	"github.com/onurcolak/direct-message-service/internal/metrics"
	"github.com/onurcolak/direct-message-service/pkg/logger"
	"github.com/onurcolak/direct-message-service/pkg/response"
)

type historyStore interface {
	Load(ctx context.Context) []domain.HistoryEntry
	Clear(ctx context.Context) ([]domain.HistoryEntry, error)
	MaxSize() int
}

type HistoryHandler struct {
	store historyStore
}

func NewHistoryHandler(store historyStore) *HistoryHandler {
	return &HistoryHandler{store: store}
}

// GetHistory godoc
// @Summary List recent chats
// @Description Most recent first, capped at HISTORY_MAX_SIZE entries
// @Tags history
// @Produce json
// @Param x-api-key header string true "API key"
// @Success 200 {object} response.ListResponse{data=[]domain.HistoryEntry}
// @Router /api/v1/history [get]
func (h *HistoryHandler) GetHistory(c echo.Context) error {
	entries := h.store.Load(c.Request().Context())
	return response.List(c, entries, len(entries), h.store.MaxSize())
}

// ClearHistory godoc
// @Summary Clear recent chats
// @Description Requires confirm=true so the list is not wiped by accident
// @Tags history
// @Produce json
// @Param x-api-key header string true "API key"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/history [delete]
func (h *HistoryHandler) ClearHistory(c echo.Context) error {
	if c.QueryParam("confirm") != "true" {
		return response.BadRequestWithMessage(c, "clearing history requires confirm=true")
	}

	entries, err := h.store.Clear(c.Request().Context())
	if err != nil {
		metrics.StorageFailuresTotal.WithLabelValues("history").Inc()
		logger.Warnf("History cleared in memory only: %v", err)
		return response.OkWithMessage(c, "History cleared, but it could not be saved", entries)
	}

	return response.OkWithMessage(c, "History cleared", entries)
}
