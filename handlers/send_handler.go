package handlers

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/onurcolak/direct-message-service/internal/domain"
	"github.com/onurcolak/direct-message-service/internal/service"
	"github.com/onurcolak/direct-message-service/pkg/response"
	"github.com/onurcolak/direct-message-service/pkg/validator"
)

type sender interface {
	Send(ctx context.Context, req service.SendRequest) (domain.HistoryEntry, error)
}

type SendHandler struct {
	service sender
}

func NewSendHandler(service sender) *SendHandler {
	return &SendHandler{service: service}
}

type SendMessageRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,max=32"`
	CallingCode string `json:"callingCode" validate:"required,calling_code"`
	IsoCountry  string `json:"isoCountry,omitempty" validate:"omitempty,len=2,alpha"`
	Message     string `json:"message" validate:"max=4096"`
	AppVariant  string `json:"appVariant,omitempty" validate:"app_variant"`
}

// SendMessage godoc
// @Summary Open a chat with a phone number
// @Description Normalizes the number, opens the chat app through the device bridge and records the send in history
// @Tags messages
// @Accept json
// @Produce json
// @Param x-api-key header string true "API key"
// @Param message body SendMessageRequest true "Number, calling code and optional message"
// @Success 200 {object} response.SuccessResponse{data=domain.HistoryEntry}
// @Failure 400 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /api/v1/messages/send [post]
func (h *SendHandler) SendMessage(c echo.Context) error {
	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return validator.HandleValidationError(c, err)
	}

	// Already checked by the app_variant tag.
	variant, _ := domain.ParseAppVariant(req.AppVariant)

	entry, err := h.service.Send(c.Request().Context(), service.SendRequest{
		RawInput:    req.PhoneNumber,
		CallingCode: req.CallingCode,
		IsoCountry:  req.IsoCountry,
		Message:     req.Message,
		AppVariant:  variant,
	})
	if err != nil {
		return respondError(c, err)
	}

	return response.OkWithMessage(c, "Chat opened in "+variant.DisplayName(), entry)
}
