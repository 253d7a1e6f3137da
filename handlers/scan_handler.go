package handlers

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/onurcolak/direct-message-service/internal/domain"
	"github.com/onurcolak/direct-message-service/internal/qr"
	"github.com/onurcolak/direct-message-service/internal/service"
	"github.com/onurcolak/direct-message-service/pkg/response"
	"github.com/onurcolak/direct-message-service/pkg/validator"
)

type scanner interface {
	Classify(payload string) domain.ScanIntent
	HandleScan(ctx context.Context, payload string, variant domain.AppVariant) (service.ScanResult, error)
}

type scannerControl interface {
	Enable()
	Disable()
	SetFlashlight(on bool)
	Status() qr.GateStatus
}

type ScanHandler struct {
	service scanner
	gate    scannerControl
}

func NewScanHandler(service scanner, gate scannerControl) *ScanHandler {
	return &ScanHandler{service: service, gate: gate}
}

type ScanRequest struct {
	Payload    string `json:"payload" validate:"required,max=2048"`
	AppVariant string `json:"appVariant,omitempty" validate:"app_variant"`
}

type FlashlightRequest struct {
	On *bool `json:"on" validate:"required"`
}

// Scan godoc
// @Summary Handle a scanned QR payload
// @Description Classifies the payload and opens links right away. Number targets are returned so the client can prefill the compose form.
// @Tags scan
// @Accept json
// @Produce json
// @Param x-api-key header string true "API key"
// @Param scan body ScanRequest true "Raw QR payload"
// @Success 200 {object} response.SuccessResponse{data=service.ScanResult}
// @Failure 422 {object} response.ErrorResponse
// @Failure 429 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /api/v1/scan [post]
func (h *ScanHandler) Scan(c echo.Context) error {
	var req ScanRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return validator.HandleValidationError(c, err)
	}

	variant, _ := domain.ParseAppVariant(req.AppVariant)

	result, err := h.service.HandleScan(c.Request().Context(), req.Payload, variant)
	if err != nil {
		if errors.Is(err, domain.ErrUnrecognizedPayload) {
			return response.UnprocessableEntityWithData(c, err, result.Intent)
		}
		return respondError(c, err)
	}

	if !result.Opened {
		return response.OkWithMessage(c, "Number scanned, complete the message to send", result)
	}

	return response.OkWithMessage(c, "Link opened", result)
}

// Classify godoc
// @Summary Classify a QR payload
// @Description Returns the intent of a payload without opening anything or touching the scanner cool-down
// @Tags scan
// @Accept json
// @Produce json
// @Param x-api-key header string true "API key"
// @Param scan body ScanRequest true "Raw QR payload"
// @Success 200 {object} response.SuccessResponse{data=domain.ScanIntent}
// @Failure 422 {object} response.ErrorResponse
// @Router /api/v1/scan/classify [post]
func (h *ScanHandler) Classify(c echo.Context) error {
	var req ScanRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return validator.HandleValidationError(c, err)
	}

	return response.Ok(c, h.service.Classify(req.Payload))
}

// GetScannerStatus godoc
// @Summary Get scanner status
// @Tags scanner
// @Produce json
// @Param x-api-key header string true "API key"
// @Success 200 {object} response.SuccessResponse{data=qr.GateStatus}
// @Router /api/v1/scanner/status [get]
func (h *ScanHandler) GetScannerStatus(c echo.Context) error {
	return response.Ok(c, h.gate.Status())
}

// EnableScanner godoc
// @Summary Enable scanning
// @Tags scanner
// @Produce json
// @Param x-api-key header string true "API key"
// @Success 200 {object} response.SuccessResponse{data=qr.GateStatus}
// @Router /api/v1/scanner/enable [post]
func (h *ScanHandler) EnableScanner(c echo.Context) error {
	h.gate.Enable()
	return response.OkWithMessage(c, "Scanner enabled", h.gate.Status())
}

// DisableScanner godoc
// @Summary Disable scanning
// @Description Scans are rejected until the scanner is enabled again
// @Tags scanner
// @Produce json
// @Param x-api-key header string true "API key"
// @Success 200 {object} response.SuccessResponse{data=qr.GateStatus}
// @Router /api/v1/scanner/disable [post]
func (h *ScanHandler) DisableScanner(c echo.Context) error {
	h.gate.Disable()
	return response.OkWithMessage(c, "Scanner disabled", h.gate.Status())
}

// SetFlashlight godoc
// @Summary Toggle the flashlight
// @Tags scanner
// @Accept json
// @Produce json
// @Param x-api-key header string true "API key"
// @Param request body FlashlightRequest true "Flashlight state"
// @Success 200 {object} response.SuccessResponse{data=qr.GateStatus}
// @Failure 422 {object} response.ErrorResponse
// @Router /api/v1/scanner/flashlight [post]
func (h *ScanHandler) SetFlashlight(c echo.Context) error {
	var req FlashlightRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return validator.HandleValidationError(c, err)
	}

	h.gate.SetFlashlight(*req.On)
	return response.Ok(c, h.gate.Status())
}
