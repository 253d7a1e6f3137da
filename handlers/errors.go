package handlers

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/onurcolak/direct-message-service/internal/domain"
	"github.com/onurcolak/direct-message-service/pkg/response"
)

// respondError maps domain errors to HTTP statuses.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidNumber):
		return response.UnprocessableEntity(c, err)
	case errors.Is(err, domain.ErrAppUnavailable):
		return response.ServiceUnavailable(c, err)
	case errors.Is(err, domain.ErrScanSuppressed):
		return response.TooManyRequests(c, err)
	default:
		return response.InternalServerError(c, err)
	}
}
