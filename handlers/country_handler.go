package handlers

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/onurcolak/direct-message-service/internal/domain"
	"github.com/onurcolak/direct-message-service/pkg/response"
)

type countryLister interface {
	List() []domain.CountryEntry
	Lookup(iso string) (domain.CountryEntry, bool)
	DefaultCountry(ctx context.Context) domain.CountryEntry
}

type CountryHandler struct {
	service countryLister
}

func NewCountryHandler(service countryLister) *CountryHandler {
	return &CountryHandler{service: service}
}

// GetCountries godoc
// @Summary List calling codes
// @Tags countries
// @Produce json
// @Param x-api-key header string true "API key"
// @Success 200 {object} response.SuccessResponse{data=[]domain.CountryEntry}
// @Router /api/v1/countries [get]
func (h *CountryHandler) GetCountries(c echo.Context) error {
	return response.Ok(c, h.service.List())
}

// GetDefaultCountry godoc
// @Summary Country to preselect
// @Description Uses IP based locale detection when enabled and falls back to the first listed country
// @Tags countries
// @Produce json
// @Param x-api-key header string true "API key"
// @Success 200 {object} response.SuccessResponse{data=domain.CountryEntry}
// @Router /api/v1/countries/default [get]
func (h *CountryHandler) GetDefaultCountry(c echo.Context) error {
	return response.Ok(c, h.service.DefaultCountry(c.Request().Context()))
}

// GetCountry godoc
// @Summary Look up a country by ISO code
// @Tags countries
// @Produce json
// @Param x-api-key header string true "API key"
// @Param iso path string true "ISO 3166-1 alpha-2 code"
// @Success 200 {object} response.SuccessResponse{data=domain.CountryEntry}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/countries/{iso} [get]
func (h *CountryHandler) GetCountry(c echo.Context) error {
	iso := strings.ToUpper(c.Param("iso"))

	country, ok := h.service.Lookup(iso)
	if !ok {
		return response.NotFound(c, "unknown country "+iso)
	}

	return response.Ok(c, country)
}

// GetTemplates godoc
// @Summary Quick message templates
// @Tags messages
// @Produce json
// @Param x-api-key header string true "API key"
// @Success 200 {object} response.SuccessResponse{data=[]string}
// @Router /api/v1/templates [get]
func (h *CountryHandler) GetTemplates(c echo.Context) error {
	return response.Ok(c, domain.MessageTemplates)
}
