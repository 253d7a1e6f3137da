package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/onurcolak/direct-message-service/internal/domain"
	"github.com/onurcolak/direct-message-service/internal/service"
)

func TestGetCountry(t *testing.T) {
	handler := NewCountryHandler(service.NewCountryService(domain.Countries(), nil))
	e := echo.New()

	c, rec := newJSONContext(e, http.MethodGet, "/api/v1/countries/gb", "")
	c.SetParamNames("iso")
	c.SetParamValues("gb")

	if err := handler.GetCountry(c); err != nil {
		t.Fatalf("GetCountry returned error: %v", err)
	}

	var resp struct {
		Data domain.CountryEntry `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response body: %v", err)
	}
	if resp.Data.CallingCode != "44" {
		t.Fatalf("expected +44 for GB, got %+v", resp.Data)
	}

	c, rec = newJSONContext(e, http.MethodGet, "/api/v1/countries/zz", "")
	c.SetParamNames("iso")
	c.SetParamValues("zz")

	if err := handler.GetCountry(c); err != nil {
		t.Fatalf("GetCountry returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestGetDefaultCountry_WithoutDetector(t *testing.T) {
	handler := NewCountryHandler(service.NewCountryService(domain.Countries(), nil))

	c, rec := newJSONContext(echo.New(), http.MethodGet, "/api/v1/countries/default", "")
	if err := handler.GetDefaultCountry(c); err != nil {
		t.Fatalf("GetDefaultCountry returned error: %v", err)
	}

	var resp struct {
		Data domain.CountryEntry `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response body: %v", err)
	}
	if resp.Data.IsoCode != "US" {
		t.Fatalf("expected first listed country, got %+v", resp.Data)
	}
}

func TestGetTemplates(t *testing.T) {
	handler := NewCountryHandler(service.NewCountryService(domain.Countries(), nil))

	c, rec := newJSONContext(echo.New(), http.MethodGet, "/api/v1/templates", "")
	if err := handler.GetTemplates(c); err != nil {
		t.Fatalf("GetTemplates returned error: %v", err)
	}

	var resp struct {
		Data []string `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response body: %v", err)
	}
	if len(resp.Data) != len(domain.MessageTemplates) {
		t.Fatalf("expected %d templates, got %d", len(domain.MessageTemplates), len(resp.Data))
	}
}
