package service

import (
	"context"

	"github.com/onurcolak/direct-message-service/internal/domain"
	"github.com/onurcolak/direct-message-service/internal/phone"
	"github.com/onurcolak/direct-message-service/pkg/logger"
)

type countryDetector interface {
	DetectCountry(ctx context.Context) (string, error)
}

type CountryService struct {
	countries []domain.CountryEntry
	detector  countryDetector
}

// NewCountryService takes an optional detector; pass nil to skip locale detection.
func NewCountryService(countries []domain.CountryEntry, detector countryDetector) *CountryService {
	return &CountryService{countries: countries, detector: detector}
}

func (s *CountryService) List() []domain.CountryEntry {
	out := make([]domain.CountryEntry, len(s.countries))
	copy(out, s.countries)
	return out
}

// Lookup finds a country by ISO code. Regions missing from the list are
// synthesized from libphonenumber metadata when possible.
func (s *CountryService) Lookup(iso string) (domain.CountryEntry, bool) {
	if c, ok := domain.FindCountryByISO(s.countries, iso); ok {
		return c, true
	}

	if code := phone.CallingCodeForRegion(iso); code != "" {
		return domain.CountryEntry{
			CallingCode:  code,
			DisplayLabel: iso + " (+" + code + ")",
			IsoCode:      iso,
		}, true
	}

	return domain.CountryEntry{}, false
}

// DefaultCountry picks the country to preselect. Detection failures are
// ignored and the first listed country is used.
func (s *CountryService) DefaultCountry(ctx context.Context) domain.CountryEntry {
	fallback := domain.CountryEntry{CallingCode: "1", DisplayLabel: "USA (+1)", IsoCode: "US"}
	if len(s.countries) > 0 {
		fallback = s.countries[0]
	}

	if s.detector == nil {
		return fallback
	}

	iso, err := s.detector.DetectCountry(ctx)
	if err != nil {
		logger.Debugf("Locale detection failed, using %s: %v", fallback.IsoCode, err)
		return fallback
	}

	if c, ok := s.Lookup(iso); ok {
		return c
	}

	return fallback
}
