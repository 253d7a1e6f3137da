package service

import (
	"context"
	"errors"
	"testing"

	"github.com/onurcolak/direct-message-service/internal/domain"
)

type fakeDetector struct {
	iso string
	err error
}

func (d *fakeDetector) DetectCountry(ctx context.Context) (string, error) {
	return d.iso, d.err
}

func TestDefaultCountry_UsesDetectedLocale(t *testing.T) {
	svc := NewCountryService(domain.Countries(), &fakeDetector{iso: "DE"})

	got := svc.DefaultCountry(context.Background())
	if got.CallingCode != "49" || got.IsoCode != "DE" {
		t.Fatalf("expected Germany, got %+v", got)
	}
}

func TestDefaultCountry_DetectionFailureFallsBack(t *testing.T) {
	svc := NewCountryService(domain.Countries(), &fakeDetector{err: errors.New("timeout")})

	got := svc.DefaultCountry(context.Background())
	if got.CallingCode != "1" || got.IsoCode != "US" {
		t.Fatalf("expected first listed country, got %+v", got)
	}
}

func TestDefaultCountry_NoDetector(t *testing.T) {
	svc := NewCountryService(domain.Countries(), nil)

	if got := svc.DefaultCountry(context.Background()); got.IsoCode != "US" {
		t.Fatalf("expected US fallback, got %+v", got)
	}
}

func TestLookup_SynthesizesUnlistedRegion(t *testing.T) {
	svc := NewCountryService(domain.Countries(), nil)

	got, ok := svc.Lookup("NL")
	if !ok {
		t.Fatalf("expected NL to be resolved via phone metadata")
	}
	if got.CallingCode != "31" {
		t.Fatalf("expected calling code 31, got %q", got.CallingCode)
	}

	if _, ok := svc.Lookup("ZZ"); ok {
		t.Fatalf("expected unknown region to be rejected")
	}
}
