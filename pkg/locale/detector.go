package locale

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/onurcolak/direct-message-service/environments"
)

// Detector infers the caller's country from network locality. The endpoint
// must answer with a bare ISO 3166-1 alpha-2 code, like https://ipapi.co/country/.
type Detector struct {
	httpClient *resty.Client
	url        string
}

// NewDetector returns nil when no URL is configured; callers treat a nil
// detector as "locale unknown".
func NewDetector(cfg environments.LocaleConfig) *Detector {
	if cfg.URL == "" {
		return nil
	}

	return &Detector{
		httpClient: resty.New().
			SetTimeout(cfg.Timeout).
			SetHeader("Accept", "text/plain"),
		url: cfg.URL,
	}
}

func (d *Detector) DetectCountry(ctx context.Context) (string, error) {
	resp, err := d.httpClient.R().SetContext(ctx).Get(d.url)
	if err != nil {
		return "", fmt.Errorf("failed to query locale service: %w", err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("locale service returned status %d", resp.StatusCode())
	}

	iso := strings.ToUpper(strings.TrimSpace(resp.String()))
	if len(iso) != 2 || iso[0] < 'A' || iso[0] > 'Z' || iso[1] < 'A' || iso[1] > 'Z' {
		return "", fmt.Errorf("locale service returned unexpected body %q", resp.String())
	}

	return iso, nil
}
