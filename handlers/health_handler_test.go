package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/onurcolak/direct-message-service/pkg/kvstore"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(ctx context.Context) error { return p.err }

func TestHealth_Statuses(t *testing.T) {
	down := stubPinger{err: errors.New("connection refused")}

	cases := []struct {
		name    string
		storage pinger
		opener  pinger
		want    string
	}{
		{"all up", kvstore.NewMemory(), stubPinger{}, "ok"},
		{"storage down", down, stubPinger{}, "degraded"},
		{"opener down", kvstore.NewMemory(), down, "down"},
		{"opener missing", kvstore.NewMemory(), nil, "down"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewHealthHandler("memory", tc.storage, tc.opener)

			c, rec := newJSONContext(echo.New(), http.MethodGet, "/health", "")
			if err := handler.Health(c); err != nil {
				t.Fatalf("Health returned error: %v", err)
			}

			var body struct {
				Status string `json:"status"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to unmarshal response body: %v", err)
			}
			if body.Status != tc.want {
				t.Fatalf("expected status %q, got %q", tc.want, body.Status)
			}
		})
	}
}
