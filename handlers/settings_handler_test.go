package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/onurcolak/direct-message-service/internal/domain"
	"github.com/onurcolak/direct-message-service/internal/settings"
	"github.com/onurcolak/direct-message-service/pkg/kvstore"
)

type unwritableKV struct{}

func (unwritableKV) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, nil
}

func (unwritableKV) Set(ctx context.Context, key, value string) error {
	return errors.New("read-only storage")
}

type settingsBody struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    domain.Settings `json:"data"`
}

func TestUpdateSettings_PersistsDarkMode(t *testing.T) {
	store := settings.NewStore(kvstore.NewMemory())
	handler := NewSettingsHandler(store)

	c, rec := newJSONContext(newValidatingEcho(), http.MethodPut, "/api/v1/settings", `{"darkMode": true}`)
	if err := handler.UpdateSettings(c); err != nil {
		t.Fatalf("UpdateSettings returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !store.Load(context.Background()).DarkMode {
		t.Fatalf("expected dark mode to be stored")
	}
}

func TestUpdateSettings_MissingFieldFailsValidation(t *testing.T) {
	handler := NewSettingsHandler(settings.NewStore(kvstore.NewMemory()))

	c, rec := newJSONContext(newValidatingEcho(), http.MethodPut, "/api/v1/settings", `{}`)
	if err := handler.UpdateSettings(c); err != nil {
		t.Fatalf("UpdateSettings returned error: %v", err)
	}

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rec.Code)
	}
}

func TestUpdateSettings_StorageFailureStillApplies(t *testing.T) {
	handler := NewSettingsHandler(settings.NewStore(unwritableKV{}))

	c, rec := newJSONContext(newValidatingEcho(), http.MethodPut, "/api/v1/settings", `{"darkMode": true}`)
	if err := handler.UpdateSettings(c); err != nil {
		t.Fatalf("UpdateSettings returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp settingsBody
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response body: %v", err)
	}
	if !resp.Data.DarkMode || resp.Message == "" {
		t.Fatalf("expected in-memory settings with a warning message, got %+v", resp)
	}
}

func TestGetSettings_Defaults(t *testing.T) {
	handler := NewSettingsHandler(settings.NewStore(kvstore.NewMemory()))

	c, rec := newJSONContext(newValidatingEcho(), http.MethodGet, "/api/v1/settings", "")
	if err := handler.GetSettings(c); err != nil {
		t.Fatalf("GetSettings returned error: %v", err)
	}

	var resp settingsBody
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response body: %v", err)
	}
	if resp.Data != domain.DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", resp.Data)
	}
}
