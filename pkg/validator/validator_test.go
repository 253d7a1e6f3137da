package validator

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type sampleRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

func TestCustomValidator_ValidateReturnsValidationError(t *testing.T) {
	cv := New()

	req := sampleRequest{
		// Name and Phone left empty to trigger validation errors
	}

	err := cv.Validate(req)
	if err == nil {
		t.Fatalf("expected validation error, got nil")
	}

	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}

	if len(ve.Errors) == 0 {
		t.Fatalf("expected at least one validation error, got none")
	}

	if _, exists := ve.Errors["name"]; !exists {
		t.Errorf("expected 'name' to be in validation errors")
	}
	if _, exists := ve.Errors["phone"]; !exists {
		t.Errorf("expected 'phone' to be in validation errors")
	}
}

func TestHandleValidationError_Returns422WithDetails(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	c := e.NewContext(req, rec)

	cv := New()
	err := cv.Validate(sampleRequest{})

	if err == nil {
		t.Fatalf("expected validation error, got nil")
	}

	if err := HandleValidationError(c, err); err != nil {
		t.Fatalf("HandleValidationError returned error: %v", err)
	}

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rec.Code)
	}

	var body ValidationErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if body.Success {
		t.Errorf("expected Success=false, got true")
	}
	if body.Error != "Validation failed" {
		t.Errorf("expected error='Validation failed', got %q", body.Error)
	}
	if len(body.Details) == 0 {
		t.Fatalf("expected details in validation response, got none")
	}
}

type composeRequest struct {
	CallingCode string `json:"callingCode" validate:"required,calling_code"`
	AppVariant  string `json:"appVariant" validate:"app_variant"`
}

func TestCustomValidator_CallingCode(t *testing.T) {
	cv := New()

	valid := []string{"1", "44", "+91", "971"}
	for _, code := range valid {
		if err := cv.Validate(composeRequest{CallingCode: code}); err != nil {
			t.Errorf("expected %q to pass, got %v", code, err)
		}
	}

	invalid := []string{"1268", "4a", "++1"}
	for _, code := range invalid {
		err := cv.Validate(composeRequest{CallingCode: code})
		ve, ok := err.(*ValidationError)
		if !ok {
			t.Fatalf("expected *ValidationError for %q, got %T", code, err)
		}
		if msg := ve.Errors["callingCode"]; msg != "callingCode must be a 1 to 3 digit calling code" {
			t.Errorf("unexpected message for %q: %q", code, msg)
		}
	}
}

func TestCustomValidator_AppVariant(t *testing.T) {
	cv := New()

	for _, variant := range []string{"", "primary", "business", "whatsapp", "WhatsApp-Business"} {
		if err := cv.Validate(composeRequest{CallingCode: "44", AppVariant: variant}); err != nil {
			t.Errorf("expected %q to pass, got %v", variant, err)
		}
	}

	err := cv.Validate(composeRequest{CallingCode: "44", AppVariant: "telegram"})
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if _, exists := ve.Errors["appVariant"]; !exists {
		t.Errorf("expected 'appVariant' to be in validation errors")
	}
}
