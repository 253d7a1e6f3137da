package phone

import (
	"errors"
	"testing"

	"github.com/onurcolak/direct-message-service/internal/domain"
)

type fakeValidator struct {
	valid bool
	calls []string
}

func (v *fakeValidator) IsValid(e164, isoCountry string) bool {
	v.calls = append(v.calls, e164+"|"+isoCountry)
	return v.valid
}

func assertReason(t *testing.T, err error, reason string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected InvalidNumberError(%q), got nil", reason)
	}
	if !errors.Is(err, domain.ErrInvalidNumber) {
		t.Fatalf("expected error to wrap ErrInvalidNumber, got %v", err)
	}

	var invalid *domain.InvalidNumberError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidNumberError, got %T", err)
	}
	if invalid.Reason != reason {
		t.Fatalf("expected reason %q, got %q", reason, invalid.Reason)
	}
}

func TestNormalize_TrunkZeroStripped(t *testing.T) {
	n := NewNormalizer(nil)

	got, err := n.Normalize("071234567", "44", "")
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}

	if got.CountryCallingCode != "44" || got.NationalNumber != "71234567" {
		t.Fatalf("unexpected number: %+v", got)
	}
	if got.Dialable() != "+4471234567" {
		t.Fatalf("expected dialable +4471234567, got %s", got.Dialable())
	}
}

func TestNormalize_ZeroThenCallingCodeStrippedOnce(t *testing.T) {
	n := NewNormalizer(nil)

	cases := []struct {
		raw, code, want string
	}{
		{"0441234567", "44", "1234567"},
		{"044441234", "44", "441234"},
		{"0911234567", "91", "1234567"},
		{"01123456", "1", "123456"},
	}

	for _, tc := range cases {
		got, err := n.Normalize(tc.raw, tc.code, "")
		if err != nil {
			t.Fatalf("Normalize(%q, %q) returned error: %v", tc.raw, tc.code, err)
		}
		if got.NationalNumber != tc.want {
			t.Errorf("Normalize(%q, %q): expected national %q, got %q", tc.raw, tc.code, tc.want, got.NationalNumber)
		}
	}
}

func TestNormalize_PlusAndFormattingRemoved(t *testing.T) {
	n := NewNormalizer(nil)

	got, err := n.Normalize("+44 (7400) 123-456", "44", "")
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if got.NationalNumber != "7400123456" {
		t.Fatalf("expected national 7400123456, got %q", got.NationalNumber)
	}
}

func TestNormalize_EmptyRemainderIsInvalid(t *testing.T) {
	n := NewNormalizer(nil)

	cases := []struct {
		raw, code string
	}{
		{"0", "1"},
		{"", "1"},
		{"   ", "1"},
		{"+", "1"},
		{"0+", "1"},
		{"044", "44"},
	}

	for _, tc := range cases {
		_, err := n.Normalize(tc.raw, tc.code, "")
		assertReason(t, err, ReasonNonNumeric)
	}
}

func TestNormalize_NonNumericIsInvalid(t *testing.T) {
	n := NewNormalizer(nil)

	_, err := n.Normalize("555-CALL-NOW", "1", "")
	assertReason(t, err, ReasonNonNumeric)
}

func TestNormalize_LeadingZeroAfterStripping(t *testing.T) {
	n := NewNormalizer(nil)

	_, err := n.Normalize("0044123456", "44", "")
	assertReason(t, err, ReasonLeadingZero)
}

func TestNormalize_StructuralLength(t *testing.T) {
	n := NewNormalizer(nil)

	_, err := n.Normalize("123", "44", "")
	assertReason(t, err, ReasonInvalidLength)

	_, err = n.Normalize("1234567890123456", "1", "")
	assertReason(t, err, ReasonInvalidLength)
}

func TestNormalize_InvalidCallingCode(t *testing.T) {
	n := NewNormalizer(nil)

	for _, code := range []string{"", "abc", "1234"} {
		_, err := n.Normalize("71234567", code, "")
		assertReason(t, err, ReasonInvalidCode)
	}
}

func TestNormalize_UsesValidatorWhenCountryKnown(t *testing.T) {
	v := &fakeValidator{valid: false}
	n := NewNormalizer(v)

	_, err := n.Normalize("071234567", "44", "gb")
	assertReason(t, err, ReasonNotValidCountry)

	if len(v.calls) != 1 || v.calls[0] != "+4471234567|GB" {
		t.Fatalf("unexpected validator calls: %v", v.calls)
	}
}

func TestNormalize_SkipsValidatorWithoutCountry(t *testing.T) {
	v := &fakeValidator{valid: false}
	n := NewNormalizer(v)

	if _, err := n.Normalize("071234567", "44", ""); err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if len(v.calls) != 0 {
		t.Fatalf("expected validator not to be called, got %v", v.calls)
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	n := NewNormalizer(nil)

	a, errA := n.Normalize("0 7123 4567", "44", "GB")
	b, errB := n.Normalize("0 7123 4567", "44", "GB")
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors: %v, %v", errA, errB)
	}
	if a != b {
		t.Fatalf("expected identical results, got %+v and %+v", a, b)
	}
}

func TestLibValidator(t *testing.T) {
	v := LibValidator{}

	if !v.IsValid("+447400123456", "GB") {
		t.Errorf("expected +447400123456 to be a valid GB number")
	}
	if !v.IsValid("+12015550123", "US") {
		t.Errorf("expected +12015550123 to be a valid US number")
	}
	if v.IsValid("+4412345", "GB") {
		t.Errorf("expected +4412345 to be rejected for GB")
	}
	if v.IsValid("+447400123456", "US") {
		t.Errorf("expected GB number to be rejected for US")
	}
}

func TestNormalize_WithLibValidator(t *testing.T) {
	n := NewNormalizer(LibValidator{})

	got, err := n.Normalize("07400 123456", "44", "GB")
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if got.Dialable() != "+447400123456" {
		t.Fatalf("expected +447400123456, got %s", got.Dialable())
	}

	_, err = n.Normalize("12345", "44", "GB")
	assertReason(t, err, ReasonNotValidCountry)
}

func TestCallingCodeForRegion(t *testing.T) {
	if got := CallingCodeForRegion("gb"); got != "44" {
		t.Errorf("expected 44, got %q", got)
	}
	if got := CallingCodeForRegion("ZZ"); got != "" {
		t.Errorf("expected empty code for unknown region, got %q", got)
	}
}

func TestNormalize_AcceptsEveryListedCountry(t *testing.T) {
	n := NewNormalizer(nil)

	for _, c := range domain.Countries() {
		if got := CallingCodeForRegion(c.IsoCode); got != c.CallingCode {
			t.Errorf("%s: listed calling code %q, phone metadata says %q", c.IsoCode, c.CallingCode, got)
		}

		got, err := n.Normalize("4601234", c.CallingCode, "")
		if err != nil {
			t.Errorf("%s: expected calling code %q to be accepted, got %v", c.IsoCode, c.CallingCode, err)
			continue
		}
		if got.Dialable() != "+"+c.CallingCode+"4601234" {
			t.Errorf("%s: unexpected dialable %s", c.IsoCode, got.Dialable())
		}
	}
}
