package phone

import (
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/onurcolak/direct-message-service/internal/domain"
)

const (
	minNationalDigits = 4
	maxTotalDigits    = 15 // E.164
	maxCallingCode    = 3
)

const (
	ReasonNonNumeric      = "non-numeric"
	ReasonLeadingZero     = "leading zero"
	ReasonInvalidLength   = "invalid length"
	ReasonInvalidCode     = "invalid calling code"
	ReasonNotValidCountry = "not a valid number for country"
)

type numberValidator interface {
	IsValid(e164, isoCountry string) bool
}

// Normalizer turns user input plus a selected calling code into a PhoneNumber.
// A nil validator limits checks to structure and length.
type Normalizer struct {
	validator numberValidator
}

func NewNormalizer(validator numberValidator) *Normalizer {
	return &Normalizer{validator: validator}
}

func (n *Normalizer) Normalize(rawInput, callingCode, isoCountry string) (domain.PhoneNumber, error) {
	callingCode = strings.TrimPrefix(strings.TrimSpace(callingCode), "+")
	if callingCode == "" || len(callingCode) > maxCallingCode || !isDigits(callingCode) {
		return domain.PhoneNumber{}, &domain.InvalidNumberError{Reason: ReasonInvalidCode}
	}

	digits := stripFormatting(rawInput)
	digits = strings.TrimPrefix(digits, "0")
	digits = strings.TrimPrefix(digits, "+")
	digits = strings.TrimPrefix(digits, callingCode)

	if digits == "" || !isDigits(digits) {
		return domain.PhoneNumber{}, &domain.InvalidNumberError{Reason: ReasonNonNumeric}
	}
	if digits[0] == '0' {
		return domain.PhoneNumber{}, &domain.InvalidNumberError{Reason: ReasonLeadingZero}
	}

	isoCountry = strings.ToUpper(strings.TrimSpace(isoCountry))
	number := domain.PhoneNumber{
		CountryCallingCode: callingCode,
		NationalNumber:     digits,
		IsoCountry:         isoCountry,
	}

	if n.validator != nil && isoCountry != "" {
		if !n.validator.IsValid(number.Dialable(), isoCountry) {
			return domain.PhoneNumber{}, &domain.InvalidNumberError{Reason: ReasonNotValidCountry}
		}
		return number, nil
	}

	if len(digits) < minNationalDigits || len(callingCode)+len(digits) > maxTotalDigits {
		return domain.PhoneNumber{}, &domain.InvalidNumberError{Reason: ReasonInvalidLength}
	}

	return number, nil
}

func stripFormatting(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\u00a0', '-', '.', '(', ')', '/':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// LibValidator checks numbers against libphonenumber metadata.
type LibValidator struct{}

func (LibValidator) IsValid(e164, isoCountry string) bool {
	num, err := phonenumbers.Parse(e164, isoCountry)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumberForRegion(num, isoCountry)
}

// CallingCodeForRegion returns the calling code libphonenumber knows for an
// ISO region, or "" if the region is unknown.
func CallingCodeForRegion(isoCountry string) string {
	code := phonenumbers.GetCountryCodeForRegion(strings.ToUpper(isoCountry))
	if code == 0 {
		return ""
	}
	return strconv.Itoa(code)
}
