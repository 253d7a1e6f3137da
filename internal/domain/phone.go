package domain

// PhoneNumber is the canonical form of a number entered by the user.
// NationalNumber holds digits only, without trunk zero, plus sign or calling code.
type PhoneNumber struct {
	CountryCallingCode string `json:"countryCallingCode"`
	NationalNumber     string `json:"nationalNumber"`
	IsoCountry         string `json:"isoCountry,omitempty"`
}

// Dialable returns the full international form, e.g. "+4471234567".
func (p PhoneNumber) Dialable() string {
	return "+" + p.Digits()
}

// Digits returns the dialable number without the leading plus sign.
func (p PhoneNumber) Digits() string {
	return p.CountryCallingCode + p.NationalNumber
}
