package domain

import "strings"

// CountryEntry is one selectable calling code. Several regions share a code
// (North America uses "1" with the area code in the national number).
type CountryEntry struct {
	CallingCode  string `json:"callingCode"`
	DisplayLabel string `json:"displayLabel"`
	IsoCode      string `json:"isoCode,omitempty"`
}

var countries = []CountryEntry{
	{CallingCode: "1", DisplayLabel: "USA (+1)", IsoCode: "US"},
	{CallingCode: "44", DisplayLabel: "UK (+44)", IsoCode: "GB"},
	{CallingCode: "91", DisplayLabel: "India (+91)", IsoCode: "IN"},
	{CallingCode: "86", DisplayLabel: "China (+86)", IsoCode: "CN"},
	{CallingCode: "81", DisplayLabel: "Japan (+81)", IsoCode: "JP"},
	{CallingCode: "49", DisplayLabel: "Germany (+49)", IsoCode: "DE"},
	{CallingCode: "33", DisplayLabel: "France (+33)", IsoCode: "FR"},
	{CallingCode: "55", DisplayLabel: "Brazil (+55)", IsoCode: "BR"},
	{CallingCode: "1", DisplayLabel: "Canada (+1)", IsoCode: "CA"},
	{CallingCode: "1", DisplayLabel: "Antigua and Barbuda (+1 268)", IsoCode: "AG"},
	{CallingCode: "90", DisplayLabel: "Turkey (+90)", IsoCode: "TR"},
	{CallingCode: "34", DisplayLabel: "Spain (+34)", IsoCode: "ES"},
	{CallingCode: "39", DisplayLabel: "Italy (+39)", IsoCode: "IT"},
	{CallingCode: "52", DisplayLabel: "Mexico (+52)", IsoCode: "MX"},
	{CallingCode: "234", DisplayLabel: "Nigeria (+234)", IsoCode: "NG"},
	{CallingCode: "971", DisplayLabel: "UAE (+971)", IsoCode: "AE"},
}

// Countries returns a copy of the built-in country list.
func Countries() []CountryEntry {
	out := make([]CountryEntry, len(countries))
	copy(out, countries)
	return out
}

// FindCountryByISO looks up an entry by ISO 3166-1 alpha-2 code, case-insensitively.
func FindCountryByISO(list []CountryEntry, iso string) (CountryEntry, bool) {
	iso = strings.ToUpper(strings.TrimSpace(iso))
	if iso == "" {
		return CountryEntry{}, false
	}
	for _, c := range list {
		if c.IsoCode == iso {
			return c, true
		}
	}
	return CountryEntry{}, false
}
