package deeplink

import (
	"net/url"
	"strings"

	"github.com/onurcolak/direct-message-service/internal/domain"
)

const (
	PrimaryScheme  = "whatsapp"
	BusinessScheme = "whatsapp-business"
)

// Scheme returns the URL scheme that launches the given app variant.
func Scheme(variant domain.AppVariant) string {
	if variant == domain.AppBusiness {
		return BusinessScheme
	}
	return PrimaryScheme
}

// Build returns "<scheme>://send?phone=<digits>&text=<encoded>".
func Build(variant domain.AppVariant, number domain.PhoneNumber, text string) string {
	var b strings.Builder
	b.WriteString(Scheme(variant))
	b.WriteString("://send?phone=")
	b.WriteString(number.Digits())
	b.WriteString("&text=")
	b.WriteString(EncodeComponent(text))
	return b.String()
}

// EncodeComponent percent-encodes s the way JavaScript's encodeURIComponent
// does, so spaces become %20 rather than "+".
func EncodeComponent(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	for _, keep := range []struct{ from, to string }{
		{"%21", "!"}, {"%27", "'"}, {"%28", "("}, {"%29", ")"}, {"%2A", "*"},
	} {
		escaped = strings.ReplaceAll(escaped, keep.from, keep.to)
	}
	return escaped
}
