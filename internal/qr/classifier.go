package qr

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/onurcolak/direct-message-service/internal/domain"
)

const ReasonUnrecognized = "unrecognized QR payload"

// Patterns match anywhere in the payload, so codes that wrap a link in text
// ("Chat with us: https://wa.me/...") still classify. \b keeps look-alike
// hosts such as evilwa.me out.
var (
	qrSharePattern     = regexp.MustCompile(`(?i)\b(?:https?://)?(?:www\.)?wa\.me/qr/[A-Za-z0-9_-]+`)
	numericPattern     = regexp.MustCompile(`(?i)\b(?:https?://)?(?:www\.)?wa\.me/\+?(\d+)(?:[/?#\s]|$)`)
	apiSendPattern     = regexp.MustCompile(`(?i)\b(?:https?://)?api\.whatsapp\.com/send/?\?(?:[^#\s]*&)?phone=\+?(\d+)`)
	businessMsgPattern = regexp.MustCompile(`(?i)\b(?:https?://)?(?:www\.)?wa\.me/message/[A-Za-z0-9_-]+`)
)

// rule pairs a payload pattern with the intent it produces. Rules are
// evaluated in slice order and the first match wins, because the patterns
// overlap (wa.me/qr/..., wa.me/<digits>, wa.me/message/...).
type rule struct {
	name    string
	pattern *regexp.Regexp
	build   func(payload string, match []string) domain.ScanIntent
}

// Classifier maps scanned QR payloads to intents. It holds no mutable state.
type Classifier struct {
	countries []domain.CountryEntry
	rules     []rule
}

func NewClassifier(countries []domain.CountryEntry) *Classifier {
	c := &Classifier{countries: countries}
	c.rules = []rule{
		{
			name:    "qr_share",
			pattern: qrSharePattern,
			build: func(payload string, match []string) domain.ScanIntent {
				return domain.DirectLink(ensureHTTPS(linkFrom(payload, match)))
			},
		},
		{
			name:    "numeric_target",
			pattern: numericPattern,
			build:   c.numberTarget,
		},
		{
			name:    "api_send_target",
			pattern: apiSendPattern,
			build:   c.numberTarget,
		},
		{
			name:    "business_message",
			pattern: businessMsgPattern,
			build: func(payload string, match []string) domain.ScanIntent {
				return domain.BusinessLink(ensureHTTPS(linkFrom(payload, match)))
			},
		},
	}
	return c
}

func (c *Classifier) Classify(payload string) domain.ScanIntent {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return domain.Invalid(ReasonUnrecognized)
	}

	for _, r := range c.rules {
		if m := r.pattern.FindStringSubmatch(payload); m != nil {
			return r.build(payload, m)
		}
	}

	return domain.Invalid(ReasonUnrecognized)
}

// RuleNames lists the rules in evaluation order.
func (c *Classifier) RuleNames() []string {
	names := make([]string, 0, len(c.rules))
	for _, r := range c.rules {
		names = append(names, r.name)
	}
	return names
}

func (c *Classifier) numberTarget(_ string, match []string) domain.ScanIntent {
	code, national := SplitCallingCode(match[1], c.countries)
	return domain.NumberTarget(code, national)
}

// SplitCallingCode splits a digit run into calling code and national number
// using the longest known calling code that prefixes it. When none matches
// the calling code is empty and the whole run is returned as national number.
func SplitCallingCode(digits string, countries []domain.CountryEntry) (string, string) {
	best := ""
	for _, c := range countries {
		code := c.CallingCode
		if len(code) > len(best) && len(code) < len(digits) && strings.HasPrefix(digits, code) {
			best = code
		}
	}
	return best, digits[len(best):]
}

// linkFrom cuts the link out of the payload: from the match up to the next
// whitespace, so a query string survives and surrounding text does not.
func linkFrom(payload string, match []string) string {
	link := payload[strings.Index(payload, match[0]):]
	if end := strings.IndexFunc(link, unicode.IsSpace); end >= 0 {
		link = link[:end]
	}
	return link
}

func ensureHTTPS(link string) string {
	lower := strings.ToLower(link)
	switch {
	case strings.HasPrefix(lower, "https://"):
		return link
	case strings.HasPrefix(lower, "http://"):
		return "https://" + link[len("http://"):]
	default:
		return "https://" + link
	}
}
