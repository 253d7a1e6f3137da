package domain

type IntentKind string

const (
	IntentDirectLink   IntentKind = "direct_link"
	IntentNumberTarget IntentKind = "number_target"
	IntentBusinessLink IntentKind = "business_link"
	IntentInvalid      IntentKind = "invalid"
)

// ScanIntent is the classified meaning of a scanned QR payload.
// Which fields are set depends on Kind.
type ScanIntent struct {
	Kind               IntentKind `json:"kind"`
	URL                string     `json:"url,omitempty"`
	CountryCallingCode string     `json:"countryCallingCode,omitempty"`
	NationalNumber     string     `json:"nationalNumber,omitempty"`
	Reason             string     `json:"reason,omitempty"`
}

func DirectLink(url string) ScanIntent {
	return ScanIntent{Kind: IntentDirectLink, URL: url}
}

func BusinessLink(url string) ScanIntent {
	return ScanIntent{Kind: IntentBusinessLink, URL: url}
}

func NumberTarget(callingCode, nationalNumber string) ScanIntent {
	return ScanIntent{
		Kind:               IntentNumberTarget,
		CountryCallingCode: callingCode,
		NationalNumber:     nationalNumber,
	}
}

func Invalid(reason string) ScanIntent {
	return ScanIntent{Kind: IntentInvalid, Reason: reason}
}

// IsLink reports whether the intent carries a URL to be opened verbatim.
func (i ScanIntent) IsLink() bool {
	return i.Kind == IntentDirectLink || i.Kind == IntentBusinessLink
}
