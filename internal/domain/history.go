package domain

import (
	"fmt"
	"strings"
)

type AppVariant string

const (
	AppPrimary  AppVariant = "primary"
	AppBusiness AppVariant = "business"
)

// ParseAppVariant accepts the canonical names as well as the legacy "whatsapp" label.
func ParseAppVariant(s string) (AppVariant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "primary", "whatsapp":
		return AppPrimary, nil
	case "business", "whatsapp-business":
		return AppBusiness, nil
	}
	return "", fmt.Errorf("unknown app variant %q", s)
}

func (v AppVariant) DisplayName() string {
	if v == AppBusiness {
		return "WhatsApp Business"
	}
	return "WhatsApp"
}

// HistoryEntry is one past send or scanned link.
// Key is the dialable number for number sends and the raw link for link sends.
type HistoryEntry struct {
	Key            string     `json:"key"`
	DisplayMessage string     `json:"displayMessage"`
	Timestamp      string     `json:"timestamp"`
	AppVariant     AppVariant `json:"appVariant"`
}
