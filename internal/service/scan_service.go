package service

import (
	"context"
	"fmt"
	"time"

	"github.com/onurcolak/direct-message-service/internal/domain"
	"github.com/onurcolak/direct-message-service/internal/metrics"
	"github.com/onurcolak/direct-message-service/pkg/logger"
)

const (
	directLinkMessage   = "QR code link"
	businessLinkMessage = "Business message link"
)

type classifier interface {
	Classify(payload string) domain.ScanIntent
}

type scanGate interface {
	Allow() bool
}

type ScanResult struct {
	Intent domain.ScanIntent    `json:"intent"`
	Opened bool                 `json:"opened"`
	Entry  *domain.HistoryEntry `json:"entry,omitempty"`
}

// ScanService acts on scanned QR payloads. Links are opened straight away,
// including business message links; number targets are handed back so the
// caller can prefill the compose form.
type ScanService struct {
	classifier classifier
	gate       scanGate
	opener     urlOpener
	history    historyRecorder
	now        func() time.Time
}

func NewScanService(
	classifier classifier,
	gate scanGate,
	opener urlOpener,
	history historyRecorder,
) *ScanService {
	return &ScanService{
		classifier: classifier,
		gate:       gate,
		opener:     opener,
		history:    history,
		now:        time.Now,
	}
}

// Classify runs the classifier only, without gate, opener or history.
func (s *ScanService) Classify(payload string) domain.ScanIntent {
	return s.classifier.Classify(payload)
}

func (s *ScanService) HandleScan(ctx context.Context, payload string, variant domain.AppVariant) (ScanResult, error) {
	if !s.gate.Allow() {
		metrics.ScansTotal.WithLabelValues("suppressed").Inc()
		return ScanResult{}, domain.ErrScanSuppressed
	}

	if variant == "" {
		variant = domain.AppPrimary
	}

	intent := s.classifier.Classify(payload)
	metrics.ScansTotal.WithLabelValues(string(intent.Kind)).Inc()

	result := ScanResult{Intent: intent}

	switch intent.Kind {
	case domain.IntentDirectLink, domain.IntentBusinessLink:
		message := directLinkMessage
		if intent.Kind == domain.IntentBusinessLink {
			message = businessLinkMessage
			variant = domain.AppBusiness
		}

		if err := launch(ctx, s.opener, variant, intent.URL); err != nil {
			logger.Warnf("Failed to open scanned link %s: %v", intent.URL, err)
			return result, err
		}
		result.Opened = true

		entry := domain.HistoryEntry{
			Key:            intent.URL,
			DisplayMessage: message,
			Timestamp:      s.now().UTC().Format(time.RFC3339),
			AppVariant:     variant,
		}
		recordHistory(ctx, s.history, entry)
		result.Entry = &entry

		logger.Infof("Opened scanned %s %s", intent.Kind, intent.URL)
		return result, nil

	case domain.IntentNumberTarget:
		logger.Debugf("Scanned number target +%s %s", intent.CountryCallingCode, intent.NationalNumber)
		return result, nil

	default:
		return result, fmt.Errorf("%w: %q", domain.ErrUnrecognizedPayload, payload)
	}
}
