package service

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/onurcolak/direct-message-service/environments"
	"github.com/onurcolak/direct-message-service/internal/deeplink"
	"github.com/onurcolak/direct-message-service/internal/domain"
	"github.com/onurcolak/direct-message-service/internal/metrics"
	"github.com/onurcolak/direct-message-service/pkg/logger"
)

const (
	defaultPreviewLength = 30
	previewEllipsis      = "..."
)

// Small internal interfaces so we can test without a real bridge or store.
type normalizer interface {
	Normalize(rawInput, callingCode, isoCountry string) (domain.PhoneNumber, error)
}

type urlOpener interface {
	CanOpen(ctx context.Context, link string) (bool, error)
	Open(ctx context.Context, link string) error
}

type historyRecorder interface {
	Record(ctx context.Context, entry domain.HistoryEntry) ([]domain.HistoryEntry, error)
}

type SendRequest struct {
	RawInput    string
	CallingCode string
	IsoCountry  string
	Message     string
	AppVariant  domain.AppVariant
}

type SendService struct {
	normalizer    normalizer
	opener        urlOpener
	history       historyRecorder
	previewLength int
	now           func() time.Time
}

func NewSendService(
	normalizer normalizer,
	opener urlOpener,
	history historyRecorder,
	config environments.HistoryConfig,
) *SendService {
	previewLength := config.PreviewLength
	if previewLength <= 0 {
		previewLength = defaultPreviewLength
	}

	return &SendService{
		normalizer:    normalizer,
		opener:        opener,
		history:       history,
		previewLength: previewLength,
		now:           time.Now,
	}
}

// Send normalizes the number, opens the deep link for the chosen app and, only
// if the app accepted it, records the send in history.
func (s *SendService) Send(ctx context.Context, req SendRequest) (domain.HistoryEntry, error) {
	variant := req.AppVariant
	if variant == "" {
		variant = domain.AppPrimary
	}

	number, err := s.normalizer.Normalize(req.RawInput, req.CallingCode, req.IsoCountry)
	if err != nil {
		metrics.SendsTotal.WithLabelValues(string(variant), "invalid_number").Inc()
		return domain.HistoryEntry{}, err
	}

	link := deeplink.Build(variant, number, req.Message)

	if err := launch(ctx, s.opener, variant, link); err != nil {
		metrics.SendsTotal.WithLabelValues(string(variant), "app_unavailable").Inc()
		logger.Warnf("Failed to open %s for %s: %v", variant, number.Dialable(), err)
		return domain.HistoryEntry{}, err
	}

	entry := domain.HistoryEntry{
		Key:            number.Dialable(),
		DisplayMessage: Preview(req.Message, s.previewLength),
		Timestamp:      s.now().UTC().Format(time.RFC3339),
		AppVariant:     variant,
	}

	recordHistory(ctx, s.history, entry)

	metrics.SendsTotal.WithLabelValues(string(variant), "success").Inc()
	logger.Infof("Opened %s chat with %s", variant, number.Dialable())

	return entry, nil
}

// Preview cuts text to max runes and marks the cut with an ellipsis.
func Preview(text string, max int) string {
	if utf8.RuneCountInString(text) <= max {
		return text
	}

	runes := []rune(text)
	return string(runes[:max]) + previewEllipsis
}

// launch asks the opener to open link. Any refusal or failure is reported as
// AppUnavailable for the given variant.
func launch(ctx context.Context, opener urlOpener, variant domain.AppVariant, link string) error {
	start := time.Now()
	defer func() {
		metrics.OpenDurationHist.WithLabelValues(string(variant)).Observe(time.Since(start).Seconds())
	}()

	ok, err := opener.CanOpen(ctx, link)
	if err != nil {
		return &domain.AppUnavailableError{AppVariant: variant, Err: err}
	}
	if !ok {
		return &domain.AppUnavailableError{AppVariant: variant}
	}

	if err := opener.Open(ctx, link); err != nil {
		return &domain.AppUnavailableError{AppVariant: variant, Err: err}
	}

	return nil
}

// recordHistory records entry; storage failures are logged and never fail the caller.
func recordHistory(ctx context.Context, history historyRecorder, entry domain.HistoryEntry) {
	if _, err := history.Record(ctx, entry); err != nil {
		if errors.Is(err, domain.ErrStorageFailure) {
			metrics.StorageFailuresTotal.WithLabelValues("history").Inc()
		}
		logger.Warnf("History kept in memory only: %v", err)
	}
}
