package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidNumber       = errors.New("invalid number")
	ErrAppUnavailable      = errors.New("app unavailable")
	ErrUnrecognizedPayload = errors.New("unrecognized QR payload")
	ErrStorageFailure      = errors.New("storage failure")
	ErrScanSuppressed      = errors.New("scan suppressed during cool-down")
)

type InvalidNumberError struct {
	Reason string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid number: %s", e.Reason)
}

func (e *InvalidNumberError) Unwrap() error {
	return ErrInvalidNumber
}

// AppUnavailableError is returned when the chat app for AppVariant is
// missing or the OS refused to open the link.
type AppUnavailableError struct {
	AppVariant AppVariant
	Err        error
}

func (e *AppUnavailableError) Error() string {
	msg := fmt.Sprintf("could not open %s, please make sure it is installed", e.AppVariant.DisplayName())
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *AppUnavailableError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrAppUnavailable}
	}
	return []error{ErrAppUnavailable, e.Err}
}
