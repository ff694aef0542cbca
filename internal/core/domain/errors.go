package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidInterval      = errors.New("slot interval must be positive")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrNotFound             = errors.New("not found")
	ErrSessionNotFound      = errors.New("session not found")
	ErrRequiredFields       = errors.New("Fill all required fields")
	ErrInvalidSchedule      = errors.New("End time must be later than start time")
	ErrAppointmentCancelled = errors.New("appointment is cancelled")
	ErrBookingFormNotOpened = errors.New("booking form is not opened")
	ErrUnknownForm          = errors.New("unknown form")
)

// UpstreamError ответ внешнего API с кодом, отличным от 2xx
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("upstream responded with status %d: %s", e.StatusCode, e.Message)
}

func (e *UpstreamError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// UpstreamMessage достает сообщение внешнего API или возвращает fallback.
func UpstreamMessage(err error, fallback string) string {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) && upstreamErr.Message != "" {
		return upstreamErr.Message
	}
	return fallback
}
