package slot_generator_service

import (
	"time"

	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/json_types"
)

// ValidateBooking проверяет запись перед отправкой во внешний API.
// Проверки идут по порядку, возвращается первая причина отказа. now должен быть в таймзоне клиники.
func ValidateBooking(proposed domain.ProposedBooking, existing []domain.AppointmentInterval, now time.Time) domain.ValidationResult {
	if !proposed.IsComplete() {
		return domain.Rejected(domain.RejectionMissingFields)
	}

	today := json_types.DateOf(now)
	if proposed.Date.Before(today) {
		return domain.Rejected(domain.RejectionPastDate)
	}

	// Сравнение с точностью до минуты
	if isInPast(proposed.Date, proposed.TimeFrom, today, json_types.TimeOfDayOf(now).TruncateToMinute()) {
		return domain.Rejected(domain.RejectionPastStartTime)
	}

	if !proposed.TimeFrom.Before(proposed.TimeTo) {
		return domain.Rejected(domain.RejectionEndNotAfterStart)
	}

	if overlapsAny(proposed.Interval(), existing) {
		return domain.Rejected(domain.RejectionConflict)
	}

	return domain.Accepted()
}
