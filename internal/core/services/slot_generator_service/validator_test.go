package slot_generator_service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/json_types"
	"github.com/suchimauz/dental-schedule-slots/internal/testfixtures"
)

func booking(t *testing.T, date, from, to string) domain.ProposedBooking {
	t.Helper()
	return domain.ProposedBooking{
		DentistID: 7,
		Date:      testfixtures.Date(t, date),
		TimeFrom:  testfixtures.Time(t, from),
		TimeTo:    testfixtures.Time(t, to),
	}
}

func TestValidateBooking_Reasons(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 40, 0, 0, time.UTC)
	existing := []domain.AppointmentInterval{testfixtures.Interval(t, "10:00", "10:30")}

	cases := []struct {
		name     string
		proposed domain.ProposedBooking
		reason   domain.RejectionReason
		kind     domain.RejectionKind
	}{
		{
			name:     "missing dentist",
			proposed: domain.ProposedBooking{Date: testfixtures.Date(t, "2025-06-11"), TimeFrom: testfixtures.Time(t, "09:00"), TimeTo: testfixtures.Time(t, "09:30")},
			reason:   domain.RejectionMissingFields,
			kind:     domain.RejectionKindInputIncomplete,
		},
		{
			name:     "past date",
			proposed: booking(t, "2025-06-09", "11:00", "11:30"),
			reason:   domain.RejectionPastDate,
			kind:     domain.RejectionKindTemporalInvalid,
		},
		{
			name:     "past start time today",
			proposed: booking(t, "2025-06-10", "09:30", "10:00"),
			reason:   domain.RejectionPastStartTime,
			kind:     domain.RejectionKindTemporalInvalid,
		},
		{
			name:     "end equals start",
			proposed: booking(t, "2025-06-11", "11:00", "11:00"),
			reason:   domain.RejectionEndNotAfterStart,
			kind:     domain.RejectionKindRangeInvalid,
		},
		{
			name:     "end before start",
			proposed: booking(t, "2025-06-11", "11:30", "11:00"),
			reason:   domain.RejectionEndNotAfterStart,
			kind:     domain.RejectionKindRangeInvalid,
		},
		{
			name:     "overlaps existing",
			proposed: booking(t, "2025-06-10", "09:45", "10:15"),
			reason:   domain.RejectionConflict,
			kind:     domain.RejectionKindConflictDetected,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := ValidateBooking(tc.proposed, existing, now)
			assert.False(t, result.OK())
			assert.Equal(t, tc.reason, result.Reason)
			assert.Equal(t, tc.kind, result.Kind())
			assert.NotEmpty(t, result.Message())
		})
	}
}

func TestValidateBooking_MissingFieldsTakesPrecedence(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	existing := []domain.AppointmentInterval{testfixtures.Interval(t, "10:00", "10:30")}

	// Прошедшая дата, пересечение и пустое окончание одновременно
	proposed := booking(t, "2025-06-01", "10:00", "10:30")
	proposed.TimeTo = json_types.TimeOfDay{}

	result := ValidateBooking(proposed, existing, now)
	assert.Equal(t, domain.RejectionMissingFields, result.Reason)
}

func TestValidateBooking_IdenticalIntervalConflicts(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	existing := []domain.AppointmentInterval{testfixtures.Interval(t, "10:00", "10:30")}

	result := ValidateBooking(booking(t, "2025-06-10", "10:00", "10:30"), existing, now)
	assert.Equal(t, domain.RejectionKindConflictDetected, result.Kind())
}

func TestValidateBooking_TouchingIntervalsAreAccepted(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	existing := []domain.AppointmentInterval{testfixtures.Interval(t, "10:00", "10:30")}

	assert.True(t, ValidateBooking(booking(t, "2025-06-10", "09:30", "10:00"), existing, now).OK())
	assert.True(t, ValidateBooking(booking(t, "2025-06-10", "10:30", "11:00"), existing, now).OK())
}

func TestValidateBooking_SameMinuteIsNotPast(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 30, 59, 0, time.UTC)

	result := ValidateBooking(booking(t, "2025-06-10", "09:30", "10:00"), nil, now)
	assert.True(t, result.OK())
}

func TestValidateBooking_IsIdempotent(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	existing := []domain.AppointmentInterval{testfixtures.Interval(t, "10:00", "10:30")}
	proposed := booking(t, "2025-06-10", "09:45", "10:15")

	first := ValidateBooking(proposed, existing, now)
	second := ValidateBooking(proposed, existing, now)

	assert.Equal(t, first, second)
}

func TestBookingScenario_EndToEnd(t *testing.T) {
	dentist := testfixtures.Dentist(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	existing := []domain.AppointmentInterval{testfixtures.Interval(t, "10:00", "10:30")}
	selection := Selection{DentistID: dentist.ID, Date: testfixtures.Date(t, "2025-06-10")}

	hours := dentist.WorkingHours()
	slots, err := GenerateSlotsBetween(hours.Start, hours.End, 30)
	assert.NoError(t, err)

	starts := AvailableStartTimes(slots, existing, selection, now)
	assert.Equal(t, []string{"09:00:00", "09:30:00", "10:30:00", "11:00:00", "11:30:00", "12:00:00"}, slotValues(starts))

	ends := AvailableEndTimes(slots, existing, testfixtures.Time(t, "09:30"))
	assert.Equal(t, []string{"10:00:00"}, slotValues(ends))

	assert.True(t, ValidateBooking(booking(t, "2025-06-10", "09:30", "10:00"), existing, now).OK())

	rejected := ValidateBooking(booking(t, "2025-06-10", "09:45", "10:15"), existing, now)
	assert.Equal(t, domain.RejectionKindConflictDetected, rejected.Kind())
}
