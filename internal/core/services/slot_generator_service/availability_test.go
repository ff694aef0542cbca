package slot_generator_service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/json_types"
	"github.com/suchimauz/dental-schedule-slots/internal/testfixtures"
)

func morningSlots(t *testing.T) []domain.TimeSlot {
	t.Helper()
	slots, err := GenerateSlots("09:00", "12:00", 30)
	require.NoError(t, err)
	return slots
}

func TestAvailableStartTimes_ExcludesOccupiedSlots(t *testing.T) {
	existing := []domain.AppointmentInterval{testfixtures.Interval(t, "10:00", "10:30")}
	selection := Selection{DentistID: 7, Date: testfixtures.Date(t, "2025-06-10")}
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	starts := AvailableStartTimes(morningSlots(t), existing, selection, now)

	assert.Equal(t, []string{"09:00:00", "09:30:00", "10:30:00", "11:00:00", "11:30:00", "12:00:00"}, slotValues(starts))
}

func TestAvailableStartTimes_EmptyWithoutSelection(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	noDentist := AvailableStartTimes(morningSlots(t), nil, Selection{Date: testfixtures.Date(t, "2025-06-10")}, now)
	noDate := AvailableStartTimes(morningSlots(t), nil, Selection{DentistID: 7}, now)

	assert.NotNil(t, noDentist)
	assert.Empty(t, noDentist)
	assert.Empty(t, noDate)
}

func TestAvailableStartTimes_TodaySkipsPastMinutes(t *testing.T) {
	selection := Selection{DentistID: 7, Date: testfixtures.Date(t, "2025-06-10")}
	now := time.Date(2025, 6, 10, 10, 30, 45, 0, time.UTC)

	starts := AvailableStartTimes(morningSlots(t), nil, selection, now)

	// 10:30 остается: сравнение с точностью до минуты
	assert.Equal(t, []string{"10:30:00", "11:00:00", "11:30:00", "12:00:00"}, slotValues(starts))
}

func TestAvailableStartTimes_OtherDayIgnoresClock(t *testing.T) {
	selection := Selection{DentistID: 7, Date: testfixtures.Date(t, "2025-06-11")}
	now := time.Date(2025, 6, 10, 23, 0, 0, 0, time.UTC)

	starts := AvailableStartTimes(morningSlots(t), nil, selection, now)

	assert.Len(t, starts, 7)
}

func TestAvailableStartTimes_NeverReturnsOccupiedOrPast(t *testing.T) {
	slots, err := GenerateSlots("08:00", "18:00", 15)
	require.NoError(t, err)
	existing := []domain.AppointmentInterval{
		testfixtures.Interval(t, "09:00", "10:15"),
		testfixtures.Interval(t, "13:30", "14:00"),
		testfixtures.Interval(t, "16:45", "18:00"),
	}
	selection := Selection{DentistID: 7, Date: testfixtures.Date(t, "2025-06-10")}
	now := time.Date(2025, 6, 10, 11, 7, 0, 0, time.UTC)
	nowTime := testfixtures.Time(t, "11:07")

	for _, slot := range AvailableStartTimes(slots, existing, selection, now) {
		assert.False(t, slot.Value.Before(nowTime), "slot %s is in the past", slot.Value)
		for _, interval := range existing {
			inside := !slot.Value.Before(interval.TimeFrom) && slot.Value.Before(interval.TimeTo)
			assert.False(t, inside, "slot %s is inside %s-%s", slot.Value, interval.TimeFrom, interval.TimeTo)
		}
	}
}

func TestAvailableEndTimes_StopsBeforeNextAppointment(t *testing.T) {
	existing := []domain.AppointmentInterval{testfixtures.Interval(t, "10:00", "10:30")}

	ends := AvailableEndTimes(morningSlots(t), existing, testfixtures.Time(t, "09:30"))

	assert.Equal(t, []string{"10:00:00"}, slotValues(ends))
}

func TestAvailableEndTimes_AfterAppointment(t *testing.T) {
	existing := []domain.AppointmentInterval{testfixtures.Interval(t, "10:00", "10:30")}

	ends := AvailableEndTimes(morningSlots(t), existing, testfixtures.Time(t, "10:30"))

	assert.Equal(t, []string{"11:00:00", "11:30:00", "12:00:00"}, slotValues(ends))
}

func TestAvailableEndTimes_ExcludesNonLaterAndOverlapping(t *testing.T) {
	existing := []domain.AppointmentInterval{testfixtures.Interval(t, "10:00", "10:30")}
	start := testfixtures.Time(t, "09:00")

	for _, slot := range AvailableEndTimes(morningSlots(t), existing, start) {
		assert.True(t, slot.Value.After(start))
		span := domain.AppointmentInterval{TimeFrom: start, TimeTo: slot.Value}
		assert.False(t, span.Overlaps(existing[0]))
	}
}

func TestAvailableEndTimes_EmptyWithoutStart(t *testing.T) {
	ends := AvailableEndTimes(morningSlots(t), nil, testfixtures.Time(t, "09:00"))
	assert.Len(t, ends, 6)

	empty := AvailableEndTimes(morningSlots(t), nil, json_types.TimeOfDay{})
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestAvailableEndTimes_UntilEndOfDay(t *testing.T) {
	slots, err := GenerateSlots("22:00", "24:00", 30)
	require.NoError(t, err)

	ends := AvailableEndTimes(slots, nil, testfixtures.Time(t, "23:30"))

	assert.Equal(t, []string{"24:00:00"}, slotValues(ends))
	assert.Equal(t, "12:00 PM", ends[0].Label)

	proposed := domain.ProposedBooking{
		DentistID: 7,
		Date:      testfixtures.Date(t, "2025-06-10"),
		TimeFrom:  testfixtures.Time(t, "23:30"),
		TimeTo:    ends[0].Value,
	}
	result := ValidateBooking(proposed, nil, time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC))
	assert.True(t, result.OK())
}
