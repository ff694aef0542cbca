package slot_generator_service

import (
	"time"

	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/json_types"
)

// Selection выбранные в форме врач и дата
type Selection struct {
	DentistID int
	Date      json_types.Date
}

func (s Selection) IsComplete() bool {
	return s.DentistID != 0 && !s.Date.IsZero()
}

// AvailableStartTimes оставляет слоты, с которых можно начать прием:
// не занятые существующими записями и, если дата сегодняшняя, не раньше текущей минуты.
// now должен быть в таймзоне клиники.
func AvailableStartTimes(slots []domain.TimeSlot, existing []domain.AppointmentInterval, selection Selection, now time.Time) []domain.TimeSlot {
	available := make([]domain.TimeSlot, 0)
	if !selection.IsComplete() {
		return available
	}

	today := json_types.DateOf(now)
	nowTime := json_types.TimeOfDayOf(now).TruncateToMinute()

	for _, slot := range slots {
		if isInPast(selection.Date, slot.Value, today, nowTime) {
			continue
		}
		if isOccupied(slot.Value, existing) {
			continue
		}
		available = append(available, slot)
	}

	return available
}

// AvailableEndTimes оставляет слоты позже выбранного начала, для которых
// промежуток [selectedStart, t) не пересекается ни с одной записью.
func AvailableEndTimes(slots []domain.TimeSlot, existing []domain.AppointmentInterval, selectedStart json_types.TimeOfDay) []domain.TimeSlot {
	available := make([]domain.TimeSlot, 0)
	if !selectedStart.Valid {
		return available
	}

	for _, slot := range slots {
		if !slot.Value.After(selectedStart) {
			continue
		}
		span := domain.AppointmentInterval{TimeFrom: selectedStart, TimeTo: slot.Value}
		if overlapsAny(span, existing) {
			continue
		}
		available = append(available, slot)
	}

	return available
}
