package slot_generator_service

import (
	"fmt"
	"time"

	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/json_types"
)

const (
	DefaultSlotStart           = "09:00"
	DefaultSlotEnd             = "17:00"
	DefaultSlotIntervalMinutes = 30
)

// GenerateSlots строит сетку времени от start до end включительно с шагом intervalMinutes.
// Пустые start и end заменяются на 09:00 и 17:00.
func GenerateSlots(start, end string, intervalMinutes int) ([]domain.TimeSlot, error) {
	if start == "" {
		start = DefaultSlotStart
	}
	if end == "" {
		end = DefaultSlotEnd
	}

	startTime, err := json_types.ParseTimeOfDay(start)
	if err != nil {
		return nil, fmt.Errorf("slots.generate.start.invalid: %w", err)
	}
	endTime, err := json_types.ParseTimeOfDay(end)
	if err != nil {
		return nil, fmt.Errorf("slots.generate.end.invalid: %w", err)
	}

	return GenerateSlotsBetween(startTime, endTime, intervalMinutes)
}

// GenerateSlotsBetween то же, что GenerateSlots, для уже разобранных границ.
func GenerateSlotsBetween(start, end json_types.TimeOfDay, intervalMinutes int) ([]domain.TimeSlot, error) {
	if intervalMinutes <= 0 {
		return nil, domain.ErrInvalidInterval
	}

	// Считаем в целых минутах, секунды границ отбрасываются
	startTime := start.TruncateToMinute()
	endTime := end.TruncateToMinute()
	step := time.Duration(intervalMinutes) * time.Minute

	slots := make([]domain.TimeSlot, 0)
	for current := startTime; !current.After(endTime); current = current.Add(step) {
		slots = append(slots, newTimeSlot(current))
	}

	// Конец суток 24:00 остается слотом окончания, после него добавляется полночь
	if end.IsEndOfDay() {
		slots = append(slots, newTimeSlot(json_types.NewTimeOfDay(0, 0, 0)))
	}

	return slots, nil
}

func newTimeSlot(value json_types.TimeOfDay) domain.TimeSlot {
	return domain.TimeSlot{
		Value: value,
		Label: FormatTimeLabel(value.String()),
	}
}
