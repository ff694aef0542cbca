package slot_generator_service

import (
	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/json_types"
)

// Функция для проверки пересечения промежутка с существующими записями
func overlapsAny(interval domain.AppointmentInterval, existing []domain.AppointmentInterval) bool {
	for _, appointment := range existing {
		if interval.Overlaps(appointment) {
			return true
		}
	}
	return false
}

// Функция для проверки, занят ли момент времени существующей записью
func isOccupied(t json_types.TimeOfDay, existing []domain.AppointmentInterval) bool {
	for _, appointment := range existing {
		if appointment.Occupies(t) {
			return true
		}
	}
	return false
}

// Функция для проверки, не прошло ли уже время на выбранную дату
func isInPast(date json_types.Date, t json_types.TimeOfDay, today json_types.Date, nowTime json_types.TimeOfDay) bool {
	return date.Equal(today) && t.Before(nowTime)
}
