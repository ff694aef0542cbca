package in

import (
	"context"

	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/json_types"
)

type AvailabilityQuery struct {
	DentistID            int
	Date                 json_types.Date
	TimeFrom             json_types.TimeOfDay
	ExcludeAppointmentID int
}

type SlotGeneratorUseCase interface {
	// Генерация сетки времени для произвольного окна
	GenerateSlots(start, end string, intervalMinutes int) ([]domain.TimeSlot, error)

	// Допустимые времена начала и окончания для врача на дату
	GetAvailability(ctx context.Context, session domain.Session, query AvailabilityQuery) (*domain.Availability, []domain.DebugInfo, error)

	// Проверка записи по свежим данным внешнего API
	ValidateBooking(ctx context.Context, session domain.Session, proposed domain.ProposedBooking, editingID int) (domain.ValidationResult, error)
}

type CacheInvalidationUseCase interface {
	InvalidateDayAppointmentsCache(ctx context.Context, dentistID int, date json_types.Date) error
	InvalidateDentistCache(ctx context.Context, dentistID int) error
	InvalidateAllCache(ctx context.Context) error
}
