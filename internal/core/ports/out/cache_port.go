package out

import (
	"context"

	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/json_types"
)

type CachePort interface {
	// Кэширование врачей
	GetDentist(ctx context.Context, dentistID int) (*domain.Dentist, bool)
	StoreDentists(ctx context.Context, dentists []domain.Dentist)
	InvalidateDentistCache(ctx context.Context, dentistID int)
	InvalidateAllDentistsCache(ctx context.Context)

	// Кэширование записей врача на день
	GetDayAppointments(ctx context.Context, dentistID int, date json_types.Date) ([]domain.Appointment, bool)
	StoreDayAppointments(ctx context.Context, dentistID int, date json_types.Date, appointments []domain.Appointment)
	InvalidateDayAppointmentsCache(ctx context.Context, dentistID int, date json_types.Date)
	InvalidateDentistAppointmentsCache(ctx context.Context, dentistID int)
	InvalidateAllAppointmentsCache(ctx context.Context)

	// Кэширование справочника статусов
	GetStatuses(ctx context.Context) ([]domain.AppointmentStatus, bool)
	StoreStatuses(ctx context.Context, statuses []domain.AppointmentStatus)
	InvalidateStatusesCache(ctx context.Context)
}
