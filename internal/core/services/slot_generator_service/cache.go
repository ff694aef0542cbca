package slot_generator_service

import (
	"context"

	"github.com/suchimauz/dental-schedule-slots/internal/core/json_types"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/out"
)

// Инвалидация кэша по событиям внешней системы и после собственных изменений

func (s *SlotGeneratorService) InvalidateDayAppointmentsCache(ctx context.Context, dentistID int, date json_types.Date) error {
	if s.cachePort == nil {
		return nil
	}

	s.cachePort.InvalidateDayAppointmentsCache(ctx, dentistID, date)
	s.logger.Debug("cache.appointments.day.invalidated", out.LogFields{
		"dentistId": dentistID,
		"date":      date.String(),
	})

	return nil
}

// InvalidateDentistCache сбрасывает врача и все его дни, рабочие часы могли поменяться
func (s *SlotGeneratorService) InvalidateDentistCache(ctx context.Context, dentistID int) error {
	if s.cachePort == nil {
		return nil
	}

	s.cachePort.InvalidateDentistCache(ctx, dentistID)
	s.cachePort.InvalidateDentistAppointmentsCache(ctx, dentistID)
	s.logger.Debug("cache.dentist.invalidated", out.LogFields{
		"dentistId": dentistID,
	})

	return nil
}

func (s *SlotGeneratorService) InvalidateAllCache(ctx context.Context) error {
	if s.cachePort == nil {
		return nil
	}

	s.cachePort.InvalidateAllDentistsCache(ctx)
	s.cachePort.InvalidateAllAppointmentsCache(ctx)
	s.cachePort.InvalidateStatusesCache(ctx)
	s.logger.Info("cache.all.invalidated", out.LogFields{})

	return nil
}
