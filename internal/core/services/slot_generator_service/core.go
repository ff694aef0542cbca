package slot_generator_service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/suchimauz/dental-schedule-slots/internal/config"
	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/json_types"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/in"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/out"
)

type SlotGeneratorService struct {
	dentalAPIPort out.DentalAPIPort
	cachePort     out.CachePort
	logger        out.LoggerPort
	cfg           *config.Config
	now           func() time.Time
}

func NewSlotGeneratorService(
	dentalAPIPort out.DentalAPIPort,
	cachePort out.CachePort,
	cfg *config.Config,
	logger out.LoggerPort,
) *SlotGeneratorService {
	return &SlotGeneratorService{
		dentalAPIPort: dentalAPIPort,
		cachePort:     cachePort,
		logger:        logger.WithModule("SlotGeneratorService"),
		cfg:           cfg,
		now:           time.Now,
	}
}

// WithClock подменяет источник текущего времени
func (s *SlotGeneratorService) WithClock(now func() time.Time) *SlotGeneratorService {
	s.now = now
	return s
}

// Now текущее время в таймзоне клиники
func (s *SlotGeneratorService) Now() time.Time {
	return s.now().In(s.cfg.Location())
}

func (s *SlotGeneratorService) GenerateSlots(start, end string, intervalMinutes int) ([]domain.TimeSlot, error) {
	if intervalMinutes == 0 {
		intervalMinutes = s.cfg.Booking.SlotInterval
	}
	return GenerateSlots(start, end, intervalMinutes)
}

// DentistSlots сетка времени по рабочим часам врача
func (s *SlotGeneratorService) DentistSlots(dentist domain.Dentist) ([]domain.TimeSlot, error) {
	hours := dentist.WorkingHours()
	return GenerateSlotsBetween(hours.Start, hours.End, s.cfg.Booking.SlotInterval)
}

func (s *SlotGeneratorService) GetAvailability(ctx context.Context, session domain.Session, query in.AvailabilityQuery) (*domain.Availability, []domain.DebugInfo, error) {
	debugInfo := SlotGeneratorServiceDebug{
		data: make([]domain.DebugInfo, 0),
	}
	s.logger.Info("availability.get.started", out.LogFields{
		"dentistId": query.DentistID,
		"date":      query.Date.String(),
	})

	availability := &domain.Availability{
		DentistID:  query.DentistID,
		Date:       query.Date,
		Slots:      make([]domain.TimeSlot, 0),
		StartTimes: make([]domain.TimeSlot, 0),
		EndTimes:   make([]domain.TimeSlot, 0),
	}

	selection := Selection{DentistID: query.DentistID, Date: query.Date}
	if !selection.IsComplete() {
		return availability, debugInfo.data, nil
	}

	get_dentist_debug := domain.NewDebugInfo("availability.dentist.fetch")
	dentist, err := s.GetDentist(ctx, session, query.DentistID)
	if err != nil {
		s.logger.Error("availability.dentist.fetch_failed", out.LogFields{
			"dentistId": query.DentistID,
			"error":     err.Error(),
		})
		return nil, nil, fmt.Errorf("availability.dentist.fetch_failed: %w", err)
	}
	get_dentist_debug.Elapse()
	debugInfo.AddDebugInfo(get_dentist_debug)

	generate_slots_debug := domain.NewDebugInfo("availability.slots.generate")
	slots, err := s.DentistSlots(*dentist)
	if err != nil {
		return nil, nil, fmt.Errorf("availability.slots.generate_failed: %w", err)
	}
	generate_slots_debug.AddOption("count", strconv.Itoa(len(slots)))
	generate_slots_debug.Elapse()
	debugInfo.AddDebugInfo(generate_slots_debug)
	availability.Slots = slots

	get_intervals_debug := domain.NewDebugInfo("availability.intervals.fetch")
	intervals, err := s.DayIntervals(ctx, session, query.DentistID, query.Date, query.ExcludeAppointmentID, false)
	if err != nil {
		s.logger.Error("availability.intervals.fetch_failed", out.LogFields{
			"dentistId": query.DentistID,
			"date":      query.Date.String(),
			"error":     err.Error(),
		})
		return nil, nil, fmt.Errorf("availability.intervals.fetch_failed: %w", err)
	}
	get_intervals_debug.AddOption("count", strconv.Itoa(len(intervals)))
	get_intervals_debug.Elapse()
	debugInfo.AddDebugInfo(get_intervals_debug)

	filter_debug := domain.NewDebugInfo("availability.slots.filter")
	availability.StartTimes = AvailableStartTimes(slots, intervals, selection, s.Now())
	availability.EndTimes = AvailableEndTimes(slots, intervals, query.TimeFrom)
	filter_debug.Elapse()
	debugInfo.AddDebugInfo(filter_debug)

	return availability, debugInfo.data, nil
}

// ValidateBooking перепроверяет запись по свежим, не кэшированным интервалам
func (s *SlotGeneratorService) ValidateBooking(ctx context.Context, session domain.Session, proposed domain.ProposedBooking, editingID int) (domain.ValidationResult, error) {
	// Без полного набора полей внешний API не нужен
	if !proposed.IsComplete() {
		return ValidateBooking(proposed, nil, s.Now()), nil
	}

	intervals, err := s.DayIntervals(ctx, session, proposed.DentistID, proposed.Date, editingID, true)
	if err != nil {
		return domain.ValidationResult{}, fmt.Errorf("booking.validate.intervals.fetch_failed: %w", err)
	}

	return ValidateBooking(proposed, intervals, s.Now()), nil
}

// GetDentist берет врача из кэша или из списка врачей внешнего API
func (s *SlotGeneratorService) GetDentist(ctx context.Context, session domain.Session, dentistID int) (*domain.Dentist, error) {
	if s.cachePort != nil {
		if dentist, exists := s.cachePort.GetDentist(ctx, dentistID); exists {
			s.logger.Debug("dentist.cache.hit", out.LogFields{
				"dentistId": dentistID,
			})
			return dentist, nil
		}
	}

	s.logger.Debug("dentist.cache.miss", out.LogFields{
		"dentistId": dentistID,
	})

	dentists, err := s.dentalAPIPort.ListDentists(ctx, session)
	if err != nil {
		return nil, err
	}

	// Сохраняем в кэш весь список, он приходит целиком
	if s.cachePort != nil {
		s.cachePort.StoreDentists(ctx, dentists)
	}

	for _, dentist := range dentists {
		if dentist.ID == dentistID {
			return &dentist, nil
		}
	}

	return nil, fmt.Errorf("dentist %d: %w", dentistID, domain.ErrNotFound)
}

// DayIntervals занятые промежутки врача на дату без редактируемой записи.
// fresh пропускает кэш, так делает проверка перед сохранением.
func (s *SlotGeneratorService) DayIntervals(ctx context.Context, session domain.Session, dentistID int, date json_types.Date, excludeID int, fresh bool) ([]domain.AppointmentInterval, error) {
	appointments, err := s.dayAppointments(ctx, session, dentistID, date, fresh)
	if err != nil {
		return nil, err
	}

	return domain.IntervalsExcluding(appointments, excludeID), nil
}

func (s *SlotGeneratorService) dayAppointments(ctx context.Context, session domain.Session, dentistID int, date json_types.Date, fresh bool) ([]domain.Appointment, error) {
	if s.cachePort != nil && !fresh {
		if appointments, exists := s.cachePort.GetDayAppointments(ctx, dentistID, date); exists {
			s.logger.Debug("appointments.cache.hit", out.LogFields{
				"dentistId": dentistID,
				"date":      date.String(),
			})
			return appointments, nil
		}
	}

	appointments, err := s.dentalAPIPort.ListDentistAppointments(ctx, session, dentistID, date)
	if err != nil {
		return nil, err
	}

	if s.cachePort != nil {
		s.cachePort.StoreDayAppointments(ctx, dentistID, date, appointments)
	}

	return appointments, nil
}
