package booking_service

import (
	"context"
	"fmt"

	"github.com/suchimauz/dental-schedule-slots/internal/config"
	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/out"
	"github.com/suchimauz/dental-schedule-slots/internal/core/services/slot_generator_service"
)

type BookingService struct {
	dentalAPIPort out.DentalAPIPort
	formStore     out.BookingFormStorePort
	slots         *slot_generator_service.SlotGeneratorService
	logger        out.LoggerPort
	cfg           *config.Config
}

func NewBookingService(
	dentalAPIPort out.DentalAPIPort,
	formStore out.BookingFormStorePort,
	slots *slot_generator_service.SlotGeneratorService,
	cfg *config.Config,
	logger out.LoggerPort,
) *BookingService {
	return &BookingService{
		dentalAPIPort: dentalAPIPort,
		formStore:     formStore,
		slots:         slots,
		logger:        logger.WithModule("BookingService"),
		cfg:           cfg,
	}
}

// Submit проверяет запись по свежим данным и создает ее, либо изменяет запись editingID.
// При отказе проверки внешний API не вызывается, причина возвращается в ValidationResult.
func (s *BookingService) Submit(ctx context.Context, session domain.Session, proposed domain.ProposedBooking, editingID int) (*domain.Appointment, domain.ValidationResult, error) {
	var original *domain.Appointment
	if editingID != 0 {
		appointment, err := s.findAppointment(ctx, session, editingID)
		if err != nil {
			return nil, domain.ValidationResult{}, fmt.Errorf("booking.submit.original.fetch_failed: %w", err)
		}
		if appointment.IsCancelled() {
			return nil, domain.ValidationResult{}, fmt.Errorf("booking.submit: %w", domain.ErrAppointmentCancelled)
		}
		original = appointment
	}

	result, err := s.slots.ValidateBooking(ctx, session, proposed, editingID)
	if err != nil {
		return nil, domain.ValidationResult{}, err
	}
	if !result.OK() {
		s.logger.Info("booking.submit.rejected", out.LogFields{
			"dentistId": proposed.DentistID,
			"date":      proposed.Date.String(),
			"timeFrom":  proposed.TimeFrom.String(),
			"timeTo":    proposed.TimeTo.String(),
			"reason":    string(result.Reason),
		})
		return nil, result, nil
	}

	var saved *domain.Appointment
	if original == nil {
		saved, err = s.dentalAPIPort.CreateAppointment(ctx, session, domain.NewAppointmentInput(proposed, nil))
		if err != nil {
			return nil, domain.ValidationResult{}, fmt.Errorf("booking.submit.create_failed: %w", err)
		}
	} else {
		// Статус меняется на "перенесена" только если сдвинулись врач, дата или время
		var statusID *domain.AppointmentStatusID
		if domain.IsReschedule(*original, proposed) {
			rescheduled := domain.AppointmentStatusRescheduled
			statusID = &rescheduled
		}
		saved, err = s.dentalAPIPort.UpdateAppointment(ctx, session, original.ID, domain.NewAppointmentInput(proposed, statusID))
		if err != nil {
			return nil, domain.ValidationResult{}, fmt.Errorf("booking.submit.update_failed: %w", err)
		}
		s.invalidateDay(ctx, original.Booking())
	}
	s.invalidateDay(ctx, proposed)

	s.logger.Info("booking.submit.saved", out.LogFields{
		"appointmentId": saved.ID,
		"dentistId":     proposed.DentistID,
		"date":          proposed.Date.String(),
		"edited":        original != nil,
	})

	return saved, result, nil
}

// Cancel переводит запись в статус "отменена", время записи не меняется
func (s *BookingService) Cancel(ctx context.Context, session domain.Session, appointmentID int) (*domain.Appointment, error) {
	original, err := s.findAppointment(ctx, session, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("booking.cancel.fetch_failed: %w", err)
	}
	if original.IsCancelled() {
		return nil, fmt.Errorf("booking.cancel: %w", domain.ErrAppointmentCancelled)
	}

	cancelled := domain.AppointmentStatusCancelled
	saved, err := s.dentalAPIPort.UpdateAppointment(ctx, session, appointmentID, domain.NewAppointmentInput(original.Booking(), &cancelled))
	if err != nil {
		return nil, fmt.Errorf("booking.cancel.update_failed: %w", err)
	}
	s.invalidateDay(ctx, original.Booking())

	s.logger.Info("booking.cancel.done", out.LogFields{
		"appointmentId": appointmentID,
	})

	return saved, nil
}

func (s *BookingService) Delete(ctx context.Context, session domain.Session, appointmentID int) error {
	appointments, err := s.dentalAPIPort.ListAppointments(ctx, session)
	if err != nil {
		return fmt.Errorf("booking.delete.fetch_failed: %w", err)
	}

	if err := s.dentalAPIPort.DeleteAppointment(ctx, session, appointmentID); err != nil {
		return fmt.Errorf("booking.delete.failed: %w", err)
	}

	for _, appointment := range appointments {
		if appointment.ID == appointmentID {
			s.invalidateDay(ctx, appointment.Booking())
			break
		}
	}

	s.logger.Info("booking.delete.done", out.LogFields{
		"appointmentId": appointmentID,
	})

	return nil
}

// findAppointment ищет запись в списке записей пользователя, отдельного запроса по id у внешнего API нет
func (s *BookingService) findAppointment(ctx context.Context, session domain.Session, appointmentID int) (*domain.Appointment, error) {
	appointments, err := s.dentalAPIPort.ListAppointments(ctx, session)
	if err != nil {
		return nil, err
	}

	for _, appointment := range appointments {
		if appointment.ID == appointmentID {
			return &appointment, nil
		}
	}

	return nil, fmt.Errorf("appointment %d: %w", appointmentID, domain.ErrNotFound)
}

func (s *BookingService) invalidateDay(ctx context.Context, booking domain.ProposedBooking) {
	if booking.DentistID == 0 || booking.Date.IsZero() {
		return
	}
	_ = s.slots.InvalidateDayAppointmentsCache(ctx, booking.DentistID, booking.Date)
}
