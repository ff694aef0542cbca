package booking_service

import (
	"context"
	"fmt"

	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/out"
	"github.com/suchimauz/dental-schedule-slots/internal/core/services/slot_generator_service"
)

// Форма записи живет на стороне сервера, по одной на сессию.
// Интервалы врача на дату подгружаются при смене выбора, устаревшие результаты отбрасываются.

func (s *BookingService) OpenForm(ctx context.Context, session domain.Session, editingID int) (*domain.BookingFormView, error) {
	form := domain.BookingForm{SessionID: session.ID, Generation: 1}

	if editingID != 0 {
		original, err := s.findAppointment(ctx, session, editingID)
		if err != nil {
			return nil, fmt.Errorf("booking.form.open.fetch_failed: %w", err)
		}
		if original.IsCancelled() {
			return nil, fmt.Errorf("booking.form.open: %w", domain.ErrAppointmentCancelled)
		}
		form.EditingID = original.ID
		form.Original = original
		form.Booking = original.Booking()
	}

	s.formStore.SaveForm(ctx, form)
	s.logger.Debug("booking.form.opened", out.LogFields{
		"sessionId": session.ID,
		"editingId": editingID,
	})

	return s.view(ctx, session, form)
}

func (s *BookingService) GetForm(ctx context.Context, session domain.Session) (*domain.BookingFormView, error) {
	form, exists := s.formStore.GetForm(ctx, session.ID)
	if !exists {
		return nil, domain.ErrBookingFormNotOpened
	}

	return s.view(ctx, session, form)
}

func (s *BookingService) PatchForm(ctx context.Context, session domain.Session, patch domain.BookingFormPatch) (*domain.BookingFormView, error) {
	form, exists := s.formStore.UpdateForm(ctx, session.ID, func(form *domain.BookingForm) bool {
		form.Apply(patch)
		return true
	})
	if !exists {
		return nil, domain.ErrBookingFormNotOpened
	}

	return s.view(ctx, session, form)
}

// ClearForm очищает поля, не закрывая форму
func (s *BookingService) ClearForm(ctx context.Context, session domain.Session) (*domain.BookingFormView, error) {
	form, exists := s.formStore.UpdateForm(ctx, session.ID, func(form *domain.BookingForm) bool {
		form.Clear()
		return true
	})
	if !exists {
		return nil, domain.ErrBookingFormNotOpened
	}

	return s.view(ctx, session, form)
}

// SubmitForm сохраняет запись из формы. После успешного сохранения форма закрывается.
func (s *BookingService) SubmitForm(ctx context.Context, session domain.Session) (*domain.Appointment, domain.ValidationResult, error) {
	form, exists := s.formStore.GetForm(ctx, session.ID)
	if !exists {
		return nil, domain.ValidationResult{}, domain.ErrBookingFormNotOpened
	}

	appointment, result, err := s.Submit(ctx, session, form.Booking, form.EditingID)
	if err != nil || !result.OK() {
		return appointment, result, err
	}

	s.formStore.DeleteForm(ctx, session.ID)
	return appointment, result, nil
}

func (s *BookingService) DiscardForm(ctx context.Context, session domain.Session) {
	s.formStore.DeleteForm(ctx, session.ID)
}

// view собирает варианты времени для текущего состояния формы
func (s *BookingService) view(ctx context.Context, session domain.Session, form domain.BookingForm) (*domain.BookingFormView, error) {
	view := &domain.BookingFormView{
		Form:       form,
		StartTimes: make([]domain.TimeSlot, 0),
		EndTimes:   make([]domain.TimeSlot, 0),
	}

	selection := slot_generator_service.Selection{DentistID: form.Booking.DentistID, Date: form.Booking.Date}
	if !selection.IsComplete() {
		return view, nil
	}

	if !form.IntervalsLoaded {
		refreshed, err := s.refreshIntervals(ctx, session, form)
		if err != nil {
			return nil, err
		}
		form = refreshed
		view.Form = form
	}

	// Выбор успел смениться, пока грузились интервалы. Варианты посчитает следующий запрос.
	if !form.IntervalsLoaded || form.Booking.DentistID != selection.DentistID || !form.Booking.Date.Equal(selection.Date) {
		return view, nil
	}

	dentist, err := s.slots.GetDentist(ctx, session, form.Booking.DentistID)
	if err != nil {
		return nil, fmt.Errorf("booking.form.dentist.fetch_failed: %w", err)
	}
	slots, err := s.slots.DentistSlots(*dentist)
	if err != nil {
		return nil, fmt.Errorf("booking.form.slots.generate_failed: %w", err)
	}

	view.StartTimes = slot_generator_service.AvailableStartTimes(slots, form.Intervals, selection, s.slots.Now())
	view.EndTimes = slot_generator_service.AvailableEndTimes(slots, form.Intervals, form.Booking.TimeFrom)

	return view, nil
}

// refreshIntervals загружает интервалы для поколения формы и применяет их, только если поколение не сменилось
func (s *BookingService) refreshIntervals(ctx context.Context, session domain.Session, form domain.BookingForm) (domain.BookingForm, error) {
	generation := form.Generation
	intervals, err := s.slots.DayIntervals(ctx, session, form.Booking.DentistID, form.Booking.Date, form.EditingID, false)
	if err != nil {
		return form, fmt.Errorf("booking.form.intervals.fetch_failed: %w", err)
	}

	current, exists := s.formStore.UpdateForm(ctx, session.ID, func(stored *domain.BookingForm) bool {
		return stored.SetIntervals(generation, intervals)
	})
	if !exists {
		return form, domain.ErrBookingFormNotOpened
	}

	if current.Generation != generation {
		s.logger.Debug("booking.form.intervals.stale", out.LogFields{
			"sessionId":  session.ID,
			"generation": generation,
			"current":    current.Generation,
		})
	}

	return current, nil
}
