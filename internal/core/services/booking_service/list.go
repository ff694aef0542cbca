package booking_service

import (
	"context"
	"fmt"
	"strings"

	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/in"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/out"
)

func (s *BookingService) List(ctx context.Context, session domain.Session, query in.AppointmentListQuery) (*domain.Page[domain.Appointment], error) {
	appointments, err := s.dentalAPIPort.ListAppointments(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("booking.list.fetch_failed: %w", err)
	}

	filtered := FilterAppointments(appointments, query.Search)

	perPage := query.PerPage
	if perPage <= 0 {
		perPage = s.cfg.Booking.PageSize
	}
	page := domain.Paginate(filtered, query.Page, perPage)

	s.logger.Debug("booking.list.done", out.LogFields{
		"search":     query.Search,
		"total":      len(appointments),
		"matched":    page.TotalItems,
		"page":       page.Page,
		"totalPages": page.TotalPages,
	})

	return &page, nil
}

// FilterAppointments оставляет записи, у которых имя врача или статус содержат search без учета регистра,
// либо дата содержит search как подстроку. Пустой search оставляет записи, у которых есть имя врача,
// статус или дата. Запись без всех трех отбрасывается при любом search.
func FilterAppointments(appointments []domain.Appointment, search string) []domain.Appointment {
	filtered := make([]domain.Appointment, 0, len(appointments))
	needle := strings.ToLower(search)

	for _, appointment := range appointments {
		if matchesSearch(appointment, search, needle) {
			filtered = append(filtered, appointment)
		}
	}

	return filtered
}

func matchesSearch(appointment domain.Appointment, search, needle string) bool {
	if appointment.Dentist != nil && appointment.Dentist.Name != "" &&
		strings.Contains(strings.ToLower(appointment.Dentist.Name), needle) {
		return true
	}
	if appointment.Status != nil && appointment.Status.Description != "" &&
		strings.Contains(strings.ToLower(appointment.Status.Description), needle) {
		return true
	}
	return !appointment.Date.IsZero() && strings.Contains(appointment.Date.String(), search)
}
