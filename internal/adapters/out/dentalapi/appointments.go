package dentalapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/json_types"
)

type dentistAppointmentsRequest struct {
	DentistID int             `json:"dentistId"`
	Date      json_types.Date `json:"date"`
}

func (a *DentalAPIAdapter) ListAppointments(ctx context.Context, session domain.Session) ([]domain.Appointment, error) {
	appointments := make([]domain.Appointment, 0)
	if err := a.do(ctx, "dental_api.appointments.list", http.MethodGet, "/appointments", session.Token, nil, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// ListDentistAppointments записи врача на дату, чтение идет через POST
func (a *DentalAPIAdapter) ListDentistAppointments(ctx context.Context, session domain.Session, dentistID int, date json_types.Date) ([]domain.Appointment, error) {
	appointments := make([]domain.Appointment, 0)
	request := dentistAppointmentsRequest{DentistID: dentistID, Date: date}
	if err := a.do(ctx, "dental_api.appointments.dentist", http.MethodPost, "/appointments/dentist", session.Token, request, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (a *DentalAPIAdapter) CreateAppointment(ctx context.Context, session domain.Session, input domain.AppointmentInput) (*domain.Appointment, error) {
	appointment := appointmentFromInput(0, input)
	if err := a.do(ctx, "dental_api.appointments.create", http.MethodPost, "/appointments", session.Token, input, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (a *DentalAPIAdapter) UpdateAppointment(ctx context.Context, session domain.Session, appointmentID int, input domain.AppointmentInput) (*domain.Appointment, error) {
	appointment := appointmentFromInput(appointmentID, input)
	path := fmt.Sprintf("/appointments/%d", appointmentID)
	if err := a.do(ctx, "dental_api.appointments.update", http.MethodPut, path, session.Token, input, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (a *DentalAPIAdapter) DeleteAppointment(ctx context.Context, session domain.Session, appointmentID int) error {
	path := fmt.Sprintf("/appointments/%d", appointmentID)
	return a.do(ctx, "dental_api.appointments.delete", http.MethodDelete, path, session.Token, nil, nil)
}

// appointmentFromInput значение по умолчанию, если внешний API ответил пустым телом
func appointmentFromInput(id int, input domain.AppointmentInput) domain.Appointment {
	appointment := domain.Appointment{
		ID:        id,
		DentistID: input.DentistID,
		Date:      input.Date,
		TimeFrom:  input.TimeFrom,
		TimeTo:    input.TimeTo,
	}
	if input.StatusID != nil {
		appointment.StatusID = *input.StatusID
	}
	return appointment
}
