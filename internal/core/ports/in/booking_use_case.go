package in

import (
	"context"

	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
)

type AppointmentListQuery struct {
	Search  string
	Page    int
	PerPage int
}

type BookingUseCase interface {
	Submit(ctx context.Context, session domain.Session, proposed domain.ProposedBooking, editingID int) (*domain.Appointment, domain.ValidationResult, error)
	Cancel(ctx context.Context, session domain.Session, appointmentID int) (*domain.Appointment, error)
	Delete(ctx context.Context, session domain.Session, appointmentID int) error
	List(ctx context.Context, session domain.Session, query AppointmentListQuery) (*domain.Page[domain.Appointment], error)

	// Форма записи текущей сессии
	OpenForm(ctx context.Context, session domain.Session, editingID int) (*domain.BookingFormView, error)
	GetForm(ctx context.Context, session domain.Session) (*domain.BookingFormView, error)
	PatchForm(ctx context.Context, session domain.Session, patch domain.BookingFormPatch) (*domain.BookingFormView, error)
	ClearForm(ctx context.Context, session domain.Session) (*domain.BookingFormView, error)
	SubmitForm(ctx context.Context, session domain.Session) (*domain.Appointment, domain.ValidationResult, error)
	DiscardForm(ctx context.Context, session domain.Session)
}
