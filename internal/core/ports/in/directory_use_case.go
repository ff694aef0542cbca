package in

import (
	"context"

	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
)

type SortQuery struct {
	Key        string
	Descending bool
}

type DirectoryUseCase interface {
	ListDentists(ctx context.Context, session domain.Session, sort SortQuery) ([]domain.Dentist, error)
	CreateDentist(ctx context.Context, session domain.Session, input domain.DentistInput) (*domain.Dentist, error)
	UpdateDentist(ctx context.Context, session domain.Session, dentistID int, input domain.DentistInput) (*domain.Dentist, error)
	DeleteDentist(ctx context.Context, session domain.Session, dentistID int) error

	ListUsers(ctx context.Context, session domain.Session, sort SortQuery) ([]domain.User, error)
	CreateUser(ctx context.Context, session domain.Session, input domain.UserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, session domain.Session, userID int, input domain.UserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, session domain.Session, userID int) error

	ListStatuses(ctx context.Context, session domain.Session) ([]domain.AppointmentStatus, error)

	GetForm(ctx context.Context, session domain.Session, name string, values domain.FormValues) (*domain.FormDescriptor, error)
}
