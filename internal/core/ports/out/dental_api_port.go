package out

import (
	"context"

	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/json_types"
)

// DentalAPIPort внешний REST API клиники. Все вызовы кроме входа и регистрации
// выполняются от имени переданной сессии.
type DentalAPIPort interface {
	// Авторизация
	Login(ctx context.Context, credentials domain.Credentials) (*domain.LoginResult, error)
	Register(ctx context.Context, registration domain.Registration) error

	// Записи на прием
	ListAppointments(ctx context.Context, session domain.Session) ([]domain.Appointment, error)
	ListDentistAppointments(ctx context.Context, session domain.Session, dentistID int, date json_types.Date) ([]domain.Appointment, error)
	CreateAppointment(ctx context.Context, session domain.Session, input domain.AppointmentInput) (*domain.Appointment, error)
	UpdateAppointment(ctx context.Context, session domain.Session, appointmentID int, input domain.AppointmentInput) (*domain.Appointment, error)
	DeleteAppointment(ctx context.Context, session domain.Session, appointmentID int) error

	// Врачи
	ListDentists(ctx context.Context, session domain.Session) ([]domain.Dentist, error)
	CreateDentist(ctx context.Context, session domain.Session, input domain.DentistInput) (*domain.Dentist, error)
	UpdateDentist(ctx context.Context, session domain.Session, dentistID int, input domain.DentistInput) (*domain.Dentist, error)
	DeleteDentist(ctx context.Context, session domain.Session, dentistID int) error

	// Пользователи
	ListUsers(ctx context.Context, session domain.Session) ([]domain.User, error)
	CreateUser(ctx context.Context, session domain.Session, input domain.UserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, session domain.Session, userID int, input domain.UserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, session domain.Session, userID int) error

	// Справочник статусов
	ListStatuses(ctx context.Context, session domain.Session) ([]domain.AppointmentStatus, error)
}
