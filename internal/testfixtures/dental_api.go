package testfixtures

import (
	"context"
	"sync"

	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/json_types"
)

// AppointmentUpdate зафиксированный вызов UpdateAppointment
type AppointmentUpdate struct {
	ID    int
	Input domain.AppointmentInput
}

// DentalAPI внешний API в памяти.
// Если Err задан, его возвращает любой вызов.
type DentalAPI struct {
	mu sync.Mutex

	Dentists     []domain.Dentist
	Appointments []domain.Appointment
	Users        []domain.User
	Statuses     []domain.AppointmentStatus

	LoginResult   *domain.LoginResult
	Credentials   []domain.Credentials
	Registrations []domain.Registration
	Created       []domain.AppointmentInput
	Updated       []AppointmentUpdate
	Tokens        []string

	Err    error
	calls  map[string]int
	nextID int
}

func NewDentalAPI() *DentalAPI {
	return &DentalAPI{
		Statuses: Statuses(),
		calls:    make(map[string]int),
		nextID:   1000,
	}
}

func (d *DentalAPI) Calls(method string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls[method]
}

func (d *DentalAPI) SetErr(err error) {
	d.mu.Lock()
	d.Err = err
	d.mu.Unlock()
}

func (d *DentalAPI) record(method string, session *domain.Session) error {
	d.calls[method]++
	if session != nil {
		d.Tokens = append(d.Tokens, session.Token)
	}
	return d.Err
}

func (d *DentalAPI) Login(ctx context.Context, credentials domain.Credentials) (*domain.LoginResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.record("Login", nil); err != nil {
		return nil, err
	}
	d.Credentials = append(d.Credentials, credentials)
	if d.LoginResult == nil {
		return &domain.LoginResult{Token: "token", User: domain.User{ID: 1, Email: credentials.Email}}, nil
	}
	result := *d.LoginResult
	return &result, nil
}

func (d *DentalAPI) Register(ctx context.Context, registration domain.Registration) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.record("Register", nil); err != nil {
		return err
	}
	d.Registrations = append(d.Registrations, registration)
	return nil
}

func (d *DentalAPI) ListAppointments(ctx context.Context, session domain.Session) ([]domain.Appointment, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.record("ListAppointments", &session); err != nil {
		return nil, err
	}
	return append([]domain.Appointment(nil), d.Appointments...), nil
}

func (d *DentalAPI) ListDentistAppointments(ctx context.Context, session domain.Session, dentistID int, date json_types.Date) ([]domain.Appointment, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.record("ListDentistAppointments", &session); err != nil {
		return nil, err
	}
	appointments := make([]domain.Appointment, 0)
	for _, appointment := range d.Appointments {
		if appointment.DentistID == dentistID && appointment.Date.Equal(date) {
			appointments = append(appointments, appointment)
		}
	}
	return appointments, nil
}

func (d *DentalAPI) CreateAppointment(ctx context.Context, session domain.Session, input domain.AppointmentInput) (*domain.Appointment, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.record("CreateAppointment", &session); err != nil {
		return nil, err
	}
	d.Created = append(d.Created, input)
	d.nextID++
	appointment := domain.Appointment{
		ID:        d.nextID,
		DentistID: input.DentistID,
		UserID:    session.User.ID,
		Date:      input.Date,
		TimeFrom:  input.TimeFrom,
		TimeTo:    input.TimeTo,
		StatusID:  domain.AppointmentStatusScheduled,
	}
	d.Appointments = append(d.Appointments, appointment)
	return &appointment, nil
}

func (d *DentalAPI) UpdateAppointment(ctx context.Context, session domain.Session, appointmentID int, input domain.AppointmentInput) (*domain.Appointment, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.record("UpdateAppointment", &session); err != nil {
		return nil, err
	}
	d.Updated = append(d.Updated, AppointmentUpdate{ID: appointmentID, Input: input})
	for i, appointment := range d.Appointments {
		if appointment.ID != appointmentID {
			continue
		}
		appointment.DentistID = input.DentistID
		appointment.Date = input.Date
		appointment.TimeFrom = input.TimeFrom
		appointment.TimeTo = input.TimeTo
		if input.StatusID != nil {
			appointment.StatusID = *input.StatusID
			appointment.Status = nil
		}
		d.Appointments[i] = appointment
		return &appointment, nil
	}
	return nil, &domain.UpstreamError{StatusCode: 404, Message: "Appointment not found"}
}

func (d *DentalAPI) DeleteAppointment(ctx context.Context, session domain.Session, appointmentID int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.record("DeleteAppointment", &session); err != nil {
		return err
	}
	for i, appointment := range d.Appointments {
		if appointment.ID == appointmentID {
			d.Appointments = append(d.Appointments[:i], d.Appointments[i+1:]...)
			return nil
		}
	}
	return &domain.UpstreamError{StatusCode: 404, Message: "Appointment not found"}
}

func (d *DentalAPI) ListDentists(ctx context.Context, session domain.Session) ([]domain.Dentist, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.record("ListDentists", &session); err != nil {
		return nil, err
	}
	return append([]domain.Dentist(nil), d.Dentists...), nil
}

func (d *DentalAPI) CreateDentist(ctx context.Context, session domain.Session, input domain.DentistInput) (*domain.Dentist, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.record("CreateDentist", &session); err != nil {
		return nil, err
	}
	d.nextID++
	dentist := dentistFromInput(d.nextID, input)
	d.Dentists = append(d.Dentists, dentist)
	return &dentist, nil
}

func (d *DentalAPI) UpdateDentist(ctx context.Context, session domain.Session, dentistID int, input domain.DentistInput) (*domain.Dentist, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.record("UpdateDentist", &session); err != nil {
		return nil, err
	}
	for i := range d.Dentists {
		if d.Dentists[i].ID == dentistID {
			d.Dentists[i] = dentistFromInput(dentistID, input)
			dentist := d.Dentists[i]
			return &dentist, nil
		}
	}
	return nil, &domain.UpstreamError{StatusCode: 404, Message: "Dentist not found"}
}

func (d *DentalAPI) DeleteDentist(ctx context.Context, session domain.Session, dentistID int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.record("DeleteDentist", &session); err != nil {
		return err
	}
	for i := range d.Dentists {
		if d.Dentists[i].ID == dentistID {
			d.Dentists = append(d.Dentists[:i], d.Dentists[i+1:]...)
			return nil
		}
	}
	return &domain.UpstreamError{StatusCode: 404, Message: "Dentist not found"}
}

func (d *DentalAPI) ListUsers(ctx context.Context, session domain.Session) ([]domain.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.record("ListUsers", &session); err != nil {
		return nil, err
	}
	return append([]domain.User(nil), d.Users...), nil
}

func (d *DentalAPI) CreateUser(ctx context.Context, session domain.Session, input domain.UserInput) (*domain.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.record("CreateUser", &session); err != nil {
		return nil, err
	}
	d.nextID++
	user := domain.User{ID: d.nextID, Name: input.Name, Email: input.Email, IsAdmin: input.IsAdmin}
	d.Users = append(d.Users, user)
	return &user, nil
}

func (d *DentalAPI) UpdateUser(ctx context.Context, session domain.Session, userID int, input domain.UserInput) (*domain.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.record("UpdateUser", &session); err != nil {
		return nil, err
	}
	for i := range d.Users {
		if d.Users[i].ID == userID {
			d.Users[i] = domain.User{ID: userID, Name: input.Name, Email: input.Email, IsAdmin: input.IsAdmin}
			user := d.Users[i]
			return &user, nil
		}
	}
	return nil, &domain.UpstreamError{StatusCode: 404, Message: "User not found"}
}

func (d *DentalAPI) DeleteUser(ctx context.Context, session domain.Session, userID int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.record("DeleteUser", &session); err != nil {
		return err
	}
	for i := range d.Users {
		if d.Users[i].ID == userID {
			d.Users = append(d.Users[:i], d.Users[i+1:]...)
			return nil
		}
	}
	return &domain.UpstreamError{StatusCode: 404, Message: "User not found"}
}

func (d *DentalAPI) ListStatuses(ctx context.Context, session domain.Session) ([]domain.AppointmentStatus, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.record("ListStatuses", &session); err != nil {
		return nil, err
	}
	return append([]domain.AppointmentStatus(nil), d.Statuses...), nil
}

func dentistFromInput(id int, input domain.DentistInput) domain.Dentist {
	return domain.Dentist{
		ID:             id,
		Name:           input.Name,
		Email:          input.Email,
		Specialization: input.Specialization,
		AvailableStart: input.AvailableStart,
		AvailableEnd:   input.AvailableEnd,
	}
}
