package directory_service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/json_types"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/in"
	"github.com/suchimauz/dental-schedule-slots/internal/core/services/slot_generator_service"
)

const (
	FormLogin       = "login"
	FormRegister    = "register"
	FormDentist     = "dentist"
	FormUserCreate  = "user-create"
	FormUserEdit    = "user-edit"
	FormAppointment = "appointment"
)

// GetForm описание формы для браузера. values текущие значения формы, от них зависят варианты списков.
func (s *DirectoryService) GetForm(ctx context.Context, session domain.Session, name string, values domain.FormValues) (*domain.FormDescriptor, error) {
	var form domain.Form

	switch name {
	case FormLogin:
		form = loginForm()
	case FormRegister:
		form = registerForm()
	case FormDentist:
		form = dentistForm(values)
	case FormUserCreate:
		form = userCreateForm()
	case FormUserEdit:
		form = userEditForm()
	case FormAppointment:
		appointmentForm, err := s.appointmentForm(ctx, session, values)
		if err != nil {
			return nil, err
		}
		form = appointmentForm
	default:
		return nil, fmt.Errorf("form %q: %w", name, domain.ErrUnknownForm)
	}

	return describeForm(form), nil
}

func loginForm() domain.Form {
	return domain.Form{
		Name:  FormLogin,
		Title: "Login",
		Fields: []domain.FormField{
			domain.TextField{Name: "email", Label: "Email", InputType: domain.FieldKindEmail, Required: true},
			domain.PasswordField{Name: "password", Label: "Password", Required: true},
		},
	}
}

func registerForm() domain.Form {
	return domain.Form{
		Name:  FormRegister,
		Title: "Register",
		Fields: []domain.FormField{
			domain.TextField{Name: "name", Label: "Name", InputType: domain.FieldKindText, Required: true},
			domain.TextField{Name: "email", Label: "Email", InputType: domain.FieldKindEmail, Required: true},
			domain.PasswordField{Name: "password", Label: "Password", Required: true},
		},
	}
}

// dentistForm форма врача. Варианты окончания приема ограничены значениями позже выбранного начала.
func dentistForm(values domain.FormValues) domain.Form {
	options := scheduleOptions()

	endOptions := options
	if start, err := json_types.ParseTimeOfDay(formValue(values, "availableStart")); err == nil {
		endOptions = make([]domain.SelectOption, 0, len(options))
		for _, option := range options {
			value, _ := json_types.ParseTimeOfDay(option.Value)
			if value.After(start) {
				endOptions = append(endOptions, option)
			}
		}
	}

	return domain.Form{
		Name:  FormDentist,
		Title: "Dentist",
		Fields: []domain.FormField{
			domain.TextField{Name: "name", Label: "Name", InputType: domain.FieldKindText, Required: true},
			domain.TextField{Name: "email", Label: "Email", InputType: domain.FieldKindEmail},
			domain.TextField{Name: "specialization", Label: "Specialization", InputType: domain.FieldKindText},
			domain.ScheduleField{
				Label: "Schedule",
				From:  domain.SelectField{Name: "availableStart", Label: "Start", Options: options, Required: true},
				To:    domain.SelectField{Name: "availableEnd", Label: "End", Options: endOptions, Required: true},
			},
		},
	}
}

// scheduleOptions варианты рабочих часов врача с шагом 30 минут
func scheduleOptions() []domain.SelectOption {
	slots, err := slot_generator_service.GenerateSlots("00:00", "23:30", 30)
	if err != nil {
		return make([]domain.SelectOption, 0)
	}
	return slotOptions(slots)
}

func slotOptions(slots []domain.TimeSlot) []domain.SelectOption {
	options := make([]domain.SelectOption, 0, len(slots))
	for _, slot := range slots {
		options = append(options, domain.SelectOption{Value: slot.Value.String(), Label: slot.Label})
	}
	return options
}

func userCreateForm() domain.Form {
	return domain.Form{
		Name:  FormUserCreate,
		Title: "Add User",
		Fields: []domain.FormField{
			domain.TextField{Name: "name", Label: "Name", InputType: domain.FieldKindText, Required: true},
			domain.TextField{Name: "email", Label: "Email", InputType: domain.FieldKindEmail, Required: true},
			domain.PasswordField{Name: "password", Label: "Password", Required: true},
		},
	}
}

func userEditForm() domain.Form {
	return domain.Form{
		Name:  FormUserEdit,
		Title: "Edit User",
		Fields: []domain.FormField{
			domain.TextField{Name: "name", Label: "Name", InputType: domain.FieldKindText, Required: true},
			domain.TextField{Name: "email", Label: "Email", InputType: domain.FieldKindEmail, Required: true},
			domain.CheckboxField{Name: "isAdmin", Label: "Admin"},
		},
	}
}

// appointmentForm форма записи: врачи из внешнего API, дата не раньше сегодняшней,
// время из доступных начал и окончаний для выбранных врача и даты.
func (s *DirectoryService) appointmentForm(ctx context.Context, session domain.Session, values domain.FormValues) (domain.Form, error) {
	dentists, err := s.ListDentists(ctx, session, in.SortQuery{Key: "name"})
	if err != nil {
		return domain.Form{}, err
	}

	dentistOptions := make([]domain.SelectOption, 0, len(dentists))
	for _, dentist := range dentists {
		dentistOptions = append(dentistOptions, domain.SelectOption{Value: strconv.Itoa(dentist.ID), Label: dentist.Name})
	}

	query := in.AvailabilityQuery{}
	query.DentistID, _ = strconv.Atoi(formValue(values, "dentist_id"))
	query.Date, _ = json_types.ParseDate(formValue(values, "date"))
	query.TimeFrom, _ = json_types.ParseTimeOfDay(formValue(values, "timeFrom"))
	query.ExcludeAppointmentID, _ = strconv.Atoi(formValue(values, "editingId"))

	availability, _, err := s.slots.GetAvailability(ctx, session, query)
	if err != nil {
		return domain.Form{}, err
	}

	return domain.Form{
		Name:  FormAppointment,
		Title: "Appointment",
		Fields: []domain.FormField{
			domain.SelectField{Name: "dentist_id", Label: "Dentist", Options: dentistOptions, Required: true},
			domain.DateField{Name: "date", Label: "Date", Min: json_types.DateOf(s.slots.Now()), Required: true},
			domain.SelectField{Name: "timeFrom", Label: "Time From", Options: slotOptions(availability.StartTimes), Required: true},
			domain.SelectField{Name: "timeTo", Label: "Time To", Options: slotOptions(availability.EndTimes), Required: true},
		},
	}, nil
}
