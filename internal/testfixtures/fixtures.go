package testfixtures

import (
	"testing"
	"time"

	"github.com/suchimauz/dental-schedule-slots/internal/config"
	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/json_types"
)

// Config конфигурация с настройками по умолчанию и таймзоной UTC
func Config() *config.Config {
	cfg := &config.Config{}
	cfg.SetLocation(time.UTC)
	cfg.HTTP.AllowedOrigins = []string{"http://localhost:3000"}
	cfg.DentalAPI.URL = "http://dental.test"
	cfg.DentalAPI.Timeout = 5 * time.Second
	cfg.Session.TTL = time.Hour
	cfg.Session.StoreSize = 100
	cfg.Session.CookieName = "dental_session"
	cfg.Booking.SlotInterval = 30
	cfg.Booking.PageSize = 5
	cfg.Auth.RatePerMinute = 60
	cfg.Auth.RateBurst = 10
	cfg.Auth.RateStoreSize = 100
	cfg.Cache.Enabled = true
	cfg.Cache.DentistsSize = 100
	cfg.Cache.AppointmentsSize = 100
	cfg.Cache.AppointmentsTTL = time.Minute
	cfg.Cache.StatusesTTL = time.Minute
	return cfg
}

func Session() domain.Session {
	return domain.Session{
		ID:    "session-1",
		Token: "token-1",
		User:  domain.User{ID: 1, Name: "Alice", Email: "alice@example.com", IsAdmin: true},
	}
}

func Time(t testing.TB, value string) json_types.TimeOfDay {
	t.Helper()
	parsed, err := json_types.ParseTimeOfDay(value)
	if err != nil {
		t.Fatalf("parse time %q: %v", value, err)
	}
	return parsed
}

func Date(t testing.TB, value string) json_types.Date {
	t.Helper()
	parsed, err := json_types.ParseDate(value)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return parsed
}

func Interval(t testing.TB, from, to string) domain.AppointmentInterval {
	t.Helper()
	return domain.AppointmentInterval{TimeFrom: Time(t, from), TimeTo: Time(t, to)}
}

// Dentist врач с рабочими часами 09:00-12:00
func Dentist(t testing.TB) domain.Dentist {
	t.Helper()
	return domain.Dentist{
		ID:             7,
		Name:           "Dr. Smith",
		Email:          "smith@example.com",
		Specialization: "Orthodontics",
		AvailableStart: Time(t, "09:00"),
		AvailableEnd:   Time(t, "12:00"),
	}
}

// Appointment запись врача 7 на дату с указанным временем
func Appointment(t testing.TB, id int, date, from, to string) domain.Appointment {
	t.Helper()
	return domain.Appointment{
		ID:        id,
		DentistID: 7,
		UserID:    1,
		Date:      Date(t, date),
		TimeFrom:  Time(t, from),
		TimeTo:    Time(t, to),
		StatusID:  domain.AppointmentStatusScheduled,
		Status:    &domain.AppointmentStatus{ID: domain.AppointmentStatusScheduled, Description: "SCHEDULED"},
	}
}

func Statuses() []domain.AppointmentStatus {
	return []domain.AppointmentStatus{
		{ID: domain.AppointmentStatusScheduled, Description: "SCHEDULED"},
		{ID: domain.AppointmentStatusCancelled, Description: "CANCELLED"},
		{ID: domain.AppointmentStatusRescheduled, Description: "RESCHEDULED"},
	}
}
