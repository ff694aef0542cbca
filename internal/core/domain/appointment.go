package domain

import (
	"time"

	"github.com/suchimauz/dental-schedule-slots/internal/core/json_types"
)

type AppointmentStatusID int

// Коды статусов принятые у внешнего API
const (
	AppointmentStatusScheduled   AppointmentStatusID = 1
	AppointmentStatusCancelled   AppointmentStatusID = 2
	AppointmentStatusRescheduled AppointmentStatusID = 3
)

type AppointmentStatus struct {
	ID          AppointmentStatusID `json:"id"`
	Description string              `json:"description"`
}

type Appointment struct {
	ID        int                  `json:"id"`
	DentistID int                  `json:"dentist_id"`
	UserID    int                  `json:"user_id,omitempty"`
	Date      json_types.Date      `json:"date"`
	TimeFrom  json_types.TimeOfDay `json:"timeFrom"`
	TimeTo    json_types.TimeOfDay `json:"timeTo"`
	StatusID  AppointmentStatusID  `json:"status_id,omitempty"`
	Status    *AppointmentStatus   `json:"status,omitempty"`
	Dentist   *Dentist             `json:"dentist,omitempty"`
}

func (a Appointment) IsCancelled() bool {
	if a.StatusID == AppointmentStatusCancelled {
		return true
	}
	return a.Status != nil && a.Status.ID == AppointmentStatusCancelled
}

func (a Appointment) Interval() AppointmentInterval {
	return AppointmentInterval{TimeFrom: a.TimeFrom, TimeTo: a.TimeTo}
}

func (a Appointment) Booking() ProposedBooking {
	return ProposedBooking{
		DentistID: a.DentistID,
		Date:      a.Date,
		TimeFrom:  a.TimeFrom,
		TimeTo:    a.TimeTo,
	}
}

// AppointmentInterval занятый промежуток [TimeFrom, TimeTo).
type AppointmentInterval struct {
	TimeFrom json_types.TimeOfDay `json:"timeFrom"`
	TimeTo   json_types.TimeOfDay `json:"timeTo"`
}

func (i AppointmentInterval) Valid() bool {
	return i.TimeFrom.Valid && i.TimeTo.Valid
}

// Overlaps проверяет пересечение полуинтервалов: [a,b) и [c,d) пересекаются, когда a < d и b > c.
// Интервалы с отсутствующими границами ни с чем не пересекаются.
func (i AppointmentInterval) Overlaps(other AppointmentInterval) bool {
	if !i.Valid() || !other.Valid() {
		return false
	}
	return i.TimeFrom.Before(other.TimeTo) && i.TimeTo.After(other.TimeFrom)
}

// Occupies сообщает, что момент t попадает в [TimeFrom, TimeTo).
func (i AppointmentInterval) Occupies(t json_types.TimeOfDay) bool {
	return i.Overlaps(AppointmentInterval{TimeFrom: t, TimeTo: t.Add(time.Second)})
}

// IntervalsExcluding собирает занятые промежутки дня, пропуская редактируемую запись.
func IntervalsExcluding(appointments []Appointment, editingID int) []AppointmentInterval {
	intervals := make([]AppointmentInterval, 0, len(appointments))
	for _, appointment := range appointments {
		if editingID != 0 && appointment.ID == editingID {
			continue
		}
		intervals = append(intervals, appointment.Interval())
	}
	return intervals
}

// ProposedBooking запись, которую пользователь собирается создать или изменить.
type ProposedBooking struct {
	DentistID int                  `json:"dentist_id"`
	Date      json_types.Date      `json:"date"`
	TimeFrom  json_types.TimeOfDay `json:"timeFrom"`
	TimeTo    json_types.TimeOfDay `json:"timeTo"`
}

func (b ProposedBooking) Interval() AppointmentInterval {
	return AppointmentInterval{TimeFrom: b.TimeFrom, TimeTo: b.TimeTo}
}

func (b ProposedBooking) IsComplete() bool {
	return b.DentistID != 0 && !b.Date.IsZero() && b.TimeFrom.Valid && b.TimeTo.Valid
}

// IsReschedule сообщает, что изменение затрагивает врача, дату или время записи.
func IsReschedule(original Appointment, proposed ProposedBooking) bool {
	return original.DentistID != proposed.DentistID ||
		!original.Date.Equal(proposed.Date) ||
		!original.TimeFrom.Equal(proposed.TimeFrom) ||
		!original.TimeTo.Equal(proposed.TimeTo)
}

// AppointmentInput тело создания и изменения записи во внешнем API.
// StatusID отправляется только при отмене и переносе.
type AppointmentInput struct {
	DentistID int                  `json:"dentist_id"`
	Date      json_types.Date      `json:"date"`
	TimeFrom  json_types.TimeOfDay `json:"timeFrom"`
	TimeTo    json_types.TimeOfDay `json:"timeTo"`
	StatusID  *AppointmentStatusID `json:"status_id,omitempty"`
}

func NewAppointmentInput(booking ProposedBooking, statusID *AppointmentStatusID) AppointmentInput {
	return AppointmentInput{
		DentistID: booking.DentistID,
		Date:      booking.Date,
		TimeFrom:  booking.TimeFrom,
		TimeTo:    booking.TimeTo,
		StatusID:  statusID,
	}
}
