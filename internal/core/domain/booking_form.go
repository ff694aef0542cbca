package domain

import "github.com/suchimauz/dental-schedule-slots/internal/core/json_types"

// BookingForm состояние формы записи одной сессии.
// Generation растет при каждой смене врача, даты или редактируемой записи,
// загруженные интервалы применяются только если их поколение совпадает с текущим.
type BookingForm struct {
	SessionID  string          `json:"-"`
	EditingID  int             `json:"editingId,omitempty"`
	Booking    ProposedBooking `json:"booking"`
	Original   *Appointment    `json:"original,omitempty"`
	Generation uint64          `json:"generation"`

	Intervals           []AppointmentInterval `json:"-"`
	IntervalsGeneration uint64                `json:"-"`
	IntervalsLoaded     bool                  `json:"-"`
}

// BookingFormPatch частичное изменение формы, nil означает "не менять"
type BookingFormPatch struct {
	DentistID *int    `json:"dentist_id"`
	Date      *string `json:"date"`
	TimeFrom  *string `json:"timeFrom"`
	TimeTo    *string `json:"timeTo"`
}

// Apply применяет изменение и сообщает, поменялся ли выбор, от которого зависят интервалы.
func (f *BookingForm) Apply(patch BookingFormPatch) bool {
	selectionChanged := false

	if patch.DentistID != nil && *patch.DentistID != f.Booking.DentistID {
		f.Booking.DentistID = *patch.DentistID
		selectionChanged = true
	}
	if patch.Date != nil {
		date, err := json_types.ParseDate(*patch.Date)
		if err != nil {
			date = json_types.Date{}
		}
		if !date.Equal(f.Booking.Date) {
			f.Booking.Date = date
			selectionChanged = true
		}
	}
	if patch.TimeFrom != nil {
		timeFrom, _ := json_types.ParseTimeOfDay(*patch.TimeFrom)
		if !timeFrom.Equal(f.Booking.TimeFrom) {
			f.Booking.TimeFrom = timeFrom
			// Новое начало сбрасывает окончание
			f.Booking.TimeTo = json_types.TimeOfDay{}
		}
	}
	if patch.TimeTo != nil {
		f.Booking.TimeTo, _ = json_types.ParseTimeOfDay(*patch.TimeTo)
	}

	if f.Booking.TimeFrom.Valid && f.Booking.TimeTo.Valid && !f.Booking.TimeFrom.Before(f.Booking.TimeTo) {
		f.Booking.TimeFrom = json_types.TimeOfDay{}
		f.Booking.TimeTo = json_types.TimeOfDay{}
	}

	if selectionChanged {
		f.Generation++
		f.Intervals = nil
		f.IntervalsLoaded = false
	}

	return selectionChanged
}

// Clear очищает форму, оставляя ее открытой
func (f *BookingForm) Clear() {
	f.EditingID = 0
	f.Original = nil
	f.Booking = ProposedBooking{}
	f.Generation++
	f.Intervals = nil
	f.IntervalsLoaded = false
}

// SetIntervals применяет загруженные интервалы, если поколение еще актуально.
func (f *BookingForm) SetIntervals(generation uint64, intervals []AppointmentInterval) bool {
	if generation != f.Generation {
		return false
	}
	f.Intervals = intervals
	f.IntervalsGeneration = generation
	f.IntervalsLoaded = true
	return true
}

// BookingFormView форма вместе с допустимыми вариантами времени
type BookingFormView struct {
	Form       BookingForm `json:"form"`
	StartTimes []TimeSlot  `json:"startTimes"`
	EndTimes   []TimeSlot  `json:"endTimes"`
}
