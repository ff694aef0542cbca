package domain

import "github.com/suchimauz/dental-schedule-slots/internal/core/json_types"

var (
	DefaultWorkingStart = json_types.NewTimeOfDay(9, 0, 0)
	DefaultWorkingEnd   = json_types.NewTimeOfDay(17, 0, 0)
)

type WorkingHours struct {
	Start json_types.TimeOfDay `json:"start"`
	End   json_types.TimeOfDay `json:"end"`
}

type Dentist struct {
	ID             int                  `json:"id"`
	Name           string               `json:"name"`
	Email          string               `json:"email,omitempty"`
	Specialization string               `json:"specialization,omitempty"`
	AvailableStart json_types.TimeOfDay `json:"availableStart"`
	AvailableEnd   json_types.TimeOfDay `json:"availableEnd"`
}

// WorkingHours возвращает рабочее окно врача, отсутствующие границы заменяются на 09:00 и 17:00.
func (d Dentist) WorkingHours() WorkingHours {
	hours := WorkingHours{Start: d.AvailableStart, End: d.AvailableEnd}
	if !hours.Start.Valid {
		hours.Start = DefaultWorkingStart
	}
	if !hours.End.Valid {
		hours.End = DefaultWorkingEnd
	}
	return hours
}

type DentistInput struct {
	Name           string               `json:"name"`
	Email          string               `json:"email"`
	Specialization string               `json:"specialization"`
	AvailableStart json_types.TimeOfDay `json:"availableStart"`
	AvailableEnd   json_types.TimeOfDay `json:"availableEnd"`
}
