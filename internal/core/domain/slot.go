package domain

import "github.com/suchimauz/dental-schedule-slots/internal/core/json_types"

// TimeSlot одна точка начала/окончания приема в рабочем окне врача.
type TimeSlot struct {
	Value json_types.TimeOfDay `json:"value"`
	Label string               `json:"label"`
}

// Availability выбор времени для врача на дату.
type Availability struct {
	DentistID  int             `json:"dentistId"`
	Date       json_types.Date `json:"date"`
	Slots      []TimeSlot      `json:"slots"`
	StartTimes []TimeSlot      `json:"startTimes"`
	EndTimes   []TimeSlot      `json:"endTimes"`
}
