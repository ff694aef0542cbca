package domain

type RejectionKind string

const (
	RejectionKindInputIncomplete  RejectionKind = "InputIncomplete"
	RejectionKindTemporalInvalid  RejectionKind = "TemporalInvalid"
	RejectionKindRangeInvalid     RejectionKind = "RangeInvalid"
	RejectionKindConflictDetected RejectionKind = "ConflictDetected"
)

type RejectionReason string

// Причины отказа в порядке проверки
const (
	RejectionMissingFields    RejectionReason = "missing fields"
	RejectionPastDate         RejectionReason = "past date"
	RejectionPastStartTime    RejectionReason = "past start time"
	RejectionEndNotAfterStart RejectionReason = "end not after start"
	RejectionConflict         RejectionReason = "conflicts with existing appointment"
)

var rejectionKinds = map[RejectionReason]RejectionKind{
	RejectionMissingFields:    RejectionKindInputIncomplete,
	RejectionPastDate:         RejectionKindTemporalInvalid,
	RejectionPastStartTime:    RejectionKindTemporalInvalid,
	RejectionEndNotAfterStart: RejectionKindRangeInvalid,
	RejectionConflict:         RejectionKindConflictDetected,
}

var rejectionMessages = map[RejectionReason]string{
	RejectionMissingFields:    "Please fill in all fields.",
	RejectionPastDate:         "Cannot select a past date.",
	RejectionPastStartTime:    "Start time cannot be in the past.",
	RejectionEndNotAfterStart: "End time must be later than start time.",
	RejectionConflict:         "Selected time conflicts with an existing appointment.",
}

func (r RejectionReason) Kind() RejectionKind {
	return rejectionKinds[r]
}

// Message текст для пользователя
func (r RejectionReason) Message() string {
	return rejectionMessages[r]
}

// ValidationResult результат проверки записи. Пустая причина означает, что запись допустима.
type ValidationResult struct {
	Reason RejectionReason `json:"reason,omitempty"`
}

func Accepted() ValidationResult {
	return ValidationResult{}
}

func Rejected(reason RejectionReason) ValidationResult {
	return ValidationResult{Reason: reason}
}

func (r ValidationResult) OK() bool {
	return r.Reason == ""
}

func (r ValidationResult) Kind() RejectionKind {
	return r.Reason.Kind()
}

func (r ValidationResult) Message() string {
	return r.Reason.Message()
}
