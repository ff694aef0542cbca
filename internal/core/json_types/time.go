package json_types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// TimeOfDay время суток в секундах от полуночи.
// Невалидное значение (пустая или битая строка) считается отсутствующим.
type TimeOfDay struct {
	Seconds int
	Valid   bool
}

// NewTimeOfDay собирает время из часов, минут и секунд без проверки диапазона.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay{Seconds: hour*secondsPerHour + minute*secondsPerMinute + second, Valid: true}
}

// ParseTimeOfDay понимает H:MM, HH:MM и HH:MM:SS, а также "24:00" как конец суток.
func ParseTimeOfDay(str string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(str), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return TimeOfDay{}, fmt.Errorf("failed to parse time of day %q", str)
	}

	values := make([]int, 3)
	for i, part := range parts {
		if part == "" || len(part) > 2 {
			return TimeOfDay{}, fmt.Errorf("failed to parse time of day %q", str)
		}
		v, err := strconv.Atoi(part)
		if err != nil || v < 0 {
			return TimeOfDay{}, fmt.Errorf("failed to parse time of day %q", str)
		}
		values[i] = v
	}

	hour, minute, second := values[0], values[1], values[2]
	if minute > 59 || second > 59 || hour > 24 || (hour == 24 && (minute != 0 || second != 0)) {
		return TimeOfDay{}, fmt.Errorf("time of day %q out of range", str)
	}

	return NewTimeOfDay(hour, minute, second), nil
}

// TimeOfDayOf берет время суток из момента времени в его таймзоне.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
}

func (t TimeOfDay) Hour() int { return t.Seconds / secondsPerHour }
func (t TimeOfDay) Minute() int { return t.Seconds % secondsPerHour / secondsPerMinute }
func (t TimeOfDay) Second() int { return t.Seconds % secondsPerMinute }

// IsEndOfDay сообщает, что значение равно "24:00".
func (t TimeOfDay) IsEndOfDay() bool {
	return t.Valid && t.Seconds == secondsPerDay
}

func (t TimeOfDay) Before(other TimeOfDay) bool { return t.Seconds < other.Seconds }
func (t TimeOfDay) After(other TimeOfDay) bool { return t.Seconds > other.Seconds }
func (t TimeOfDay) Equal(other TimeOfDay) bool {
	return t.Valid == other.Valid && t.Seconds == other.Seconds
}

func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	return TimeOfDay{Seconds: t.Seconds + int(d/time.Second), Valid: t.Valid}
}

func (t TimeOfDay) TruncateToMinute() TimeOfDay {
	return TimeOfDay{Seconds: t.Seconds - t.Second(), Valid: t.Valid}
}

// String возвращает HH:MM:SS или пустую строку для отсутствующего значения.
func (t TimeOfDay) String() string {
	if !t.Valid {
		return ""
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = TimeOfDay{}
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("failed to parse time: %v", err)
	}

	// Битое значение не валит весь ответ, а считается отсутствующим
	parsed, err := ParseTimeOfDay(str)
	if err != nil {
		*t = TimeOfDay{}
		return nil
	}
	*t = parsed
	return nil
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}
