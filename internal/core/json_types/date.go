package json_types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date календарная дата без времени, хранится как полночь UTC.
// Нулевое значение означает отсутствие даты.
type Date struct {
	Date time.Time
}

func parseDate(str string) (time.Time, error) {
	str = strings.TrimSpace(str)
	parsedDate, err := time.Parse(dateLayout, str)
	if err != nil {
		// Если пришла дата со временем, то берем только дату
		withTime, errWithTime := time.Parse(time.RFC3339, str)
		if errWithTime != nil {
			return time.Time{}, fmt.Errorf("failed to parse date: %v", err)
		}
		parsedDate = time.Date(withTime.Year(), withTime.Month(), withTime.Day(), 0, 0, 0, 0, time.UTC)
	}
	return parsedDate, nil
}

func ParseDate(str string) (Date, error) {
	parsed, err := parseDate(str)
	if err != nil {
		return Date{}, err
	}
	return Date{Date: parsed}, nil
}

// DateOf берет календарную дату момента времени в его таймзоне.
func DateOf(t time.Time) Date {
	return Date{Date: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) IsZero() bool { return d.Date.IsZero() }
func (d Date) Before(other Date) bool { return d.Date.Before(other.Date) }
func (d Date) Equal(other Date) bool { return d.Date.Equal(other.Date) }
func (d Date) AddDays(days int) Date { return Date{Date: d.Date.AddDate(0, 0, days)} }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Date.Format(dateLayout)
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("failed to parse date: %v", err)
	}

	parsed, err := ParseDate(str)
	if err != nil {
		*d = Date{}
		return nil
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
