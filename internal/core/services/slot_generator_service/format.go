package slot_generator_service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/suchimauz/dental-schedule-slots/internal/core/json_types"
)

const longDateLayout = "January 2, 2006"

// FormatTimeLabel переводит H:MM[:SS] в 12-часовой вид H:MM AM/PM.
// Минуты остаются ровно такими, как пришли. Пустая или битая строка дает пустую метку.
func FormatTimeLabel(value string) string {
	if value == "" {
		return ""
	}

	parts := strings.Split(value, ":")
	if len(parts) < 2 {
		return ""
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 {
		return ""
	}

	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	hour = hour % 12
	if hour == 0 {
		hour = 12
	}

	return fmt.Sprintf("%d:%s %s", hour, parts[1], ampm)
}

// FormatDate выводит дату в длинном виде, например "January 5, 2025".
func FormatDate(value string) string {
	date, err := json_types.ParseDate(value)
	if err != nil {
		return ""
	}
	return date.Date.Format(longDateLayout)
}
