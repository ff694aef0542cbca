package slot_generator_service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTimeLabel(t *testing.T) {
	cases := map[string]string{
		"00:30":    "12:30 AM",
		"13:05":    "1:05 PM",
		"":         "",
		"12:00":    "12:00 PM",
		"09:00:00": "9:00 AM",
		"23:59:59": "11:59 PM",
		"9:5":      "9:5 AM",
		"xx:30":    "",
		"0930":     "",
	}

	for input, expected := range cases {
		assert.Equal(t, expected, FormatTimeLabel(input), "input %q", input)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "January 5, 2025", FormatDate("2025-01-05"))
	assert.Equal(t, "June 10, 2025", FormatDate("2025-06-10T15:04:05Z"))
	assert.Equal(t, "", FormatDate(""))
	assert.Equal(t, "", FormatDate("not a date"))
}
