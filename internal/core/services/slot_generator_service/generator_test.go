package slot_generator_service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
)

func slotValues(slots []domain.TimeSlot) []string {
	values := make([]string, 0, len(slots))
	for _, slot := range slots {
		values = append(values, slot.Value.String())
	}
	return values
}

func TestGenerateSlots_WorkingDay(t *testing.T) {
	slots, err := GenerateSlots("09:00", "17:00", 30)
	require.NoError(t, err)

	require.Len(t, slots, 17)
	assert.Equal(t, "09:00:00", slots[0].Value.String())
	assert.Equal(t, "9:00 AM", slots[0].Label)
	assert.Equal(t, "17:00:00", slots[16].Value.String())
	assert.Equal(t, "5:00 PM", slots[16].Label)
}

func TestGenerateSlots_SingleSlotWindow(t *testing.T) {
	slots, err := GenerateSlots("09:00", "09:00", 30)
	require.NoError(t, err)

	require.Len(t, slots, 1)
	assert.Equal(t, "09:00:00", slots[0].Value.String())
	assert.Equal(t, "9:00 AM", slots[0].Label)
}

func TestGenerateSlots_CountAndOrdering(t *testing.T) {
	cases := []struct {
		start, end string
		interval   int
	}{
		{"09:00", "17:00", 30},
		{"08:15", "12:45", 15},
		{"00:00", "23:30", 30},
		{"10:00", "11:00", 60},
		{"07:00", "07:50", 10},
		{"13:00", "14:00", 20},
	}

	for _, tc := range cases {
		t.Run(tc.start+"-"+tc.end, func(t *testing.T) {
			slots, err := GenerateSlots(tc.start, tc.end, tc.interval)
			require.NoError(t, err)

			startSlots, _ := GenerateSlots(tc.start, tc.start, tc.interval)
			endSlots, _ := GenerateSlots(tc.end, tc.end, tc.interval)
			start := startSlots[0].Value
			end := endSlots[0].Value

			expected := (end.Seconds-start.Seconds)/(tc.interval*60) + 1
			assert.Len(t, slots, expected)
			assert.True(t, slots[0].Value.Equal(start))
			assert.False(t, slots[len(slots)-1].Value.After(end))
			for i := 1; i < len(slots); i++ {
				assert.True(t, slots[i-1].Value.Before(slots[i].Value), "slots must be strictly ascending")
			}
		})
	}
}

func TestGenerateSlots_NonDivisorIntervalNeverPassesEnd(t *testing.T) {
	slots, err := GenerateSlots("09:00", "10:00", 25)
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00:00", "09:25:00", "09:50:00"}, slotValues(slots))
}

func TestGenerateSlots_EndOfDaySentinel(t *testing.T) {
	slots, err := GenerateSlots("23:00", "24:00", 30)
	require.NoError(t, err)

	assert.Equal(t, []string{"23:00:00", "23:30:00", "24:00:00", "00:00:00"}, slotValues(slots))
	assert.Equal(t, "12:00 PM", slots[2].Label)
	assert.Equal(t, "12:00 AM", slots[3].Label)
}

func TestGenerateSlots_Defaults(t *testing.T) {
	slots, err := GenerateSlots("", "", DefaultSlotIntervalMinutes)
	require.NoError(t, err)

	assert.Equal(t, "09:00:00", slots[0].Value.String())
	assert.Equal(t, "17:00:00", slots[len(slots)-1].Value.String())
}

func TestGenerateSlots_RejectsNonPositiveInterval(t *testing.T) {
	for _, interval := range []int{0, -30} {
		slots, err := GenerateSlots("09:00", "17:00", interval)
		assert.ErrorIs(t, err, domain.ErrInvalidInterval)
		assert.Nil(t, slots)
	}
}

func TestGenerateSlots_RejectsMalformedBounds(t *testing.T) {
	_, err := GenerateSlots("nine", "17:00", 30)
	assert.ErrorContains(t, err, "slots.generate.start.invalid")

	_, err = GenerateSlots("09:00", "25:00", 30)
	assert.ErrorContains(t, err, "slots.generate.end.invalid")
}

func TestGenerateSlots_StartAfterEndIsEmpty(t *testing.T) {
	slots, err := GenerateSlots("17:00", "09:00", 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_IsRepeatable(t *testing.T) {
	first, err := GenerateSlots("09:00", "12:00", 30)
	require.NoError(t, err)
	second, err := GenerateSlots("09:00", "12:00", 30)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
