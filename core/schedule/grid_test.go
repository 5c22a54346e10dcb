package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"escolaadmin/core/lesson"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, lesson.SchoolZone)
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name   string
		anchor time.Time
		want   time.Time
	}{
		{name: "wednesday", anchor: day(2025, time.January, 15), want: day(2025, time.January, 13)},
		{name: "monday maps to itself", anchor: day(2025, time.January, 13), want: day(2025, time.January, 13)},
		{name: "sunday maps back six days", anchor: day(2025, time.January, 19), want: day(2025, time.January, 13)},
		{name: "time of day is dropped", anchor: day(2025, time.January, 15).Add(23 * time.Hour), want: day(2025, time.January, 13)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StartOfWeek(tt.anchor))
		})
	}
}

func TestWeekOf(t *testing.T) {
	days := WeekOf(day(2025, time.January, 15))
	assert.Len(t, days, 7)
	assert.Equal(t, day(2025, time.January, 13), days[0])
	assert.Equal(t, day(2025, time.January, 19), days[6])

	// month and year boundaries are plain calendar arithmetic
	days = WeekOf(day(2024, time.December, 31))
	assert.Equal(t, day(2024, time.December, 30), days[0])
	assert.Equal(t, day(2025, time.January, 5), days[6])
}

func TestWeekBounds(t *testing.T) {
	start, end := WeekBounds(day(2025, time.January, 15))
	assert.Equal(t, day(2025, time.January, 13), start)
	assert.True(t, end.Before(day(2025, time.January, 20)))
	assert.True(t, end.After(day(2025, time.January, 19).Add(23*time.Hour+59*time.Minute)))
}

func TestSlots(t *testing.T) {
	slots := Slots()
	assert.Len(t, slots, 29)
	assert.Equal(t, "07:00", slots[0])
	assert.Equal(t, "07:30", slots[1])
	assert.Equal(t, "20:30", slots[27])
	assert.Equal(t, "21:00", slots[28])
}
