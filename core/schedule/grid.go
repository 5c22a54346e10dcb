// Package schedule holds the calendar view logic of the dashboard: the
// weekly grid, lesson filtering, monetary aggregation and the teacher-scoped
// bulk mutations. Everything here works on an in-memory lesson snapshot; the
// snapshot itself comes and goes wholesale through lesson.Service.
package schedule

import (
	"fmt"
	"time"
)

const (
	firstSlotHour = 7
	lastSlotHour  = 21
)

// WeekOf returns the 7 consecutive calendar days of the week containing
// anchor, starting on the Monday on or before it. Weeks crossing month or
// year boundaries come out as plain calendar arithmetic would.
func WeekOf(anchor time.Time) []time.Time {
	monday := StartOfWeek(anchor)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

// StartOfWeek returns midnight of the Monday on or before t.
func StartOfWeek(t time.Time) time.Time {
	diff := int(t.Weekday()) - int(time.Monday)
	if diff < 0 { // Sunday
		diff += 7
	}
	y, m, d := t.AddDate(0, 0, -diff).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WeekBounds returns the inclusive [Monday 00:00, Sunday 23:59:59.999…]
// range of the week containing anchor.
func WeekBounds(anchor time.Time) (time.Time, time.Time) {
	start := StartOfWeek(anchor)
	end := start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return start, end
}

// Slots returns the 29 half-hour grid labels from "07:00" to "21:00".
func Slots() []string {
	slots := make([]string, 0, (lastSlotHour-firstSlotHour)*2+1)
	for hour := firstSlotHour; hour < lastSlotHour; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
		slots = append(slots, fmt.Sprintf("%02d:30", hour))
	}
	return append(slots, fmt.Sprintf("%02d:00", lastSlotHour))
}

// SameDay compares two instants by calendar date only.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
