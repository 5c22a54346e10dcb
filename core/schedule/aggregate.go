package schedule

import (
	"sort"
	"time"

	"escolaadmin/core"
	"escolaadmin/core/lesson"
)

type (
	// PeriodTotals are the derived figures shown above the grid: lesson
	// count, what the school owes its teachers and what it takes in.
	PeriodTotals struct {
		Lessons      int         `json:"lessons"`
		TeacherTotal core.Amount `json:"teacher_total"`
		SchoolTotal  core.Amount `json:"school_total"`
	}

	// MonthTotals is one aggregate row of the month view; only months with
	// at least one lesson get a row.
	MonthTotals struct {
		Year  int        `json:"year"`
		Month time.Month `json:"month"`
		PeriodTotals
	}

	// DayView is one column header of the weekly grid.
	DayView struct {
		Date    string `json:"date"` // YYYY-MM-DD
		Weekday string `json:"weekday"`
		Lessons int    `json:"lessons"`
		Today   bool   `json:"today"`
	}

	// SlotRow is one row of the weekly grid: a half-hour label and the
	// lessons per day falling exactly on it.
	SlotRow struct {
		Slot  string            `json:"slot"`
		Cells [7][]lesson.Lesson `json:"cells"`
	}

	// WeekView is the complete weekly grid for one anchor date.
	WeekView struct {
		Days   []DayView    `json:"days"`
		Rows   []SlotRow    `json:"rows"`
		Totals PeriodTotals `json:"totals"`
	}
)

func (t *PeriodTotals) add(l lesson.Lesson) {
	t.Lessons++
	t.TeacherTotal += l.TeacherAmount
	t.SchoolTotal += l.SchoolAmount
}

// DayCount counts the lessons falling on one calendar day.
func DayCount(lessons []lesson.Lesson, day time.Time) int {
	var n int
	for _, l := range lessons {
		if l.Date.SameDay(day) {
			n++
		}
	}
	return n
}

// AtSlot returns the lessons on one calendar day whose timestamp falls
// exactly on the given half-hour label. Placement is a pure function of the
// parsed timestamp; unparsable dates never place.
func AtSlot(lessons []lesson.Lesson, day time.Time, slot string) []lesson.Lesson {
	var at []lesson.Lesson
	for _, l := range lessons {
		if l.Date.SameDay(day) && l.Date.Slot() == slot {
			at = append(at, l)
		}
	}
	return at
}

// WeekTotals aggregates the lessons inside the week containing anchor.
func WeekTotals(lessons []lesson.Lesson, anchor time.Time) PeriodTotals {
	start, end := WeekBounds(anchor)
	var totals PeriodTotals
	for _, l := range lessons {
		if !l.Date.Valid() {
			continue
		}
		if t := l.Date.Time(); !t.Before(start) && !t.After(end) {
			totals.add(l)
		}
	}
	return totals
}

// YearTotals aggregates the lessons of one calendar year.
func YearTotals(lessons []lesson.Lesson, year int) PeriodTotals {
	var totals PeriodTotals
	for _, l := range lessons {
		if l.Date.Valid() && l.Date.Time().Year() == year {
			totals.add(l)
		}
	}
	return totals
}

// MonthlyBreakdown aggregates one row per month of the given year that has
// lessons, ordered January first.
func MonthlyBreakdown(lessons []lesson.Lesson, year int) []MonthTotals {
	byMonth := make(map[time.Month]*MonthTotals)
	for _, l := range lessons {
		if !l.Date.Valid() || l.Date.Time().Year() != year {
			continue
		}
		month := l.Date.Time().Month()
		row, ok := byMonth[month]
		if !ok {
			row = &MonthTotals{Year: year, Month: month}
			byMonth[month] = row
		}
		row.add(l)
	}

	rows := make([]MonthTotals, 0, len(byMonth))
	for _, row := range byMonth {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Month < rows[j].Month })
	return rows
}

// BuildWeek assembles the full weekly grid for the anchor date. Running it
// twice over the same snapshot yields identical buckets.
func BuildWeek(lessons []lesson.Lesson, anchor, now time.Time) WeekView {
	days := WeekOf(anchor)
	view := WeekView{
		Days:   make([]DayView, len(days)),
		Totals: WeekTotals(lessons, anchor),
	}
	for i, day := range days {
		view.Days[i] = DayView{
			Date:    day.Format("2006-01-02"),
			Weekday: day.Weekday().String(),
			Lessons: DayCount(lessons, day),
			Today:   SameDay(day, now),
		}
	}
	for _, slot := range Slots() {
		row := SlotRow{Slot: slot}
		for i, day := range days {
			row.Cells[i] = AtSlot(lessons, day, slot)
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}
