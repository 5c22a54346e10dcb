package echoapi

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"escolaadmin/core"
	"escolaadmin/core/lesson"
	"escolaadmin/core/schedule"
)

const anchorLayout = "2006-01-02"

// WeekQuery binds the weekly grid query string: an anchor date inside the
// wanted week plus an optional teacher/student filter.
type WeekQuery struct {
	Anchor    time.Time
	Filter    string
	TeacherID int
	StudentID int
}

func (q *WeekQuery) Bind(ctx echo.Context) error {
	q.Anchor = time.Now().In(lesson.SchoolZone)
	q.Filter = schedule.FilterAll

	if raw := ctx.QueryParam("anchor"); raw != "" {
		anchor, err := time.ParseInLocation(anchorLayout, raw, lesson.SchoolZone)
		if err != nil {
			return core.NewValidationError(err, core.FieldError{Field: "anchor", Error: "expected YYYY-MM-DD"})
		}
		q.Anchor = anchor
	}
	if raw := ctx.QueryParam("filter"); raw != "" {
		q.Filter = raw
	}

	switch q.Filter {
	case schedule.FilterAll:
	case schedule.FilterTeacher:
		id, err := strconv.Atoi(ctx.QueryParam("teacher_id"))
		if err != nil || id <= 0 {
			return core.NewValidationError(nil, core.FieldError{Field: "teacher_id", Error: "required with filter=teacher"})
		}
		q.TeacherID = id
	case schedule.FilterStudent:
		id, err := strconv.Atoi(ctx.QueryParam("student_id"))
		if err != nil || id <= 0 {
			return core.NewValidationError(nil, core.FieldError{Field: "student_id", Error: "required with filter=student"})
		}
		q.StudentID = id
	default:
		return core.NewValidationError(nil, core.FieldError{Field: "filter", Error: "one of all|teacher|student"})
	}
	return nil
}

// MonthsQuery binds the month view query string; the year defaults to the
// current one.
type MonthsQuery struct {
	Year int
}

func (q *MonthsQuery) Bind(ctx echo.Context) error {
	q.Year = time.Now().In(lesson.SchoolZone).Year()
	if raw := ctx.QueryParam("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year < 1 {
			return core.NewValidationError(nil, core.FieldError{Field: "year", Error: "expected a year"})
		}
		q.Year = year
	}
	return nil
}

// ActiveQuery binds the ?active=true toggle of people listings.
type ActiveQuery struct {
	ActiveOnly bool
}

func (q *ActiveQuery) Bind(ctx echo.Context) {
	q.ActiveOnly = ctx.QueryParam("active") == "true"
}

func pathID(ctx echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil || id <= 0 {
		return 0, errHttpNotFound
	}
	return id, nil
}
