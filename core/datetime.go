package core

import (
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"

	// datetime layouts the API has been seen emitting; it omits the zone.
	dateTimeLayout      = "2006-01-02T15:04:05"
	dateTimeLayoutZoned = time.RFC3339
)

// Date is a calendar date (no wall-clock component) serialized as
// "YYYY-MM-DD" on the wire.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return jsonNull, nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// Before reports whether d falls strictly before the calendar date of t.
func (d Date) BeforeDay(t time.Time) bool {
	y, m, day := t.Date()
	return d.Time.Before(time.Date(y, m, day, 0, 0, 0, 0, d.Location()))
}

// DateTime is a timestamp serialized as ISO-8601; the API emits it without a
// zone designator, so both zoned and naive forms are accepted.
type DateTime struct {
	time.Time
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{dateTimeLayoutZoned, dateTimeLayout, dateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	// unknown format; treat as absent rather than failing the whole record
	d.Time = time.Time{}
	return nil
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return jsonNull, nil
	}
	return []byte(`"` + d.Format(dateTimeLayout) + `"`), nil
}
