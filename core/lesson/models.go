package lesson

import (
	"strings"
	"time"

	"escolaadmin/core"
)

const (
	// displayLayout is how the API serializes a lesson timestamp on read.
	displayLayout = "02/01/2006 15:04"
	// isoWriteLayout is how the API expects it on write. The offset is a
	// fixed literal, not a zone lookup; the school runs on -03:00 year-round.
	isoWriteLayout = "2006-01-02T15:04:05"
	isoWriteOffset = "-03:00"

	slotLayout = "15:04"
)

// SchoolZone is the fixed offset every lesson timestamp is interpreted in.
var SchoolZone = time.FixedZone("-03:00", -3*60*60)

// WireDate is a lesson timestamp as exchanged with the school API. The API is
// asymmetric about it: reads arrive as "DD/MM/YYYY HH:mm", writes must be
// ISO-8601 with the literal "-03:00" offset. WireDate owns both conversions
// so nothing else in the app parses date strings.
//
// A record whose timestamp fails to parse stays representable (Valid() is
// false); callers skip it for grid placement instead of failing the view.
type WireDate struct {
	t     time.Time
	valid bool
}

func ParseWireDate(s string) WireDate {
	t, err := time.ParseInLocation(displayLayout, strings.TrimSpace(s), SchoolZone)
	if err != nil {
		return WireDate{}
	}
	return WireDate{t: t, valid: true}
}

func WireDateOf(t time.Time) WireDate {
	if t.IsZero() {
		return WireDate{}
	}
	return WireDate{t: t.In(SchoolZone), valid: true}
}

func (d WireDate) Valid() bool     { return d.valid }
func (d WireDate) Time() time.Time { return d.t }

// Display renders the read-side format, "DD/MM/YYYY HH:mm".
func (d WireDate) Display() string {
	if !d.valid {
		return ""
	}
	return d.t.Format(displayLayout)
}

// ISO renders the write-side format with the fixed offset literal.
func (d WireDate) ISO() string {
	if !d.valid {
		return ""
	}
	return d.t.Format(isoWriteLayout) + isoWriteOffset
}

// Slot is the half-hour grid label this timestamp falls on, e.g. "14:30".
func (d WireDate) Slot() string {
	if !d.valid {
		return ""
	}
	return d.t.Format(slotLayout)
}

// SameDay compares by calendar date only, ignoring time of day.
func (d WireDate) SameDay(t time.Time) bool {
	if !d.valid {
		return false
	}
	y1, m1, day1 := d.t.Date()
	y2, m2, day2 := t.Date()
	return y1 == y2 && m1 == m2 && day1 == day2
}

func (d WireDate) After(t time.Time) bool {
	return d.valid && d.t.After(t)
}

func (d *WireDate) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = WireDate{}
		return nil
	}
	// a bad timestamp must not sink the whole collection
	*d = ParseWireDate(s)
	return nil
}

func (d WireDate) MarshalJSON() ([]byte, error) {
	if !d.valid {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Display() + `"`), nil
}

// Lesson mirrors the school API's aula record. The roster is not embedded;
// it is a separate fetch per lesson with no atomicity guarantee between the
// two.
type Lesson struct {
	ID            int         `json:"id"`
	TeacherID     int         `json:"professor_id"`
	Date          WireDate    `json:"data_aula"`
	Language      string      `json:"idioma"`
	TeacherAmount core.Amount `json:"valor_professor"`
	SchoolAmount  core.Amount `json:"valor_escola"`
	Active        bool        `json:"status"`
}

// WriteLesson is the full record the API requires on create and update; there
// is no partial patch. SeriesID is attached by this client so related weekly
// occurrences can be told apart from coincidental ones later; the current
// upstream stores lessons independently and may discard it.
type WriteLesson struct {
	TeacherID     int         `json:"professor_id"`
	Date          string      `json:"data_aula"` // isoWriteLayout + isoWriteOffset
	Language      string      `json:"idioma"`
	TeacherAmount core.Amount `json:"valor_professor"`
	SchoolAmount  core.Amount `json:"valor_escola"`
	Active        bool        `json:"status"`
	RepeatWeekly  bool        `json:"repetir_dia"`
	SeriesID      string      `json:"serie_id,omitempty"`
}

// NewLesson is the dashboard's input for scheduling a lesson.
type NewLesson struct {
	TeacherID     int         `json:"professor_id" validate:"required"`
	Date          string      `json:"data" validate:"required,dateymd"`
	Time          string      `json:"hora" validate:"required,hhmm"`
	Language      string      `json:"idioma" validate:"required,notblank"`
	TeacherAmount core.Amount `json:"valor_professor" validate:"min=0"`
	SchoolAmount  core.Amount `json:"valor_escola" validate:"min=0"`
	Active        bool        `json:"status"`
	RepeatWeekly  bool        `json:"repetir_dia"`
}

// Start resolves the requested date and time in the school zone.
func (nl NewLesson) Start() (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", nl.Date+" "+nl.Time, SchoolZone)
}
