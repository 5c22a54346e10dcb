package billing

import (
	"strings"
	"time"

	"escolaadmin/core"
)

// Billing statuses as stored upstream. Comparison is case-insensitive; the
// data contains both spellings.
const (
	StatusPending = "pendente"
	StatusPaid    = "pago"
	StatusOverdue = "atrasado"
)

// Entry is a monthly tuition charge (mensalidade) of one student.
type Entry struct {
	ID        int         `json:"id"`
	StudentID int         `json:"aluno_id"`
	Date      core.Date   `json:"data"`
	Status    string      `json:"status"`
	Amount    core.Amount `json:"valor"`
}

// NewEntry is the write shape for both create and full-record update.
type NewEntry struct {
	StudentID int         `json:"aluno_id" validate:"required"`
	Date      core.Date   `json:"data" validate:"required"`
	Status    string      `json:"status" validate:"required,oneof=pendente pago atrasado"`
	Amount    core.Amount `json:"valor" validate:"required,gt=0"`
}

// Summary is the header row of the billing view.
type Summary struct {
	Total   int `json:"total"`
	Paid    int `json:"paid"`
	Overdue int `json:"overdue"`
	Pending int `json:"pending"`
}

func statusIs(entry Entry, status string) bool {
	return strings.EqualFold(entry.Status, status)
}

// Stale reports whether the entry should have been flagged overdue already:
// dated before today and neither paid nor already overdue.
func (e Entry) Stale(now time.Time) bool {
	if !e.Date.BeforeDay(now) {
		return false
	}
	return !statusIs(e, StatusPaid) && !statusIs(e, StatusOverdue)
}

// Summarize derives the billing counters from a set of entries.
func Summarize(entries []Entry) Summary {
	s := Summary{Total: len(entries)}
	for _, e := range entries {
		switch {
		case statusIs(e, StatusPaid):
			s.Paid++
		case statusIs(e, StatusOverdue):
			s.Overdue++
		}
	}
	s.Pending = s.Total - s.Paid - s.Overdue
	return s
}
