package billing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"escolaadmin/core"
)

type testLogger struct{}

func (testLogger) Enable(bool)                  {}
func (testLogger) Debug(string, ...interface{}) {}
func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}
func (testLogger) Fatal(string, ...interface{}) {}

type fakeRepo struct {
	entries []Entry
	updated map[int]NewEntry
	failing map[int]bool
}

func (r *fakeRepo) QueryAllEntries(context.Context) ([]Entry, error) { return r.entries, nil }
func (r *fakeRepo) QueryEntriesByStudent(context.Context, int) ([]Entry, error) {
	return nil, nil
}
func (r *fakeRepo) QueryEntriesByMonth(context.Context, time.Month, int) ([]Entry, error) {
	return nil, nil
}
func (r *fakeRepo) QueryPendingEntries(context.Context) ([]Entry, error) { return nil, nil }
func (r *fakeRepo) GetEntry(context.Context, int) (Entry, error)         { return Entry{}, nil }
func (r *fakeRepo) CreateEntry(context.Context, NewEntry) (Entry, error) { return Entry{}, nil }

func (r *fakeRepo) UpdateEntry(_ context.Context, id int, ne NewEntry) (Entry, error) {
	if r.failing[id] {
		return Entry{}, assert.AnError
	}
	if r.updated == nil {
		r.updated = make(map[int]NewEntry)
	}
	r.updated[id] = ne
	return Entry{ID: id, StudentID: ne.StudentID, Date: ne.Date, Status: ne.Status, Amount: ne.Amount}, nil
}

func (r *fakeRepo) DeleteEntry(context.Context, int) error { return nil }

func TestEntry_Stale(t *testing.T) {
	now := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		entry Entry
		want  bool
	}{
		{name: "past pending", entry: Entry{Date: core.NewDate(2025, time.January, 10), Status: StatusPending}, want: true},
		{name: "past paid", entry: Entry{Date: core.NewDate(2025, time.January, 10), Status: StatusPaid}, want: false},
		{name: "past already overdue", entry: Entry{Date: core.NewDate(2025, time.January, 10), Status: StatusOverdue}, want: false},
		{name: "status compare ignores case", entry: Entry{Date: core.NewDate(2025, time.January, 10), Status: "PAGO"}, want: false},
		{name: "due today", entry: Entry{Date: core.NewDate(2025, time.January, 15), Status: StatusPending}, want: false},
		{name: "future", entry: Entry{Date: core.NewDate(2025, time.February, 1), Status: StatusPending}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.Stale(now))
		})
	}
}

func TestSummarize(t *testing.T) {
	entries := []Entry{
		{Status: StatusPaid},
		{Status: "Pago"},
		{Status: StatusOverdue},
		{Status: StatusPending},
		{Status: "whatever"}, // unknown counts as pending
	}
	s := Summarize(entries)
	assert.Equal(t, Summary{Total: 5, Paid: 2, Overdue: 1, Pending: 2}, s)
}

func TestService_RolloverOverdue(t *testing.T) {
	now := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)
	repo := &fakeRepo{
		entries: []Entry{
			{ID: 1, StudentID: 5, Date: core.NewDate(2025, time.January, 10), Status: StatusPending, Amount: 350},
			{ID: 2, StudentID: 5, Date: core.NewDate(2025, time.January, 10), Status: StatusPaid, Amount: 350},
			{ID: 3, StudentID: 6, Date: core.NewDate(2025, time.February, 10), Status: StatusPending, Amount: 350},
		},
	}
	svc := NewService(repo, testLogger{})

	flagged, err := svc.RolloverOverdue(context.Background(), now)
	assert.NoError(t, err)
	assert.Equal(t, 1, flagged)

	// the stale entry was rewritten wholesale with only the status changed
	ne, ok := repo.updated[1]
	assert.True(t, ok)
	assert.Equal(t, StatusOverdue, ne.Status)
	assert.Equal(t, 5, ne.StudentID)
	assert.Equal(t, 350.0, ne.Amount.Float())
	assert.NotContains(t, repo.updated, 2)
	assert.NotContains(t, repo.updated, 3)
}

func TestService_RolloverOverdue_failuresAreSkipped(t *testing.T) {
	now := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)
	repo := &fakeRepo{
		entries: []Entry{
			{ID: 1, Date: core.NewDate(2025, time.January, 10), Status: StatusPending},
			{ID: 2, Date: core.NewDate(2025, time.January, 10), Status: StatusPending},
		},
		failing: map[int]bool{1: true},
	}
	svc := NewService(repo, testLogger{})

	flagged, err := svc.RolloverOverdue(context.Background(), now)
	assert.NoError(t, err)
	assert.Equal(t, 1, flagged)
}
