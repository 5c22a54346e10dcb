package billing

import (
	"context"
	"fmt"
	"time"

	"escolaadmin/core"
)

type (
	Repository interface {
		QueryAllEntries(ctx context.Context) ([]Entry, error)
		QueryEntriesByStudent(ctx context.Context, studentID int) ([]Entry, error)
		QueryEntriesByMonth(ctx context.Context, month time.Month, year int) ([]Entry, error)
		QueryPendingEntries(ctx context.Context) ([]Entry, error)
		GetEntry(ctx context.Context, id int) (Entry, error)
		CreateEntry(ctx context.Context, ne NewEntry) (Entry, error)
		UpdateEntry(ctx context.Context, id int, ne NewEntry) (Entry, error)
		DeleteEntry(ctx context.Context, id int) error
	}

	Service struct {
		repo Repository
		log  core.Logger
	}
)

func NewService(repo Repository, logger core.Logger) *Service {
	return &Service{repo: repo, log: logger}
}

func (svc *Service) QueryAll(ctx context.Context) ([]Entry, error) {
	return svc.repo.QueryAllEntries(ctx)
}

func (svc *Service) QueryByStudent(ctx context.Context, studentID int) ([]Entry, error) {
	return svc.repo.QueryEntriesByStudent(ctx, studentID)
}

func (svc *Service) QueryByMonth(ctx context.Context, month time.Month, year int) ([]Entry, error) {
	return svc.repo.QueryEntriesByMonth(ctx, month, year)
}

func (svc *Service) QueryPending(ctx context.Context) ([]Entry, error) {
	return svc.repo.QueryPendingEntries(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Entry, error) {
	return svc.repo.GetEntry(ctx, id)
}

func (svc *Service) Create(ctx context.Context, ne NewEntry) (Entry, error) {
	return svc.repo.CreateEntry(ctx, ne)
}

func (svc *Service) Update(ctx context.Context, id int, ne NewEntry) (Entry, error) {
	return svc.repo.UpdateEntry(ctx, id, ne)
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	return svc.repo.DeleteEntry(ctx, id)
}

// RolloverOverdue flags every stale entry as overdue with a full-record
// update and returns how many were flagged. Individual failures are logged
// and skipped; the sweep is re-run on the next view load anyway.
func (svc *Service) RolloverOverdue(ctx context.Context, now time.Time) (int, error) {
	entries, err := svc.repo.QueryAllEntries(ctx)
	if err != nil {
		return 0, err
	}
	var flagged int
	for _, e := range entries {
		if !e.Stale(now) {
			continue
		}
		_, err := svc.repo.UpdateEntry(ctx, e.ID, NewEntry{
			StudentID: e.StudentID,
			Date:      e.Date,
			Status:    StatusOverdue,
			Amount:    e.Amount,
		})
		if err != nil {
			svc.log.Warn(fmt.Sprintf("flagging billing entry %d overdue: %v", e.ID, err), err)
			continue
		}
		flagged++
	}
	return flagged, nil
}
