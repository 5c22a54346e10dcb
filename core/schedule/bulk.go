package schedule

import (
	"context"
	"fmt"
	"time"

	"escolaadmin/core"
	"escolaadmin/core/lesson"
)

// fallbackLanguage fills the language field of a reassigned lesson when the
// stored record has none; the write contract requires the full record.
const fallbackLanguage = "Inglês"

type (
	// BulkRepository is the slice of the lesson repository the mutator
	// writes through.
	BulkRepository interface {
		UpdateLesson(ctx context.Context, id int, wl lesson.WriteLesson) (lesson.Lesson, error)
		DeleteLesson(ctx context.Context, id int) error
	}

	// Mutator applies an operation to a batch of lessons one request at a
	// time, pausing Interval between consecutive requests. The pause is a
	// throttling contract with the upstream API, not incidental sleep;
	// tests stub the clock through the sleep field.
	Mutator struct {
		repo     BulkRepository
		interval time.Duration
		log      core.Logger

		sleep func(time.Duration) // mockable
	}

	// BulkResult summarizes a best-effort batch; a unit failure never
	// aborts the remainder.
	BulkResult struct {
		Succeeded int `json:"succeeded"`
		Failed    int `json:"failed"`
	}
)

func NewMutator(repo BulkRepository, interval time.Duration, logger core.Logger) *Mutator {
	return &Mutator{
		repo:     repo,
		interval: interval,
		log:      logger,
		sleep:    time.Sleep,
	}
}

// Summary renders the end-of-batch notification text.
func (r BulkResult) Summary() string {
	if r.Failed > 0 {
		return fmt.Sprintf("%d succeeded, %d failed", r.Succeeded, r.Failed)
	}
	return fmt.Sprintf("%d succeeded", r.Succeeded)
}

// DeleteAll deletes every given lesson sequentially. Callers must re-fetch
// the snapshot afterwards; the batch does not patch it.
func (m *Mutator) DeleteAll(ctx context.Context, lessons []lesson.Lesson) BulkResult {
	var res BulkResult
	for i, l := range lessons {
		if err := m.repo.DeleteLesson(ctx, l.ID); err != nil {
			m.log.Warn(fmt.Sprintf("deleting lesson %d: %v", l.ID, err), err)
			res.Failed++
		} else {
			res.Succeeded++
		}
		m.pause(i, len(lessons))
	}
	return res
}

// Reassign moves every given lesson to newTeacherID, resubmitting the full
// record with the same date, amounts and status. A lesson whose stored
// timestamp cannot be converted to the write format counts as failed without
// a request being issued.
func (m *Mutator) Reassign(ctx context.Context, lessons []lesson.Lesson, newTeacherID int) BulkResult {
	var res BulkResult
	for i, l := range lessons {
		if !l.Date.Valid() {
			m.log.Warn(fmt.Sprintf("lesson %d has an unusable timestamp; skipping", l.ID))
			res.Failed++
			continue
		}
		language := l.Language
		if language == "" {
			language = fallbackLanguage
		}
		_, err := m.repo.UpdateLesson(ctx, l.ID, lesson.WriteLesson{
			TeacherID:     newTeacherID,
			Date:          l.Date.ISO(),
			Language:      language,
			TeacherAmount: l.TeacherAmount,
			SchoolAmount:  l.SchoolAmount,
			Active:        l.Active,
		})
		if err != nil {
			m.log.Warn(fmt.Sprintf("reassigning lesson %d: %v", l.ID, err), err)
			res.Failed++
		} else {
			res.Succeeded++
		}
		m.pause(i, len(lessons))
	}
	return res
}

func (m *Mutator) pause(i, total int) {
	if m.interval > 0 && i < total-1 {
		m.sleep(m.interval)
	}
}
