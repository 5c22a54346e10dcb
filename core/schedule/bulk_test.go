package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"escolaadmin/core/lesson"
)

// fakeBulkRepo records mutations; failing lists lesson IDs whose request errors.
type fakeBulkRepo struct {
	updated map[int]lesson.WriteLesson
	deleted []int
	failing map[int]bool
}

func newFakeBulkRepo(failing ...int) *fakeBulkRepo {
	r := &fakeBulkRepo{
		updated: make(map[int]lesson.WriteLesson),
		failing: make(map[int]bool),
	}
	for _, id := range failing {
		r.failing[id] = true
	}
	return r
}

func (r *fakeBulkRepo) UpdateLesson(_ context.Context, id int, wl lesson.WriteLesson) (lesson.Lesson, error) {
	if r.failing[id] {
		return lesson.Lesson{}, assert.AnError
	}
	r.updated[id] = wl
	return lesson.Lesson{ID: id, TeacherID: wl.TeacherID}, nil
}

func (r *fakeBulkRepo) DeleteLesson(_ context.Context, id int) error {
	if r.failing[id] {
		return assert.AnError
	}
	r.deleted = append(r.deleted, id)
	return nil
}

func testLessons(n int) []lesson.Lesson {
	lessons := make([]lesson.Lesson, n)
	start := time.Date(2025, time.January, 15, 14, 30, 0, 0, lesson.SchoolZone)
	for i := range lessons {
		lessons[i] = lesson.Lesson{
			ID:            i + 1,
			TeacherID:     7,
			Date:          lesson.WireDateOf(start.AddDate(0, 0, 7*i)),
			Language:      "Inglês",
			TeacherAmount: 40,
			SchoolAmount:  60,
			Active:        true,
		}
	}
	return lessons
}

func TestMutator_DeleteAll(t *testing.T) {
	repo := newFakeBulkRepo(2, 4)
	m := NewMutator(repo, 0, testLogger{})

	res := m.DeleteAll(context.Background(), testLessons(5))
	assert.Equal(t, 3, res.Succeeded)
	assert.Equal(t, 2, res.Failed)
	assert.Equal(t, []int{1, 3, 5}, repo.deleted)
	assert.Equal(t, "3 succeeded, 2 failed", res.Summary())
}

func TestMutator_throttlesBetweenRequests(t *testing.T) {
	repo := newFakeBulkRepo()
	m := NewMutator(repo, 200*time.Millisecond, testLogger{})

	var pauses []time.Duration
	m.sleep = func(d time.Duration) { pauses = append(pauses, d) }

	m.DeleteAll(context.Background(), testLessons(4))

	// a pause between consecutive requests, none after the last
	assert.Len(t, pauses, 3)
	for _, d := range pauses {
		assert.Equal(t, 200*time.Millisecond, d)
	}
}

func TestMutator_Reassign(t *testing.T) {
	repo := newFakeBulkRepo()
	m := NewMutator(repo, 0, testLogger{})

	lessons := testLessons(2)
	lessons[1].Language = "" // stored record may lack a language

	res := m.Reassign(context.Background(), lessons, 9)
	assert.Equal(t, 2, res.Succeeded)
	assert.Equal(t, 0, res.Failed)
	assert.Equal(t, "2 succeeded", res.Summary())

	// the full record is resubmitted with only the teacher changed
	wl := repo.updated[1]
	assert.Equal(t, 9, wl.TeacherID)
	assert.Equal(t, "2025-01-15T14:30:00-03:00", wl.Date)
	assert.Equal(t, 40.0, wl.TeacherAmount.Float())
	assert.Equal(t, 60.0, wl.SchoolAmount.Float())
	assert.True(t, wl.Active)

	// missing language falls back instead of writing an empty field
	assert.Equal(t, "Inglês", repo.updated[2].Language)
}

func TestMutator_Reassign_unusableTimestamp(t *testing.T) {
	repo := newFakeBulkRepo()
	m := NewMutator(repo, 0, testLogger{})

	lessons := testLessons(2)
	lessons[0].Date = lesson.WireDate{}

	res := m.Reassign(context.Background(), lessons, 9)
	assert.Equal(t, 1, res.Succeeded)
	assert.Equal(t, 1, res.Failed)
	// no request was issued for the unusable record
	assert.NotContains(t, repo.updated, 1)
	assert.Contains(t, repo.updated, 2)
}
