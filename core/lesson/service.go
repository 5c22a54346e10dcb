package lesson

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"escolaadmin/core"
	"escolaadmin/core/student"
)

// repeatWeeks is how many weekly occurrences follow the first one when a
// lesson is created with RepeatWeekly ("roughly three months").
const repeatWeeks = 12

type (
	Repository interface {
		QueryAllLessons(ctx context.Context) ([]Lesson, error)
		GetLesson(ctx context.Context, id int) (Lesson, error)
		CreateLesson(ctx context.Context, wl WriteLesson) (Lesson, error)
		UpdateLesson(ctx context.Context, id int, wl WriteLesson) (Lesson, error)
		DeleteLesson(ctx context.Context, id int) error
		GetLessonStudents(ctx context.Context, lessonID int) ([]student.Student, error)
		AddLessonStudent(ctx context.Context, lessonID, studentID int) error
		RemoveLessonStudent(ctx context.Context, lessonID, studentID int) error
	}

	Service struct {
		repo Repository
		log  core.Logger
	}

	// CreateResult reports a (possibly multi-record) lesson creation.
	CreateResult struct {
		Created   []Lesson `json:"created"`
		Succeeded int      `json:"succeeded"`
		Failed    int      `json:"failed"`
		SeriesID  string   `json:"serie_id,omitempty"`
	}
)

func NewService(repo Repository, logger core.Logger) *Service {
	return &Service{repo: repo, log: logger}
}

// Snapshot fetches the whole lesson collection. Each call replaces whatever
// the caller held before; there is no incremental merge.
func (svc *Service) Snapshot(ctx context.Context) ([]Lesson, error) {
	return svc.repo.QueryAllLessons(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Lesson, error) {
	return svc.repo.GetLesson(ctx, id)
}

// Create schedules a lesson. With RepeatWeekly it creates one independent
// record per week for the next three months (13 in total), all tagged with a
// fresh series id; individual failures are counted, never fatal.
func (svc *Service) Create(ctx context.Context, nl NewLesson) (CreateResult, error) {
	start, err := nl.Start()
	if err != nil {
		return CreateResult{}, core.NewValidationError(err,
			core.FieldError{Field: "data", Error: "invalid date or time"})
	}

	write := WriteLesson{
		TeacherID:     nl.TeacherID,
		Language:      nl.Language,
		TeacherAmount: nl.TeacherAmount,
		SchoolAmount:  nl.SchoolAmount,
		Active:        nl.Active,
	}

	if !nl.RepeatWeekly {
		write.Date = WireDateOf(start).ISO()
		created, err := svc.repo.CreateLesson(ctx, write)
		if err != nil {
			return CreateResult{Failed: 1}, err
		}
		return CreateResult{Created: []Lesson{created}, Succeeded: 1}, nil
	}

	res := CreateResult{SeriesID: uuid.New().String()}
	write.SeriesID = res.SeriesID
	for week := 0; week <= repeatWeeks; week++ {
		occurrence := start.AddDate(0, 0, 7*week)
		write.Date = WireDateOf(occurrence).ISO()
		created, err := svc.repo.CreateLesson(ctx, write)
		if err != nil {
			svc.log.Error(fmt.Sprintf("creating weekly occurrence at %s: %v", write.Date, err), err)
			res.Failed++
			continue
		}
		res.Created = append(res.Created, created)
		res.Succeeded++
	}
	return res, nil
}

// Update replaces the full record; the API has no partial patch.
func (svc *Service) Update(ctx context.Context, id int, nl NewLesson) (Lesson, error) {
	start, err := nl.Start()
	if err != nil {
		return Lesson{}, core.NewValidationError(err,
			core.FieldError{Field: "data", Error: "invalid date or time"})
	}
	return svc.repo.UpdateLesson(ctx, id, WriteLesson{
		TeacherID:     nl.TeacherID,
		Date:          WireDateOf(start).ISO(),
		Language:      nl.Language,
		TeacherAmount: nl.TeacherAmount,
		SchoolAmount:  nl.SchoolAmount,
		Active:        nl.Active,
	})
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	return svc.repo.DeleteLesson(ctx, id)
}

// Roster returns the students of one lesson; the API keeps rosters as a
// separate resource from the lesson record.
func (svc *Service) Roster(ctx context.Context, lessonID int) ([]student.Student, error) {
	return svc.repo.GetLessonStudents(ctx, lessonID)
}

func (svc *Service) AddStudent(ctx context.Context, lessonID, studentID int) error {
	return svc.repo.AddLessonStudent(ctx, lessonID, studentID)
}

func (svc *Service) RemoveStudent(ctx context.Context, lessonID, studentID int) error {
	return svc.repo.RemoveLessonStudent(ctx, lessonID, studentID)
}

// FutureOf selects the lessons of one teacher strictly after now. This is the
// proxy the bulk operations act on; without a series id in stored records,
// "same teacher, future timestamp" is the closest the data allows.
func FutureOf(snapshot []Lesson, teacherID int, now time.Time) []Lesson {
	var future []Lesson
	for _, l := range snapshot {
		if l.TeacherID != teacherID {
			continue
		}
		if l.Date.After(now) {
			future = append(future, l)
		}
	}
	return future
}
