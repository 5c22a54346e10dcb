package schedule

import (
	"context"
	"fmt"
	"sync"

	"escolaadmin/core"
	"escolaadmin/core/lesson"
	"escolaadmin/core/student"
)

// Filter modes of the schedule views.
const (
	FilterAll     = "all"
	FilterTeacher = "teacher"
	FilterStudent = "student"
)

// RosterFetcher fetches the students of one lesson. The lesson list endpoint
// does not embed rosters, so student filtering needs one call per candidate.
type RosterFetcher interface {
	GetLessonStudents(ctx context.Context, lessonID int) ([]student.Student, error)
}

// ByTeacher returns the lessons taught by teacherID, preserving snapshot
// order.
func ByTeacher(snapshot []lesson.Lesson, teacherID int) []lesson.Lesson {
	matched := make([]lesson.Lesson, 0, len(snapshot))
	for _, l := range snapshot {
		if l.TeacherID == teacherID {
			matched = append(matched, l)
		}
	}
	return matched
}

// ByStudent returns the lessons whose roster contains studentID. Roster
// fetches fan out concurrently and are joined as a batch; a failed fetch
// excludes its lesson (logged, never silently included — the caller cannot
// verify membership of a lesson it could not read). Snapshot order is
// preserved.
func ByStudent(ctx context.Context, rosters RosterFetcher, snapshot []lesson.Lesson, studentID int, log core.Logger) []lesson.Lesson {
	matches := make([]bool, len(snapshot))

	var wg sync.WaitGroup
	for i, l := range snapshot {
		wg.Add(1)
		go func(i int, lessonID int) {
			defer wg.Done()
			roster, err := rosters.GetLessonStudents(ctx, lessonID)
			if err != nil {
				log.Warn(fmt.Sprintf("fetching roster of lesson %d: %v", lessonID, err), err)
				return
			}
			for _, s := range roster {
				if s.ID == studentID {
					matches[i] = true
					return
				}
			}
		}(i, l.ID)
	}
	wg.Wait()

	matched := make([]lesson.Lesson, 0, len(snapshot))
	for i, l := range snapshot {
		if matches[i] {
			matched = append(matched, l)
		}
	}
	return matched
}
