package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"escolaadmin/core/lesson"
	"escolaadmin/core/student"
)

type testLogger struct{}

func (testLogger) Enable(bool)                  {}
func (testLogger) Debug(string, ...interface{}) {}
func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}
func (testLogger) Fatal(string, ...interface{}) {}

// fakeRosters maps lessonID to roster; failing lists lessons whose fetch errors.
type fakeRosters struct {
	rosters map[int][]student.Student
	failing map[int]bool
}

func (f *fakeRosters) GetLessonStudents(_ context.Context, lessonID int) ([]student.Student, error) {
	if f.failing[lessonID] {
		return nil, assert.AnError
	}
	return f.rosters[lessonID], nil
}

func TestByTeacher(t *testing.T) {
	snapshot := []lesson.Lesson{
		{ID: 1, TeacherID: 7},
		{ID: 2, TeacherID: 9},
		{ID: 3, TeacherID: 7},
	}
	matched := ByTeacher(snapshot, 7)
	assert.Len(t, matched, 2)
	assert.Equal(t, 1, matched[0].ID)
	assert.Equal(t, 3, matched[1].ID)

	assert.Empty(t, ByTeacher(snapshot, 42))
}

func TestByStudent(t *testing.T) {
	snapshot := []lesson.Lesson{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}
	rosters := &fakeRosters{
		rosters: map[int][]student.Student{
			1: {{ID: 5}, {ID: 6}},
			2: {{ID: 6}},
			3: {{ID: 5}},
			4: {{ID: 5}},
		},
		failing: map[int]bool{4: true},
	}

	matched := ByStudent(context.Background(), rosters, snapshot, 5, testLogger{})

	// lesson 4's roster could not be read; it is excluded, not guessed at
	ids := make([]int, len(matched))
	for i, l := range matched {
		ids[i] = l.ID
	}
	assert.Equal(t, []int{1, 3}, ids)
}

func TestByStudent_allFetchesFail(t *testing.T) {
	snapshot := []lesson.Lesson{{ID: 1}, {ID: 2}}
	rosters := &fakeRosters{failing: map[int]bool{1: true, 2: true}}

	matched := ByStudent(context.Background(), rosters, snapshot, 5, testLogger{})
	assert.Empty(t, matched)
}
