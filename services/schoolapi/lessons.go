package schoolapi

import (
	"context"
	"fmt"

	"escolaadmin/core/lesson"
	"escolaadmin/core/student"
)

var _ lesson.Repository = (*Client)(nil)

func (c *Client) QueryAllLessons(ctx context.Context) ([]lesson.Lesson, error) {
	var lessons []lesson.Lesson
	err := c.getList(ctx, "/aulas/", &lessons)
	return lessons, err
}

func (c *Client) GetLesson(ctx context.Context, id int) (lesson.Lesson, error) {
	var l lesson.Lesson
	err := c.get(ctx, fmt.Sprintf("/aulas/%d", id), &l)
	return l, err
}

func (c *Client) CreateLesson(ctx context.Context, wl lesson.WriteLesson) (lesson.Lesson, error) {
	var l lesson.Lesson
	err := c.post(ctx, "/aulas/", wl, &l)
	return l, err
}

func (c *Client) UpdateLesson(ctx context.Context, id int, wl lesson.WriteLesson) (lesson.Lesson, error) {
	var l lesson.Lesson
	err := c.put(ctx, fmt.Sprintf("/aulas/%d", id), wl, &l)
	return l, err
}

func (c *Client) DeleteLesson(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/aulas/%d", id))
}

func (c *Client) GetLessonStudents(ctx context.Context, lessonID int) ([]student.Student, error) {
	var students []student.Student
	err := c.getList(ctx, fmt.Sprintf("/aulas/%d/alunos", lessonID), &students)
	return students, err
}

func (c *Client) AddLessonStudent(ctx context.Context, lessonID, studentID int) error {
	return c.post(ctx, fmt.Sprintf("/aulas/%d/alunos/%d", lessonID, studentID), nil, nil)
}

func (c *Client) RemoveLessonStudent(ctx context.Context, lessonID, studentID int) error {
	return c.delete(ctx, fmt.Sprintf("/aulas/%d/alunos/%d", lessonID, studentID))
}
