package schoolapi

import (
	"context"
	"fmt"

	"escolaadmin/core/student"
	"escolaadmin/core/teacher"
)

var _ teacher.Repository = (*Client)(nil)

func (c *Client) QueryAllTeachers(ctx context.Context) ([]teacher.Teacher, error) {
	var teachers []teacher.Teacher
	err := c.getList(ctx, "/professores/", &teachers)
	return teachers, err
}

func (c *Client) GetTeacher(ctx context.Context, id int) (teacher.Teacher, error) {
	var t teacher.Teacher
	err := c.get(ctx, fmt.Sprintf("/professores/%d", id), &t)
	return t, err
}

func (c *Client) CreateTeacher(ctx context.Context, nt teacher.NewTeacher) (teacher.Teacher, error) {
	var t teacher.Teacher
	err := c.post(ctx, "/professores/", nt, &t)
	return t, err
}

func (c *Client) UpdateTeacher(ctx context.Context, id int, nt teacher.NewTeacher) (teacher.Teacher, error) {
	var t teacher.Teacher
	err := c.put(ctx, fmt.Sprintf("/professores/%d", id), nt, &t)
	return t, err
}

func (c *Client) DeleteTeacher(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/professores/%d", id))
}

func (c *Client) GetTeacherStudents(ctx context.Context, teacherID int) ([]student.Student, error) {
	var students []student.Student
	err := c.getList(ctx, fmt.Sprintf("/professores/%d/alunos", teacherID), &students)
	return students, err
}

func (c *Client) AddTeacherStudent(ctx context.Context, teacherID, studentID int) error {
	return c.post(ctx, fmt.Sprintf("/professores/%d/alunos/%d", teacherID, studentID), nil, nil)
}

func (c *Client) RemoveTeacherStudent(ctx context.Context, teacherID, studentID int) error {
	return c.delete(ctx, fmt.Sprintf("/professores/%d/alunos/%d", teacherID, studentID))
}
