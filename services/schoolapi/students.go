package schoolapi

import (
	"context"
	"fmt"

	"escolaadmin/core/student"
)

var _ student.Repository = (*Client)(nil)

func (c *Client) QueryAllStudents(ctx context.Context) ([]student.Student, error) {
	var students []student.Student
	err := c.getList(ctx, "/alunos/", &students)
	return students, err
}

func (c *Client) GetStudent(ctx context.Context, id int) (student.Student, error) {
	var s student.Student
	err := c.get(ctx, fmt.Sprintf("/alunos/%d", id), &s)
	return s, err
}

func (c *Client) CreateStudent(ctx context.Context, ns student.NewStudent) (student.Student, error) {
	var s student.Student
	err := c.post(ctx, "/alunos/", ns, &s)
	return s, err
}

func (c *Client) UpdateStudent(ctx context.Context, id int, ns student.NewStudent) (student.Student, error) {
	var s student.Student
	err := c.put(ctx, fmt.Sprintf("/alunos/%d", id), ns, &s)
	return s, err
}

func (c *Client) DeleteStudent(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/alunos/%d", id))
}

func (c *Client) AddStudentTeacher(ctx context.Context, studentID, teacherID int) error {
	return c.post(ctx, fmt.Sprintf("/alunos/%d/professores/%d", studentID, teacherID), nil, nil)
}

func (c *Client) RemoveStudentTeacher(ctx context.Context, studentID, teacherID int) error {
	return c.delete(ctx, fmt.Sprintf("/alunos/%d/professores/%d", studentID, teacherID))
}
