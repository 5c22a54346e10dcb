package teacher

import (
	"context"

	"escolaadmin/core/student"
)

type (
	Repository interface {
		QueryAllTeachers(ctx context.Context) ([]Teacher, error)
		GetTeacher(ctx context.Context, id int) (Teacher, error)
		CreateTeacher(ctx context.Context, nt NewTeacher) (Teacher, error)
		UpdateTeacher(ctx context.Context, id int, nt NewTeacher) (Teacher, error)
		DeleteTeacher(ctx context.Context, id int) error
		GetTeacherStudents(ctx context.Context, teacherID int) ([]student.Student, error)
		AddTeacherStudent(ctx context.Context, teacherID, studentID int) error
		RemoveTeacherStudent(ctx context.Context, teacherID, studentID int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll(ctx context.Context, activeOnly bool) ([]Teacher, error) {
	teachers, err := svc.repo.QueryAllTeachers(ctx)
	if err != nil {
		return nil, err
	}
	if !activeOnly {
		return teachers, nil
	}
	active := make([]Teacher, 0, len(teachers))
	for _, t := range teachers {
		if t.Active {
			active = append(active, t)
		}
	}
	return active, nil
}

func (svc *Service) GetByID(ctx context.Context, id int) (Teacher, error) {
	return svc.repo.GetTeacher(ctx, id)
}

func (svc *Service) Create(ctx context.Context, nt NewTeacher) (Teacher, error) {
	return svc.repo.CreateTeacher(ctx, nt)
}

func (svc *Service) Update(ctx context.Context, id int, nt NewTeacher) (Teacher, error) {
	return svc.repo.UpdateTeacher(ctx, id, nt)
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	return svc.repo.DeleteTeacher(ctx, id)
}

func (svc *Service) Students(ctx context.Context, teacherID int) ([]student.Student, error) {
	return svc.repo.GetTeacherStudents(ctx, teacherID)
}

func (svc *Service) AddStudent(ctx context.Context, teacherID, studentID int) error {
	return svc.repo.AddTeacherStudent(ctx, teacherID, studentID)
}

func (svc *Service) RemoveStudent(ctx context.Context, teacherID, studentID int) error {
	return svc.repo.RemoveTeacherStudent(ctx, teacherID, studentID)
}
