package student

import "context"

type (
	Repository interface {
		QueryAllStudents(ctx context.Context) ([]Student, error)
		GetStudent(ctx context.Context, id int) (Student, error)
		CreateStudent(ctx context.Context, ns NewStudent) (Student, error)
		UpdateStudent(ctx context.Context, id int, ns NewStudent) (Student, error)
		DeleteStudent(ctx context.Context, id int) error
		AddStudentTeacher(ctx context.Context, studentID, teacherID int) error
		RemoveStudentTeacher(ctx context.Context, studentID, teacherID int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// QueryAll returns all students; with activeOnly, inactive ones are filtered
// out here since the API has no such flag.
func (svc *Service) QueryAll(ctx context.Context, activeOnly bool) ([]Student, error) {
	students, err := svc.repo.QueryAllStudents(ctx)
	if err != nil {
		return nil, err
	}
	if !activeOnly {
		return students, nil
	}
	active := make([]Student, 0, len(students))
	for _, s := range students {
		if s.Active {
			active = append(active, s)
		}
	}
	return active, nil
}

func (svc *Service) GetByID(ctx context.Context, id int) (Student, error) {
	return svc.repo.GetStudent(ctx, id)
}

func (svc *Service) Create(ctx context.Context, ns NewStudent) (Student, error) {
	return svc.repo.CreateStudent(ctx, ns)
}

func (svc *Service) Update(ctx context.Context, id int, ns NewStudent) (Student, error) {
	return svc.repo.UpdateStudent(ctx, id, ns)
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	return svc.repo.DeleteStudent(ctx, id)
}

func (svc *Service) AddTeacher(ctx context.Context, studentID, teacherID int) error {
	return svc.repo.AddStudentTeacher(ctx, studentID, teacherID)
}

func (svc *Service) RemoveTeacher(ctx context.Context, studentID, teacherID int) error {
	return svc.repo.RemoveStudentTeacher(ctx, studentID, teacherID)
}
