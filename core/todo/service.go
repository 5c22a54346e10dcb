package todo

import "context"

type (
	Repository interface {
		QueryTodos(ctx context.Context, adminID int) ([]Entry, error)
		CreateTodo(ctx context.Context, ne NewEntry) (Entry, error)
		UpdateTodo(ctx context.Context, id int, ne NewEntry) (Entry, error)
		DeleteTodo(ctx context.Context, id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// QueryAll lists the entries, optionally narrowed to one administrator
// (adminID 0 means all).
func (svc *Service) QueryAll(ctx context.Context, adminID int) ([]Entry, error) {
	return svc.repo.QueryTodos(ctx, adminID)
}

func (svc *Service) Create(ctx context.Context, ne NewEntry) (Entry, error) {
	return svc.repo.CreateTodo(ctx, ne)
}

func (svc *Service) Update(ctx context.Context, id int, ne NewEntry) (Entry, error) {
	return svc.repo.UpdateTodo(ctx, id, ne)
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	return svc.repo.DeleteTodo(ctx, id)
}
