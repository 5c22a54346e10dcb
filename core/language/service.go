package language

import "context"

type (
	Repository interface {
		QueryAllLanguages(ctx context.Context) ([]Language, error)
		GetLanguage(ctx context.Context, id int) (Language, error)
		CreateLanguage(ctx context.Context, nl NewLanguage) (Language, error)
		UpdateLanguage(ctx context.Context, id int, nl NewLanguage) (Language, error)
		DeleteLanguage(ctx context.Context, id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll(ctx context.Context) ([]Language, error) {
	return svc.repo.QueryAllLanguages(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Language, error) {
	return svc.repo.GetLanguage(ctx, id)
}

func (svc *Service) Create(ctx context.Context, nl NewLanguage) (Language, error) {
	return svc.repo.CreateLanguage(ctx, nl)
}

func (svc *Service) Update(ctx context.Context, id int, nl NewLanguage) (Language, error) {
	return svc.repo.UpdateLanguage(ctx, id, nl)
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	return svc.repo.DeleteLanguage(ctx, id)
}
