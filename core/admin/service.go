package admin

import (
	"context"

	"escolaadmin/core"
)

type (
	Repository interface {
		Login(ctx context.Context, creds Credentials) (Token, error)
		GetCurrentAdmin(ctx context.Context) (Admin, error)
		CreateAdmin(ctx context.Context, na NewAdmin) (Admin, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Login exchanges credentials for an upstream bearer token. The token is
// never persisted here; the caller stashes it in the session.
func (svc *Service) Login(ctx context.Context, creds Credentials) (Token, error) {
	creds.Name = core.CleanString(creds.Name)
	return svc.repo.Login(ctx, creds)
}

// Current resolves the admin owning the token on ctx.
func (svc *Service) Current(ctx context.Context) (Admin, error) {
	return svc.repo.GetCurrentAdmin(ctx)
}

func (svc *Service) Create(ctx context.Context, na NewAdmin) (Admin, error) {
	na.Name = core.CleanString(na.Name)
	return svc.repo.CreateAdmin(ctx, na)
}
