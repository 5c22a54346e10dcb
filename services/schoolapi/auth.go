package schoolapi

import (
	"context"

	"escolaadmin/core/admin"
)

var _ admin.Repository = (*Client)(nil)

// Login exchanges credentials for a bearer token; it is the one call made
// without a token on ctx.
func (c *Client) Login(ctx context.Context, creds admin.Credentials) (admin.Token, error) {
	var token admin.Token
	err := c.post(ctx, "/auth/login", creds, &token)
	return token, err
}

func (c *Client) GetCurrentAdmin(ctx context.Context) (admin.Admin, error) {
	var a admin.Admin
	err := c.get(ctx, "/administradores/atual", &a)
	return a, err
}

func (c *Client) CreateAdmin(ctx context.Context, na admin.NewAdmin) (admin.Admin, error) {
	var a admin.Admin
	err := c.post(ctx, "/administradores/", na, &a)
	return a, err
}
