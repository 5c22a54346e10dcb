package schoolapi

import (
	"context"
	"fmt"

	"escolaadmin/core/language"
)

var _ language.Repository = (*Client)(nil)

func (c *Client) QueryAllLanguages(ctx context.Context) ([]language.Language, error) {
	var languages []language.Language
	err := c.getList(ctx, "/idiomas/", &languages)
	return languages, err
}

func (c *Client) GetLanguage(ctx context.Context, id int) (language.Language, error) {
	var l language.Language
	err := c.get(ctx, fmt.Sprintf("/idiomas/%d", id), &l)
	return l, err
}

func (c *Client) CreateLanguage(ctx context.Context, nl language.NewLanguage) (language.Language, error) {
	var l language.Language
	err := c.post(ctx, "/idiomas/", nl, &l)
	return l, err
}

func (c *Client) UpdateLanguage(ctx context.Context, id int, nl language.NewLanguage) (language.Language, error) {
	var l language.Language
	err := c.put(ctx, fmt.Sprintf("/idiomas/%d", id), nl, &l)
	return l, err
}

func (c *Client) DeleteLanguage(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/idiomas/%d", id))
}
