package schoolapi

import (
	"context"
	"fmt"
	"time"

	"escolaadmin/core/billing"
)

var _ billing.Repository = (*Client)(nil)

func (c *Client) QueryAllEntries(ctx context.Context) ([]billing.Entry, error) {
	var entries []billing.Entry
	err := c.getList(ctx, "/mensalidades/", &entries)
	return entries, err
}

func (c *Client) QueryEntriesByStudent(ctx context.Context, studentID int) ([]billing.Entry, error) {
	var entries []billing.Entry
	err := c.getList(ctx, fmt.Sprintf("/mensalidades/aluno/%d", studentID), &entries)
	return entries, err
}

func (c *Client) QueryEntriesByMonth(ctx context.Context, month time.Month, year int) ([]billing.Entry, error) {
	var entries []billing.Entry
	err := c.getList(ctx, fmt.Sprintf("/mensalidades/mes/%d/ano/%d", month, year), &entries)
	return entries, err
}

func (c *Client) QueryPendingEntries(ctx context.Context) ([]billing.Entry, error) {
	var entries []billing.Entry
	err := c.getList(ctx, "/mensalidades/pendentes", &entries)
	return entries, err
}

func (c *Client) GetEntry(ctx context.Context, id int) (billing.Entry, error) {
	var e billing.Entry
	err := c.get(ctx, fmt.Sprintf("/mensalidades/%d", id), &e)
	return e, err
}

func (c *Client) CreateEntry(ctx context.Context, ne billing.NewEntry) (billing.Entry, error) {
	var e billing.Entry
	err := c.post(ctx, "/mensalidades/", ne, &e)
	return e, err
}

func (c *Client) UpdateEntry(ctx context.Context, id int, ne billing.NewEntry) (billing.Entry, error) {
	var e billing.Entry
	err := c.put(ctx, fmt.Sprintf("/mensalidades/%d", id), ne, &e)
	return e, err
}

func (c *Client) DeleteEntry(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/mensalidades/%d", id))
}
