package schoolapi

import (
	"context"
	"fmt"

	"escolaadmin/core/todo"
)

var _ todo.Repository = (*Client)(nil)

func (c *Client) QueryTodos(ctx context.Context, adminID int) ([]todo.Entry, error) {
	path := "/afazeres/"
	if adminID != 0 {
		path = fmt.Sprintf("/afazeres/?administrador_id=%d", adminID)
	}
	var entries []todo.Entry
	err := c.getList(ctx, path, &entries)
	return entries, err
}

func (c *Client) CreateTodo(ctx context.Context, ne todo.NewEntry) (todo.Entry, error) {
	var e todo.Entry
	err := c.post(ctx, "/afazeres/", ne, &e)
	return e, err
}

func (c *Client) UpdateTodo(ctx context.Context, id int, ne todo.NewEntry) (todo.Entry, error) {
	var e todo.Entry
	err := c.put(ctx, fmt.Sprintf("/afazeres/%d", id), ne, &e)
	return e, err
}

func (c *Client) DeleteTodo(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/afazeres/%d", id))
}
