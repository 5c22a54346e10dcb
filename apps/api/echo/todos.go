package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"escolaadmin/core"
	"escolaadmin/core/todo"
)

type todoApi struct {
	svc      *todo.Service
	validate *validator.Validate
}

func registerTodoAPI(g *echo.Group, auth echo.MiddlewareFunc, deps ServerDeps) {
	api := todoApi{svc: deps.TodoSvc, validate: deps.Validate}

	tg := g.Group("/todos", auth)
	tg.GET("", api.query)
	tg.POST("", api.create)
	tg.PUT("/:id", api.update)
	tg.DELETE("/:id", api.destroy)
}

// Handlers

func (api *todoApi) query(ctx echo.Context) error {
	var adminID int
	if raw := ctx.QueryParam("admin_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return core.NewValidationError(nil, core.FieldError{Field: "admin_id", Error: "expected an admin id"})
		}
		adminID = id
	}
	entries, err := api.svc.QueryAll(ctx.Request().Context(), adminID)
	if err != nil {
		return errors.Wrap(err, "fetching todos")
	}
	return ctx.JSON(http.StatusOK, entries)
}

func (api *todoApi) create(ctx echo.Context) error {
	var data todo.NewEntry
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEntry")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	e, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating todo")
	}
	return ctx.JSON(http.StatusCreated, e)
}

func (api *todoApi) update(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	var data todo.NewEntry
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEntry")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	e, err := api.svc.Update(ctx.Request().Context(), id, data)
	if err != nil {
		return errors.Wrap(err, "updating todo")
	}
	return ctx.JSON(http.StatusOK, e)
}

func (api *todoApi) destroy(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	if err := api.svc.Delete(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting todo")
	}
	return ctx.NoContent(http.StatusNoContent)
}
