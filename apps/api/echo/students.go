package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"escolaadmin/core/student"
)

type studentApi struct {
	svc      *student.Service
	validate *validator.Validate
}

func registerStudentAPI(g *echo.Group, auth echo.MiddlewareFunc, deps ServerDeps) {
	api := studentApi{svc: deps.StudentSvc, validate: deps.Validate}

	sg := g.Group("/students", auth)
	sg.GET("", api.query)
	sg.POST("", api.create)

	dg := sg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
	dg.POST("/teachers/:teacherID", api.addTeacher)
	dg.DELETE("/teachers/:teacherID", api.removeTeacher)
}

// Handlers

func (api *studentApi) query(ctx echo.Context) error {
	var q ActiveQuery
	q.Bind(ctx)
	students, err := api.svc.QueryAll(ctx.Request().Context(), q.ActiveOnly)
	if err != nil {
		return errors.Wrap(err, "fetching students")
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *studentApi) create(ctx echo.Context) error {
	var data student.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	s, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating student")
	}
	return ctx.JSON(http.StatusCreated, s)
}

func (api *studentApi) retrieve(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	s, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "fetching student")
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *studentApi) update(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	var data student.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	s, err := api.svc.Update(ctx.Request().Context(), id, data)
	if err != nil {
		return errors.Wrap(err, "updating student")
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *studentApi) destroy(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	if err := api.svc.Delete(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting student")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *studentApi) addTeacher(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	teacherID, err := pathID(ctx, "teacherID")
	if err != nil {
		return err
	}
	if err := api.svc.AddTeacher(ctx.Request().Context(), id, teacherID); err != nil {
		return errors.Wrap(err, "pairing teacher with student")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *studentApi) removeTeacher(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	teacherID, err := pathID(ctx, "teacherID")
	if err != nil {
		return err
	}
	if err := api.svc.RemoveTeacher(ctx.Request().Context(), id, teacherID); err != nil {
		return errors.Wrap(err, "unpairing teacher from student")
	}
	return ctx.NoContent(http.StatusNoContent)
}
