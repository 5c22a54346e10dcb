package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"escolaadmin/core/teacher"
)

type teacherApi struct {
	svc      *teacher.Service
	validate *validator.Validate
}

func registerTeacherAPI(g *echo.Group, auth echo.MiddlewareFunc, deps ServerDeps) {
	api := teacherApi{svc: deps.TeacherSvc, validate: deps.Validate}

	tg := g.Group("/teachers", auth)
	tg.GET("", api.query)
	tg.POST("", api.create)

	dg := tg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
	dg.GET("/students", api.students)
	dg.POST("/students/:studentID", api.addStudent)
	dg.DELETE("/students/:studentID", api.removeStudent)
}

// Handlers

func (api *teacherApi) query(ctx echo.Context) error {
	var q ActiveQuery
	q.Bind(ctx)
	teachers, err := api.svc.QueryAll(ctx.Request().Context(), q.ActiveOnly)
	if err != nil {
		return errors.Wrap(err, "fetching teachers")
	}
	return ctx.JSON(http.StatusOK, teachers)
}

func (api *teacherApi) create(ctx echo.Context) error {
	var data teacher.NewTeacher
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTeacher")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	t, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating teacher")
	}
	return ctx.JSON(http.StatusCreated, t)
}

func (api *teacherApi) retrieve(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	t, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "fetching teacher")
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api *teacherApi) update(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	var data teacher.NewTeacher
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTeacher")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	t, err := api.svc.Update(ctx.Request().Context(), id, data)
	if err != nil {
		return errors.Wrap(err, "updating teacher")
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api *teacherApi) destroy(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	if err := api.svc.Delete(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting teacher")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *teacherApi) students(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	students, err := api.svc.Students(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "fetching teacher students")
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *teacherApi) addStudent(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	studentID, err := pathID(ctx, "studentID")
	if err != nil {
		return err
	}
	if err := api.svc.AddStudent(ctx.Request().Context(), id, studentID); err != nil {
		return errors.Wrap(err, "pairing student with teacher")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *teacherApi) removeStudent(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	studentID, err := pathID(ctx, "studentID")
	if err != nil {
		return err
	}
	if err := api.svc.RemoveStudent(ctx.Request().Context(), id, studentID); err != nil {
		return errors.Wrap(err, "unpairing student from teacher")
	}
	return ctx.NoContent(http.StatusNoContent)
}
