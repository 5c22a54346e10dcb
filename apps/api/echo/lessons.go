package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"escolaadmin/core/lesson"
)

type lessonApi struct {
	svc      *lesson.Service
	validate *validator.Validate
}

func registerLessonAPI(g *echo.Group, auth echo.MiddlewareFunc, deps ServerDeps) {
	api := lessonApi{svc: deps.LessonSvc, validate: deps.Validate}

	lg := g.Group("/lessons", auth)
	lg.GET("", api.query)
	lg.POST("", api.create)

	dg := lg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
	dg.GET("/students", api.roster)
	dg.POST("/students/:studentID", api.addStudent)
	dg.DELETE("/students/:studentID", api.removeStudent)
}

// Handlers

func (api *lessonApi) query(ctx echo.Context) error {
	lessons, err := api.svc.Snapshot(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "fetching lessons")
	}
	return ctx.JSON(http.StatusOK, lessons)
}

func (api *lessonApi) create(ctx echo.Context) error {
	var data lesson.NewLesson
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewLesson")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	res, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating lesson")
	}
	return ctx.JSON(http.StatusCreated, res)
}

func (api *lessonApi) retrieve(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	l, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "fetching lesson")
	}
	return ctx.JSON(http.StatusOK, l)
}

func (api *lessonApi) update(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	var data lesson.NewLesson
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewLesson")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	l, err := api.svc.Update(ctx.Request().Context(), id, data)
	if err != nil {
		return errors.Wrap(err, "updating lesson")
	}
	return ctx.JSON(http.StatusOK, l)
}

func (api *lessonApi) destroy(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	if err := api.svc.Delete(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting lesson")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *lessonApi) roster(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	students, err := api.svc.Roster(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "fetching roster")
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *lessonApi) addStudent(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	studentID, err := pathID(ctx, "studentID")
	if err != nil {
		return err
	}
	if err := api.svc.AddStudent(ctx.Request().Context(), id, studentID); err != nil {
		return errors.Wrap(err, "adding student to lesson")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *lessonApi) removeStudent(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	studentID, err := pathID(ctx, "studentID")
	if err != nil {
		return err
	}
	if err := api.svc.RemoveStudent(ctx.Request().Context(), id, studentID); err != nil {
		return errors.Wrap(err, "removing student from lesson")
	}
	return ctx.NoContent(http.StatusNoContent)
}
