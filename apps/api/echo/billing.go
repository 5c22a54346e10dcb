package echoapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"escolaadmin/core"
	"escolaadmin/core/billing"
	"escolaadmin/core/lesson"
)

type billingApi struct {
	svc      *billing.Service
	validate *validator.Validate
}

func registerBillingAPI(g *echo.Group, auth echo.MiddlewareFunc, deps ServerDeps) {
	api := billingApi{svc: deps.BillingSvc, validate: deps.Validate}

	bg := g.Group("/billing", auth)
	bg.GET("", api.query)
	bg.POST("", api.create)
	bg.GET("/summary", api.summary)
	bg.POST("/rollover", api.rollover)

	dg := bg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
}

// Handlers

// query lists billing entries: all by default, narrowed by ?student_id=,
// ?month=&year= or ?pending=true.
func (api *billingApi) query(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	if raw := ctx.QueryParam("student_id"); raw != "" {
		studentID, err := strconv.Atoi(raw)
		if err != nil || studentID <= 0 {
			return core.NewValidationError(nil, core.FieldError{Field: "student_id", Error: "expected a student id"})
		}
		entries, err := api.svc.QueryByStudent(reqCtx, studentID)
		if err != nil {
			return errors.Wrap(err, "fetching student billing entries")
		}
		return ctx.JSON(http.StatusOK, entries)
	}

	if raw := ctx.QueryParam("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			return core.NewValidationError(nil, core.FieldError{Field: "month", Error: "expected 1-12"})
		}
		year := time.Now().In(lesson.SchoolZone).Year()
		if rawYear := ctx.QueryParam("year"); rawYear != "" {
			if year, err = strconv.Atoi(rawYear); err != nil || year < 1 {
				return core.NewValidationError(nil, core.FieldError{Field: "year", Error: "expected a year"})
			}
		}
		entries, err := api.svc.QueryByMonth(reqCtx, time.Month(month), year)
		if err != nil {
			return errors.Wrap(err, "fetching monthly billing entries")
		}
		return ctx.JSON(http.StatusOK, entries)
	}

	if ctx.QueryParam("pending") == "true" {
		entries, err := api.svc.QueryPending(reqCtx)
		if err != nil {
			return errors.Wrap(err, "fetching pending billing entries")
		}
		return ctx.JSON(http.StatusOK, entries)
	}

	entries, err := api.svc.QueryAll(reqCtx)
	if err != nil {
		return errors.Wrap(err, "fetching billing entries")
	}
	return ctx.JSON(http.StatusOK, entries)
}

func (api *billingApi) summary(ctx echo.Context) error {
	entries, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "fetching billing entries")
	}
	return ctx.JSON(http.StatusOK, billing.Summarize(entries))
}

// rollover sweeps entries dated before today into the overdue status.
func (api *billingApi) rollover(ctx echo.Context) error {
	now := time.Now().In(lesson.SchoolZone)
	flagged, err := api.svc.RolloverOverdue(ctx.Request().Context(), now)
	if err != nil {
		return errors.Wrap(err, "rolling over overdue entries")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"flagged": flagged})
}

func (api *billingApi) create(ctx echo.Context) error {
	var data billing.NewEntry
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEntry")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	e, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating billing entry")
	}
	return ctx.JSON(http.StatusCreated, e)
}

func (api *billingApi) retrieve(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	e, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "fetching billing entry")
	}
	return ctx.JSON(http.StatusOK, e)
}

func (api *billingApi) update(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	var data billing.NewEntry
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEntry")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	e, err := api.svc.Update(ctx.Request().Context(), id, data)
	if err != nil {
		return errors.Wrap(err, "updating billing entry")
	}
	return ctx.JSON(http.StatusOK, e)
}

func (api *billingApi) destroy(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	if err := api.svc.Delete(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting billing entry")
	}
	return ctx.NoContent(http.StatusNoContent)
}
