package echoapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"escolaadmin/core"
	"escolaadmin/core/lesson"
	"escolaadmin/core/schedule"
	"escolaadmin/services/schoolapi"
)

type (
	scheduleApi struct {
		lessonSvc *lesson.Service
		rosters   schedule.RosterFetcher
		mutator   *schedule.Mutator
		validate  *validator.Validate
		log       core.Logger
	}

	// BulkDeleteRequest wipes a teacher's future lessons. ConfirmCount must
	// match the affected count at execution time; the client obtained it from
	// a prior week/months view and the schedule may have moved since.
	BulkDeleteRequest struct {
		TeacherID    int `json:"teacher_id" validate:"required,gt=0"`
		ConfirmCount int `json:"confirm_count"`
	}

	BulkReassignRequest struct {
		TeacherID    int `json:"teacher_id" validate:"required,gt=0"`
		NewTeacherID int `json:"new_teacher_id" validate:"required,gt=0,nefield=TeacherID"`
		ConfirmCount int `json:"confirm_count"`
	}

	BulkResponse struct {
		schedule.BulkResult
		Summary string `json:"summary"`
	}

	MonthsResponse struct {
		Year   int                    `json:"year"`
		Months []schedule.MonthTotals `json:"months"`
		Totals schedule.PeriodTotals  `json:"totals"`
	}
)

func registerScheduleAPI(g *echo.Group, auth echo.MiddlewareFunc, deps ServerDeps) {
	api := scheduleApi{
		lessonSvc: deps.LessonSvc,
		rosters:   deps.Rosters,
		mutator:   deps.Mutator,
		validate:  deps.Validate,
		log:       deps.Logger,
	}

	sg := g.Group("/schedule", auth)
	sg.GET("/week", api.week)
	sg.GET("/months", api.months)
	sg.POST("/bulk-delete", api.bulkDelete)
	sg.POST("/bulk-reassign", api.bulkReassign)
}

// Handlers

func (api *scheduleApi) week(ctx echo.Context) error {
	var q WeekQuery
	if err := q.Bind(ctx); err != nil {
		return err
	}

	reqCtx := ctx.Request().Context()
	snapshot, err := api.lessonSvc.Snapshot(reqCtx)
	if err != nil {
		return errors.Wrap(err, "fetching lessons")
	}
	switch q.Filter {
	case schedule.FilterTeacher:
		snapshot = schedule.ByTeacher(snapshot, q.TeacherID)
	case schedule.FilterStudent:
		snapshot = schedule.ByStudent(reqCtx, api.rosters, snapshot, q.StudentID, api.log)
	}

	now := time.Now().In(lesson.SchoolZone)
	return ctx.JSON(http.StatusOK, schedule.BuildWeek(snapshot, q.Anchor, now))
}

func (api *scheduleApi) months(ctx echo.Context) error {
	var q MonthsQuery
	if err := q.Bind(ctx); err != nil {
		return err
	}

	snapshot, err := api.lessonSvc.Snapshot(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "fetching lessons")
	}
	return ctx.JSON(http.StatusOK, MonthsResponse{
		Year:   q.Year,
		Months: schedule.MonthlyBreakdown(snapshot, q.Year),
		Totals: schedule.YearTotals(snapshot, q.Year),
	})
}

func (api *scheduleApi) bulkDelete(ctx echo.Context) error {
	var data BulkDeleteRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to BulkDeleteRequest")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}

	affected, bulkCtx, err := api.gate(ctx, data.TeacherID, data.ConfirmCount)
	if err != nil || bulkCtx == nil {
		return err
	}

	res := api.mutator.DeleteAll(bulkCtx, affected)
	return ctx.JSON(http.StatusOK, BulkResponse{BulkResult: res, Summary: res.Summary()})
}

func (api *scheduleApi) bulkReassign(ctx echo.Context) error {
	var data BulkReassignRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to BulkReassignRequest")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}

	affected, bulkCtx, err := api.gate(ctx, data.TeacherID, data.ConfirmCount)
	if err != nil || bulkCtx == nil {
		return err
	}

	res := api.mutator.Reassign(bulkCtx, affected, data.NewTeacherID)
	return ctx.JSON(http.StatusOK, BulkResponse{BulkResult: res, Summary: res.Summary()})
}

// gate recomputes the affected set and enforces the confirmation count. On a
// mismatch it writes the 409 itself and returns a nil ctx. The returned ctx
// carries the session token on a fresh background context so a dropped client
// connection cannot abort a half-applied batch.
func (api *scheduleApi) gate(ctx echo.Context, teacherID, confirmCount int) ([]lesson.Lesson, context.Context, error) {
	reqCtx := ctx.Request().Context()
	snapshot, err := api.lessonSvc.Snapshot(reqCtx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "fetching lessons")
	}

	now := time.Now().In(lesson.SchoolZone)
	affected := lesson.FutureOf(snapshot, teacherID, now)
	if confirmCount != len(affected) {
		return nil, nil, ctx.JSON(http.StatusConflict, echo.Map{
			"error":    "confirmation count mismatch",
			"affected": len(affected),
		})
	}

	token, err := contextToken(ctx)
	if err != nil {
		return nil, nil, err
	}
	return affected, schoolapi.WithToken(context.Background(), token), nil
}
