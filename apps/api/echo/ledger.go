package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"escolaadmin/core/ledger"
)

type (
	ledgerApi struct {
		svc      *ledger.Service
		validate *validator.Validate
	}

	// PaidRequest toggles the paid flag of a ledger entry.
	PaidRequest struct {
		Paid bool `json:"paid"`
	}
)

func registerLedgerAPI(g *echo.Group, auth echo.MiddlewareFunc, deps ServerDeps) {
	api := ledgerApi{svc: deps.LedgerSvc, validate: deps.Validate}

	lg := g.Group("/ledger", auth)
	lg.GET("/totals", api.totals)
	lg.GET("/wallet", api.wallet)
	lg.POST("/wallet", api.createWallet)

	pg := lg.Group("/payables")
	pg.GET("", api.queryPayables)
	pg.POST("", api.createPayable)
	pg.PUT("/:id", api.updatePayable)
	pg.DELETE("/:id", api.destroyPayable)
	pg.PATCH("/:id/paid", api.setPayablePaid)

	rg := lg.Group("/receivables")
	rg.GET("", api.queryReceivables)
	rg.POST("", api.createReceivable)
	rg.PUT("/:id", api.updateReceivable)
	rg.DELETE("/:id", api.destroyReceivable)
	rg.PATCH("/:id/paid", api.setReceivablePaid)
}

// Handlers

func (api *ledgerApi) totals(ctx echo.Context) error {
	totals, err := api.svc.OpenTotals(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "fetching ledger totals")
	}
	return ctx.JSON(http.StatusOK, totals)
}

func (api *ledgerApi) wallet(ctx echo.Context) error {
	w, err := api.svc.MyWallet(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "fetching wallet")
	}
	return ctx.JSON(http.StatusOK, w)
}

func (api *ledgerApi) createWallet(ctx echo.Context) error {
	w, err := api.svc.CreateWallet(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "creating wallet")
	}
	return ctx.JSON(http.StatusCreated, w)
}

func (api *ledgerApi) queryPayables(ctx echo.Context) error {
	payables, err := api.svc.Payables(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "fetching payables")
	}
	return ctx.JSON(http.StatusOK, payables)
}

func (api *ledgerApi) createPayable(ctx echo.Context) error {
	var data ledger.NewPayable
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewPayable")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	p, err := api.svc.CreatePayable(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating payable")
	}
	return ctx.JSON(http.StatusCreated, p)
}

func (api *ledgerApi) updatePayable(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	var data ledger.NewPayable
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewPayable")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	p, err := api.svc.UpdatePayable(ctx.Request().Context(), id, data)
	if err != nil {
		return errors.Wrap(err, "updating payable")
	}
	return ctx.JSON(http.StatusOK, p)
}

func (api *ledgerApi) destroyPayable(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	if err := api.svc.DeletePayable(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting payable")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *ledgerApi) setPayablePaid(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	var data PaidRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to PaidRequest")
	}
	p, err := api.svc.SetPayablePaid(ctx.Request().Context(), id, data.Paid)
	if err != nil {
		return errors.Wrap(err, "setting payable paid state")
	}
	return ctx.JSON(http.StatusOK, p)
}

func (api *ledgerApi) queryReceivables(ctx echo.Context) error {
	receivables, err := api.svc.Receivables(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "fetching receivables")
	}
	return ctx.JSON(http.StatusOK, receivables)
}

func (api *ledgerApi) createReceivable(ctx echo.Context) error {
	var data ledger.NewReceivable
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewReceivable")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	r, err := api.svc.CreateReceivable(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating receivable")
	}
	return ctx.JSON(http.StatusCreated, r)
}

func (api *ledgerApi) updateReceivable(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	var data ledger.NewReceivable
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewReceivable")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	r, err := api.svc.UpdateReceivable(ctx.Request().Context(), id, data)
	if err != nil {
		return errors.Wrap(err, "updating receivable")
	}
	return ctx.JSON(http.StatusOK, r)
}

func (api *ledgerApi) destroyReceivable(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	if err := api.svc.DeleteReceivable(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting receivable")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *ledgerApi) setReceivablePaid(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	var data PaidRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to PaidRequest")
	}
	r, err := api.svc.SetReceivablePaid(ctx.Request().Context(), id, data.Paid)
	if err != nil {
		return errors.Wrap(err, "setting receivable paid state")
	}
	return ctx.JSON(http.StatusOK, r)
}
