package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"escolaadmin/core/language"
)

type languageApi struct {
	svc      *language.Service
	validate *validator.Validate
}

func registerLanguageAPI(g *echo.Group, auth echo.MiddlewareFunc, deps ServerDeps) {
	api := languageApi{svc: deps.LanguageSvc, validate: deps.Validate}

	lg := g.Group("/languages", auth)
	lg.GET("", api.query)
	lg.POST("", api.create)
	lg.GET("/:id", api.retrieve)
	lg.PUT("/:id", api.update)
	lg.DELETE("/:id", api.destroy)
}

// Handlers

func (api *languageApi) query(ctx echo.Context) error {
	languages, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "fetching languages")
	}
	return ctx.JSON(http.StatusOK, languages)
}

func (api *languageApi) create(ctx echo.Context) error {
	var data language.NewLanguage
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewLanguage")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	l, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating language")
	}
	return ctx.JSON(http.StatusCreated, l)
}

func (api *languageApi) retrieve(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	l, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "fetching language")
	}
	return ctx.JSON(http.StatusOK, l)
}

func (api *languageApi) update(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	var data language.NewLanguage
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewLanguage")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	l, err := api.svc.Update(ctx.Request().Context(), id, data)
	if err != nil {
		return errors.Wrap(err, "updating language")
	}
	return ctx.JSON(http.StatusOK, l)
}

func (api *languageApi) destroy(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	if err := api.svc.Delete(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting language")
	}
	return ctx.NoContent(http.StatusNoContent)
}
