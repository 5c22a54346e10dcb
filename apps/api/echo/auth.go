package echoapi

import (
	stderrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"escolaadmin/core/admin"
	"escolaadmin/services/schoolapi"
)

const contextAdminKey = "admin"

type authApi struct {
	svc      *admin.Service
	store    sessions.Store
	validate *validator.Validate
}

func registerAuthAPI(g *echo.Group, auth echo.MiddlewareFunc, deps ServerDeps) {
	api := authApi{
		svc:      deps.AdminSvc,
		store:    deps.Store,
		validate: deps.Validate,
	}

	ag := g.Group("/auth")

	// un-authed endpoints
	ag.POST("/login", api.login)

	// authed endpoints
	ag.POST("/logout", api.logout, auth)
	ag.GET("/me", api.me, auth)
	ag.POST("/admins", api.createAdmin, auth)
}

// Handlers

func (api *authApi) login(ctx echo.Context) error {
	var data admin.Credentials
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Credentials")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}

	reqCtx := ctx.Request().Context()
	token, err := api.svc.Login(reqCtx, data)
	if err != nil {
		var apiErr *schoolapi.APIError
		if stderrors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError {
			return errAuthenticationFailed
		}
		return errors.Wrap(err, "logging in")
	}

	sess, _ := api.store.Get(ctx.Request(), sessionName)
	sess.Values[sessionTokenKey] = token.AccessToken
	sess.Options.HttpOnly = true
	sess.Options.SameSite = http.SameSiteLaxMode
	if err := sess.Save(ctx.Request(), ctx.Response()); err != nil {
		return errors.Wrap(err, "saving session")
	}

	adm, err := api.svc.Current(schoolapi.WithToken(reqCtx, token.AccessToken))
	if err != nil {
		return errors.Wrap(err, "fetching current admin")
	}
	ctx.Set(contextAdminKey, adm)
	return ctx.JSON(http.StatusOK, adm)
}

func (api *authApi) logout(ctx echo.Context) error {
	sess, _ := api.store.Get(ctx.Request(), sessionName)
	sess.Options.MaxAge = -1
	if err := sess.Save(ctx.Request(), ctx.Response()); err != nil {
		return errors.Wrap(err, "expiring session")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *authApi) me(ctx echo.Context) error {
	adm, err := api.svc.Current(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "fetching current admin")
	}
	ctx.Set(contextAdminKey, adm)
	return ctx.JSON(http.StatusOK, adm)
}

func (api *authApi) createAdmin(ctx echo.Context) error {
	var data admin.NewAdmin
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAdmin")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	adm, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating admin")
	}
	return ctx.JSON(http.StatusCreated, adm)
}
