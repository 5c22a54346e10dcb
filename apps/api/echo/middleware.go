package echoapi

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"

	"escolaadmin/services/schoolapi"
)

const (
	sessionName     = "escolaadmin"
	sessionTokenKey = "token"
	contextTokenKey = "upstreamToken"
)

// sessionAuthMiddleware resolves the upstream bearer token from the cookie
// session and attaches it to the request context; every downstream call to
// the school API authenticates with it.
func sessionAuthMiddleware(store sessions.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			sess, err := store.Get(ctx.Request(), sessionName)
			if err != nil {
				return errUnauthorized
			}
			token, ok := sess.Values[sessionTokenKey].(string)
			if !ok || token == "" {
				return errUnauthorized
			}
			if tokenExpired(token) {
				sess.Options.MaxAge = -1
				_ = sess.Save(ctx.Request(), ctx.Response())
				return errSessionExpired
			}

			req := ctx.Request()
			ctx.SetRequest(req.WithContext(schoolapi.WithToken(req.Context(), token)))
			ctx.Set(contextTokenKey, token)
			return next(ctx)
		}
	}
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; only the upstream holds the signing key. An opaque token is
// passed through for the upstream to judge.
func tokenExpired(token string) bool {
	claims := new(jwt.StandardClaims)
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return false
	}
	return claims.ExpiresAt > 0 && !claims.VerifyExpiresAt(time.Now().Unix(), false)
}

// contextToken returns the session token stashed by sessionAuthMiddleware.
func contextToken(ctx echo.Context) (string, error) {
	token, ok := ctx.Get(contextTokenKey).(string)
	if !ok || token == "" {
		return "", errUnauthorized
	}
	return token, nil
}
