package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paskalex1/sochirent-crm/internal/pkg/auth"
	"github.com/paskalex1/sochirent-crm/internal/pkg/constants"
)

// RequestIDMiddleware tags every request with an id for log correlation,
// honoring one supplied by the caller.
func (svc *APIService) RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		reqID := ctx.Request().Header.Get(constants.HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		ctx.Response().Header().Set(constants.HeaderRequestID, reqID)

		reqCtx := context.WithValue(ctx.Request().Context(), constants.CtxKeyRequestID, reqID)
		ctx.SetRequest(ctx.Request().WithContext(reqCtx))

		return next(ctx)
	}
}

// AuthMiddleware parses the auth cookie and stores the caller's identity on
// the request context.
func (svc *APIService) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(constants.CookieKeyAuthToken)
		if err != nil {
			return constants.ErrMissingAuthCookie
		}

		token, err := auth.ParseAuthToken(cookie.Value)
		if err != nil {
			return err
		}

		ctx.Set(constants.CtxKeyUserID, token.UserID)
		ctx.Set(constants.CtxKeyUserRole, token.Role)

		return next(ctx)
	}
}

// RequireZone checks the role policy for one API zone. The policy is a plain
// value handed to the service at startup; there is no global role state.
func (svc *APIService) RequireZone(zone auth.Zone) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			role, _ := ctx.Get(constants.CtxKeyUserRole).(string)
			if !svc.policy.Allows(role, zone) {
				return constants.ErrForbiddenZone
			}
			return next(ctx)
		}
	}
}
