package middlewares

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/navikt/isarbeidsuforhet-sub000/shared"
)

// CallIDMiddleware makes sure every request carries a correlation id that
// gets propagated to all outbound calls.
func CallIDMiddleware() shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			callID := ctx.Request().Header.Get(shared.CallIDHeader)
			if callID == "" {
				callID = uuid.New().String()
			}
			shared.SetCallID(ctx, callID)
			ctx.Response().Header().Set(shared.CallIDHeader, callID)
			return next(ctx)
		}
	}
}
