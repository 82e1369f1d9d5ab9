package middlewares

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/navikt/isarbeidsuforhet-sub000/shared"
	"github.com/pkg/errors"
)

// VeilederSessionMiddleware requires a bearer token and puts the caseworker
// identity on the request context. Signature validation happens at the
// ingress gateway; this service only reads the claims.
func VeilederSessionMiddleware() shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			token := shared.GetBearerToken(ctx)
			if token == "" {
				return echo.NewHTTPError(401, "missing bearer token")
			}

			navIdent, err := navIdentFromToken(token)
			if err != nil {
				return echo.NewHTTPError(401, "invalid bearer token").WithInternal(err)
			}

			shared.SetNAVIdent(ctx, navIdent)
			return next(ctx)
		}
	}
}

func navIdentFromToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", errors.Wrap(err, "could not parse bearer token")
	}

	navIdent, ok := claims["NAVident"].(string)
	if !ok || navIdent == "" {
		return "", errors.New("bearer token carries no NAVident claim")
	}

	return navIdent, nil
}
