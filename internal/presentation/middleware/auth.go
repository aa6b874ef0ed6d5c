package middleware

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"storefront/internal/application/usecase"
	"storefront/internal/domain/apperror"
	"storefront/internal/presentation"
)

type TokenParser interface {
	Parse(token string) (*usecase.Claims, error)
}

// Identify resolves the bearer token into the request actor. Requests
// without an Authorization header continue as anonymous; a present but
// invalid token is rejected with 401.
func Identify(parser TokenParser) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:             presentation.UserKey,
		ContinueOnIgnoredError: true,
		ParseTokenFunc: func(_ echo.Context, auth string) (any, error) {
			return parser.Parse(auth)
		},
		SuccessHandler: func(c echo.Context) {
			if claims, ok := c.Get(presentation.UserKey).(*usecase.Claims); ok {
				c.Set(presentation.ActorKey, claims.Actor())
			}
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return nil
			}

			return apperror.Unauthenticated("invalid or expired token")
		},
	})
}
