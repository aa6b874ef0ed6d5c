package presentation

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"storefront/internal/domain/apperror"
	"storefront/internal/domain/dto"
	"storefront/pkg/logger"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse confirms an operation that returns no entity.
type MessageResponse struct {
	Message string `json:"message"`
}

// Fail writes err as a JSON error with the matching status and X-Reason
// header. Nothing is written once the response is committed.
func Fail(c echo.Context, err error) error {
	status := apperror.StatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "method", c.Request().Method, "path", c.Request().URL.Path,
			"err", err)
	}

	return reply(c, status, apperror.PublicMessage(err))
}

func reply(c echo.Context, status int, message string) error {
	if c.Response().Committed {
		return nil
	}

	c.Response().Header().Set(ReasonTag, strings.ReplaceAll(message, "\n", " "))

	return c.JSON(status, ErrorResponse{Message: message})
}

// HTTPErrorHandler renders errors returned by handlers and middleware.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		message := http.StatusText(he.Code)
		if he.Message != nil {
			message = fmt.Sprint(he.Message)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(he.Code)
		} else {
			err = reply(c, he.Code, message)
		}
	} else {
		err = Fail(c, err)
	}

	if err != nil {
		logger.Error("failed to write error response", "err", err)
	}
}

// ActorFrom returns the caller identified by the bearer token, or the
// anonymous actor.
func ActorFrom(c echo.Context) dto.Actor {
	actor, _ := c.Get(ActorKey).(dto.Actor)

	return actor
}
