package handler

import (
	"net/http"

	"storefront/internal/application/usecase/abstraction"
	"storefront/internal/presentation"

	"github.com/labstack/echo/v4"
)

type UpdateHandler[T, P any] struct {
	updater abstraction.Updater[T, P]
}

func NewUpdateHandler[T, P any](updater abstraction.Updater[T, P]) *UpdateHandler[T, P] {
	return &UpdateHandler[T, P]{
		updater: updater,
	}
}

// HandleUpdate handles PUT /<resource>/:id requests. Fields absent from the
// body keep their stored value.
func (h *UpdateHandler[T, P]) HandleUpdate(c echo.Context) error {
	var patch P
	if err := c.Bind(&patch); err != nil {
		return err
	}

	updated, err := h.updater.Update(c.Request().Context(), presentation.ActorFrom(c),
		c.Param(presentation.IDParam), patch)
	if err != nil {
		return presentation.Fail(c, err)
	}

	return c.JSON(http.StatusOK, updated)
}
