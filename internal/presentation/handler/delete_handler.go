package handler

import (
	"net/http"

	"storefront/internal/application/usecase/abstraction"
	"storefront/internal/presentation"

	"github.com/labstack/echo/v4"
)

type DeleteHandler struct {
	deleter abstraction.Deleter
}

func NewDeleteHandler(deleter abstraction.Deleter) *DeleteHandler {
	return &DeleteHandler{
		deleter: deleter,
	}
}

// HandleDelete handles DELETE /<resource>/:id requests.
func (h *DeleteHandler) HandleDelete(c echo.Context) error {
	if err := h.deleter.Delete(c.Request().Context(), presentation.ActorFrom(c),
		c.Param(presentation.IDParam)); err != nil {
		return presentation.Fail(c, err)
	}

	return c.JSON(http.StatusOK, presentation.MessageResponse{Message: "deleted"})
}
